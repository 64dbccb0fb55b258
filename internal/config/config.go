package config

import (
	"errors"
	"fmt"

	"kiit_connect/internal/service"
	"kiit_connect/internal/utils"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration read from the environment
type Config struct {
	AppEnv     string `envconfig:"APP_ENV" default:"development"`
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`
	LogFormat  string `envconfig:"LOG_FORMAT" default:"text"`

	// The user store is configured iff DBHost is set
	DBHost     string `envconfig:"DB_HOST"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"kiit_connect"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	JWTSecretKey  string `envconfig:"JWT_SECRET_KEY" required:"true"`
	SessionSecret string `envconfig:"SESSION_SECRET" required:"true"`

	DemoMode bool `envconfig:"DEMO_MODE" default:"false"`
	// Empty picks revalidated when a store is configured, stateless otherwise
	AuthValidationMode string `envconfig:"AUTH_VALIDATION_MODE"`
	BcryptCost         int    `envconfig:"BCRYPT_COST" default:"12"`
	InitialAdminEmail  string `envconfig:"INITIAL_ADMIN_EMAIL"`

	RedisAddr   string   `envconfig:"REDIS_ADDR"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`

	DataDir   string `envconfig:"DATA_DIR" default:"data"`
	StaticDir string `envconfig:"STATIC_DIR" default:"static"`
}

// LoadConfig reads configuration from environment variables and validates it
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects combinations the auth gateway cannot run with
func (c *Config) Validate() error {
	if c.JWTSecretKey == "" {
		return errors.New("JWT_SECRET_KEY must be provided")
	}
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET must be provided")
	}
	if c.DemoMode && c.StoreConfigured() {
		return errors.New("DEMO_MODE cannot be enabled while DB_HOST is set")
	}
	switch c.ValidationMode() {
	case service.ValidationStateless:
	case service.ValidationRevalidated:
		if !c.StoreConfigured() {
			return errors.New("AUTH_VALIDATION_MODE=revalidated requires DB_HOST")
		}
	default:
		return fmt.Errorf("unknown AUTH_VALIDATION_MODE %q", c.AuthValidationMode)
	}
	if !utils.ValidCost(c.BcryptCost) {
		return fmt.Errorf("BCRYPT_COST %d out of range", c.BcryptCost)
	}
	return nil
}

// StoreConfigured reports whether a Postgres user store should be used
func (c *Config) StoreConfigured() bool {
	return c.DBHost != ""
}

// ValidationMode resolves the token validation policy
func (c *Config) ValidationMode() service.ValidationMode {
	if c.AuthValidationMode == "" {
		if c.StoreConfigured() {
			return service.ValidationRevalidated
		}
		return service.ValidationStateless
	}
	return service.ValidationMode(c.AuthValidationMode)
}

// DSN builds the pgx connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// IsProduction returns true when the application runs in production
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
