package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"kiit_connect/internal/model"
	"kiit_connect/internal/repository"
	"kiit_connect/internal/utils"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrValidation         = errors.New("email and password required")
	ErrUserAlreadyExists  = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrStoreUnavailable   = errors.New("user store unavailable")

	ErrMissingToken     = errors.New("login required")
	ErrMalformedToken   = errors.New("invalid token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrExpiredToken     = errors.New("token expired")
	ErrPrincipalGone    = errors.New("user no longer exists")
	ErrTokenRevoked     = errors.New("token revoked")

	ErrInsufficientRole = errors.New("you do not have permission to access this resource")
)

// ValidationMode decides what authenticate trusts once a token verifies
type ValidationMode string

const (
	// ValidationStateless trusts the identity and role embedded in the token
	ValidationStateless ValidationMode = "stateless"
	// ValidationRevalidated re-reads the user on every request, so deletions
	// and role changes take effect before the token expires
	ValidationRevalidated ValidationMode = "revalidated"
)

const demoUserID = "demo_user"

// AuthConfig holds everything the gateway needs; there is no package state.
type AuthConfig struct {
	// Users is the persisted store. Leave nil when no database is configured.
	Users repository.UserRepository
	// Revocations is optional; when nil logout cannot invalidate tokens.
	Revocations       repository.RevocationRepository
	JWT               *utils.JWTUtil
	HashCost          int
	DemoMode          bool
	Validation        ValidationMode
	InitialAdminEmail string
	Now               func() time.Time
	Logger            *slog.Logger
}

// AuthService provides authentication related services
type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResult, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResult, error)
	Authenticate(ctx context.Context, authHeader string) (*model.Principal, error)
	Logout(ctx context.Context, principal *model.Principal) error
	DemoMode() bool
}

type authService struct {
	cfg    AuthConfig
	logger *slog.Logger
}

// NewAuthService validates the configuration and creates an AuthService
func NewAuthService(cfg AuthConfig) (AuthService, error) {
	if cfg.JWT == nil {
		return nil, errors.New("auth: JWT signer is required")
	}
	if !utils.ValidCost(cfg.HashCost) {
		return nil, fmt.Errorf("auth: invalid bcrypt cost %d", cfg.HashCost)
	}
	if cfg.DemoMode && cfg.Users != nil {
		return nil, errors.New("auth: demo mode cannot be combined with a persisted user store")
	}
	switch cfg.Validation {
	case ValidationStateless:
	case ValidationRevalidated:
		if cfg.Users == nil {
			return nil, errors.New("auth: revalidated token mode requires a user store")
		}
	default:
		return nil, fmt.Errorf("auth: unknown validation mode %q", cfg.Validation)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{cfg: cfg, logger: logger.With("component", "auth")}, nil
}

func (s *authService) DemoMode() bool {
	return s.cfg.DemoMode
}

// Register creates a new account and issues its first token
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResult, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, ErrValidation
	}
	if len(req.Password) > utils.MaxPasswordBytes {
		return nil, fmt.Errorf("%w: password longer than %d bytes", ErrValidation, utils.MaxPasswordBytes)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = localPart(email)
	}

	if s.cfg.Users == nil {
		if !s.cfg.DemoMode {
			return nil, ErrStoreUnavailable
		}
		s.logger.InfoContext(ctx, "demo registration", "email", email)
		return s.issue(email, "demo_"+email, model.UserSummary{Email: email, Name: name, Role: model.RoleStudent}, true)
	}

	existing, err := s.cfg.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password, s.cfg.HashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := model.RoleStudent
	if s.cfg.InitialAdminEmail != "" && strings.EqualFold(email, s.cfg.InitialAdminEmail) {
		role = model.RoleAdmin
		s.logger.InfoContext(ctx, "registering initial admin", "email", email)
	}

	now := s.cfg.Now()
	user := &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: hashedPassword,
		Role:         role,
		CreatedAt:    now,
		LastLogin:    now,
	}
	if err := s.cfg.Users.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration of the same email.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return s.issue(user.Email, strconv.Itoa(user.ID), user.Summary(), false)
}

// Login verifies credentials and issues a token
func (s *authService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResult, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, ErrValidation
	}

	if s.cfg.Users == nil {
		if !s.cfg.DemoMode {
			return nil, ErrStoreUnavailable
		}
		s.logger.InfoContext(ctx, "demo login", "email", email)
		return s.issue(email, demoUserID, model.UserSummary{Email: email, Name: localPart(email), Role: model.RoleStudent}, true)
	}

	user, err := s.cfg.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if err := s.cfg.Users.UpdateLastLogin(ctx, user.ID, s.cfg.Now()); err != nil {
		s.logger.WarnContext(ctx, "failed to record last login", "user_id", user.ID, "error", err)
	}

	return s.issue(user.Email, strconv.Itoa(user.ID), user.Summary(), false)
}

// Authenticate turns an Authorization header into a principal
func (s *authService) Authenticate(ctx context.Context, authHeader string) (*model.Principal, error) {
	tokenString, err := bearerToken(authHeader)
	if err != nil {
		return nil, err
	}

	claims, err := s.cfg.JWT.ValidateToken(tokenString)
	if err != nil {
		s.logger.DebugContext(ctx, "token rejected", "error", err)
		return nil, classifyTokenError(err)
	}

	if s.cfg.Revocations != nil && claims.ID != "" {
		revoked, err := s.cfg.Revocations.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		if revoked {
			return nil, ErrTokenRevoked
		}
	}

	principal := &model.Principal{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Role:      claims.Role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}

	if s.cfg.Validation == ValidationRevalidated {
		user, err := s.cfg.Users.FindByEmail(ctx, claims.Email)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		if user == nil {
			return nil, ErrPrincipalGone
		}
		principal.UserID = strconv.Itoa(user.ID)
		principal.Role = user.Role
	}

	return principal, nil
}

// Logout denies the principal's token for the rest of its lifetime when a
// revocation list is configured
func (s *authService) Logout(ctx context.Context, principal *model.Principal) error {
	if principal == nil || s.cfg.Revocations == nil || principal.TokenID == "" {
		return nil
	}
	if err := s.cfg.Revocations.Revoke(ctx, principal.TokenID, principal.ExpiresAt); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (s *authService) issue(email, userID string, summary model.UserSummary, demo bool) (*model.AuthResult, error) {
	token, _, err := s.cfg.JWT.GenerateToken(email, userID, summary.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &model.AuthResult{Token: token, UserID: userID, User: summary, Demo: demo}, nil
}

func bearerToken(authHeader string) (string, error) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", ErrMissingToken
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrMalformedToken
	}
	if parts[1] == "" {
		return "", ErrMissingToken
	}
	return parts[1], nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpiredToken
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrInvalidSignature
	default:
		return ErrMalformedToken
	}
}

func localPart(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
