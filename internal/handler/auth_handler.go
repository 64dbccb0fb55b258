package handler

import (
	"log/slog"
	"net/http"

	"kiit_connect/internal/middleware"
	"kiit_connect/internal/model"
	"kiit_connect/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionEmailKey  = "user_email"
	sessionNameKey   = "user_name"
	sessionUserIDKey = "user_id"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{service: s, logger: logger.With("component", "auth_handler")}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, service.ErrValidation)
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.saveSession(c, result)
	c.JSON(http.StatusOK, authResponse("Registration successful!", result))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, service.ErrValidation)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.saveSession(c, result)
	c.JSON(http.StatusOK, authResponse("Login successful!", result))
}

// Logout clears the cookie session. A valid bearer token on the request is
// revoked as well; an invalid or absent one is ignored.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		h.logger.WarnContext(c.Request.Context(), "failed to clear session", "error", err)
	}

	if header := c.GetHeader("Authorization"); header != "" {
		principal, err := h.service.Authenticate(c.Request.Context(), header)
		if err == nil {
			if err := h.service.Logout(c.Request.Context(), principal); err != nil {
				respondError(c, h.logger, err)
				return
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// Me returns the principal resolved by JWTAuthMiddleware
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		respondError(c, h.logger, service.ErrMissingToken)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": principal})
}

// Session reports the cookie session mirror without requiring a token
func (h *AuthHandler) Session(c *gin.Context) {
	session := sessions.Default(c)
	email, _ := session.Get(sessionEmailKey).(string)
	name, _ := session.Get(sessionNameKey).(string)
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"logged_in": email != "",
		"email":     email,
		"name":      name,
	})
}

func (h *AuthHandler) saveSession(c *gin.Context, result *model.AuthResult) {
	session := sessions.Default(c)
	session.Set(sessionEmailKey, result.User.Email)
	session.Set(sessionNameKey, result.User.Name)
	session.Set(sessionUserIDKey, result.UserID)
	if err := session.Save(); err != nil {
		h.logger.WarnContext(c.Request.Context(), "failed to save session", "email", result.User.Email, "error", err)
	}
}

func authResponse(message string, result *model.AuthResult) gin.H {
	if result.Demo {
		message += " (Demo Mode)"
	}
	return gin.H{
		"success": true,
		"message": message,
		"token":   result.Token,
		"user":    result.User,
	}
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, jwtAuthMW gin.HandlerFunc) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
	rg.GET("/session", h.Session)
	rg.GET("/me", jwtAuthMW, h.Me)
}
