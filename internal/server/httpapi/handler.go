package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mentormatch/mentorauth/internal/common"
	"github.com/mentormatch/mentorauth/internal/server/auth"
	"github.com/mentormatch/mentorauth/internal/server/models"
	"github.com/mentormatch/mentorauth/internal/server/services"
)

type registerRequest struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	Username string `json:"username"`
}

// userResponse is the safe-to-expose subset of a user record. The password
// hash never leaves the service.
type userResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		Name:     u.Name,
		Role:     string(u.Role),
	}
}

// Register handles POST /register.
func (s *HTTPServer) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request body"})
		return
	}

	user, err := s.users.Register(ctx, services.RegisterRequest{
		ID:       req.ID,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Role:     models.Role(req.Role),
	})
	if err != nil {
		var fe *common.FieldError
		switch {
		case errors.As(err, &fe):
			c.JSON(http.StatusBadRequest, gin.H{"message": fe.Error(), "field": fe.Field})
		case errors.Is(err, common.ErrDuplicateIdentity):
			c.JSON(http.StatusConflict, gin.H{"message": "email or username already exists"})
		default:
			s.logger.Error(ctx, "registration failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		}
		return
	}

	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "user registered",
		"user":    toUserResponse(user),
	})
}

// Login handles POST /login. Unknown email and wrong password answer with
// the same status and message.
func (s *HTTPServer) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request body"})
		return
	}

	user, token, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
			return
		}
		s.logger.Error(ctx, "login failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	s.logger.Info(ctx, "Logged in", "user_id", user.ID)
	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"token":   token,
		"user":    toUserResponse(user),
	})
}

// Refresh handles POST /refresh: confirms the cached session's subject is
// still valid so the client may slide its local window.
func (s *HTTPServer) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Username) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "malformed request body"})
		return
	}

	if err := s.users.Refresh(ctx, req.Username); err != nil {
		if errors.Is(err, common.ErrSessionInvalid) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "session invalid"})
			return
		}
		s.logger.Error(ctx, "refresh failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me handles GET /me. The identity is derived purely from the verified
// bearer token; no database lookup is needed.
func (s *HTTPServer) Me(c *gin.Context) {
	const bearerPrefix = "Bearer "

	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
		return
	}

	claims, err := auth.ParseToken(header[len(bearerPrefix):], s.jwtSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":   claims.Subject,
		"role": claims.Role,
	})
}
