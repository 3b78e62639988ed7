package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"brodverk-backend/internal/auth"
	"brodverk-backend/internal/database"
	"brodverk-backend/internal/logger"
	"brodverk-backend/internal/middleware"
	"brodverk-backend/internal/models"
)

type AuthHandler struct {
	userQueries *database.UserQueries
	jwtSecret   string
	log         *logger.Logger
}

func NewAuthHandler(db *sql.DB, jwtSecret string, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		userQueries: database.NewUserQueries(db),
		jwtSecret:   jwtSecret,
		log:         log,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userQueries.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	response, err := h.tokenResponse(user)
	if err != nil {
		h.log.Errorw("failed to issue tokens", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := auth.ValidateToken(req.RefreshToken, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	// Re-read the user so revoked accounts and role changes take effect.
	user, err := h.userQueries.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	response, err := h.tokenResponse(user)
	if err != nil {
		h.log.Errorw("failed to issue tokens", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) Me(c *gin.Context) {
	session, ok := middleware.Session(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := h.userQueries.GetUserByID(c.Request.Context(), session.UserID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) tokenResponse(user *models.User) (*models.AuthResponse, error) {
	accessToken, err := auth.GenerateAccessToken(user.ID, user.Email, user.Role, h.jwtSecret)
	if err != nil {
		return nil, err
	}
	refreshToken, err := auth.GenerateRefreshToken(user.ID, user.Email, user.Role, h.jwtSecret)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{
		User:         *user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
