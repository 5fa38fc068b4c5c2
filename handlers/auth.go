package handlers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/Roland735/shopping-organizer/logger"
	"github.com/Roland735/shopping-organizer/models"
	"github.com/Roland735/shopping-organizer/mongodb"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

var errMissingSecret = errors.New("JWT_SECRET environment variable not set")

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) HandleSignup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch {
	case req.Name == "":
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing `name`"})
		return
	case req.Email == "":
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing `email`"})
		return
	case req.Password == "":
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing `password`"})
		return
	}

	existing, err := h.Users.UserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		logger.Get().Error("failed to look up user at signup",
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		logger.Get().Error("failed to hash password",
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user"})
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Currency: models.DefaultCurrency,
		Timezone: models.DefaultTimezone,
	}
	if err := h.Users.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, mongodb.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}
		logger.Get().Error("failed to create user",
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User created successfully"})
}

func (h *Handler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing credentials"})
		return
	}

	user, err := h.Users.UserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		logger.Get().Error("failed to look up user at login",
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error logging in"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := issueSessionToken(user)
	if err != nil {
		logger.Get().Error("failed to sign session token",
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error logging in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func issueSessionToken(user *models.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errMissingSecret
	}

	now := time.Now()
	claims := &models.SessionClaims{
		Name:  user.Name,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(30 * 24 * time.Hour)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
