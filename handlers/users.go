package handlers

import (
	"errors"
	"net/http"

	"github.com/Roland735/shopping-organizer/logger"
	"github.com/Roland735/shopping-organizer/mongodb"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UpdateProfileRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) HandleGetProfile(c *gin.Context) {
	_, ownerID, ok := sessionUser(c)
	if !ok {
		return
	}

	user, err := h.Users.UserByID(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Get().Error("failed to fetch profile",
			zap.String("user_id", ownerID.Hex()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handler) HandleUpdateProfile(c *gin.Context) {
	claims, ownerID, ok := sessionUser(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := bson.M{}
	if req.Email != "" && req.Email != claims.Email {
		fields["email"] = req.Email
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
		if err != nil {
			logger.Get().Error("failed to hash password",
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating profile"})
			return
		}
		fields["password"] = string(hashed)
	}

	if len(fields) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
		return
	}

	if err := h.Users.UpdateUser(c.Request.Context(), ownerID, fields); err != nil {
		switch {
		case errors.Is(err, mongodb.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, mongodb.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		default:
			logger.Get().Error("failed to update profile",
				zap.String("user_id", ownerID.Hex()),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating profile"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}
