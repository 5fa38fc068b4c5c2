package handlers

import (
	"errors"
	"net/http"

	"github.com/Roland735/shopping-organizer/logger"
	"github.com/Roland735/shopping-organizer/models"
	"github.com/Roland735/shopping-organizer/mongodb"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
)

type CreateListRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IsShared    bool   `json:"isShared"`
}

func (h *Handler) HandleGetLists(c *gin.Context) {
	_, ownerID, ok := sessionUser(c)
	if !ok {
		return
	}

	lists, err := h.Lists.ListsByOwner(c.Request.Context(), ownerID)
	if err != nil {
		logger.Get().Error("failed to fetch lists",
			zap.String("user_id", ownerID.Hex()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching lists"})
		return
	}

	c.JSON(http.StatusOK, lists)
}

func (h *Handler) HandleCreateList(c *gin.Context) {
	_, ownerID, ok := sessionUser(c)
	if !ok {
		return
	}

	var req CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing `title`"})
		return
	}

	list := &models.ShoppingList{
		Title:       req.Title,
		Description: req.Description,
		UserID:      ownerID,
		Items:       []models.Item{},
		IsShared:    req.IsShared,
	}
	if err := h.Lists.CreateList(c.Request.Context(), list); err != nil {
		logger.Get().Error("failed to create list",
			zap.String("user_id", ownerID.Hex()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating list"})
		return
	}

	c.JSON(http.StatusCreated, list)
}

func (h *Handler) HandleGetList(c *gin.Context) {
	_, ownerID, ok := sessionUser(c)
	if !ok {
		return
	}

	listID, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	list, err := h.Lists.GetList(c.Request.Context(), listID, ownerID)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		logger.Get().Error("failed to fetch list",
			zap.String("list_id", listID.Hex()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching list"})
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) HandleUpdateList(c *gin.Context) {
	_, ownerID, ok := sessionUser(c)
	if !ok {
		return
	}

	listID, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stripProtected(fields)
	// Items carry generated ids and defaults the client cannot supply; the
	// embedded collection is only mutable through the item endpoints.
	delete(fields, "items")
	delete(fields, "sharedWith")

	if title, ok := fields["title"]; ok {
		if s, _ := title.(string); s == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing `title`"})
			return
		}
	}

	list, err := h.Lists.UpdateList(c.Request.Context(), listID, ownerID, fields)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		logger.Get().Error("failed to update list",
			zap.String("list_id", listID.Hex()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating list"})
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) HandleDeleteList(c *gin.Context) {
	_, ownerID, ok := sessionUser(c)
	if !ok {
		return
	}

	listID, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	if err := h.Lists.DeleteList(c.Request.Context(), listID, ownerID); err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		logger.Get().Error("failed to delete list",
			zap.String("list_id", listID.Hex()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting list"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
