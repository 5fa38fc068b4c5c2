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

// HandleAddItem appends a new item to the caller's list. The route keeps the
// historical owner path segment, but scoping always uses the session id.
func (h *Handler) HandleAddItem(c *gin.Context) {
	_, ownerID, ok := sessionUser(c)
	if !ok {
		return
	}

	listID, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	var item models.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if item.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing `name`"})
		return
	}
	if item.Priority != "" && !models.ValidPriority(item.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid `priority`"})
		return
	}

	item.ID = bson.NewObjectID()
	item.NormalizeNew()

	if err := h.Lists.AddItem(c.Request.Context(), listID, ownerID, &item); err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		logger.Get().Error("failed to add item",
			zap.String("list_id", listID.Hex()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// HandleUpdateItem merges the supplied fields into one embedded item. A body
// of exactly {"purchased": bool} takes the toggle path.
func (h *Handler) HandleUpdateItem(c *gin.Context) {
	_, ownerID, ok := sessionUser(c)
	if !ok {
		return
	}

	listID, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	itemID, err := bson.ObjectIDFromHex(c.Param("itemId"))
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

	if raw, ok := fields["priority"]; ok {
		s, _ := raw.(string)
		if !models.ValidPriority(models.ItemPriority(s)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid `priority`"})
			return
		}
	}
	if raw, ok := fields["purchased"]; ok {
		if _, isBool := raw.(bool); !isBool {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid `purchased`"})
			return
		}
	}

	var item *models.Item
	if purchased, only := purchasedOnly(fields); only {
		item, err = h.Lists.ToggleItemPurchased(c.Request.Context(), listID, itemID, ownerID, purchased)
	} else {
		item, err = h.Lists.UpdateItem(c.Request.Context(), listID, itemID, ownerID, fields)
	}
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		logger.Get().Error("failed to update item",
			zap.String("list_id", listID.Hex()),
			zap.String("item_id", itemID.Hex()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

func purchasedOnly(fields map[string]interface{}) (bool, bool) {
	if len(fields) != 1 {
		return false, false
	}
	purchased, ok := fields["purchased"].(bool)
	return purchased, ok
}

func (h *Handler) HandleRemoveItem(c *gin.Context) {
	_, ownerID, ok := sessionUser(c)
	if !ok {
		return
	}

	listID, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	itemID, err := bson.ObjectIDFromHex(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	if err := h.Lists.RemoveItem(c.Request.Context(), listID, itemID, ownerID); err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		logger.Get().Error("failed to remove item",
			zap.String("list_id", listID.Hex()),
			zap.String("item_id", itemID.Hex()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
