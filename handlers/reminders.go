package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Roland735/shopping-organizer/logger"
	"github.com/Roland735/shopping-organizer/models"
	"github.com/Roland735/shopping-organizer/mongodb"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
)

type CreateReminderRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Date        *time.Time         `json:"date"`
	Recurring   *models.Recurrence `json:"recurring"`
	Location    *models.GeoPoint   `json:"location"`
	List        string             `json:"list"`
	ItemName    string             `json:"itemName"`
	IsCompleted bool               `json:"isCompleted"`
}

func (h *Handler) HandleGetReminders(c *gin.Context) {
	_, ownerID, ok := sessionUser(c)
	if !ok {
		return
	}

	if c.Query("user") == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing `user` query parameter"})
		return
	}

	reminders, err := h.Reminders.RemindersByOwner(c.Request.Context(), ownerID)
	if err != nil {
		logger.Get().Error("failed to fetch reminders",
			zap.String("user_id", ownerID.Hex()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching reminders"})
		return
	}

	c.JSON(http.StatusOK, reminders)
}

func (h *Handler) HandleCreateReminder(c *gin.Context) {
	_, ownerID, ok := sessionUser(c)
	if !ok {
		return
	}

	var req CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing `title`"})
		return
	}
	if req.Date == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing `date`"})
		return
	}

	reminder := &models.Reminder{
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
		Date:        *req.Date,
		Location:    req.Location,
		ItemName:    req.ItemName,
		IsCompleted: req.IsCompleted,
	}
	if req.Recurring != nil {
		reminder.Recurring = *req.Recurring
	}
	reminder.Recurring.Normalize()
	reminder.SanitizeLocation()
	if req.List != "" {
		listID, err := bson.ObjectIDFromHex(req.List)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid `list`"})
			return
		}
		reminder.ListID = &listID
	}

	if err := h.Reminders.CreateReminder(c.Request.Context(), reminder); err != nil {
		logger.Get().Error("failed to create reminder",
			zap.String("user_id", ownerID.Hex()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating reminder"})
		return
	}

	c.JSON(http.StatusCreated, reminder)
}

func (h *Handler) HandleUpdateReminder(c *gin.Context) {
	_, ownerID, ok := sessionUser(c)
	if !ok {
		return
	}

	reminderID, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found or not authorized"})
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stripProtected(fields)
	normalizeLocationField(fields)

	if err := normalizeDateField(fields, "date"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid `date`"})
		return
	}
	if err := normalizeRefField(fields, "list"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid `list`"})
		return
	}

	reminder, err := h.Reminders.UpdateReminder(c.Request.Context(), reminderID, ownerID, fields)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found or not authorized"})
			return
		}
		logger.Get().Error("failed to update reminder",
			zap.String("reminder_id", reminderID.Hex()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating reminder"})
		return
	}

	c.JSON(http.StatusOK, reminder)
}

// normalizeLocationField rewrites a partial-update location into a typed geo
// point, or drops it entirely when it does not carry a two-number coordinate
// pair. A malformed location never fails the request.
func normalizeLocationField(fields map[string]interface{}) {
	raw, ok := fields["location"]
	if !ok {
		return
	}

	loc, ok := raw.(map[string]interface{})
	if !ok {
		delete(fields, "location")
		return
	}
	coords, ok := loc["coordinates"].([]interface{})
	if !ok || len(coords) != 2 {
		delete(fields, "location")
		return
	}

	// The geometry type is forced to Point; anything else would be rejected
	// by the 2dsphere index at write time.
	point := models.GeoPoint{Type: models.GeoPointType, Coordinates: make([]float64, 0, 2)}
	for _, c := range coords {
		n, ok := c.(float64)
		if !ok {
			delete(fields, "location")
			return
		}
		point.Coordinates = append(point.Coordinates, n)
	}
	fields["location"] = point
}

func (h *Handler) HandleDeleteReminder(c *gin.Context) {
	_, ownerID, ok := sessionUser(c)
	if !ok {
		return
	}

	reminderID, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found or not authorized"})
		return
	}

	if err := h.Reminders.DeleteReminder(c.Request.Context(), reminderID, ownerID); err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found or not authorized"})
			return
		}
		logger.Get().Error("failed to delete reminder",
			zap.String("reminder_id", reminderID.Hex()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting reminder"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
