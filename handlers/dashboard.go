package handlers

import (
	"net/http"

	"github.com/Roland735/shopping-organizer/logger"
	"github.com/Roland735/shopping-organizer/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// HandleGetDashboard fans out to the three collections concurrently and joins
// the results into one composite response. Nothing is cached; each request
// reads fresh.
func (h *Handler) HandleGetDashboard(c *gin.Context) {
	_, ownerID, ok := sessionUser(c)
	if !ok {
		return
	}

	if c.Query("user") == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing `user` query parameter"})
		return
	}

	var (
		lists     []models.ShoppingList
		expenses  []models.Expense
		reminders []models.Reminder
	)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		lists, err = h.Lists.ListsByOwner(ctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = h.Expenses.ExpensesByOwner(ctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		reminders, err = h.Reminders.RemindersByOwner(ctx, ownerID)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Get().Error("failed to assemble dashboard",
			zap.String("user_id", ownerID.Hex()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lists":     lists,
		"expenses":  expenses,
		"reminders": reminders,
	})
}
