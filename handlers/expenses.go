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

type CreateExpenseRequest struct {
	ItemName      string     `json:"itemName"`
	Amount        *float64   `json:"amount"`
	Currency      string     `json:"currency"`
	Date          *time.Time `json:"date"`
	Category      string     `json:"category"`
	List          string     `json:"list"`
	PaymentMethod string     `json:"paymentMethod"`
	Notes         string     `json:"notes"`
}

func (h *Handler) HandleGetExpenses(c *gin.Context) {
	_, ownerID, ok := sessionUser(c)
	if !ok {
		return
	}

	if c.Query("user") == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing `user` query parameter"})
		return
	}

	expenses, err := h.Expenses.ExpensesByOwner(c.Request.Context(), ownerID)
	if err != nil {
		logger.Get().Error("failed to fetch expenses",
			zap.String("user_id", ownerID.Hex()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching expenses"})
		return
	}

	c.JSON(http.StatusOK, expenses)
}

func (h *Handler) HandleCreateExpense(c *gin.Context) {
	_, ownerID, ok := sessionUser(c)
	if !ok {
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.ItemName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing `itemName`"})
		return
	}
	if req.Amount == nil || *req.Amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid `amount`"})
		return
	}

	expense := &models.Expense{
		UserID:        ownerID,
		ItemName:      req.ItemName,
		Amount:        *req.Amount,
		Currency:      req.Currency,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
	if expense.Currency == "" {
		expense.Currency = models.DefaultCurrency
	}
	if req.Date != nil {
		expense.Date = *req.Date
	} else {
		expense.Date = time.Now().UTC()
	}
	if req.List != "" {
		listID, err := bson.ObjectIDFromHex(req.List)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid `list`"})
			return
		}
		expense.ListID = &listID
	}

	if err := h.Expenses.CreateExpense(c.Request.Context(), expense); err != nil {
		logger.Get().Error("failed to create expense",
			zap.String("user_id", ownerID.Hex()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating expense"})
		return
	}

	c.JSON(http.StatusCreated, expense)
}

func (h *Handler) HandleUpdateExpense(c *gin.Context) {
	_, ownerID, ok := sessionUser(c)
	if !ok {
		return
	}

	expenseID, err := bson.ObjectIDFromHex(c.Param("id"))
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

	if raw, ok := fields["amount"]; ok {
		amount, isNumber := raw.(float64)
		if !isNumber || amount < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid `amount`"})
			return
		}
	}
	if err := normalizeDateField(fields, "date"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid `date`"})
		return
	}
	if err := normalizeRefField(fields, "list"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid `list`"})
		return
	}

	expense, err := h.Expenses.UpdateExpense(c.Request.Context(), expenseID, ownerID, fields)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found or not authorized"})
			return
		}
		logger.Get().Error("failed to update expense",
			zap.String("expense_id", expenseID.Hex()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating expense"})
		return
	}

	c.JSON(http.StatusOK, expense)
}

func (h *Handler) HandleDeleteExpense(c *gin.Context) {
	_, ownerID, ok := sessionUser(c)
	if !ok {
		return
	}

	expenseID, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found or not authorized"})
		return
	}

	if err := h.Expenses.DeleteExpense(c.Request.Context(), expenseID, ownerID); err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found or not authorized"})
			return
		}
		logger.Get().Error("failed to delete expense",
			zap.String("expense_id", expenseID.Hex()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting expense"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
