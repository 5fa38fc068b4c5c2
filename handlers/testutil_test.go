package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Roland735/shopping-organizer/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ---- store mocks ----

type mockUserStore struct {
	createFn      func(*models.User) error
	byEmailFn     func(string) (*models.User, error)
	byIDFn        func(bson.ObjectID) (*models.User, error)
	updateFn      func(bson.ObjectID, bson.M) error
	updatedFields bson.M
}

func (m *mockUserStore) CreateUser(_ context.Context, user *models.User) error {
	if m.createFn != nil {
		return m.createFn(user)
	}
	return fmt.Errorf("not configured")
}

func (m *mockUserStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	if m.byEmailFn != nil {
		return m.byEmailFn(email)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockUserStore) UserByID(_ context.Context, id bson.ObjectID) (*models.User, error) {
	if m.byIDFn != nil {
		return m.byIDFn(id)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockUserStore) UpdateUser(_ context.Context, id bson.ObjectID, fields bson.M) error {
	m.updatedFields = fields
	if m.updateFn != nil {
		return m.updateFn(id, fields)
	}
	return fmt.Errorf("not configured")
}

type mockListStore struct {
	createFn     func(*models.ShoppingList) error
	byOwnerFn    func(bson.ObjectID) ([]models.ShoppingList, error)
	getFn        func(id, owner bson.ObjectID) (*models.ShoppingList, error)
	updateFn     func(id, owner bson.ObjectID, fields bson.M) (*models.ShoppingList, error)
	deleteFn     func(id, owner bson.ObjectID) error
	addItemFn    func(listID, owner bson.ObjectID, item *models.Item) error
	updateItemFn func(listID, itemID, owner bson.ObjectID, fields bson.M) (*models.Item, error)
	removeItemFn func(listID, itemID, owner bson.ObjectID) error
	toggleFn     func(listID, itemID, owner bson.ObjectID, purchased bool) (*models.Item, error)
}

func (m *mockListStore) CreateList(_ context.Context, list *models.ShoppingList) error {
	if m.createFn != nil {
		return m.createFn(list)
	}
	return fmt.Errorf("not configured")
}

func (m *mockListStore) ListsByOwner(_ context.Context, owner bson.ObjectID) ([]models.ShoppingList, error) {
	if m.byOwnerFn != nil {
		return m.byOwnerFn(owner)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockListStore) GetList(_ context.Context, id, owner bson.ObjectID) (*models.ShoppingList, error) {
	if m.getFn != nil {
		return m.getFn(id, owner)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockListStore) UpdateList(_ context.Context, id, owner bson.ObjectID, fields bson.M) (*models.ShoppingList, error) {
	if m.updateFn != nil {
		return m.updateFn(id, owner, fields)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockListStore) DeleteList(_ context.Context, id, owner bson.ObjectID) error {
	if m.deleteFn != nil {
		return m.deleteFn(id, owner)
	}
	return fmt.Errorf("not configured")
}

func (m *mockListStore) AddItem(_ context.Context, listID, owner bson.ObjectID, item *models.Item) error {
	if m.addItemFn != nil {
		return m.addItemFn(listID, owner, item)
	}
	return fmt.Errorf("not configured")
}

func (m *mockListStore) UpdateItem(_ context.Context, listID, itemID, owner bson.ObjectID, fields bson.M) (*models.Item, error) {
	if m.updateItemFn != nil {
		return m.updateItemFn(listID, itemID, owner, fields)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockListStore) RemoveItem(_ context.Context, listID, itemID, owner bson.ObjectID) error {
	if m.removeItemFn != nil {
		return m.removeItemFn(listID, itemID, owner)
	}
	return fmt.Errorf("not configured")
}

func (m *mockListStore) ToggleItemPurchased(_ context.Context, listID, itemID, owner bson.ObjectID, purchased bool) (*models.Item, error) {
	if m.toggleFn != nil {
		return m.toggleFn(listID, itemID, owner, purchased)
	}
	return nil, fmt.Errorf("not configured")
}

type mockExpenseStore struct {
	createFn  func(*models.Expense) error
	byOwnerFn func(bson.ObjectID) ([]models.Expense, error)
	updateFn  func(id, owner bson.ObjectID, fields bson.M) (*models.Expense, error)
	deleteFn  func(id, owner bson.ObjectID) error
}

func (m *mockExpenseStore) CreateExpense(_ context.Context, expense *models.Expense) error {
	if m.createFn != nil {
		return m.createFn(expense)
	}
	return fmt.Errorf("not configured")
}

func (m *mockExpenseStore) ExpensesByOwner(_ context.Context, owner bson.ObjectID) ([]models.Expense, error) {
	if m.byOwnerFn != nil {
		return m.byOwnerFn(owner)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockExpenseStore) UpdateExpense(_ context.Context, id, owner bson.ObjectID, fields bson.M) (*models.Expense, error) {
	if m.updateFn != nil {
		return m.updateFn(id, owner, fields)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockExpenseStore) DeleteExpense(_ context.Context, id, owner bson.ObjectID) error {
	if m.deleteFn != nil {
		return m.deleteFn(id, owner)
	}
	return fmt.Errorf("not configured")
}

type mockReminderStore struct {
	createFn  func(*models.Reminder) error
	byOwnerFn func(bson.ObjectID) ([]models.Reminder, error)
	updateFn  func(id, owner bson.ObjectID, fields bson.M) (*models.Reminder, error)
	deleteFn  func(id, owner bson.ObjectID) error
}

func (m *mockReminderStore) CreateReminder(_ context.Context, reminder *models.Reminder) error {
	if m.createFn != nil {
		return m.createFn(reminder)
	}
	return fmt.Errorf("not configured")
}

func (m *mockReminderStore) RemindersByOwner(_ context.Context, owner bson.ObjectID) ([]models.Reminder, error) {
	if m.byOwnerFn != nil {
		return m.byOwnerFn(owner)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockReminderStore) UpdateReminder(_ context.Context, id, owner bson.ObjectID, fields bson.M) (*models.Reminder, error) {
	if m.updateFn != nil {
		return m.updateFn(id, owner, fields)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockReminderStore) DeleteReminder(_ context.Context, id, owner bson.ObjectID) error {
	if m.deleteFn != nil {
		return m.deleteFn(id, owner)
	}
	return fmt.Errorf("not configured")
}

// ---- helpers ----

func fakeSession(userID bson.ObjectID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", &models.SessionClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: userID.Hex()},
		})
		c.Next()
	}
}

func newTestRouter(h *Handler, authUserID bson.ObjectID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.POST("/auth/signup", h.HandleSignup)
	r.POST("/auth/login", h.HandleLogin)

	api := r.Group("")
	api.Use(fakeSession(authUserID))
	{
		api.GET("/user", h.HandleGetProfile)
		api.PATCH("/user", h.HandleUpdateProfile)
		api.GET("/lists", h.HandleGetLists)
		api.POST("/lists", h.HandleCreateList)
		api.GET("/lists/:id", h.HandleGetList)
		api.PATCH("/lists/:id", h.HandleUpdateList)
		api.DELETE("/lists/:id", h.HandleDeleteList)
		api.POST("/lists/:id/items/:ownerUserId", h.HandleAddItem)
		api.PATCH("/lists/:id/items/:itemId/:ownerUserId", h.HandleUpdateItem)
		api.DELETE("/lists/:id/items/:itemId/:ownerUserId", h.HandleRemoveItem)
		api.GET("/expenses", h.HandleGetExpenses)
		api.POST("/expenses", h.HandleCreateExpense)
		api.PUT("/expenses/:id", h.HandleUpdateExpense)
		api.DELETE("/expenses/:id", h.HandleDeleteExpense)
		api.GET("/reminders", h.HandleGetReminders)
		api.POST("/reminders", h.HandleCreateReminder)
		api.PUT("/reminders/:id", h.HandleUpdateReminder)
		api.DELETE("/reminders/:id", h.HandleDeleteReminder)
		api.GET("/dashboard", h.HandleGetDashboard)
	}
	return r
}

func doRequest(t *testing.T, router *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doRawRequest(t *testing.T, router *gin.Engine, method, url, body string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, url, bytes.NewReader([]byte(body)))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// reqBody is shorthand for JSON request bodies in tests.
type reqBody = map[string]interface{}
