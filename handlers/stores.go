package handlers

import (
	"context"

	"github.com/Roland735/shopping-organizer/models"
	"github.com/Roland735/shopping-organizer/mongodb"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// UserStore is the account slice of the persistence layer.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	UpdateUser(ctx context.Context, id bson.ObjectID, fields bson.M) error
}

// ListStore owns shopping lists and their embedded items. Every operation is
// scoped by the owner id; a non-owner resolves to mongodb.ErrNotFound.
type ListStore interface {
	CreateList(ctx context.Context, list *models.ShoppingList) error
	ListsByOwner(ctx context.Context, owner bson.ObjectID) ([]models.ShoppingList, error)
	GetList(ctx context.Context, id, owner bson.ObjectID) (*models.ShoppingList, error)
	UpdateList(ctx context.Context, id, owner bson.ObjectID, fields bson.M) (*models.ShoppingList, error)
	DeleteList(ctx context.Context, id, owner bson.ObjectID) error
	AddItem(ctx context.Context, listID, owner bson.ObjectID, item *models.Item) error
	UpdateItem(ctx context.Context, listID, itemID, owner bson.ObjectID, fields bson.M) (*models.Item, error)
	RemoveItem(ctx context.Context, listID, itemID, owner bson.ObjectID) error
	ToggleItemPurchased(ctx context.Context, listID, itemID, owner bson.ObjectID, purchased bool) (*models.Item, error)
}

type ExpenseStore interface {
	CreateExpense(ctx context.Context, expense *models.Expense) error
	ExpensesByOwner(ctx context.Context, owner bson.ObjectID) ([]models.Expense, error)
	UpdateExpense(ctx context.Context, id, owner bson.ObjectID, fields bson.M) (*models.Expense, error)
	DeleteExpense(ctx context.Context, id, owner bson.ObjectID) error
}

type ReminderStore interface {
	CreateReminder(ctx context.Context, reminder *models.Reminder) error
	RemindersByOwner(ctx context.Context, owner bson.ObjectID) ([]models.Reminder, error)
	UpdateReminder(ctx context.Context, id, owner bson.ObjectID, fields bson.M) (*models.Reminder, error)
	DeleteReminder(ctx context.Context, id, owner bson.ObjectID) error
}

// Handler carries the store dependencies for every route.
type Handler struct {
	Users     UserStore
	Lists     ListStore
	Expenses  ExpenseStore
	Reminders ReminderStore
}

func New(store *mongodb.Store) *Handler {
	return &Handler{
		Users:     store,
		Lists:     store,
		Expenses:  store,
		Reminders: store,
	}
}
