package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ItemPriority string

const (
	PriorityLow    ItemPriority = "low"
	PriorityMedium ItemPriority = "medium"
	PriorityHigh   ItemPriority = "high"
)

// ValidPriority reports whether p is one of the accepted priority values.
func ValidPriority(p ItemPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Item is a subdocument of ShoppingList. Its id is unique within the parent
// list only; items never exist outside a list.
type Item struct {
	ID        bson.ObjectID `bson:"_id" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Quantity  int           `bson:"quantity" json:"quantity"`
	Unit      string        `bson:"unit" json:"unit"`
	Category  string        `bson:"category" json:"category"`
	Priority  ItemPriority  `bson:"priority" json:"priority"`
	Purchased bool          `bson:"purchased" json:"purchased"`
	Notes     string        `bson:"notes" json:"notes"`
}

// NormalizeNew prepares a client-supplied item for insertion: quantity
// defaults to 1, priority to medium, and purchased is always reset to false
// no matter what the client sent.
func (i *Item) NormalizeNew() {
	if i.Quantity < 1 {
		i.Quantity = 1
	}
	if i.Priority == "" {
		i.Priority = PriorityMedium
	}
	i.Purchased = false
}

type ShoppingList struct {
	ID          bson.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string          `bson:"title" json:"title"`
	Description string          `bson:"description" json:"description"`
	UserID      bson.ObjectID   `bson:"user" json:"user"`
	Items       []Item          `bson:"items" json:"items"`
	IsShared    bool            `bson:"isShared" json:"isShared"`
	SharedWith  []bson.ObjectID `bson:"sharedWith" json:"sharedWith"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updatedAt" json:"updatedAt"`
}
