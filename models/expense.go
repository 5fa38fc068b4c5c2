package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Expense struct {
	ID            bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID        bson.ObjectID  `bson:"user" json:"user"`
	ItemName      string         `bson:"itemName" json:"itemName"`
	Amount        float64        `bson:"amount" json:"amount"`
	Currency      string         `bson:"currency" json:"currency"`
	Date          time.Time      `bson:"date" json:"date"`
	Category      string         `bson:"category" json:"category"`
	ListID        *bson.ObjectID `bson:"list,omitempty" json:"list,omitempty"`
	PaymentMethod string         `bson:"paymentMethod" json:"paymentMethod"`
	Notes         string         `bson:"notes" json:"notes"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updatedAt" json:"updatedAt"`
}
