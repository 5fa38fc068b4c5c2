package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/Roland735/shopping-organizer/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func (s *Store) CreateExpense(ctx context.Context, expense *models.Expense) error {
	collection := s.db.Collection(ExpenseCollection)

	now := time.Now().UTC()
	expense.ID = bson.NewObjectID()
	expense.CreatedAt = now
	expense.UpdatedAt = now

	_, err := collection.InsertOne(ctx, expense)
	if err != nil {
		return fmt.Errorf("error creating expense: %v", err)
	}
	return nil
}

func (s *Store) ExpensesByOwner(ctx context.Context, owner bson.ObjectID) ([]models.Expense, error) {
	collection := s.db.Collection(ExpenseCollection)
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := collection.Find(ctx, bson.M{"user": owner}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching expenses: %v", err)
	}
	defer cursor.Close(ctx)

	expenses := []models.Expense{}
	for cursor.Next(ctx) {
		var expense models.Expense
		if err := cursor.Decode(&expense); err != nil {
			return nil, fmt.Errorf("error decoding expense: %v", err)
		}
		expenses = append(expenses, expense)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return expenses, nil
}

func (s *Store) UpdateExpense(ctx context.Context, id, owner bson.ObjectID, fields bson.M) (*models.Expense, error) {
	collection := s.db.Collection(ExpenseCollection)

	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var expense models.Expense
	err := collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "user": owner},
		bson.M{"$set": set},
		opts,
	).Decode(&expense)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating expense: %v", err)
	}
	return &expense, nil
}

func (s *Store) DeleteExpense(ctx context.Context, id, owner bson.ObjectID) error {
	collection := s.db.Collection(ExpenseCollection)

	result, err := collection.DeleteOne(ctx, bson.M{"_id": id, "user": owner})
	if err != nil {
		return fmt.Errorf("error deleting expense: %v", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
