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

func (s *Store) CreateReminder(ctx context.Context, reminder *models.Reminder) error {
	collection := s.db.Collection(ReminderCollection)

	now := time.Now().UTC()
	reminder.ID = bson.NewObjectID()
	reminder.CreatedAt = now
	reminder.UpdatedAt = now

	_, err := collection.InsertOne(ctx, reminder)
	if err != nil {
		return fmt.Errorf("error creating reminder: %v", err)
	}
	return nil
}

// RemindersByOwner returns the owner's reminders soonest first.
func (s *Store) RemindersByOwner(ctx context.Context, owner bson.ObjectID) ([]models.Reminder, error) {
	collection := s.db.Collection(ReminderCollection)
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := collection.Find(ctx, bson.M{"user": owner}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching reminders: %v", err)
	}
	defer cursor.Close(ctx)

	reminders := []models.Reminder{}
	for cursor.Next(ctx) {
		var reminder models.Reminder
		if err := cursor.Decode(&reminder); err != nil {
			return nil, fmt.Errorf("error decoding reminder: %v", err)
		}
		reminders = append(reminders, reminder)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return reminders, nil
}

func (s *Store) UpdateReminder(ctx context.Context, id, owner bson.ObjectID, fields bson.M) (*models.Reminder, error) {
	collection := s.db.Collection(ReminderCollection)

	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var reminder models.Reminder
	err := collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "user": owner},
		bson.M{"$set": set},
		opts,
	).Decode(&reminder)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating reminder: %v", err)
	}
	return &reminder, nil
}

func (s *Store) DeleteReminder(ctx context.Context, id, owner bson.ObjectID) error {
	collection := s.db.Collection(ReminderCollection)

	result, err := collection.DeleteOne(ctx, bson.M{"_id": id, "user": owner})
	if err != nil {
		return fmt.Errorf("error deleting reminder: %v", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
