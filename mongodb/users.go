package mongodb

import (
	"context"
	"fmt"

	"github.com/Roland735/shopping-organizer/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	collection := s.db.Collection(UserCollection)
	user.ID = bson.NewObjectID()
	_, err := collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("error creating user: %v", err)
	}
	return nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	collection := s.db.Collection(UserCollection)

	var user models.User
	err := collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // no such account, not an error
		}
		return nil, fmt.Errorf("error fetching user: %v", err)
	}
	return &user, nil
}

func (s *Store) UserByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	collection := s.db.Collection(UserCollection)

	var user models.User
	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching user: %v", err)
	}
	return &user, nil
}

func (s *Store) UpdateUser(ctx context.Context, id bson.ObjectID, fields bson.M) error {
	collection := s.db.Collection(UserCollection)

	result, err := collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("error updating user: %v", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
