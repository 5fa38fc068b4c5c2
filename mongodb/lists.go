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

func (s *Store) CreateList(ctx context.Context, list *models.ShoppingList) error {
	collection := s.db.Collection(ListCollection)

	now := time.Now().UTC()
	list.ID = bson.NewObjectID()
	list.CreatedAt = now
	list.UpdatedAt = now
	if list.Items == nil {
		list.Items = []models.Item{}
	}
	if list.SharedWith == nil {
		list.SharedWith = []bson.ObjectID{}
	}

	_, err := collection.InsertOne(ctx, list)
	if err != nil {
		return fmt.Errorf("error creating list: %v", err)
	}
	return nil
}

func (s *Store) ListsByOwner(ctx context.Context, owner bson.ObjectID) ([]models.ShoppingList, error) {
	collection := s.db.Collection(ListCollection)
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	cursor, err := collection.Find(ctx, bson.M{"user": owner}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching lists: %v", err)
	}
	defer cursor.Close(ctx)

	lists := []models.ShoppingList{}
	for cursor.Next(ctx) {
		var list models.ShoppingList
		if err := cursor.Decode(&list); err != nil {
			return nil, fmt.Errorf("error decoding list: %v", err)
		}
		lists = append(lists, list)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return lists, nil
}

func (s *Store) GetList(ctx context.Context, id, owner bson.ObjectID) (*models.ShoppingList, error) {
	collection := s.db.Collection(ListCollection)

	var list models.ShoppingList
	err := collection.FindOne(ctx, bson.M{"_id": id, "user": owner}).Decode(&list)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching list: %v", err)
	}
	return &list, nil
}

func (s *Store) UpdateList(ctx context.Context, id, owner bson.ObjectID, fields bson.M) (*models.ShoppingList, error) {
	collection := s.db.Collection(ListCollection)

	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var list models.ShoppingList
	err := collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "user": owner},
		bson.M{"$set": set},
		opts,
	).Decode(&list)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating list: %v", err)
	}
	return &list, nil
}

func (s *Store) DeleteList(ctx context.Context, id, owner bson.ObjectID) error {
	collection := s.db.Collection(ListCollection)

	result, err := collection.DeleteOne(ctx, bson.M{"_id": id, "user": owner})
	if err != nil {
		return fmt.Errorf("error deleting list: %v", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddItem appends the item to the owner's list in a single conditional
// update; the owner filter doubles as the authorization check.
func (s *Store) AddItem(ctx context.Context, listID, owner bson.ObjectID, item *models.Item) error {
	collection := s.db.Collection(ListCollection)

	result, err := collection.UpdateOne(ctx,
		bson.M{"_id": listID, "user": owner},
		bson.M{
			"$push": bson.M{"items": item},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	if err != nil {
		return fmt.Errorf("error adding item: %v", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateItem sets only the supplied fields on the embedded item matched by
// id, using the positional operator so sibling items are untouched.
func (s *Store) UpdateItem(ctx context.Context, listID, itemID, owner bson.ObjectID, fields bson.M) (*models.Item, error) {
	collection := s.db.Collection(ListCollection)

	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set["items.$."+k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var list models.ShoppingList
	err := collection.FindOneAndUpdate(ctx,
		bson.M{"_id": listID, "user": owner, "items._id": itemID},
		bson.M{"$set": set},
		opts,
	).Decode(&list)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating item: %v", err)
	}

	for i := range list.Items {
		if list.Items[i].ID == itemID {
			return &list.Items[i], nil
		}
	}
	// Matched the filter but the item is gone from the returned document;
	// treat as a lost race with a concurrent removal.
	return nil, ErrNotFound
}

// RemoveItem pulls the item out of the owner's list. Removing an id that is
// already absent is not an error as long as the (list, owner) pair resolves.
func (s *Store) RemoveItem(ctx context.Context, listID, itemID, owner bson.ObjectID) error {
	collection := s.db.Collection(ListCollection)

	result, err := collection.UpdateOne(ctx,
		bson.M{"_id": listID, "user": owner},
		bson.M{
			"$pull": bson.M{"items": bson.M{"_id": itemID}},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	if err != nil {
		return fmt.Errorf("error removing item: %v", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleItemPurchased flips the purchased flag on one item; a thin wrapper
// over UpdateItem.
func (s *Store) ToggleItemPurchased(ctx context.Context, listID, itemID, owner bson.ObjectID, purchased bool) (*models.Item, error) {
	return s.UpdateItem(ctx, listID, itemID, owner, bson.M{"purchased": purchased})
}
