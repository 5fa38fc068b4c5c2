package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Roland735/shopping-organizer/models"
	"github.com/Roland735/shopping-organizer/mongodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestCreateList(t *testing.T) {
	owner := bson.NewObjectID()

	var created *models.ShoppingList
	lists := &mockListStore{
		createFn: func(list *models.ShoppingList) error {
			list.ID = bson.NewObjectID()
			created = list
			return nil
		},
	}
	router := newTestRouter(&Handler{Lists: lists}, owner)

	w := doRequest(t, router, http.MethodPost, "/lists", reqBody{"title": "Groceries", "description": "weekly run"})
	require.Equal(t, http.StatusCreated, w.Code)

	require.NotNil(t, created)
	assert.Equal(t, "Groceries", created.Title)
	assert.Equal(t, owner, created.UserID)
	assert.NotNil(t, created.Items)
	assert.Empty(t, created.Items)
}

func TestCreateListEmptyTitle(t *testing.T) {
	owner := bson.NewObjectID()
	router := newTestRouter(&Handler{Lists: &mockListStore{}}, owner)

	w := doRequest(t, router, http.MethodPost, "/lists", reqBody{"description": "no title"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title")
}

func TestGetListOwnershipIndistinguishable(t *testing.T) {
	owner := bson.NewObjectID()
	existing := bson.NewObjectID()

	// The store resolves (id, owner) pairs; the caller owns nothing here, so
	// a real list id and a random one must produce identical responses.
	lists := &mockListStore{
		getFn: func(id, o bson.ObjectID) (*models.ShoppingList, error) {
			return nil, mongodb.ErrNotFound
		},
	}
	router := newTestRouter(&Handler{Lists: lists}, owner)

	wExisting := doRequest(t, router, http.MethodGet, "/lists/"+existing.Hex(), nil)
	wMissing := doRequest(t, router, http.MethodGet, "/lists/"+bson.NewObjectID().Hex(), nil)

	assert.Equal(t, http.StatusNotFound, wExisting.Code)
	assert.Equal(t, http.StatusNotFound, wMissing.Code)
	assert.JSONEq(t, wExisting.Body.String(), wMissing.Body.String())
}

func TestGetList(t *testing.T) {
	owner := bson.NewObjectID()
	listID := bson.NewObjectID()

	lists := &mockListStore{
		getFn: func(id, o bson.ObjectID) (*models.ShoppingList, error) {
			require.Equal(t, listID, id)
			require.Equal(t, owner, o)
			return &models.ShoppingList{ID: listID, Title: "Groceries", UserID: owner}, nil
		},
	}
	router := newTestRouter(&Handler{Lists: lists}, owner)

	w := doRequest(t, router, http.MethodGet, "/lists/"+listID.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.ShoppingList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Groceries", got.Title)
}

func TestUpdateListStripsProtectedFields(t *testing.T) {
	owner := bson.NewObjectID()
	listID := bson.NewObjectID()

	var gotFields bson.M
	lists := &mockListStore{
		updateFn: func(id, o bson.ObjectID, fields bson.M) (*models.ShoppingList, error) {
			gotFields = fields
			return &models.ShoppingList{ID: listID, Title: "Renamed"}, nil
		},
	}
	router := newTestRouter(&Handler{Lists: lists}, owner)

	w := doRequest(t, router, http.MethodPatch, "/lists/"+listID.Hex(), reqBody{
		"title": "Renamed",
		"user":  bson.NewObjectID().Hex(),
		"_id":   bson.NewObjectID().Hex(),
	})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "Renamed", gotFields["title"])
	assert.NotContains(t, gotFields, "user")
	assert.NotContains(t, gotFields, "_id")
}

func TestUpdateListCannotReplaceItems(t *testing.T) {
	owner := bson.NewObjectID()
	listID := bson.NewObjectID()

	var gotFields bson.M
	lists := &mockListStore{
		updateFn: func(id, o bson.ObjectID, fields bson.M) (*models.ShoppingList, error) {
			gotFields = fields
			return &models.ShoppingList{ID: listID, Title: "Groceries"}, nil
		},
	}
	router := newTestRouter(&Handler{Lists: lists}, owner)

	// raw item maps would have no generated _id and would be unaddressable
	// by the item endpoints afterwards
	w := doRequest(t, router, http.MethodPatch, "/lists/"+listID.Hex(), reqBody{
		"description": "updated",
		"items":       []reqBody{{"name": "Milk", "purchased": true}},
		"sharedWith":  []string{bson.NewObjectID().Hex()},
	})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "updated", gotFields["description"])
	assert.NotContains(t, gotFields, "items")
	assert.NotContains(t, gotFields, "sharedWith")
}

func TestDeleteList(t *testing.T) {
	owner := bson.NewObjectID()
	listID := bson.NewObjectID()

	lists := &mockListStore{
		deleteFn: func(id, o bson.ObjectID) error {
			require.Equal(t, owner, o)
			return nil
		},
	}
	router := newTestRouter(&Handler{Lists: lists}, owner)

	w := doRequest(t, router, http.MethodDelete, "/lists/"+listID.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "success")
}

func TestDeleteListNotFound(t *testing.T) {
	owner := bson.NewObjectID()

	lists := &mockListStore{
		deleteFn: func(id, o bson.ObjectID) error {
			return mongodb.ErrNotFound
		},
	}
	router := newTestRouter(&Handler{Lists: lists}, owner)

	w := doRequest(t, router, http.MethodDelete, "/lists/"+bson.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetLists(t *testing.T) {
	owner := bson.NewObjectID()

	lists := &mockListStore{
		byOwnerFn: func(o bson.ObjectID) ([]models.ShoppingList, error) {
			require.Equal(t, owner, o)
			return []models.ShoppingList{{Title: "Groceries"}, {Title: "Hardware"}}, nil
		},
	}
	router := newTestRouter(&Handler{Lists: lists}, owner)

	w := doRequest(t, router, http.MethodGet, "/lists", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.ShoppingList
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Groceries", got[0].Title)
}
