package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Roland735/shopping-organizer/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// sessionUser extracts the authenticated session claims and the owner id they
// carry. It writes the 401 response itself when the session is missing.
func sessionUser(c *gin.Context) (*models.SessionClaims, bson.ObjectID, bool) {
	user, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, bson.ObjectID{}, false
	}

	claims, ok := user.(*models.SessionClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user claims"})
		return nil, bson.ObjectID{}, false
	}

	ownerID, err := bson.ObjectIDFromHex(claims.Subject)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user claims"})
		return nil, bson.ObjectID{}, false
	}

	return claims, ownerID, true
}

// stripProtected removes identity and bookkeeping fields from a client
// supplied partial update so they can never be overwritten.
func stripProtected(fields map[string]interface{}) {
	for _, k := range []string{"id", "_id", "user", "createdAt", "updatedAt"} {
		delete(fields, k)
	}
}

// normalizeDateField parses a JSON date string in a partial update into a
// time.Time so it is stored as a proper BSON date.
func normalizeDateField(fields map[string]interface{}, key string) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	s, ok := raw.(string)
	if !ok {
		return fmt.Errorf("invalid `%s`", key)
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid `%s`", key)
	}
	fields[key] = t
	return nil
}

// normalizeRefField converts a hex object id string in a partial update into
// a bson.ObjectID.
func normalizeRefField(fields map[string]interface{}, key string) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	s, ok := raw.(string)
	if !ok {
		return fmt.Errorf("invalid `%s`", key)
	}
	oid, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return fmt.Errorf("invalid `%s`", key)
	}
	fields[key] = oid
	return nil
}
