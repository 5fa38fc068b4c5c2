package mongodb

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/Roland735/shopping-organizer/logger"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

var (
	UserCollection     string = "users"
	ListCollection     string = "shopping_lists"
	ExpenseCollection  string = "expenses"
	ReminderCollection string = "reminders"
	MongoDatabase      string = "shopping_organizer"
	MongoClient        *mongo.Client

	initOnce sync.Once
)

// ErrNotFound is returned when a record is absent or owned by a different
// user. The two cases are indistinguishable on purpose: every lookup filter
// includes the owner id, so a mismatch simply matches nothing.
var ErrNotFound = errors.New("not found")

// ErrEmailTaken is returned when a signup races the unique email index.
var ErrEmailTaken = errors.New("email already registered")

// Init connects to MongoDB and creates the collection indexes. The handle is
// process-global; calling Init again after a successful connect is a no-op.
func Init() error {
	var err error
	initOnce.Do(func() {
		err = connect()
	})
	return err
}

func connect() error {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		return fmt.Errorf("MONGO_URI environment variable not set")
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(mongoURI).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(opts)
	if err != nil {
		logger.Get().Error("failed to connect to MongoDB",
			zap.Error(err))
		return fmt.Errorf("error connecting to MongoDB: %v", err)
	}

	MongoClient = client

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := ensureIndexes(ctx); err != nil {
		logger.Get().Error("failed to create indexes",
			zap.Error(err))
		return fmt.Errorf("error creating indexes: %v", err)
	}

	logger.Get().Info("successfully connected to MongoDB")
	return nil
}

func ensureIndexes(ctx context.Context) error {
	db := MongoClient.Database(MongoDatabase)

	_, err := db.Collection(UserCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	// Geospatial index for location reminders. Store-only: nothing queries it
	// yet, but the collection is shaped for proximity lookups.
	_, err = db.Collection(ReminderCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "location", Value: "2dsphere"}},
	})
	return err
}

// Close disconnects the shared client.
func Close() {
	if MongoClient != nil {
		if err := MongoClient.Disconnect(context.TODO()); err != nil {
			logger.Get().Error("failed to disconnect from MongoDB",
				zap.Error(err))
			return
		}
		logger.Get().Info("successfully disconnected from MongoDB")
	}
}

// Store exposes the collection operations over the shared client. Handlers
// consume it through small per-collection interfaces.
type Store struct {
	db *mongo.Database
}

func NewStore() *Store {
	return &Store{db: MongoClient.Database(MongoDatabase)}
}
