package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// verify MongoDB implements database interface in compile time
var _ Database = (*MongoDB)(nil)

const (
	USER_COLL         = "users"
	VIDEO_COLL        = "videos"
	COMMENT_COLL      = "comments"
	LIKE_COLL         = "likes"
	SUBSCRIPTION_COLL = "subscriptions"
	PLAYLIST_COLL     = "playlists"
	TWEET_COLL        = "tweets"
)

type MongoDB struct {
	client *mongo.Client
	db     string
}

func NewMongoDB(ctx context.Context, conn string, db string) (*MongoDB, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(conn))
	if err != nil {
		return nil, err
	}

	m := &MongoDB{client: client, db: db}
	if err := m.Ping(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *MongoDB) coll(name string) *mongo.Collection {
	return m.client.Database(m.db).Collection(name)
}

// mapErr translates driver errors into package errors.
func mapErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func decodeAll[T any](ctx context.Context, cur *mongo.Cursor) ([]T, error) {
	defer cur.Close(ctx)

	items := []T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func insertedID(result *mongo.InsertOneResult) (bson.ObjectID, bool) {
	id, ok := result.InsertedID.(bson.ObjectID)
	return id, ok
}
