package db

import (
	"context"
	"time"

	"github.com/AKACHI-4/WeTube/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func (m *MongoDB) CreateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error) {
	now := time.Now().Unix()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now

	result, err := m.coll(TWEET_COLL).InsertOne(ctx, tweet)
	if err != nil {
		return models.Tweet{}, err
	}

	if id, ok := insertedID(result); ok {
		tweet.ID = id
	}
	return tweet, nil
}

func (m *MongoDB) GetTweet(ctx context.Context, id bson.ObjectID) (tweet models.Tweet, err error) {
	err = m.coll(TWEET_COLL).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&tweet)
	return tweet, mapErr(err)
}

func (m *MongoDB) UserTweets(ctx context.Context, owner bson.ObjectID) ([]models.Tweet, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := m.coll(TWEET_COLL).Find(ctx, bson.D{{Key: "owner", Value: owner}}, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Tweet](ctx, cur)
}

func (m *MongoDB) UpdateTweet(ctx context.Context, id bson.ObjectID, content string) (tweet models.Tweet, err error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: content},
		{Key: "updated_at", Value: time.Now().Unix()},
	}}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = m.coll(TWEET_COLL).FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&tweet)
	return tweet, mapErr(err)
}

func (m *MongoDB) DeleteTweet(ctx context.Context, id bson.ObjectID) error {
	result, err := m.coll(TWEET_COLL).DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	_, err = m.coll(LIKE_COLL).DeleteMany(ctx, bson.D{
		{Key: "kind", Value: models.LikeTweet},
		{Key: "target", Value: id},
	})
	return err
}
