package db

import (
	"context"
	"errors"
	"time"

	"github.com/AKACHI-4/WeTube/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func (m *MongoDB) ToggleLike(ctx context.Context, kind models.LikeKind, target, likedBy bson.ObjectID) (bool, error) {
	filter := bson.D{
		{Key: "kind", Value: kind},
		{Key: "target", Value: target},
		{Key: "liked_by", Value: likedBy},
	}

	err := m.coll(LIKE_COLL).FindOneAndDelete(ctx, filter).Err()
	if err == nil {
		// existing like removed
		return false, nil
	}
	if !errors.Is(mapErr(err), ErrNotFound) {
		return false, err
	}

	_, err = m.coll(LIKE_COLL).InsertOne(ctx, models.Like{
		CreatedAt: time.Now().Unix(),
		Kind:      kind,
		Target:    target,
		LikedBy:   likedBy,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (m *MongoDB) LikedVideos(ctx context.Context, userID bson.ObjectID) ([]models.Video, error) {
	pipeline := bson.A{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "kind", Value: models.LikeVideo},
			{Key: "liked_by", Value: userID},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: VIDEO_COLL},
			{Key: "localField", Value: "target"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "video"},
		}}},
		bson.D{{Key: "$unwind", Value: "$video"}},
		bson.D{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$video"}}}},
	}

	cur, err := m.coll(LIKE_COLL).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Video](ctx, cur)
}

func (m *MongoDB) ToggleSubscription(ctx context.Context, channel, subscriber bson.ObjectID) (bool, error) {
	filter := bson.D{
		{Key: "channel", Value: channel},
		{Key: "subscriber", Value: subscriber},
	}

	err := m.coll(SUBSCRIPTION_COLL).FindOneAndDelete(ctx, filter).Err()
	if err == nil {
		return false, nil
	}
	if !errors.Is(mapErr(err), ErrNotFound) {
		return false, err
	}

	_, err = m.coll(SUBSCRIPTION_COLL).InsertOne(ctx, models.Subscription{
		CreatedAt:  time.Now().Unix(),
		Channel:    channel,
		Subscriber: subscriber,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (m *MongoDB) ChannelSubscribers(ctx context.Context, channel bson.ObjectID) ([]models.User, error) {
	return m.subscriptionUsers(ctx,
		bson.D{{Key: "channel", Value: channel}}, "subscriber")
}

func (m *MongoDB) SubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]models.User, error) {
	return m.subscriptionUsers(ctx,
		bson.D{{Key: "subscriber", Value: subscriber}}, "channel")
}

// subscriptionUsers resolves one side of the subscriptions relation
// into public user documents.
func (m *MongoDB) subscriptionUsers(ctx context.Context, match bson.D, side string) ([]models.User, error) {
	pipeline := bson.A{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: USER_COLL},
			{Key: "localField", Value: side},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "user"},
		}}},
		bson.D{{Key: "$unwind", Value: "$user"}},
		bson.D{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$user"}}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "password", Value: 0},
			{Key: "refresh_token", Value: 0},
			{Key: "watch_history", Value: 0},
		}}},
	}

	cur, err := m.coll(SUBSCRIPTION_COLL).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.User](ctx, cur)
}

func (m *MongoDB) ChannelStats(ctx context.Context, owner bson.ObjectID) (models.ChannelStats, error) {
	cur, err := m.coll(VIDEO_COLL).Aggregate(ctx, channelStatsPipeline(owner))
	if err != nil {
		return models.ChannelStats{}, err
	}

	stats, err := decodeAll[models.ChannelStats](ctx, cur)
	if err != nil {
		return models.ChannelStats{}, err
	}

	var result models.ChannelStats
	if len(stats) > 0 {
		result = stats[0]
	}

	result.TotalSubscribers, err = m.coll(SUBSCRIPTION_COLL).CountDocuments(ctx,
		bson.D{{Key: "channel", Value: owner}})
	return result, err
}

func (m *MongoDB) ChannelVideos(ctx context.Context, owner bson.ObjectID) ([]models.Video, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := m.coll(VIDEO_COLL).Find(ctx, bson.D{{Key: "owner", Value: owner}}, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Video](ctx, cur)
}
