package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/AKACHI-4/WeTube/db"
	"github.com/AKACHI-4/WeTube/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type SubscriptionService struct {
	db db.Database
}

func NewSubscriptionService(database db.Database) *SubscriptionService {
	return &SubscriptionService{db: database}
}

// Toggle subscribes or unsubscribes a user from a channel and reports
// the resulting state.
func (s SubscriptionService) Toggle(ctx context.Context, channel, subscriber bson.ObjectID) (bool, error) {
	if channel == subscriber {
		return false, models.ErrBadRequest("cannot subscribe to your own channel")
	}

	if _, err := s.db.GetUserPublic(ctx, channel); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return false, models.ErrNotFound("channel does not exist")
		}
		slog.Error("failed to load channel", "error", err, "channel_id", channel.Hex())
		return false, models.ErrInternal("something went wrong, please try again later")
	}

	subscribed, err := s.db.ToggleSubscription(ctx, channel, subscriber)
	if err != nil {
		slog.Error("failed to toggle subscription", "error", err, "channel_id", channel.Hex(), "subscriber_id", subscriber.Hex())
		return false, models.ErrInternal("something went wrong, please try again later")
	}
	return subscribed, nil
}

func (s SubscriptionService) Subscribers(ctx context.Context, channel bson.ObjectID) ([]models.User, error) {
	users, err := s.db.ChannelSubscribers(ctx, channel)
	if err != nil {
		slog.Error("failed to list subscribers", "error", err, "channel_id", channel.Hex())
		return nil, models.ErrInternal("something went wrong, please try again later")
	}
	return users, nil
}

func (s SubscriptionService) SubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]models.User, error) {
	users, err := s.db.SubscribedChannels(ctx, subscriber)
	if err != nil {
		slog.Error("failed to list subscribed channels", "error", err, "subscriber_id", subscriber.Hex())
		return nil, models.ErrInternal("something went wrong, please try again later")
	}
	return users, nil
}
