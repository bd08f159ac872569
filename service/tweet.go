package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/AKACHI-4/WeTube/db"
	"github.com/AKACHI-4/WeTube/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type TweetService struct {
	db db.Database
}

func NewTweetService(database db.Database) *TweetService {
	return &TweetService{db: database}
}

func (s TweetService) Create(ctx context.Context, owner bson.ObjectID, content string) (models.Tweet, error) {
	tweet, err := s.db.CreateTweet(ctx, models.Tweet{Owner: owner, Content: content})
	if err != nil {
		slog.Error("failed to create tweet", "error", err, "owner_id", owner.Hex())
		return models.Tweet{}, models.ErrInternal("something went wrong, please try again later")
	}
	return tweet, nil
}

func (s TweetService) ForUser(ctx context.Context, owner bson.ObjectID) ([]models.Tweet, error) {
	tweets, err := s.db.UserTweets(ctx, owner)
	if err != nil {
		slog.Error("failed to list tweets", "error", err, "owner_id", owner.Hex())
		return nil, models.ErrInternal("something went wrong, please try again later")
	}
	return tweets, nil
}

func (s TweetService) Update(ctx context.Context, id, caller bson.ObjectID, content string) (models.Tweet, error) {
	if err := s.requireOwner(ctx, id, caller); err != nil {
		return models.Tweet{}, err
	}

	tweet, err := s.db.UpdateTweet(ctx, id, content)
	if err != nil {
		slog.Error("failed to update tweet", "error", err, "tweet_id", id.Hex())
		return models.Tweet{}, models.ErrInternal("something went wrong, please try again later")
	}
	return tweet, nil
}

func (s TweetService) Delete(ctx context.Context, id, caller bson.ObjectID) error {
	if err := s.requireOwner(ctx, id, caller); err != nil {
		return err
	}

	if err := s.db.DeleteTweet(ctx, id); err != nil {
		slog.Error("failed to delete tweet", "error", err, "tweet_id", id.Hex())
		return models.ErrInternal("something went wrong, please try again later")
	}
	return nil
}

func (s TweetService) requireOwner(ctx context.Context, id, caller bson.ObjectID) error {
	tweet, err := s.db.GetTweet(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.ErrNotFound("tweet does not exist")
		}
		slog.Error("failed to load tweet", "error", err, "tweet_id", id.Hex())
		return models.ErrInternal("something went wrong, please try again later")
	}
	if tweet.Owner != caller {
		return models.ErrForbidden("only the owner can modify this tweet")
	}
	return nil
}
