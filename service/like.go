package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/AKACHI-4/WeTube/db"
	"github.com/AKACHI-4/WeTube/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type LikeService struct {
	db db.Database
}

func NewLikeService(database db.Database) *LikeService {
	return &LikeService{db: database}
}

// Toggle flips a like on a video, comment or tweet and reports the
// resulting state.
func (s LikeService) Toggle(ctx context.Context, kind models.LikeKind, target, user bson.ObjectID) (bool, error) {
	if err := s.targetExists(ctx, kind, target); err != nil {
		return false, err
	}

	liked, err := s.db.ToggleLike(ctx, kind, target, user)
	if err != nil {
		slog.Error("failed to toggle like", "error", err, "kind", kind, "target", target.Hex())
		return false, models.ErrInternal("something went wrong, please try again later")
	}
	return liked, nil
}

func (s LikeService) LikedVideos(ctx context.Context, user bson.ObjectID) ([]models.Video, error) {
	videos, err := s.db.LikedVideos(ctx, user)
	if err != nil {
		slog.Error("failed to list liked videos", "error", err, "user_id", user.Hex())
		return nil, models.ErrInternal("something went wrong, please try again later")
	}
	return videos, nil
}

func (s LikeService) targetExists(ctx context.Context, kind models.LikeKind, target bson.ObjectID) error {
	var err error
	switch kind {
	case models.LikeVideo:
		_, err = s.db.GetVideo(ctx, target)
	case models.LikeComment:
		_, err = s.db.GetComment(ctx, target)
	case models.LikeTweet:
		_, err = s.db.GetTweet(ctx, target)
	default:
		return models.ErrBadRequest("unknown like target")
	}

	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.ErrNotFound(string(kind) + " does not exist")
		}
		slog.Error("failed to load like target", "error", err, "kind", kind, "target", target.Hex())
		return models.ErrInternal("something went wrong, please try again later")
	}
	return nil
}
