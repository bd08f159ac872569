package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/AKACHI-4/WeTube/db"
	"github.com/AKACHI-4/WeTube/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type CommentService struct {
	db db.Database
}

func NewCommentService(database db.Database) *CommentService {
	return &CommentService{db: database}
}

func (s CommentService) List(ctx context.Context, videoID bson.ObjectID, page, limit int64) (models.CommentPage, error) {
	if _, err := s.db.GetVideo(ctx, videoID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.CommentPage{}, models.ErrNotFound("video does not exist")
		}
		slog.Error("failed to load video for comments", "error", err, "video_id", videoID.Hex())
		return models.CommentPage{}, models.ErrInternal("something went wrong, please try again later")
	}

	comments, err := s.db.ListComments(ctx, videoID, page, limit)
	if err != nil {
		slog.Error("failed to list comments", "error", err, "video_id", videoID.Hex())
		return models.CommentPage{}, models.ErrInternal("something went wrong, please try again later")
	}
	return comments, nil
}

func (s CommentService) Add(ctx context.Context, videoID, owner bson.ObjectID, content string) (models.Comment, error) {
	if _, err := s.db.GetVideo(ctx, videoID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.Comment{}, models.ErrNotFound("video does not exist")
		}
		slog.Error("failed to load video for comment", "error", err, "video_id", videoID.Hex())
		return models.Comment{}, models.ErrInternal("something went wrong, please try again later")
	}

	comment, err := s.db.CreateComment(ctx, models.Comment{
		Video:   videoID,
		Owner:   owner,
		Content: content,
	})
	if err != nil {
		slog.Error("failed to create comment", "error", err, "video_id", videoID.Hex())
		return models.Comment{}, models.ErrInternal("something went wrong, please try again later")
	}
	return comment, nil
}

func (s CommentService) Update(ctx context.Context, id, caller bson.ObjectID, content string) (models.Comment, error) {
	if _, err := s.requireOwner(ctx, id, caller); err != nil {
		return models.Comment{}, err
	}

	comment, err := s.db.UpdateComment(ctx, id, content)
	if err != nil {
		slog.Error("failed to update comment", "error", err, "comment_id", id.Hex())
		return models.Comment{}, models.ErrInternal("something went wrong, please try again later")
	}
	return comment, nil
}

func (s CommentService) Delete(ctx context.Context, id, caller bson.ObjectID) error {
	if _, err := s.requireOwner(ctx, id, caller); err != nil {
		return err
	}

	if err := s.db.DeleteComment(ctx, id); err != nil {
		slog.Error("failed to delete comment", "error", err, "comment_id", id.Hex())
		return models.ErrInternal("something went wrong, please try again later")
	}
	return nil
}

func (s CommentService) requireOwner(ctx context.Context, id, caller bson.ObjectID) (models.Comment, error) {
	comment, err := s.db.GetComment(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.Comment{}, models.ErrNotFound("comment does not exist")
		}
		slog.Error("failed to load comment", "error", err, "comment_id", id.Hex())
		return models.Comment{}, models.ErrInternal("something went wrong, please try again later")
	}
	if comment.Owner != caller {
		return models.Comment{}, models.ErrForbidden("only the owner can modify this comment")
	}
	return comment, nil
}
