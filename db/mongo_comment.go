package db

import (
	"context"
	"time"

	"github.com/AKACHI-4/WeTube/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func (m *MongoDB) ListComments(ctx context.Context, videoID bson.ObjectID, page, limit int64) (models.CommentPage, error) {
	filter := bson.D{{Key: "video", Value: videoID}}

	total, err := m.coll(COMMENT_COLL).CountDocuments(ctx, filter)
	if err != nil {
		return models.CommentPage{}, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cur, err := m.coll(COMMENT_COLL).Find(ctx, filter, opts)
	if err != nil {
		return models.CommentPage{}, err
	}

	comments, err := decodeAll[models.Comment](ctx, cur)
	if err != nil {
		return models.CommentPage{}, err
	}

	return models.CommentPage{
		Comments:   comments,
		Page:       page,
		Limit:      limit,
		TotalCount: total,
	}, nil
}

func (m *MongoDB) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	now := time.Now().Unix()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	result, err := m.coll(COMMENT_COLL).InsertOne(ctx, comment)
	if err != nil {
		return models.Comment{}, err
	}

	if id, ok := insertedID(result); ok {
		comment.ID = id
	}
	return comment, nil
}

func (m *MongoDB) GetComment(ctx context.Context, id bson.ObjectID) (comment models.Comment, err error) {
	err = m.coll(COMMENT_COLL).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&comment)
	return comment, mapErr(err)
}

func (m *MongoDB) UpdateComment(ctx context.Context, id bson.ObjectID, content string) (comment models.Comment, err error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: content},
		{Key: "updated_at", Value: time.Now().Unix()},
	}}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = m.coll(COMMENT_COLL).FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&comment)
	return comment, mapErr(err)
}

func (m *MongoDB) DeleteComment(ctx context.Context, id bson.ObjectID) error {
	result, err := m.coll(COMMENT_COLL).DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	_, err = m.coll(LIKE_COLL).DeleteMany(ctx, bson.D{
		{Key: "kind", Value: models.LikeComment},
		{Key: "target", Value: id},
	})
	return err
}
