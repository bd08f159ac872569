package db

import (
	"context"
	"time"

	"github.com/AKACHI-4/WeTube/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func (m *MongoDB) CreateVideo(ctx context.Context, video models.Video) (models.Video, error) {
	now := time.Now().Unix()
	video.CreatedAt = now
	video.UpdatedAt = now

	result, err := m.coll(VIDEO_COLL).InsertOne(ctx, video)
	if err != nil {
		return models.Video{}, err
	}

	if id, ok := insertedID(result); ok {
		video.ID = id
	}
	return video, nil
}

func (m *MongoDB) GetVideo(ctx context.Context, id bson.ObjectID) (video models.Video, err error) {
	err = m.coll(VIDEO_COLL).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&video)
	return video, mapErr(err)
}

func (m *MongoDB) ListVideos(ctx context.Context, params ListVideosParams) (models.VideoPage, error) {
	filter := bson.D{}
	if !params.AllOwner {
		filter = append(filter, bson.E{Key: "is_published", Value: true})
	}
	if !params.Owner.IsZero() {
		filter = append(filter, bson.E{Key: "owner", Value: params.Owner})
	}
	if params.Query != "" {
		pattern := bson.D{{Key: "$regex", Value: params.Query}, {Key: "$options", Value: "i"}}
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: pattern}},
			bson.D{{Key: "description", Value: pattern}},
		}})
	}

	total, err := m.coll(VIDEO_COLL).CountDocuments(ctx, filter)
	if err != nil {
		return models.VideoPage{}, err
	}

	order := -1
	if params.SortAsc {
		order = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: params.SortBy, Value: order}}).
		SetSkip((params.Page - 1) * params.Limit).
		SetLimit(params.Limit)

	cur, err := m.coll(VIDEO_COLL).Find(ctx, filter, opts)
	if err != nil {
		return models.VideoPage{}, err
	}

	videos, err := decodeAll[models.Video](ctx, cur)
	if err != nil {
		return models.VideoPage{}, err
	}

	return models.VideoPage{
		Videos:     videos,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalCount: total,
	}, nil
}

func (m *MongoDB) UpdateVideoDetails(ctx context.Context, id bson.ObjectID, title, description, thumbnail string) (video models.Video, err error) {
	fields := bson.D{{Key: "updated_at", Value: time.Now().Unix()}}
	if title != "" {
		fields = append(fields, bson.E{Key: "title", Value: title})
	}
	if description != "" {
		fields = append(fields, bson.E{Key: "description", Value: description})
	}
	if thumbnail != "" {
		fields = append(fields, bson.E{Key: "thumbnail", Value: thumbnail})
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = m.coll(VIDEO_COLL).FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: fields}},
		opts,
	).Decode(&video)
	return video, mapErr(err)
}

func (m *MongoDB) DeleteVideo(ctx context.Context, id bson.ObjectID) error {
	result, err := m.coll(VIDEO_COLL).DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	// dangling comments and likes are unreachable once the video is gone
	if _, err := m.coll(COMMENT_COLL).DeleteMany(ctx, bson.D{{Key: "video", Value: id}}); err != nil {
		return err
	}
	_, err = m.coll(LIKE_COLL).DeleteMany(ctx, bson.D{
		{Key: "kind", Value: models.LikeVideo},
		{Key: "target", Value: id},
	})
	return err
}

func (m *MongoDB) TogglePublish(ctx context.Context, id bson.ObjectID) (video models.Video, err error) {
	update := bson.A{bson.D{{Key: "$set", Value: bson.D{
		{Key: "is_published", Value: bson.D{{Key: "$not", Value: "$is_published"}}},
		{Key: "updated_at", Value: time.Now().Unix()},
	}}}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = m.coll(VIDEO_COLL).FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&video)
	return video, mapErr(err)
}

func (m *MongoDB) AddVideoViews(ctx context.Context, id bson.ObjectID, views int64) error {
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: views}}}}

	result, err := m.coll(VIDEO_COLL).UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
