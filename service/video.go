package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/AKACHI-4/WeTube/db"
	"github.com/AKACHI-4/WeTube/forms"
	"github.com/AKACHI-4/WeTube/kv"
	"github.com/AKACHI-4/WeTube/models"
	"github.com/AKACHI-4/WeTube/storage"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type VideoService struct {
	db    db.Database
	kv    kv.KeyValueStore
	media storage.MediaStore
}

func NewVideoService(database db.Database, kvStore kv.KeyValueStore, media storage.MediaStore) *VideoService {
	return &VideoService{db: database, kv: kvStore, media: media}
}

func viewKey(id bson.ObjectID) string {
	return "video:views:" + id.Hex()
}

func (s VideoService) List(ctx context.Context, q forms.ListVideosQuery, viewer bson.ObjectID) (models.VideoPage, error) {
	params := db.ListVideosParams{
		Page:    q.Page,
		Limit:   q.Limit,
		Query:   q.Query,
		SortBy:  q.SortBy,
		SortAsc: q.SortType == "asc",
	}
	if q.UserID != "" {
		owner, err := models.ParseID(q.UserID)
		if err != nil {
			return models.VideoPage{}, models.ErrBadRequest("invalid user id")
		}
		params.Owner = owner
		// owners see their own unpublished videos in the listing
		params.AllOwner = owner == viewer
	}

	page, err := s.db.ListVideos(ctx, params)
	if err != nil {
		slog.Error("failed to list videos", "error", err)
		return models.VideoPage{}, models.ErrInternal("something went wrong, please try again later")
	}
	return page, nil
}

func (s VideoService) Publish(ctx context.Context, owner bson.ObjectID, form forms.PublishVideoForm, videoFile, thumbnail *MediaFile) (models.Video, error) {
	if videoFile == nil {
		return models.Video{}, models.ErrBadRequest("video file is required")
	}
	if thumbnail == nil {
		return models.Video{}, models.ErrBadRequest("thumbnail is required")
	}

	videoURL, err := s.media.Upload(ctx, "videos", videoFile.Filename, videoFile.Reader, videoFile.Size, videoFile.ContentType)
	if err != nil {
		slog.Error("failed to upload video file", "error", err, "filename", videoFile.Filename)
		return models.Video{}, models.ErrInternal("something went wrong while uploading files")
	}
	thumbURL, err := s.media.Upload(ctx, "thumbnails", thumbnail.Filename, thumbnail.Reader, thumbnail.Size, thumbnail.ContentType)
	if err != nil {
		slog.Error("failed to upload thumbnail", "error", err, "filename", thumbnail.Filename)
		return models.Video{}, models.ErrInternal("something went wrong while uploading files")
	}

	video, err := s.db.CreateVideo(ctx, models.Video{
		Owner:       owner,
		Title:       form.Title,
		Description: form.Description,
		VideoFile:   videoURL,
		Thumbnail:   thumbURL,
		Duration:    form.Duration,
		IsPublished: true,
	})
	if err != nil {
		slog.Error("failed to create video", "error", err)
		return models.Video{}, models.ErrInternal("something went wrong while publishing the video")
	}
	return video, nil
}

// Watch returns a video for playback: the view counter is bumped in
// the key-value store and the response carries the live total, the
// increment is mirrored onto the document, and the video is appended
// to the viewer's watch history. Counter failures do not fail the
// watch.
func (s VideoService) Watch(ctx context.Context, id, viewer bson.ObjectID) (models.Video, error) {
	video, err := s.get(ctx, id)
	if err != nil {
		return models.Video{}, err
	}

	video.Views = s.bumpViews(video)
	if err := s.db.AddVideoViews(ctx, id, 1); err != nil {
		slog.Warn("failed to record video view", "error", err, "video_id", id.Hex())
	}

	if err := s.db.AppendWatchHistory(ctx, viewer, id); err != nil {
		slog.Warn("failed to append watch history", "error", err, "user_id", viewer.Hex(), "video_id", id.Hex())
	}

	return video, nil
}

// bumpViews increments the live counter and returns the new total. A
// missing counter is first seeded from the stored total so a fresh
// key-value store continues where the document left off. On counter
// failure the document value plus this view is returned instead.
func (s VideoService) bumpViews(video models.Video) int64 {
	key := viewKey(video.ID)
	if _, err := s.kv.Get(key); err != nil {
		if err := s.kv.Set(key, strconv.FormatInt(video.Views, 10), 0); err != nil {
			slog.Warn("failed to seed view counter", "error", err, "video_id", video.ID.Hex())
		}
	}

	views, err := s.kv.Incr(key)
	if err != nil {
		slog.Warn("failed to bump view counter", "error", err, "video_id", video.ID.Hex())
		return video.Views + 1
	}
	return views
}

func (s VideoService) Update(ctx context.Context, id, caller bson.ObjectID, form forms.UpdateVideoForm, thumbnail *MediaFile) (models.Video, error) {
	video, err := s.requireOwner(ctx, id, caller)
	if err != nil {
		return models.Video{}, err
	}

	if form.Title == "" && form.Description == "" && thumbnail == nil {
		return models.Video{}, models.ErrBadRequest("nothing to update")
	}

	thumbURL := ""
	if thumbnail != nil {
		thumbURL, err = s.media.Upload(ctx, "thumbnails", thumbnail.Filename, thumbnail.Reader, thumbnail.Size, thumbnail.ContentType)
		if err != nil {
			slog.Error("failed to upload thumbnail", "error", err, "filename", thumbnail.Filename)
			return models.Video{}, models.ErrInternal("something went wrong while uploading files")
		}
	}

	updated, err := s.db.UpdateVideoDetails(ctx, id, form.Title, form.Description, thumbURL)
	if err != nil {
		slog.Error("failed to update video", "error", err, "video_id", id.Hex())
		return models.Video{}, models.ErrInternal("something went wrong, please try again later")
	}

	if thumbURL != "" && video.Thumbnail != "" {
		if err := s.media.Remove(ctx, video.Thumbnail); err != nil {
			slog.Warn("failed to remove previous thumbnail", "error", err, "url", video.Thumbnail)
		}
	}
	return updated, nil
}

func (s VideoService) Delete(ctx context.Context, id, caller bson.ObjectID) error {
	video, err := s.requireOwner(ctx, id, caller)
	if err != nil {
		return err
	}

	if err := s.db.DeleteVideo(ctx, id); err != nil {
		slog.Error("failed to delete video", "error", err, "video_id", id.Hex())
		return models.ErrInternal("something went wrong, please try again later")
	}

	if _, err := s.kv.Del(viewKey(id)); err != nil && !errors.Is(err, kv.ErrKeyNotFound) {
		slog.Warn("failed to clear view counter", "error", err, "video_id", id.Hex())
	}

	for _, url := range []string{video.VideoFile, video.Thumbnail} {
		if url == "" {
			continue
		}
		if err := s.media.Remove(ctx, url); err != nil {
			slog.Warn("failed to remove video media", "error", err, "url", url)
		}
	}
	return nil
}

func (s VideoService) TogglePublish(ctx context.Context, id, caller bson.ObjectID) (models.Video, error) {
	if _, err := s.requireOwner(ctx, id, caller); err != nil {
		return models.Video{}, err
	}

	video, err := s.db.TogglePublish(ctx, id)
	if err != nil {
		slog.Error("failed to toggle publish status", "error", err, "video_id", id.Hex())
		return models.Video{}, models.ErrInternal("something went wrong, please try again later")
	}
	return video, nil
}

func (s VideoService) get(ctx context.Context, id bson.ObjectID) (models.Video, error) {
	video, err := s.db.GetVideo(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.Video{}, models.ErrNotFound("video does not exist")
		}
		slog.Error("failed to load video", "error", err, "video_id", id.Hex())
		return models.Video{}, models.ErrInternal("something went wrong, please try again later")
	}
	return video, nil
}

func (s VideoService) requireOwner(ctx context.Context, id, caller bson.ObjectID) (models.Video, error) {
	video, err := s.get(ctx, id)
	if err != nil {
		return models.Video{}, err
	}
	if video.Owner != caller {
		return models.Video{}, models.ErrForbidden("only the owner can modify this video")
	}
	return video, nil
}
