package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/AKACHI-4/WeTube/db"
	"github.com/AKACHI-4/WeTube/forms"
	"github.com/AKACHI-4/WeTube/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type PlaylistService struct {
	db db.Database
}

func NewPlaylistService(database db.Database) *PlaylistService {
	return &PlaylistService{db: database}
}

func (s PlaylistService) Create(ctx context.Context, owner bson.ObjectID, form forms.PlaylistForm) (models.Playlist, error) {
	playlist, err := s.db.CreatePlaylist(ctx, models.Playlist{
		Owner:       owner,
		Name:        form.Name,
		Description: form.Description,
	})
	if err != nil {
		slog.Error("failed to create playlist", "error", err, "owner_id", owner.Hex())
		return models.Playlist{}, models.ErrInternal("something went wrong, please try again later")
	}
	return playlist, nil
}

func (s PlaylistService) Get(ctx context.Context, id bson.ObjectID) (models.Playlist, error) {
	playlist, err := s.db.GetPlaylist(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.Playlist{}, models.ErrNotFound("playlist does not exist")
		}
		slog.Error("failed to load playlist", "error", err, "playlist_id", id.Hex())
		return models.Playlist{}, models.ErrInternal("something went wrong, please try again later")
	}
	return playlist, nil
}

func (s PlaylistService) ForUser(ctx context.Context, owner bson.ObjectID) ([]models.Playlist, error) {
	playlists, err := s.db.UserPlaylists(ctx, owner)
	if err != nil {
		slog.Error("failed to list playlists", "error", err, "owner_id", owner.Hex())
		return nil, models.ErrInternal("something went wrong, please try again later")
	}
	return playlists, nil
}

func (s PlaylistService) Update(ctx context.Context, id, caller bson.ObjectID, form forms.PlaylistForm) (models.Playlist, error) {
	if err := s.requireOwner(ctx, id, caller); err != nil {
		return models.Playlist{}, err
	}

	playlist, err := s.db.UpdatePlaylist(ctx, id, form.Name, form.Description)
	if err != nil {
		slog.Error("failed to update playlist", "error", err, "playlist_id", id.Hex())
		return models.Playlist{}, models.ErrInternal("something went wrong, please try again later")
	}
	return playlist, nil
}

func (s PlaylistService) Delete(ctx context.Context, id, caller bson.ObjectID) error {
	if err := s.requireOwner(ctx, id, caller); err != nil {
		return err
	}

	if err := s.db.DeletePlaylist(ctx, id); err != nil {
		slog.Error("failed to delete playlist", "error", err, "playlist_id", id.Hex())
		return models.ErrInternal("something went wrong, please try again later")
	}
	return nil
}

// AddVideo appends a video to the playlist; adding a video that is
// already present is a no-op.
func (s PlaylistService) AddVideo(ctx context.Context, playlistID, videoID, caller bson.ObjectID) (models.Playlist, error) {
	if err := s.requireOwner(ctx, playlistID, caller); err != nil {
		return models.Playlist{}, err
	}

	if _, err := s.db.GetVideo(ctx, videoID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.Playlist{}, models.ErrNotFound("video does not exist")
		}
		slog.Error("failed to load video for playlist", "error", err, "video_id", videoID.Hex())
		return models.Playlist{}, models.ErrInternal("something went wrong, please try again later")
	}

	playlist, err := s.db.AddPlaylistVideo(ctx, playlistID, videoID)
	if err != nil {
		slog.Error("failed to add playlist video", "error", err, "playlist_id", playlistID.Hex(), "video_id", videoID.Hex())
		return models.Playlist{}, models.ErrInternal("something went wrong, please try again later")
	}
	return playlist, nil
}

func (s PlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID, caller bson.ObjectID) (models.Playlist, error) {
	if err := s.requireOwner(ctx, playlistID, caller); err != nil {
		return models.Playlist{}, err
	}

	playlist, err := s.db.RemovePlaylistVideo(ctx, playlistID, videoID)
	if err != nil {
		slog.Error("failed to remove playlist video", "error", err, "playlist_id", playlistID.Hex(), "video_id", videoID.Hex())
		return models.Playlist{}, models.ErrInternal("something went wrong, please try again later")
	}
	return playlist, nil
}

func (s PlaylistService) requireOwner(ctx context.Context, id, caller bson.ObjectID) error {
	playlist, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if playlist.Owner != caller {
		return models.ErrForbidden("only the owner can modify this playlist")
	}
	return nil
}
