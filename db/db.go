package db

import (
	"context"
	"errors"

	"github.com/AKACHI-4/WeTube/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrNotFound is returned when a referenced document does not exist.
// Implementations map their driver's no-document error onto it so
// callers never import driver packages.
var ErrNotFound = errors.New("document not found")

// ListVideosParams narrows and orders the video listing.
type ListVideosParams struct {
	Page     int64
	Limit    int64
	Query    string
	SortBy   string
	SortAsc  bool
	Owner    bson.ObjectID
	AllOwner bool // include the owner's unpublished videos
}

type Database interface {
	// users
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, id bson.ObjectID) (models.User, error)
	// GetUserPublic loads a user with the password and refresh token
	// excluded from the projection.
	GetUserPublic(ctx context.Context, id bson.ObjectID) (models.User, error)
	FindUserByLogin(ctx context.Context, username, email string) (models.User, error)
	UserExists(ctx context.Context, username, email string) (bool, error)
	// UpdateRefreshToken overwrites the single persisted refresh token;
	// nil clears it.
	UpdateRefreshToken(ctx context.Context, id bson.ObjectID, token *string) error
	UpdatePassword(ctx context.Context, id bson.ObjectID, hash string) error
	UpdateAccount(ctx context.Context, id bson.ObjectID, fullname, email string) (models.User, error)
	UpdateAvatar(ctx context.Context, id bson.ObjectID, url string) (models.User, error)
	UpdateCoverImage(ctx context.Context, id bson.ObjectID, url string) (models.User, error)
	ChannelProfile(ctx context.Context, username string, viewer bson.ObjectID) (models.ChannelProfile, error)
	WatchHistory(ctx context.Context, id bson.ObjectID) ([]models.HistoryEntry, error)
	AppendWatchHistory(ctx context.Context, userID, videoID bson.ObjectID) error

	// videos
	CreateVideo(ctx context.Context, video models.Video) (models.Video, error)
	GetVideo(ctx context.Context, id bson.ObjectID) (models.Video, error)
	ListVideos(ctx context.Context, params ListVideosParams) (models.VideoPage, error)
	// UpdateVideoDetails leaves a field untouched when its argument is
	// empty.
	UpdateVideoDetails(ctx context.Context, id bson.ObjectID, title, description, thumbnail string) (models.Video, error)
	DeleteVideo(ctx context.Context, id bson.ObjectID) error
	TogglePublish(ctx context.Context, id bson.ObjectID) (models.Video, error)
	AddVideoViews(ctx context.Context, id bson.ObjectID, views int64) error

	// comments
	ListComments(ctx context.Context, videoID bson.ObjectID, page, limit int64) (models.CommentPage, error)
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	GetComment(ctx context.Context, id bson.ObjectID) (models.Comment, error)
	UpdateComment(ctx context.Context, id bson.ObjectID, content string) (models.Comment, error)
	DeleteComment(ctx context.Context, id bson.ObjectID) error

	// likes
	// ToggleLike reports whether the target is liked after the toggle.
	ToggleLike(ctx context.Context, kind models.LikeKind, target, likedBy bson.ObjectID) (bool, error)
	LikedVideos(ctx context.Context, userID bson.ObjectID) ([]models.Video, error)

	// subscriptions
	// ToggleSubscription reports whether the subscription exists after
	// the toggle.
	ToggleSubscription(ctx context.Context, channel, subscriber bson.ObjectID) (bool, error)
	ChannelSubscribers(ctx context.Context, channel bson.ObjectID) ([]models.User, error)
	SubscribedChannels(ctx context.Context, subscriber bson.ObjectID) ([]models.User, error)

	// playlists
	CreatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error)
	GetPlaylist(ctx context.Context, id bson.ObjectID) (models.Playlist, error)
	UserPlaylists(ctx context.Context, owner bson.ObjectID) ([]models.Playlist, error)
	UpdatePlaylist(ctx context.Context, id bson.ObjectID, name, description string) (models.Playlist, error)
	DeletePlaylist(ctx context.Context, id bson.ObjectID) error
	AddPlaylistVideo(ctx context.Context, playlistID, videoID bson.ObjectID) (models.Playlist, error)
	RemovePlaylistVideo(ctx context.Context, playlistID, videoID bson.ObjectID) (models.Playlist, error)

	// tweets
	CreateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error)
	GetTweet(ctx context.Context, id bson.ObjectID) (models.Tweet, error)
	UserTweets(ctx context.Context, owner bson.ObjectID) ([]models.Tweet, error)
	UpdateTweet(ctx context.Context, id bson.ObjectID, content string) (models.Tweet, error)
	DeleteTweet(ctx context.Context, id bson.ObjectID) error

	// dashboard
	ChannelStats(ctx context.Context, owner bson.ObjectID) (models.ChannelStats, error)
	ChannelVideos(ctx context.Context, owner bson.ObjectID) ([]models.Video, error)

	Ping(ctx context.Context) error
}
