package db

import (
	"context"
	"time"

	"github.com/AKACHI-4/WeTube/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func (m *MongoDB) CreatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error) {
	now := time.Now().Unix()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now
	if playlist.Videos == nil {
		playlist.Videos = []bson.ObjectID{}
	}

	result, err := m.coll(PLAYLIST_COLL).InsertOne(ctx, playlist)
	if err != nil {
		return models.Playlist{}, err
	}

	if id, ok := insertedID(result); ok {
		playlist.ID = id
	}
	return playlist, nil
}

func (m *MongoDB) GetPlaylist(ctx context.Context, id bson.ObjectID) (playlist models.Playlist, err error) {
	err = m.coll(PLAYLIST_COLL).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&playlist)
	return playlist, mapErr(err)
}

func (m *MongoDB) UserPlaylists(ctx context.Context, owner bson.ObjectID) ([]models.Playlist, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := m.coll(PLAYLIST_COLL).Find(ctx, bson.D{{Key: "owner", Value: owner}}, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Playlist](ctx, cur)
}

func (m *MongoDB) UpdatePlaylist(ctx context.Context, id bson.ObjectID, name, description string) (playlist models.Playlist, err error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: name},
		{Key: "description", Value: description},
		{Key: "updated_at", Value: time.Now().Unix()},
	}}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = m.coll(PLAYLIST_COLL).FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&playlist)
	return playlist, mapErr(err)
}

func (m *MongoDB) DeletePlaylist(ctx context.Context, id bson.ObjectID) error {
	result, err := m.coll(PLAYLIST_COLL).DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoDB) AddPlaylistVideo(ctx context.Context, playlistID, videoID bson.ObjectID) (playlist models.Playlist, err error) {
	// $addToSet keeps a duplicate add a no-op
	update := bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now().Unix()}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = m.coll(PLAYLIST_COLL).FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: playlistID}}, update, opts).Decode(&playlist)
	return playlist, mapErr(err)
}

func (m *MongoDB) RemovePlaylistVideo(ctx context.Context, playlistID, videoID bson.ObjectID) (playlist models.Playlist, err error) {
	update := bson.D{
		{Key: "$pull", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now().Unix()}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = m.coll(PLAYLIST_COLL).FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: playlistID}}, update, opts).Decode(&playlist)
	return playlist, mapErr(err)
}
