package db

import (
	"context"
	"strings"
	"time"

	"github.com/AKACHI-4/WeTube/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func (m *MongoDB) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	now := time.Now().Unix()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.Username = strings.ToLower(strings.TrimSpace(user.Username))
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	result, err := m.coll(USER_COLL).InsertOne(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	if id, ok := insertedID(result); ok {
		user.ID = id
	}
	return user, nil
}

func (m *MongoDB) GetUser(ctx context.Context, id bson.ObjectID) (user models.User, err error) {
	err = m.coll(USER_COLL).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&user)
	return user, mapErr(err)
}

func (m *MongoDB) GetUserPublic(ctx context.Context, id bson.ObjectID) (user models.User, err error) {
	// least-privilege read: credentials never leave the store here
	projection := options.FindOne().SetProjection(bson.D{
		{Key: "password", Value: 0},
		{Key: "refresh_token", Value: 0},
	})
	err = m.coll(USER_COLL).FindOne(ctx, bson.D{{Key: "_id", Value: id}}, projection).Decode(&user)
	return user, mapErr(err)
}

func (m *MongoDB) FindUserByLogin(ctx context.Context, username, email string) (user models.User, err error) {
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "username", Value: strings.ToLower(strings.TrimSpace(username))}},
		bson.D{{Key: "email", Value: strings.ToLower(strings.TrimSpace(email))}},
	}}}
	err = m.coll(USER_COLL).FindOne(ctx, filter).Decode(&user)
	return user, mapErr(err)
}

func (m *MongoDB) UserExists(ctx context.Context, username, email string) (bool, error) {
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "username", Value: strings.ToLower(strings.TrimSpace(username))}},
		bson.D{{Key: "email", Value: strings.ToLower(strings.TrimSpace(email))}},
	}}}
	count, err := m.coll(USER_COLL).CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *MongoDB) UpdateRefreshToken(ctx context.Context, id bson.ObjectID, token *string) error {
	var update bson.D
	if token == nil {
		update = bson.D{{Key: "$unset", Value: bson.D{{Key: "refresh_token", Value: 1}}}}
	} else {
		update = bson.D{{Key: "$set", Value: bson.D{{Key: "refresh_token", Value: *token}}}}
	}

	result, err := m.coll(USER_COLL).UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoDB) UpdatePassword(ctx context.Context, id bson.ObjectID, hash string) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "password", Value: hash},
		{Key: "updated_at", Value: time.Now().Unix()},
	}}}

	result, err := m.coll(USER_COLL).UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoDB) UpdateAccount(ctx context.Context, id bson.ObjectID, fullname, email string) (models.User, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "fullname", Value: fullname},
		{Key: "email", Value: strings.ToLower(strings.TrimSpace(email))},
		{Key: "updated_at", Value: time.Now().Unix()},
	}}}
	return m.updateUser(ctx, id, update)
}

func (m *MongoDB) UpdateAvatar(ctx context.Context, id bson.ObjectID, url string) (models.User, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "avatar", Value: url},
		{Key: "updated_at", Value: time.Now().Unix()},
	}}}
	return m.updateUser(ctx, id, update)
}

func (m *MongoDB) UpdateCoverImage(ctx context.Context, id bson.ObjectID, url string) (models.User, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "cover_image", Value: url},
		{Key: "updated_at", Value: time.Now().Unix()},
	}}}
	return m.updateUser(ctx, id, update)
}

func (m *MongoDB) updateUser(ctx context.Context, id bson.ObjectID, update bson.D) (user models.User, err error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.D{
			{Key: "password", Value: 0},
			{Key: "refresh_token", Value: 0},
		})
	err = m.coll(USER_COLL).FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&user)
	return user, mapErr(err)
}

func (m *MongoDB) ChannelProfile(ctx context.Context, username string, viewer bson.ObjectID) (models.ChannelProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	cur, err := m.coll(USER_COLL).Aggregate(ctx, channelProfilePipeline(username, viewer))
	if err != nil {
		return models.ChannelProfile{}, err
	}

	profiles, err := decodeAll[models.ChannelProfile](ctx, cur)
	if err != nil {
		return models.ChannelProfile{}, err
	}
	if len(profiles) == 0 {
		return models.ChannelProfile{}, ErrNotFound
	}
	return profiles[0], nil
}

func (m *MongoDB) WatchHistory(ctx context.Context, id bson.ObjectID) ([]models.HistoryEntry, error) {
	cur, err := m.coll(USER_COLL).Aggregate(ctx, watchHistoryPipeline(id))
	if err != nil {
		return nil, err
	}
	return decodeAll[models.HistoryEntry](ctx, cur)
}

func (m *MongoDB) AppendWatchHistory(ctx context.Context, userID, videoID bson.ObjectID) error {
	// $push keeps revisits ordered by recency; duplicates are expected
	update := bson.D{{Key: "$push", Value: bson.D{{Key: "watch_history", Value: videoID}}}}

	result, err := m.coll(USER_COLL).UpdateOne(ctx, bson.D{{Key: "_id", Value: userID}}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
