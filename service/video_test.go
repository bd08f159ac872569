package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/AKACHI-4/WeTube/db"
	"github.com/AKACHI-4/WeTube/forms"
	"github.com/AKACHI-4/WeTube/kv"
	"github.com/AKACHI-4/WeTube/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// fakeVideoDB covers the video slice of the store. Calls outside it
// panic through the embedded nil interface.
type fakeVideoDB struct {
	db.Database

	videos     map[bson.ObjectID]models.Video
	listParams db.ListVideosParams
	viewWrites int64
	history    []bson.ObjectID
}

func newFakeVideoDB() *fakeVideoDB {
	return &fakeVideoDB{videos: map[bson.ObjectID]models.Video{}}
}

func (f *fakeVideoDB) addVideo(video models.Video) models.Video {
	video.ID = bson.NewObjectID()
	f.videos[video.ID] = video
	return video
}

func (f *fakeVideoDB) GetVideo(_ context.Context, id bson.ObjectID) (models.Video, error) {
	video, ok := f.videos[id]
	if !ok {
		return models.Video{}, db.ErrNotFound
	}
	return video, nil
}

func (f *fakeVideoDB) ListVideos(_ context.Context, params db.ListVideosParams) (models.VideoPage, error) {
	f.listParams = params
	return models.VideoPage{Page: params.Page, Limit: params.Limit}, nil
}

func (f *fakeVideoDB) AddVideoViews(_ context.Context, id bson.ObjectID, views int64) error {
	video, ok := f.videos[id]
	if !ok {
		return db.ErrNotFound
	}
	video.Views += views
	f.videos[id] = video
	f.viewWrites += views
	return nil
}

func (f *fakeVideoDB) AppendWatchHistory(_ context.Context, _, videoID bson.ObjectID) error {
	f.history = append(f.history, videoID)
	return nil
}

func (f *fakeVideoDB) DeleteVideo(_ context.Context, id bson.ObjectID) error {
	if _, ok := f.videos[id]; !ok {
		return db.ErrNotFound
	}
	delete(f.videos, id)
	return nil
}

var errKVDown = errors.New("store unreachable")

// fakeKV is a map-backed KeyValueStore; down makes every call fail.
type fakeKV struct {
	data map[string]string
	down bool
}

var _ kv.KeyValueStore = (*fakeKV)(nil)

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Set(key, value string, _ time.Duration) error {
	if f.down {
		return errKVDown
	}
	f.data[key] = value
	return nil
}

func (f *fakeKV) Get(key string) (string, error) {
	if f.down {
		return "", errKVDown
	}
	value, ok := f.data[key]
	if !ok {
		return "", kv.ErrKeyNotFound
	}
	return value, nil
}

func (f *fakeKV) Del(key string) (string, error) {
	if f.down {
		return "", errKVDown
	}
	if _, ok := f.data[key]; !ok {
		return "", kv.ErrKeyNotFound
	}
	delete(f.data, key)
	return key, nil
}

func (f *fakeKV) Incr(key string) (int64, error) {
	if f.down {
		return 0, errKVDown
	}
	n, _ := strconv.ParseInt(f.data[key], 10, 64)
	n++
	f.data[key] = strconv.FormatInt(n, 10)
	return n, nil
}

func (f *fakeKV) Ping() error {
	if f.down {
		return errKVDown
	}
	return nil
}

func newVideoFixture(t *testing.T) (*VideoService, *fakeVideoDB, *fakeKV) {
	t.Helper()
	store := newFakeVideoDB()
	counters := newFakeKV()
	return NewVideoService(store, counters, &fakeMedia{}), store, counters
}

func TestWatchServesLiveViewCount(t *testing.T) {
	videos, store, counters := newVideoFixture(t)
	video := store.addVideo(models.Video{Title: "t", Views: 41, IsPublished: true})
	viewer := bson.NewObjectID()

	got, err := videos.Watch(context.Background(), video.ID, viewer)
	require.NoError(t, err)

	// counter seeded from the stored total, then bumped
	assert.Equal(t, int64(42), got.Views)
	assert.Equal(t, "42", counters.data[viewKey(video.ID)])
	assert.Equal(t, int64(1), store.viewWrites)
	assert.Equal(t, []bson.ObjectID{video.ID}, store.history)
}

func TestWatchCounterOutlivesRequests(t *testing.T) {
	videos, store, counters := newVideoFixture(t)
	video := store.addVideo(models.Video{Title: "t", IsPublished: true})
	viewer := bson.NewObjectID()

	for i := 0; i < 3; i++ {
		_, err := videos.Watch(context.Background(), video.ID, viewer)
		require.NoError(t, err)
	}

	got, err := videos.Watch(context.Background(), video.ID, viewer)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Views)
	assert.Equal(t, "4", counters.data[viewKey(video.ID)])
}

func TestWatchCounterUnavailableFallsBack(t *testing.T) {
	videos, store, counters := newVideoFixture(t)
	counters.down = true
	video := store.addVideo(models.Video{Title: "t", Views: 41, IsPublished: true})

	got, err := videos.Watch(context.Background(), video.ID, bson.NewObjectID())
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.Views)
}

func TestDeleteClearsViewCounter(t *testing.T) {
	videos, store, counters := newVideoFixture(t)
	owner := bson.NewObjectID()
	video := store.addVideo(models.Video{Title: "t", Owner: owner, IsPublished: true})

	_, err := videos.Watch(context.Background(), video.ID, bson.NewObjectID())
	require.NoError(t, err)
	require.Contains(t, counters.data, viewKey(video.ID))

	require.NoError(t, videos.Delete(context.Background(), video.ID, owner))
	assert.NotContains(t, counters.data, viewKey(video.ID))
}

func TestListOwnChannelIncludesDrafts(t *testing.T) {
	videos, store, _ := newVideoFixture(t)
	owner := bson.NewObjectID()
	query := forms.ListVideosQuery{Page: 1, Limit: 10, SortBy: "created_at", SortType: "desc", UserID: owner.Hex()}

	_, err := videos.List(context.Background(), query, owner)
	require.NoError(t, err)
	assert.True(t, store.listParams.AllOwner)
	assert.Equal(t, owner, store.listParams.Owner)

	// someone else browsing the same channel only sees published videos
	_, err = videos.List(context.Background(), query, bson.NewObjectID())
	require.NoError(t, err)
	assert.False(t, store.listParams.AllOwner)
}

func TestListBadUserID(t *testing.T) {
	videos, _, _ := newVideoFixture(t)
	query := forms.ListVideosQuery{Page: 1, Limit: 10, SortBy: "created_at", SortType: "desc", UserID: "nope"}

	_, err := videos.List(context.Background(), query, bson.NewObjectID())
	var apiErr *models.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
}
