package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMinio struct {
	buckets map[string]bool
	objects map[string][]byte
	removed []string
}

func newFakeMinio(buckets ...string) *fakeMinio {
	f := &fakeMinio{buckets: map[string]bool{}, objects: map[string][]byte{}}
	for _, b := range buckets {
		f.buckets[b] = true
	}
	return f
}

func (f *fakeMinio) BucketExists(_ context.Context, name string) (bool, error) {
	return f.buckets[name], nil
}

func (f *fakeMinio) MakeBucket(_ context.Context, name string, _ minio.MakeBucketOptions) error {
	f.buckets[name] = true
	return nil
}

func (f *fakeMinio) PutObject(_ context.Context, bucket, object string, r io.Reader, _ int64, _ minio.PutObjectOptions) (minio.UploadInfo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.objects[bucket+"/"+object] = data
	return minio.UploadInfo{Bucket: bucket, Key: object}, nil
}

func (f *fakeMinio) RemoveObject(_ context.Context, bucket, object string, _ minio.RemoveObjectOptions) error {
	delete(f.objects, bucket+"/"+object)
	f.removed = append(f.removed, object)
	return nil
}

func (f *fakeMinio) EndpointURL() string { return "http://media.local:9000" }

func TestNewStoreCreatesMissingBucket(t *testing.T) {
	api := newFakeMinio()
	_, err := newMinioStoreWithAPI(context.Background(), api, "wetube")
	require.NoError(t, err)
	assert.True(t, api.buckets["wetube"])
}

func TestUploadObjectNameAndURL(t *testing.T) {
	api := newFakeMinio("wetube")
	store, err := newMinioStoreWithAPI(context.Background(), api, "wetube")
	require.NoError(t, err)

	body := strings.NewReader("fake png bytes")
	url, err := store.Upload(context.Background(), "avatars", "селфи final (1).png", body, int64(body.Len()), "image/png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://media.local:9000/wetube/avatars/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)
	// the uploaded filename never leaks into the URL
	assert.NotContains(t, url, "final")

	require.Len(t, api.objects, 1)
	for key, data := range api.objects {
		assert.Equal(t, "http://media.local:9000/"+key, url)
		assert.Equal(t, "fake png bytes", string(data))
	}
}

func TestUploadsGetDistinctNames(t *testing.T) {
	api := newFakeMinio("wetube")
	store, err := newMinioStoreWithAPI(context.Background(), api, "wetube")
	require.NoError(t, err)

	first, err := store.Upload(context.Background(), "thumbnails", "a.jpg", strings.NewReader("x"), 1, "image/jpeg")
	require.NoError(t, err)
	second, err := store.Upload(context.Background(), "thumbnails", "a.jpg", strings.NewReader("y"), 1, "image/jpeg")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, api.objects, 2)
}

func TestRemoveOwnURL(t *testing.T) {
	api := newFakeMinio("wetube")
	store, err := newMinioStoreWithAPI(context.Background(), api, "wetube")
	require.NoError(t, err)

	url, err := store.Upload(context.Background(), "avatars", "a.png", strings.NewReader("x"), 1, "image/png")
	require.NoError(t, err)

	require.NoError(t, store.Remove(context.Background(), url))
	assert.Empty(t, api.objects)
	require.Len(t, api.removed, 1)
	assert.True(t, strings.HasPrefix(api.removed[0], "avatars/"))
}

// URLs pointing anywhere else are left alone rather than turned into
// bogus delete calls.
func TestRemoveForeignURLIsNoop(t *testing.T) {
	api := newFakeMinio("wetube")
	store, err := newMinioStoreWithAPI(context.Background(), api, "wetube")
	require.NoError(t, err)

	require.NoError(t, store.Remove(context.Background(), "https://cdn.example.com/other/file.png"))
	assert.Empty(t, api.removed)
}
