package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/AKACHI-4/WeTube/db"
	"github.com/AKACHI-4/WeTube/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// fakeDB implements the user-store slice of db.Database in memory.
// Calls to anything else panic through the embedded nil interface.
type fakeDB struct {
	db.Database

	mu               sync.Mutex
	users            map[bson.ObjectID]models.User
	failRefreshWrite bool
	refreshWrites    int
}

func newFakeDB() *fakeDB {
	return &fakeDB{users: map[bson.ObjectID]models.User{}}
}

func (f *fakeDB) addUser(user models.User) models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeDB) CreateUser(_ context.Context, user models.User) (models.User, error) {
	return f.addUser(user), nil
}

func (f *fakeDB) GetUser(_ context.Context, id bson.ObjectID) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return models.User{}, db.ErrNotFound
	}
	return user, nil
}

func (f *fakeDB) GetUserPublic(ctx context.Context, id bson.ObjectID) (models.User, error) {
	user, err := f.GetUser(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	user.RefreshToken = ""
	return user, nil
}

func (f *fakeDB) FindUserByLogin(_ context.Context, username, email string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if (username != "" && user.Username == strings.ToLower(username)) ||
			(email != "" && user.Email == strings.ToLower(email)) {
			return user, nil
		}
	}
	return models.User{}, db.ErrNotFound
}

func (f *fakeDB) UserExists(_ context.Context, username, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Username == strings.ToLower(username) || user.Email == strings.ToLower(email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDB) UpdateRefreshToken(_ context.Context, id bson.ObjectID, token *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failRefreshWrite {
		return assert.AnError
	}
	user, ok := f.users[id]
	if !ok {
		return db.ErrNotFound
	}
	if token == nil {
		user.RefreshToken = ""
	} else {
		user.RefreshToken = *token
	}
	f.users[id] = user
	f.refreshWrites++
	return nil
}

func (f *fakeDB) storedRefreshToken(id bson.ObjectID) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id].RefreshToken
}

func testTokenConfig() TokenConfig {
	return TokenConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
	}
}

func newAuthFixture(t *testing.T, cfg TokenConfig) (*AuthService, *fakeDB, bson.ObjectID) {
	t.Helper()
	store := newFakeDB()
	user := store.addUser(models.User{Username: "alice", Email: "alice@example.com"})
	return NewAuthService(cfg, store), store, user.ID
}

func tamper(token string) string {
	b := []byte(token)
	last := len(b) - 1
	if b[last] == 'a' {
		b[last] = 'b'
	} else {
		b[last] = 'a'
	}
	return string(b)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	auth, _, userID := newAuthFixture(t, testTokenConfig())

	for _, kind := range []TokenKind{TokenAccess, TokenRefresh} {
		token, err := auth.SignToken(kind, userID)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		got, err := auth.VerifyToken(kind, token)
		require.NoError(t, err)
		assert.Equal(t, userID, got)
	}
}

func TestVerifyWrongKindFails(t *testing.T) {
	auth, _, userID := newAuthFixture(t, testTokenConfig())

	access, err := auth.SignToken(TokenAccess, userID)
	require.NoError(t, err)
	_, err = auth.VerifyToken(TokenRefresh, access)
	assert.Error(t, err)

	refresh, err := auth.SignToken(TokenRefresh, userID)
	require.NoError(t, err)
	_, err = auth.VerifyToken(TokenAccess, refresh)
	assert.Error(t, err)
}

func TestVerifyKindCheckedEvenWithSharedSecret(t *testing.T) {
	cfg := testTokenConfig()
	cfg.RefreshSecret = cfg.AccessSecret
	auth, _, userID := newAuthFixture(t, cfg)

	access, err := auth.SignToken(TokenAccess, userID)
	require.NoError(t, err)

	// signature verifies with the shared secret; the typ claim must
	// still reject it
	_, err = auth.VerifyToken(TokenRefresh, access)
	assert.Error(t, err)
}

func TestVerifyTamperedFails(t *testing.T) {
	auth, _, userID := newAuthFixture(t, testTokenConfig())

	token, err := auth.SignToken(TokenAccess, userID)
	require.NoError(t, err)

	_, err = auth.VerifyToken(TokenAccess, tamper(token))
	assert.Error(t, err)
}

func TestVerifyExpiredStaysRejected(t *testing.T) {
	cfg := testTokenConfig()
	cfg.AccessTTL = -time.Minute
	auth, _, userID := newAuthFixture(t, cfg)

	token, err := auth.SignToken(TokenAccess, userID)
	require.NoError(t, err)

	_, err = auth.VerifyToken(TokenAccess, token)
	require.Error(t, err)

	// rejection is idempotent: still rejected at any later time
	time.Sleep(10 * time.Millisecond)
	_, err = auth.VerifyToken(TokenAccess, token)
	assert.Error(t, err)
}

func TestIssuePersistsRefreshToken(t *testing.T) {
	auth, store, userID := newAuthFixture(t, testTokenConfig())

	pair, err := auth.Issue(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	assert.Equal(t, pair.RefreshToken, store.storedRefreshToken(userID))
}

func TestIssueUnknownUser(t *testing.T) {
	auth, _, _ := newAuthFixture(t, testTokenConfig())

	_, err := auth.Issue(context.Background(), bson.NewObjectID())
	require.Error(t, err)
	assert.Equal(t, 404, models.AsAPIError(err).StatusCode)
}

func TestIssuePersistFailureLeaksNoTokens(t *testing.T) {
	auth, store, userID := newAuthFixture(t, testTokenConfig())
	store.failRefreshWrite = true

	pair, err := auth.Issue(context.Background(), userID)
	require.Error(t, err)
	assert.Equal(t, 500, models.AsAPIError(err).StatusCode)
	assert.Empty(t, pair.AccessToken)
	assert.Empty(t, pair.RefreshToken)
}

func TestAuthenticate(t *testing.T) {
	auth, store, userID := newAuthFixture(t, testTokenConfig())
	ctx := context.Background()

	pair, err := auth.Issue(ctx, userID)
	require.NoError(t, err)

	user, err := auth.Authenticate(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "alice", user.Username)
	// least-privilege read
	assert.Empty(t, user.Password)
	assert.Empty(t, user.RefreshToken)

	_, err = auth.Authenticate(ctx, tamper(pair.AccessToken))
	require.Error(t, err)
	assert.Equal(t, "invalid access token", models.AsAPIError(err).Message)

	// deleted user fails with the same message
	store.mu.Lock()
	delete(store.users, userID)
	store.mu.Unlock()
	_, err = auth.Authenticate(ctx, pair.AccessToken)
	require.Error(t, err)
	assert.Equal(t, "invalid access token", models.AsAPIError(err).Message)
}

func TestRotateChain(t *testing.T) {
	auth, _, userID := newAuthFixture(t, testTokenConfig())
	ctx := context.Background()

	pairA, err := auth.Issue(ctx, userID)
	require.NoError(t, err)

	// jwt expiry has second precision; make sure the rotated token
	// differs from the original
	time.Sleep(1100 * time.Millisecond)

	pairB, err := auth.Rotate(ctx, pairA.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, pairA.RefreshToken, pairB.RefreshToken)

	// the superseded token no longer rotates
	_, err = auth.Rotate(ctx, pairA.RefreshToken)
	require.Error(t, err)
	apiErr := models.AsAPIError(err)
	assert.Equal(t, 401, apiErr.StatusCode)
	assert.Equal(t, "refresh token is expired or used", apiErr.Message)

	// the fresh one does
	_, err = auth.Rotate(ctx, pairB.RefreshToken)
	assert.NoError(t, err)
}

func TestRotateRejections(t *testing.T) {
	auth, store, userID := newAuthFixture(t, testTokenConfig())
	ctx := context.Background()

	_, err := auth.Rotate(ctx, "")
	require.Error(t, err)
	assert.Equal(t, "missing refresh token", models.AsAPIError(err).Message)

	_, err = auth.Rotate(ctx, "not-a-token")
	require.Error(t, err)
	assert.Equal(t, "invalid refresh token", models.AsAPIError(err).Message)

	// structurally valid token for a user that no longer exists yields
	// the same message as a bad signature
	pair, err := auth.Issue(ctx, userID)
	require.NoError(t, err)
	store.mu.Lock()
	delete(store.users, userID)
	store.mu.Unlock()

	_, err = auth.Rotate(ctx, pair.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, "invalid refresh token", models.AsAPIError(err).Message)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	auth, store, userID := newAuthFixture(t, testTokenConfig())
	ctx := context.Background()

	pair, err := auth.Issue(ctx, userID)
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, userID))
	assert.Empty(t, store.storedRefreshToken(userID))

	_, err = auth.Rotate(ctx, pair.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, 401, models.AsAPIError(err).StatusCode)
}

// Two clients holding the same refresh token race on rotation: the
// store's last write wins, and the loser's tokens become unusable on
// their next rotation.
func TestRotateLastWriteWins(t *testing.T) {
	auth, _, userID := newAuthFixture(t, testTokenConfig())
	ctx := context.Background()

	pairA, err := auth.Issue(ctx, userID)
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)

	// a second login overwrites the stored token
	pairB, err := auth.Issue(ctx, userID)
	require.NoError(t, err)
	require.NotEqual(t, pairA.RefreshToken, pairB.RefreshToken)

	// the earlier pair lost the race
	_, err = auth.Rotate(ctx, pairA.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, 401, models.AsAPIError(err).StatusCode)

	_, err = auth.Rotate(ctx, pairB.RefreshToken)
	assert.NoError(t, err)
}
