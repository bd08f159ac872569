package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AKACHI-4/WeTube/db"
	"github.com/AKACHI-4/WeTube/forms"
	"github.com/AKACHI-4/WeTube/models"
	"github.com/AKACHI-4/WeTube/service"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type listOnlyDB struct {
	db.Database
}

func (listOnlyDB) ListVideos(_ context.Context, params db.ListVideosParams) (models.VideoPage, error) {
	return models.VideoPage{Page: params.Page, Limit: params.Limit}, nil
}

func newVideoTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	binding.Validator = new(forms.DefaultValidator)

	videos := NewVideoController(service.NewVideoService(listOnlyDB{}, nil, nil))
	r := gin.New()
	identity := func(c *gin.Context) {
		c.Set(identityKey, models.User{ID: bson.NewObjectID()})
		c.Next()
	}
	r.GET("/api/v1/videos", identity, videos.List)
	return r
}

func TestListVideosRejectsOutOfRangeParams(t *testing.T) {
	r := newVideoTestRouter(t)

	for _, query := range []string{"page=0", "page=-1", "limit=0", "limit=101", "sortBy=password"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/videos?"+query, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code, "query %q", query)
		env := decodeEnvelope(t, w)
		assert.False(t, env.Success)
		assert.Equal(t, http.StatusBadRequest, env.StatusCode)
	}
}

func TestListVideosDefaultsApply(t *testing.T) {
	r := newVideoTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/videos", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, float64(1), env.Data["page"])
	assert.Equal(t, float64(10), env.Data["limit"])
}
