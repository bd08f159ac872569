package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/AKACHI-4/WeTube/models"
	"github.com/AKACHI-4/WeTube/service"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	// AccessTokenCookie and RefreshTokenCookie name the transport
	// cookies for the token pair.
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"

	identityKey = "currentUser"
)

// respond renders the uniform success envelope.
func respond(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, gin.H{
		"success":    true,
		"statusCode": status,
		"data":       data,
		"message":    message,
	})
}

// abortError renders the uniform error envelope. Errors that are not
// APIErrors collapse to an opaque 500.
func abortError(c *gin.Context, err error) {
	apiErr := models.AsAPIError(err)
	c.AbortWithStatusJSON(apiErr.StatusCode, gin.H{
		"success":    false,
		"statusCode": apiErr.StatusCode,
		"message":    apiErr.Message,
	})
}

func abortBadRequest(c *gin.Context, message string) {
	abortError(c, models.ErrBadRequest(message))
}

// CurrentUser returns the identity attached by the auth gate. It
// panics when called on an unguarded route.
func CurrentUser(c *gin.Context) models.User {
	return c.MustGet(identityKey).(models.User)
}

// setAuthCookies delivers the token pair as httpOnly secure cookies so
// client-side script cannot read or tamper with them.
func setAuthCookies(c *gin.Context, pair models.TokenPair, accessTTL, refreshTTL time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AccessTokenCookie, pair.AccessToken, int(accessTTL.Seconds()), "/", "", true, true)
	c.SetCookie(RefreshTokenCookie, pair.RefreshToken, int(refreshTTL.Seconds()), "/", "", true, true)
}

func clearAuthCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AccessTokenCookie, "", -1, "/", "", true, true)
	c.SetCookie(RefreshTokenCookie, "", -1, "/", "", true, true)
}

// pathID parses an object identifier from a path parameter.
func pathID(c *gin.Context, name string) (bson.ObjectID, bool) {
	id, err := models.ParseID(c.Param(name))
	if err != nil {
		abortBadRequest(c, "invalid "+name)
		return bson.ObjectID{}, false
	}
	return id, true
}

// formMedia opens one optional multipart file. The cleanup func is
// always safe to defer; a missing file yields (nil, noop, nil).
func formMedia(c *gin.Context, field string) (*service.MediaFile, func(), error) {
	noop := func() {}

	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}
		return nil, noop, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, noop, err
	}

	media := &service.MediaFile{
		Filename:    fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
		Reader:      f,
	}
	return media, func() { f.Close() }, nil
}
