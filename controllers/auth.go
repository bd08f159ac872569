package controllers

import (
	"net/http"
	"strings"

	"github.com/AKACHI-4/WeTube/forms"
	"github.com/AKACHI-4/WeTube/models"
	"github.com/AKACHI-4/WeTube/service"
	"github.com/gin-gonic/gin"
)

// AuthController carries the request gate and the token rotation
// endpoint.
type AuthController struct {
	auth *service.AuthService
}

// NewAuthController creates and returns a new AuthController instance
func NewAuthController(auth *service.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// extractToken sources the access token from the cookie first, then
// from the Authorization header.
func extractToken(c *gin.Context) string {
	if token, err := c.Cookie(AccessTokenCookie); err == nil && token != "" {
		return token
	}

	header := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after
	}
	return ""
}

// Authenticated is the request gate: it verifies the presented access
// token, resolves the user and attaches the identity to the request
// context. Any failure is terminal and yields a 401.
func (ctrl AuthController) Authenticated(c *gin.Context) {
	token := extractToken(c)
	if token == "" {
		abortError(c, models.ErrUnauthorized("unauthorized request"))
		return
	}

	user, err := ctrl.auth.Authenticate(c.Request.Context(), token)
	if err != nil {
		abortError(c, err)
		return
	}

	c.Set(identityKey, user)
	c.Next()
}

// RefreshToken exchanges a still-valid refresh token, read from the
// cookie or the request body, for a rotated pair.
func (ctrl AuthController) RefreshToken(c *gin.Context) {
	presented, _ := c.Cookie(RefreshTokenCookie)
	if presented == "" {
		var form forms.RefreshForm
		if err := c.ShouldBind(&form); err == nil {
			presented = form.RefreshToken
		}
	}

	pair, err := ctrl.auth.Rotate(c.Request.Context(), presented)
	if err != nil {
		abortError(c, err)
		return
	}

	setAuthCookies(c, pair, ctrl.auth.AccessTTL(), ctrl.auth.RefreshTTL())
	respond(c, http.StatusOK, pair, "Access token refreshed successfully")
}

// Logout revokes the stored refresh token and clears both cookies.
func (ctrl AuthController) Logout(c *gin.Context) {
	user := CurrentUser(c)

	if err := ctrl.auth.Logout(c.Request.Context(), user.ID); err != nil {
		abortError(c, err)
		return
	}

	clearAuthCookies(c)
	respond(c, http.StatusOK, gin.H{}, "User logged out successfully")
}
