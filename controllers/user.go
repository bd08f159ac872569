package controllers

import (
	"net/http"

	"github.com/AKACHI-4/WeTube/forms"
	"github.com/AKACHI-4/WeTube/service"
	"github.com/gin-gonic/gin"
)

// UserController handles registration, login and profile endpoints
type UserController struct {
	users *service.UserService
	auth  *service.AuthService
}

var userForm = new(forms.UserForm)

// NewUserController creates and returns a new UserController instance
func NewUserController(users *service.UserService, auth *service.AuthService) *UserController {
	return &UserController{users: users, auth: auth}
}

// Register handles the multipart registration request: text fields
// plus a required avatar and an optional cover image.
func (ctrl UserController) Register(c *gin.Context) {
	var form forms.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		abortBadRequest(c, userForm.Message(err))
		return
	}

	avatar, closeAvatar, err := formMedia(c, "avatar")
	if err != nil {
		abortBadRequest(c, "invalid avatar upload")
		return
	}
	defer closeAvatar()

	cover, closeCover, err := formMedia(c, "coverImage")
	if err != nil {
		abortBadRequest(c, "invalid cover image upload")
		return
	}
	defer closeCover()

	user, err := ctrl.users.Register(c.Request.Context(), form, avatar, cover)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusCreated, user, "User registered successfully")
}

// Login authenticates credentials and delivers the token pair as
// cookies and in the body.
func (ctrl UserController) Login(c *gin.Context) {
	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		abortBadRequest(c, userForm.Message(err))
		return
	}

	user, pair, err := ctrl.users.Login(c.Request.Context(), form)
	if err != nil {
		abortError(c, err)
		return
	}

	setAuthCookies(c, pair, ctrl.auth.AccessTTL(), ctrl.auth.RefreshTTL())
	respond(c, http.StatusOK, gin.H{
		"user":         user,
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "User logged in successfully")
}

func (ctrl UserController) ChangePassword(c *gin.Context) {
	var form forms.ChangePasswordForm
	if err := c.ShouldBind(&form); err != nil {
		abortBadRequest(c, userForm.Message(err))
		return
	}

	if err := ctrl.users.ChangePassword(c.Request.Context(), CurrentUser(c).ID, form); err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{}, "Password changed successfully")
}

func (ctrl UserController) Current(c *gin.Context) {
	respond(c, http.StatusOK, CurrentUser(c), "User fetched successfully")
}

func (ctrl UserController) UpdateAccount(c *gin.Context) {
	var form forms.UpdateAccountForm
	if err := c.ShouldBind(&form); err != nil {
		abortBadRequest(c, userForm.Message(err))
		return
	}

	user, err := ctrl.users.UpdateAccount(c.Request.Context(), CurrentUser(c).ID, form)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, user, "Account details updated successfully")
}

func (ctrl UserController) UpdateAvatar(c *gin.Context) {
	file, closeFile, err := formMedia(c, "avatar")
	if err != nil {
		abortBadRequest(c, "invalid avatar upload")
		return
	}
	defer closeFile()

	user, err := ctrl.users.UpdateAvatar(c.Request.Context(), CurrentUser(c).ID, file)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, user, "Avatar updated successfully")
}

func (ctrl UserController) UpdateCoverImage(c *gin.Context) {
	file, closeFile, err := formMedia(c, "coverImage")
	if err != nil {
		abortBadRequest(c, "invalid cover image upload")
		return
	}
	defer closeFile()

	user, err := ctrl.users.UpdateCoverImage(c.Request.Context(), CurrentUser(c).ID, file)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, user, "Cover image updated successfully")
}

// ChannelProfile serves the aggregated public channel view for a
// username.
func (ctrl UserController) ChannelProfile(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		abortBadRequest(c, "username is required")
		return
	}

	profile, err := ctrl.users.ChannelProfile(c.Request.Context(), username, CurrentUser(c).ID)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, profile, "Channel profile fetched successfully")
}

func (ctrl UserController) WatchHistory(c *gin.Context) {
	history, err := ctrl.users.WatchHistory(c.Request.Context(), CurrentUser(c).ID)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, history, "Watch history fetched successfully")
}
