package controllers

import (
	"net/http"

	"github.com/AKACHI-4/WeTube/forms"
	"github.com/AKACHI-4/WeTube/service"
	"github.com/gin-gonic/gin"
)

type PlaylistController struct {
	playlists *service.PlaylistService
}

func NewPlaylistController(playlists *service.PlaylistService) *PlaylistController {
	return &PlaylistController{playlists: playlists}
}

func (ctrl PlaylistController) Create(c *gin.Context) {
	var form forms.PlaylistForm
	if err := c.ShouldBind(&form); err != nil {
		abortBadRequest(c, "playlist name is required")
		return
	}

	playlist, err := ctrl.playlists.Create(c.Request.Context(), CurrentUser(c).ID, form)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusCreated, playlist, "Playlist created successfully")
}

func (ctrl PlaylistController) Get(c *gin.Context) {
	id, ok := pathID(c, "playlistId")
	if !ok {
		return
	}

	playlist, err := ctrl.playlists.Get(c.Request.Context(), id)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, playlist, "Playlist fetched successfully")
}

func (ctrl PlaylistController) ForUser(c *gin.Context) {
	owner, ok := pathID(c, "userId")
	if !ok {
		return
	}

	playlists, err := ctrl.playlists.ForUser(c.Request.Context(), owner)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, playlists, "Playlists fetched successfully")
}

func (ctrl PlaylistController) Update(c *gin.Context) {
	id, ok := pathID(c, "playlistId")
	if !ok {
		return
	}

	var form forms.PlaylistForm
	if err := c.ShouldBind(&form); err != nil {
		abortBadRequest(c, "playlist name is required")
		return
	}

	playlist, err := ctrl.playlists.Update(c.Request.Context(), id, CurrentUser(c).ID, form)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, playlist, "Playlist updated successfully")
}

func (ctrl PlaylistController) Delete(c *gin.Context) {
	id, ok := pathID(c, "playlistId")
	if !ok {
		return
	}

	if err := ctrl.playlists.Delete(c.Request.Context(), id, CurrentUser(c).ID); err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{}, "Playlist deleted successfully")
}

func (ctrl PlaylistController) AddVideo(c *gin.Context) {
	playlistID, ok := pathID(c, "playlistId")
	if !ok {
		return
	}
	videoID, ok := pathID(c, "videoId")
	if !ok {
		return
	}

	playlist, err := ctrl.playlists.AddVideo(c.Request.Context(), playlistID, videoID, CurrentUser(c).ID)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, playlist, "Video added to playlist successfully")
}

func (ctrl PlaylistController) RemoveVideo(c *gin.Context) {
	playlistID, ok := pathID(c, "playlistId")
	if !ok {
		return
	}
	videoID, ok := pathID(c, "videoId")
	if !ok {
		return
	}

	playlist, err := ctrl.playlists.RemoveVideo(c.Request.Context(), playlistID, videoID, CurrentUser(c).ID)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, playlist, "Video removed from playlist successfully")
}
