package controllers

import (
	"net/http"

	"github.com/AKACHI-4/WeTube/forms"
	"github.com/AKACHI-4/WeTube/service"
	"github.com/gin-gonic/gin"
)

type VideoController struct {
	videos *service.VideoService
}

func NewVideoController(videos *service.VideoService) *VideoController {
	return &VideoController{videos: videos}
}

func (ctrl VideoController) List(c *gin.Context) {
	var q forms.ListVideosQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, "invalid listing parameters")
		return
	}

	page, err := ctrl.videos.List(c.Request.Context(), q, CurrentUser(c).ID)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, page, "Videos fetched successfully")
}

func (ctrl VideoController) Publish(c *gin.Context) {
	var form forms.PublishVideoForm
	if err := c.ShouldBind(&form); err != nil {
		abortBadRequest(c, "title and description are required")
		return
	}

	videoFile, closeVideo, err := formMedia(c, "videoFile")
	if err != nil {
		abortBadRequest(c, "invalid video upload")
		return
	}
	defer closeVideo()

	thumbnail, closeThumb, err := formMedia(c, "thumbnail")
	if err != nil {
		abortBadRequest(c, "invalid thumbnail upload")
		return
	}
	defer closeThumb()

	video, err := ctrl.videos.Publish(c.Request.Context(), CurrentUser(c).ID, form, videoFile, thumbnail)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusCreated, video, "Video published successfully")
}

func (ctrl VideoController) Get(c *gin.Context) {
	id, ok := pathID(c, "videoId")
	if !ok {
		return
	}

	video, err := ctrl.videos.Watch(c.Request.Context(), id, CurrentUser(c).ID)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, video, "Video fetched successfully")
}

func (ctrl VideoController) Update(c *gin.Context) {
	id, ok := pathID(c, "videoId")
	if !ok {
		return
	}

	var form forms.UpdateVideoForm
	if err := c.ShouldBind(&form); err != nil {
		abortBadRequest(c, "invalid video details")
		return
	}

	thumbnail, closeThumb, err := formMedia(c, "thumbnail")
	if err != nil {
		abortBadRequest(c, "invalid thumbnail upload")
		return
	}
	defer closeThumb()

	video, err := ctrl.videos.Update(c.Request.Context(), id, CurrentUser(c).ID, form, thumbnail)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, video, "Video updated successfully")
}

func (ctrl VideoController) Delete(c *gin.Context) {
	id, ok := pathID(c, "videoId")
	if !ok {
		return
	}

	if err := ctrl.videos.Delete(c.Request.Context(), id, CurrentUser(c).ID); err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{}, "Video deleted successfully")
}

func (ctrl VideoController) TogglePublish(c *gin.Context) {
	id, ok := pathID(c, "videoId")
	if !ok {
		return
	}

	video, err := ctrl.videos.TogglePublish(c.Request.Context(), id, CurrentUser(c).ID)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, video, "Publish status toggled successfully")
}
