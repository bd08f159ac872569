package controllers

import (
	"net/http"

	"github.com/AKACHI-4/WeTube/models"
	"github.com/AKACHI-4/WeTube/service"
	"github.com/gin-gonic/gin"
)

type LikeController struct {
	likes *service.LikeService
}

func NewLikeController(likes *service.LikeService) *LikeController {
	return &LikeController{likes: likes}
}

func (ctrl LikeController) toggle(c *gin.Context, kind models.LikeKind, param string) {
	target, ok := pathID(c, param)
	if !ok {
		return
	}

	liked, err := ctrl.likes.Toggle(c.Request.Context(), kind, target, CurrentUser(c).ID)
	if err != nil {
		abortError(c, err)
		return
	}

	message := "Like removed successfully"
	if liked {
		message = "Liked successfully"
	}
	respond(c, http.StatusOK, gin.H{"liked": liked}, message)
}

func (ctrl LikeController) ToggleVideo(c *gin.Context) {
	ctrl.toggle(c, models.LikeVideo, "videoId")
}

func (ctrl LikeController) ToggleComment(c *gin.Context) {
	ctrl.toggle(c, models.LikeComment, "commentId")
}

func (ctrl LikeController) ToggleTweet(c *gin.Context) {
	ctrl.toggle(c, models.LikeTweet, "tweetId")
}

func (ctrl LikeController) LikedVideos(c *gin.Context) {
	videos, err := ctrl.likes.LikedVideos(c.Request.Context(), CurrentUser(c).ID)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, videos, "Liked videos fetched successfully")
}
