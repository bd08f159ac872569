package controllers

import (
	"net/http"

	"github.com/AKACHI-4/WeTube/forms"
	"github.com/AKACHI-4/WeTube/service"
	"github.com/gin-gonic/gin"
)

type CommentController struct {
	comments *service.CommentService
}

func NewCommentController(comments *service.CommentService) *CommentController {
	return &CommentController{comments: comments}
}

func (ctrl CommentController) List(c *gin.Context) {
	videoID, ok := pathID(c, "videoId")
	if !ok {
		return
	}

	var q forms.ListCommentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, "invalid listing parameters")
		return
	}

	page, err := ctrl.comments.List(c.Request.Context(), videoID, q.Page, q.Limit)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, page, "Comments fetched successfully")
}

func (ctrl CommentController) Add(c *gin.Context) {
	videoID, ok := pathID(c, "videoId")
	if !ok {
		return
	}

	var form forms.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		abortBadRequest(c, "comment content is required")
		return
	}

	comment, err := ctrl.comments.Add(c.Request.Context(), videoID, CurrentUser(c).ID, form.Content)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusCreated, comment, "Comment added successfully")
}

func (ctrl CommentController) Update(c *gin.Context) {
	id, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	var form forms.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		abortBadRequest(c, "comment content is required")
		return
	}

	comment, err := ctrl.comments.Update(c.Request.Context(), id, CurrentUser(c).ID, form.Content)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, comment, "Comment updated successfully")
}

func (ctrl CommentController) Delete(c *gin.Context) {
	id, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	if err := ctrl.comments.Delete(c.Request.Context(), id, CurrentUser(c).ID); err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{}, "Comment deleted successfully")
}
