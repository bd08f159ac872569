package controllers

import (
	"net/http"

	"github.com/AKACHI-4/WeTube/forms"
	"github.com/AKACHI-4/WeTube/service"
	"github.com/gin-gonic/gin"
)

type TweetController struct {
	tweets *service.TweetService
}

func NewTweetController(tweets *service.TweetService) *TweetController {
	return &TweetController{tweets: tweets}
}

func (ctrl TweetController) Create(c *gin.Context) {
	var form forms.TweetForm
	if err := c.ShouldBind(&form); err != nil {
		abortBadRequest(c, "tweet content is required")
		return
	}

	tweet, err := ctrl.tweets.Create(c.Request.Context(), CurrentUser(c).ID, form.Content)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusCreated, tweet, "Tweet created successfully")
}

func (ctrl TweetController) ForUser(c *gin.Context) {
	owner, ok := pathID(c, "userId")
	if !ok {
		return
	}

	tweets, err := ctrl.tweets.ForUser(c.Request.Context(), owner)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, tweets, "Tweets fetched successfully")
}

func (ctrl TweetController) Update(c *gin.Context) {
	id, ok := pathID(c, "tweetId")
	if !ok {
		return
	}

	var form forms.TweetForm
	if err := c.ShouldBind(&form); err != nil {
		abortBadRequest(c, "tweet content is required")
		return
	}

	tweet, err := ctrl.tweets.Update(c.Request.Context(), id, CurrentUser(c).ID, form.Content)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, tweet, "Tweet updated successfully")
}

func (ctrl TweetController) Delete(c *gin.Context) {
	id, ok := pathID(c, "tweetId")
	if !ok {
		return
	}

	if err := ctrl.tweets.Delete(c.Request.Context(), id, CurrentUser(c).ID); err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{}, "Tweet deleted successfully")
}
