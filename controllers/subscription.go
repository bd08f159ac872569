package controllers

import (
	"net/http"

	"github.com/AKACHI-4/WeTube/service"
	"github.com/gin-gonic/gin"
)

type SubscriptionController struct {
	subs *service.SubscriptionService
}

func NewSubscriptionController(subs *service.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{subs: subs}
}

func (ctrl SubscriptionController) Toggle(c *gin.Context) {
	channel, ok := pathID(c, "channelId")
	if !ok {
		return
	}

	subscribed, err := ctrl.subs.Toggle(c.Request.Context(), channel, CurrentUser(c).ID)
	if err != nil {
		abortError(c, err)
		return
	}

	message := "Unsubscribed successfully"
	if subscribed {
		message = "Subscribed successfully"
	}
	respond(c, http.StatusOK, gin.H{"subscribed": subscribed}, message)
}

func (ctrl SubscriptionController) Subscribers(c *gin.Context) {
	channel, ok := pathID(c, "channelId")
	if !ok {
		return
	}

	users, err := ctrl.subs.Subscribers(c.Request.Context(), channel)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, users, "Subscribers fetched successfully")
}

func (ctrl SubscriptionController) SubscribedChannels(c *gin.Context) {
	subscriber, ok := pathID(c, "subscriberId")
	if !ok {
		return
	}

	users, err := ctrl.subs.SubscribedChannels(c.Request.Context(), subscriber)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, users, "Subscribed channels fetched successfully")
}
