package controllers

import (
	"net/http"

	"github.com/AKACHI-4/WeTube/service"
	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	dashboard *service.DashboardService
}

func NewDashboardController(dashboard *service.DashboardService) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

func (ctrl DashboardController) Stats(c *gin.Context) {
	stats, err := ctrl.dashboard.Stats(c.Request.Context(), CurrentUser(c).ID)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, stats, "Channel stats fetched successfully")
}

func (ctrl DashboardController) Videos(c *gin.Context) {
	videos, err := ctrl.dashboard.Videos(c.Request.Context(), CurrentUser(c).ID)
	if err != nil {
		abortError(c, err)
		return
	}

	respond(c, http.StatusOK, videos, "Channel videos fetched successfully")
}
