package handler

import (
	"bioacoustic-monitor/internal/authz"
	"bioacoustic-monitor/internal/infrastructure/realtime"
	"bioacoustic-monitor/internal/middleware"

	"github.com/gin-gonic/gin"
)

type RealtimeHandler struct {
	hub *realtime.Hub
}

func NewRealtimeHandler(hub *realtime.Hub) *RealtimeHandler {
	return &RealtimeHandler{hub: hub}
}

func (h *RealtimeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/realtime", middleware.Require(authz.ResourceEvent, authz.ActionRead), h.Stream)
}

func (h *RealtimeHandler) Stream(c *gin.Context) {
	h.hub.ServeHTTP(c.Writer, c.Request)
}
