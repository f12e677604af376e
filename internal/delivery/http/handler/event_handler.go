package handler

import (
	"net/http"
	"strconv"
	"time"

	"bioacoustic-monitor/internal/authz"
	"bioacoustic-monitor/internal/middleware"
	"bioacoustic-monitor/internal/usecase/event"
	"bioacoustic-monitor/internal/usecase/overview"
	"bioacoustic-monitor/pkg/utils"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	service *event.Service
}

func NewEventHandler(service *event.Service) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(router *gin.RouterGroup) {
	events := router.Group("/events", middleware.Require(authz.ResourceEvent, authz.ActionRead))
	{
		events.GET("", h.ListRecent)
		events.GET("/timeline", h.Timeline)
		events.GET("/summary", h.Summary)
		events.GET("/:id/audio", h.AudioURL)
	}
}

func (h *EventHandler) ListRecent(c *gin.Context) {
	limit, ok := intQuery(c, "limit")
	if !ok {
		return
	}

	events, err := h.service.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Events retrieved successfully", events)
}

func (h *EventHandler) Timeline(c *gin.Context) {
	hours, ok := intQuery(c, "hours")
	if !ok {
		return
	}

	buckets, err := h.service.Timeline(c.Request.Context(), time.Now(), hours)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Timeline retrieved successfully", buckets)
}

func (h *EventHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(), time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Summary retrieved successfully", summary)
}

func (h *EventHandler) AudioURL(c *gin.Context) {
	eventID, ok := parseID(c, "id", "event")
	if !ok {
		return
	}

	resp, err := h.service.AudioURL(c.Request.Context(), eventID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Audio URL generated", resp)
}

func intQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return n, true
}

type OverviewHandler struct {
	service *overview.Service
}

func NewOverviewHandler(service *overview.Service) *OverviewHandler {
	return &OverviewHandler{service: service}
}

func (h *OverviewHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.GET("/overview", middleware.Require(authz.ResourceOverview, authz.ActionRead), h.Overview)
}

func (h *OverviewHandler) Overview(c *gin.Context) {
	resp, err := h.service.Overview(c.Request.Context(), time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Overview retrieved successfully", resp)
}
