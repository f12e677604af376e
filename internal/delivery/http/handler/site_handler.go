package handler

import (
	"net/http"
	"time"

	"bioacoustic-monitor/internal/authz"
	"bioacoustic-monitor/internal/middleware"
	"bioacoustic-monitor/internal/usecase/site"
	"bioacoustic-monitor/pkg/utils"

	"github.com/gin-gonic/gin"
)

type SiteHandler struct {
	service *site.Service
}

func NewSiteHandler(service *site.Service) *SiteHandler {
	return &SiteHandler{service: service}
}

func (h *SiteHandler) RegisterRoutes(router *gin.RouterGroup) {
	sites := router.Group("/sites")
	{
		sites.GET("", middleware.Require(authz.ResourceSite, authz.ActionRead), h.ListSites)
		sites.GET("/:id", middleware.Require(authz.ResourceSite, authz.ActionRead), h.GetSite)
		sites.GET("/:id/detail", middleware.Require(authz.ResourceSite, authz.ActionRead), h.GetSiteDetail)
		sites.PUT("/:id", middleware.Require(authz.ResourceSite, authz.ActionUpdate), h.UpdateSite)
		sites.POST("/:id/buildings", middleware.Require(authz.ResourceBuilding, authz.ActionCreate), h.CreateBuilding)
	}

	buildings := router.Group("/buildings")
	{
		buildings.PUT("/:id", middleware.Require(authz.ResourceBuilding, authz.ActionUpdate), h.UpdateBuilding)
		buildings.DELETE("/:id", middleware.Require(authz.ResourceBuilding, authz.ActionDelete), h.DeleteBuilding)
		buildings.POST("/:id/rooms", middleware.Require(authz.ResourceRoom, authz.ActionCreate), h.CreateRoom)
	}

	rooms := router.Group("/rooms")
	{
		rooms.PUT("/:id", middleware.Require(authz.ResourceRoom, authz.ActionUpdate), h.UpdateRoom)
		rooms.DELETE("/:id", middleware.Require(authz.ResourceRoom, authz.ActionDelete), h.DeleteRoom)
	}
}

func (h *SiteHandler) ListSites(c *gin.Context) {
	var filter site.SiteFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid query parameters")
		return
	}

	sites, err := h.service.ListSites(c.Request.Context(), &filter)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Sites retrieved successfully", sites)
}

func (h *SiteHandler) GetSite(c *gin.Context) {
	siteID, ok := parseID(c, "id", "site")
	if !ok {
		return
	}

	s, err := h.service.GetSite(c.Request.Context(), siteID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Site retrieved successfully", s)
}

func (h *SiteHandler) GetSiteDetail(c *gin.Context) {
	siteID, ok := parseID(c, "id", "site")
	if !ok {
		return
	}

	detail, err := h.service.GetSiteDetail(c.Request.Context(), siteID, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Site detail retrieved successfully", detail)
}

func (h *SiteHandler) UpdateSite(c *gin.Context) {
	siteID, ok := parseID(c, "id", "site")
	if !ok {
		return
	}

	var req site.UpdateSiteRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.service.UpdateSite(c.Request.Context(), siteID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Site updated successfully", s)
}

func (h *SiteHandler) CreateBuilding(c *gin.Context) {
	siteID, ok := parseID(c, "id", "site")
	if !ok {
		return
	}

	var req site.CreateBuildingRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.service.CreateBuilding(c.Request.Context(), siteID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Building created successfully", b)
}

func (h *SiteHandler) UpdateBuilding(c *gin.Context) {
	buildingID, ok := parseID(c, "id", "building")
	if !ok {
		return
	}

	var req site.UpdateBuildingRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.service.UpdateBuilding(c.Request.Context(), buildingID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Building updated successfully", b)
}

func (h *SiteHandler) DeleteBuilding(c *gin.Context) {
	buildingID, ok := parseID(c, "id", "building")
	if !ok {
		return
	}

	if err := h.service.DeleteBuilding(c.Request.Context(), buildingID); err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Building deleted successfully", nil)
}

func (h *SiteHandler) CreateRoom(c *gin.Context) {
	buildingID, ok := parseID(c, "id", "building")
	if !ok {
		return
	}

	var req site.CreateRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.service.CreateRoom(c.Request.Context(), buildingID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Room created successfully", r)
}

func (h *SiteHandler) UpdateRoom(c *gin.Context) {
	roomID, ok := parseID(c, "id", "room")
	if !ok {
		return
	}

	var req site.UpdateRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.service.UpdateRoom(c.Request.Context(), roomID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Room updated successfully", r)
}

func (h *SiteHandler) DeleteRoom(c *gin.Context) {
	roomID, ok := parseID(c, "id", "room")
	if !ok {
		return
	}

	if err := h.service.DeleteRoom(c.Request.Context(), roomID); err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Room deleted successfully", nil)
}
