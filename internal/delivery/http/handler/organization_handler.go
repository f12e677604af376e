package handler

import (
	"net/http"

	"bioacoustic-monitor/internal/authz"
	"bioacoustic-monitor/internal/middleware"
	"bioacoustic-monitor/internal/usecase/organization"
	"bioacoustic-monitor/pkg/utils"

	"github.com/gin-gonic/gin"
)

type OrganizationHandler struct {
	service *organization.Service
}

func NewOrganizationHandler(service *organization.Service) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

func (h *OrganizationHandler) RegisterRoutes(router *gin.RouterGroup) {
	orgs := router.Group("/organizations")
	{
		orgs.GET("", middleware.Require(authz.ResourceOrganization, authz.ActionRead), h.ListOrganizations)
		orgs.GET("/:id", middleware.Require(authz.ResourceOrganization, authz.ActionRead), h.GetOrganization)
		orgs.POST("", middleware.Require(authz.ResourceOrganization, authz.ActionCreate), h.CreateOrganization)
		orgs.PUT("/:id", middleware.Require(authz.ResourceOrganization, authz.ActionUpdate), h.UpdateOrganization)
		orgs.POST("/:id/sites", middleware.Require(authz.ResourceSite, authz.ActionCreate), h.CreateSite)
	}
}

func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req organization.CreateOrganizationRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.CreateOrganization(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	message := "Organization created successfully"
	if resp.PartialSuccess {
		message = resp.Warning
	}
	utils.SuccessResponse(c, http.StatusCreated, message, resp)
}

func (h *OrganizationHandler) CreateSite(c *gin.Context) {
	orgID, ok := parseID(c, "id", "organization")
	if !ok {
		return
	}

	var req organization.CreateSiteRequest
	if !bindJSON(c, &req) {
		return
	}

	site, err := h.service.CreateSite(c.Request.Context(), orgID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Site created successfully", site)
}

func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	orgs, err := h.service.ListOrganizations(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Organizations retrieved successfully", orgs)
}

func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	orgID, ok := parseID(c, "id", "organization")
	if !ok {
		return
	}

	org, err := h.service.GetOrganization(c.Request.Context(), orgID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Organization retrieved successfully", org)
}

func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	orgID, ok := parseID(c, "id", "organization")
	if !ok {
		return
	}

	var req organization.UpdateOrganizationRequest
	if !bindJSON(c, &req) {
		return
	}

	org, err := h.service.UpdateOrganization(c.Request.Context(), orgID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Organization updated successfully", org)
}
