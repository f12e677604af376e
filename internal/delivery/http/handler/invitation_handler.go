package handler

import (
	"net/http"

	"bioacoustic-monitor/internal/authz"
	"bioacoustic-monitor/internal/middleware"
	"bioacoustic-monitor/internal/usecase/invite"
	"bioacoustic-monitor/pkg/utils"

	"github.com/gin-gonic/gin"
)

type InvitationHandler struct {
	service *invite.Service
}

func NewInvitationHandler(service *invite.Service) *InvitationHandler {
	return &InvitationHandler{service: service}
}

func (h *InvitationHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.POST("/invitations", middleware.Require(authz.ResourceInvitation, authz.ActionCreate), h.Invite)
}

// Invite replies with the bare invitation result rather than the usual
// envelope; the admin UI reads organization from the top level.
func (h *InvitationHandler) Invite(c *gin.Context) {
	var req invite.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "email and organization_id are required")
		return
	}

	resp, err := h.service.Invite(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
