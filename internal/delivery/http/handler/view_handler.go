package handler

import (
	"net/http"

	"bioacoustic-monitor/internal/authz"
	"bioacoustic-monitor/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ViewHandler answers page navigations that made it past the redirect rules.
// The web client renders the page; the server only reports which view and
// role it resolved to.
type ViewHandler struct{}

func NewViewHandler() *ViewHandler {
	return &ViewHandler{}
}

func (h *ViewHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/", h.View)
	router.GET(authz.LoginPath, h.View)
	router.GET("/auth/callback", h.View)
	router.GET(authz.DashboardPath, h.View)
	router.GET(authz.AdminPath, h.View)
	router.GET(authz.AdminPath+"/*view", h.View)
}

func (h *ViewHandler) View(c *gin.Context) {
	data := gin.H{"path": c.Request.URL.Path}
	if p, ok := authz.FromContext(c.Request.Context()); ok {
		data["role"] = p.Role
	}
	utils.SuccessResponse(c, http.StatusOK, "ok", data)
}
