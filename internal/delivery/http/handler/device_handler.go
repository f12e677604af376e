package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"bioacoustic-monitor/internal/authz"
	"bioacoustic-monitor/internal/middleware"
	"bioacoustic-monitor/internal/usecase/device"
	"bioacoustic-monitor/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DeviceHandler struct {
	service *device.Service
}

func NewDeviceHandler(service *device.Service) *DeviceHandler {
	return &DeviceHandler{service: service}
}

func (h *DeviceHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/devices/claim", middleware.Require(authz.ResourceDevice, authz.ActionClaim), h.ClaimDevice)
	router.GET("/rooms/:id/devices", middleware.Require(authz.ResourceDevice, authz.ActionRead), h.ListRoomDevices)
}

func (h *DeviceHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	inventory := router.Group("/inventory")
	{
		inventory.GET("", middleware.Require(authz.ResourceInventory, authz.ActionRead), h.ListInventory)
		inventory.GET("/export", middleware.Require(authz.ResourceInventory, authz.ActionRead), h.ExportInventory)
		inventory.POST("", middleware.Require(authz.ResourceInventory, authz.ActionCreate), h.RegisterDevice)
		inventory.PUT("/:id", middleware.Require(authz.ResourceInventory, authz.ActionUpdate), h.UpdateInventoryDevice)
		inventory.DELETE("/:id", middleware.Require(authz.ResourceInventory, authz.ActionDelete), h.DeleteInventoryDevice)
	}

	sim := router.Group("/simulator/sites/:id", middleware.Require(authz.ResourceSimulator, authz.ActionUpdate))
	{
		sim.POST("/force-online", h.simulate(h.service.ForceSiteOnline))
		sim.POST("/critical-failure", h.simulate(h.service.SimulateCriticalFailure))
		sim.POST("/total-outage", h.simulate(h.service.SimulateTotalOutage))
	}
}

func (h *DeviceHandler) ClaimDevice(c *gin.Context) {
	var req device.ClaimDeviceRequest
	if !bindJSON(c, &req) {
		return
	}

	d, err := h.service.ClaimDevice(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Device claimed successfully", d)
}

func (h *DeviceHandler) ListRoomDevices(c *gin.Context) {
	roomID, ok := parseID(c, "id", "room")
	if !ok {
		return
	}

	devices, err := h.service.ListRoomDevices(c.Request.Context(), roomID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Devices retrieved successfully", devices)
}

func (h *DeviceHandler) ListInventory(c *gin.Context) {
	devices, err := h.service.ListInventory(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Inventory retrieved successfully", devices)
}

func (h *DeviceHandler) ExportInventory(c *gin.Context) {
	data, err := h.service.ExportInventory(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	filename := fmt.Sprintf("inventory-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *DeviceHandler) RegisterDevice(c *gin.Context) {
	var req device.RegisterDeviceRequest
	if !bindJSON(c, &req) {
		return
	}

	d, err := h.service.RegisterDevice(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Device registered successfully", d)
}

func (h *DeviceHandler) UpdateInventoryDevice(c *gin.Context) {
	deviceID, ok := parseID(c, "id", "device")
	if !ok {
		return
	}

	var req device.UpdateInventoryRequest
	if !bindJSON(c, &req) {
		return
	}

	d, err := h.service.UpdateInventoryDevice(c.Request.Context(), deviceID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Device updated successfully", d)
}

func (h *DeviceHandler) DeleteInventoryDevice(c *gin.Context) {
	deviceID, ok := parseID(c, "id", "device")
	if !ok {
		return
	}

	if err := h.service.DeleteInventoryDevice(c.Request.Context(), deviceID); err != nil {
		respondWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Device deleted successfully", nil)
}

type simulation func(ctx context.Context, siteID uuid.UUID) (*device.SimulationResponse, error)

func (h *DeviceHandler) simulate(run simulation) gin.HandlerFunc {
	return func(c *gin.Context) {
		siteID, ok := parseID(c, "id", "site")
		if !ok {
			return
		}

		resp, err := run(c.Request.Context(), siteID)
		if err != nil {
			respondWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Simulation applied", resp)
	}
}
