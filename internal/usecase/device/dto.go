package device

import (
	"time"

	domainDevice "bioacoustic-monitor/internal/domain/device"
	"bioacoustic-monitor/internal/fleet"

	"github.com/google/uuid"
)

type ClaimDeviceRequest struct {
	DeviceUID string    `json:"device_uid" validate:"required,max=64"`
	RoomID    uuid.UUID `json:"room_id" validate:"required"`
}

type RegisterDeviceRequest struct {
	DeviceUID       string  `json:"device_uid" validate:"required,max=64"`
	Name            *string `json:"name" validate:"omitempty,max=100"`
	FirmwareVersion *string `json:"firmware_version" validate:"omitempty,max=50"`
}

type UpdateInventoryRequest struct {
	DeviceUID *string `json:"device_uid" validate:"omitempty,min=1,max=64"`
	Name      *string `json:"name" validate:"omitempty,max=100"`
}

type DeviceResponse struct {
	ID              uuid.UUID                 `json:"id"`
	DeviceUID       string                    `json:"device_uid"`
	Name            *string                   `json:"name"`
	RoomID          *uuid.UUID                `json:"room_id"`
	Status          domainDevice.DeviceStatus `json:"status"`
	LastHeartbeat   *time.Time                `json:"last_heartbeat"`
	FirmwareVersion *string                   `json:"firmware_version"`
	IsOnline        bool                      `json:"is_online"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}

type SimulationResponse struct {
	SiteID   uuid.UUID `json:"site_id"`
	Scenario string    `json:"scenario"`
	Affected int       `json:"affected"`
}

func ToDeviceResponse(d *domainDevice.Device, now time.Time) *DeviceResponse {
	if d == nil {
		return nil
	}
	return &DeviceResponse{
		ID:              d.ID,
		DeviceUID:       d.DeviceUID,
		Name:            d.Name,
		RoomID:          d.RoomID,
		Status:          d.Status,
		LastHeartbeat:   d.LastHeartbeat,
		FirmwareVersion: d.FirmwareVersion,
		IsOnline:        fleet.IsEffectivelyOnline(d, now),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func toDeviceResponses(devices []*domainDevice.Device, now time.Time) []DeviceResponse {
	out := make([]DeviceResponse, len(devices))
	for i, d := range devices {
		out[i] = *ToDeviceResponse(d, now)
	}
	return out
}
