package device

import (
	"time"

	"github.com/google/uuid"
)

// Device is an acoustic sensor node. A nil RoomID marks inventory stock
// that has not been claimed into a room yet.
type Device struct {
	ID              uuid.UUID
	DeviceUID       string
	Name            *string
	RoomID          *uuid.UUID
	Status          DeviceStatus
	LastHeartbeat   *time.Time
	FirmwareVersion *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type DeviceStatus string

const (
	StatusOnline      DeviceStatus = "online"
	StatusOffline     DeviceStatus = "offline"
	StatusMaintenance DeviceStatus = "maintenance"
)

func (d *Device) InInventory() bool {
	return d.RoomID == nil
}

// SiteDevice pairs a device with the site its room belongs to.
type SiteDevice struct {
	SiteID uuid.UUID
	Device *Device
}
