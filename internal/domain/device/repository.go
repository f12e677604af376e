package device

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, device *Device) error
	GetByID(ctx context.Context, deviceID uuid.UUID) (*Device, error)
	GetByUID(ctx context.Context, deviceUID string) (*Device, error)
	Update(ctx context.Context, device *Device) error
	// AssignRoom rebinds a device to a room. Last write wins.
	AssignRoom(ctx context.Context, deviceID, roomID uuid.UUID) error
	// DeleteInventory hard-deletes a device that is not assigned to a room.
	DeleteInventory(ctx context.Context, deviceID uuid.UUID) error
	ListInventory(ctx context.Context) ([]*Device, error)
	ListByRooms(ctx context.Context, roomIDs []uuid.UUID) ([]*Device, error)
	ListBySite(ctx context.Context, siteID uuid.UUID) ([]*Device, error)
	ListAssigned(ctx context.Context) ([]SiteDevice, error)
	SetLiveness(ctx context.Context, deviceIDs []uuid.UUID, status DeviceStatus, heartbeat time.Time) error
	RecordHeartbeat(ctx context.Context, deviceUID string, firmware *string, at time.Time) error
}
