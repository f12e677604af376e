package postgres

import (
	"context"
	"errors"
	"time"

	domainDevice "bioacoustic-monitor/internal/domain/device"
	"bioacoustic-monitor/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const siteDevicesJoin = "JOIN rooms ON rooms.id = devices.room_id AND rooms.active = ? " +
	"JOIN buildings ON buildings.id = rooms.building_id AND buildings.active = ?"

// DeviceRepository implements domain.Device.Repository interface
type DeviceRepository struct {
	db *DB
}

func NewDeviceRepository(db *DB) domainDevice.Repository {
	return &DeviceRepository{db: db}
}

func (r *DeviceRepository) Create(ctx context.Context, d *domainDevice.Device) error {
	now := time.Now()
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	d.CreatedAt = now
	d.UpdatedAt = now

	dbModel := toDeviceModel(d)
	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		return tx.Create(dbModel).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return domainDevice.ErrDeviceAlreadyExists
		}
		return storeError("create device", err)
	}

	return nil
}

func (r *DeviceRepository) GetByID(ctx context.Context, deviceID uuid.UUID) (*domainDevice.Device, error) {
	return r.first(ctx, "get device", "id = ?", deviceID)
}

func (r *DeviceRepository) GetByUID(ctx context.Context, deviceUID string) (*domainDevice.Device, error) {
	return r.first(ctx, "get device by uid", "device_uid = ?", deviceUID)
}

func (r *DeviceRepository) first(ctx context.Context, op, query string, arg interface{}) (*domainDevice.Device, error) {
	var dbModel models.DeviceModel
	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		return tx.Where(query, arg).First(&dbModel).Error
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainDevice.ErrDeviceNotFound
	}
	if err != nil {
		return nil, storeError(op, err)
	}

	return toDeviceEntity(&dbModel), nil
}

func (r *DeviceRepository) Update(ctx context.Context, d *domainDevice.Device) error {
	d.UpdatedAt = time.Now()

	var rows int64
	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&models.DeviceModel{}).
			Where("id = ?", d.ID).
			Updates(map[string]interface{}{
				"device_uid":       d.DeviceUID,
				"name":             d.Name,
				"status":           string(d.Status),
				"firmware_version": d.FirmwareVersion,
				"updated_at":       d.UpdatedAt,
			})
		rows = result.RowsAffected
		return result.Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return domainDevice.ErrDeviceAlreadyExists
		}
		return storeError("update device", err)
	}
	if rows == 0 {
		return domainDevice.ErrDeviceNotFound
	}

	return nil
}

// AssignRoom is an unconditional single-row update. Concurrent claims of
// the same device resolve to whichever commits last.
func (r *DeviceRepository) AssignRoom(ctx context.Context, deviceID, roomID uuid.UUID) error {
	var rows int64
	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&models.DeviceModel{}).
			Where("id = ?", deviceID).
			Updates(map[string]interface{}{
				"room_id":    roomID,
				"updated_at": time.Now(),
			})
		rows = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return storeError("assign device room", err)
	}
	if rows == 0 {
		return domainDevice.ErrDeviceNotFound
	}

	return nil
}

func (r *DeviceRepository) DeleteInventory(ctx context.Context, deviceID uuid.UUID) error {
	var rows int64
	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND room_id IS NULL", deviceID).Delete(&models.DeviceModel{})
		rows = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return storeError("delete device", err)
	}
	if rows == 0 {
		return domainDevice.ErrDeviceNotFound
	}

	return nil
}

func (r *DeviceRepository) ListInventory(ctx context.Context) ([]*domainDevice.Device, error) {
	return r.find(ctx, "list inventory", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("room_id IS NULL").Order("created_at DESC")
	})
}

func (r *DeviceRepository) ListByRooms(ctx context.Context, roomIDs []uuid.UUID) ([]*domainDevice.Device, error) {
	if len(roomIDs) == 0 {
		return []*domainDevice.Device{}, nil
	}
	return r.find(ctx, "list room devices", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("room_id IN ?", roomIDs).Order("device_uid ASC")
	})
}

func (r *DeviceRepository) ListBySite(ctx context.Context, siteID uuid.UUID) ([]*domainDevice.Device, error) {
	return r.find(ctx, "list site devices", func(tx *gorm.DB) *gorm.DB {
		return tx.Joins(siteDevicesJoin, true, true).
			Where("buildings.site_id = ?", siteID).
			Order("devices.device_uid ASC")
	})
}

func (r *DeviceRepository) find(ctx context.Context, op string, scope func(*gorm.DB) *gorm.DB) ([]*domainDevice.Device, error) {
	var dbModels []models.DeviceModel
	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		return scope(tx.Model(&models.DeviceModel{})).Find(&dbModels).Error
	})
	if err != nil {
		return nil, storeError(op, err)
	}

	devices := make([]*domainDevice.Device, len(dbModels))
	for i := range dbModels {
		devices[i] = toDeviceEntity(&dbModels[i])
	}
	return devices, nil
}

type siteDeviceRow struct {
	models.DeviceModel
	SiteID uuid.UUID
}

// ListAssigned returns every device placed in an active room together with
// its site, in a single query.
func (r *DeviceRepository) ListAssigned(ctx context.Context) ([]domainDevice.SiteDevice, error) {
	var rows []siteDeviceRow
	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		return tx.Model(&models.DeviceModel{}).
			Select("devices.*, buildings.site_id AS site_id").
			Joins(siteDevicesJoin, true, true).
			Scan(&rows).Error
	})
	if err != nil {
		return nil, storeError("list assigned devices", err)
	}

	out := make([]domainDevice.SiteDevice, len(rows))
	for i := range rows {
		out[i] = domainDevice.SiteDevice{
			SiteID: rows[i].SiteID,
			Device: toDeviceEntity(&rows[i].DeviceModel),
		}
	}
	return out, nil
}

func (r *DeviceRepository) SetLiveness(ctx context.Context, deviceIDs []uuid.UUID, status domainDevice.DeviceStatus, heartbeat time.Time) error {
	if len(deviceIDs) == 0 {
		return nil
	}

	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		return tx.Model(&models.DeviceModel{}).
			Where("id IN ?", deviceIDs).
			Updates(map[string]interface{}{
				"status":         string(status),
				"last_heartbeat": heartbeat,
				"updated_at":     time.Now(),
			}).Error
	})
	return storeError("set device liveness", err)
}

// RecordHeartbeat marks the device online. A device in maintenance keeps
// its status and the heartbeat is ignored; only an unknown UID is an error.
func (r *DeviceRepository) RecordHeartbeat(ctx context.Context, deviceUID string, firmware *string, at time.Time) error {
	values := map[string]interface{}{
		"status":         string(domainDevice.StatusOnline),
		"last_heartbeat": at,
		"updated_at":     time.Now(),
	}
	if firmware != nil {
		values["firmware_version"] = *firmware
	}

	var rows, known int64
	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&models.DeviceModel{}).
			Where("device_uid = ? AND status <> ?", deviceUID, string(domainDevice.StatusMaintenance)).
			Updates(values)
		if result.Error != nil {
			return result.Error
		}
		rows = result.RowsAffected
		if rows > 0 {
			return nil
		}
		return tx.Model(&models.DeviceModel{}).Where("device_uid = ?", deviceUID).Count(&known).Error
	})
	if err != nil {
		return storeError("record heartbeat", err)
	}
	if rows == 0 && known == 0 {
		return domainDevice.ErrDeviceNotFound
	}

	return nil
}

func toDeviceModel(d *domainDevice.Device) *models.DeviceModel {
	return &models.DeviceModel{
		ID:              d.ID,
		DeviceUID:       d.DeviceUID,
		Name:            d.Name,
		RoomID:          d.RoomID,
		Status:          string(d.Status),
		LastHeartbeat:   d.LastHeartbeat,
		FirmwareVersion: d.FirmwareVersion,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func toDeviceEntity(m *models.DeviceModel) *domainDevice.Device {
	return &domainDevice.Device{
		ID:              m.ID,
		DeviceUID:       m.DeviceUID,
		Name:            m.Name,
		RoomID:          m.RoomID,
		Status:          domainDevice.DeviceStatus(m.Status),
		LastHeartbeat:   m.LastHeartbeat,
		FirmwareVersion: m.FirmwareVersion,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
