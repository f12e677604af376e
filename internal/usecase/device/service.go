package device

import (
	"context"
	"strings"
	"time"

	"bioacoustic-monitor/internal/authz"
	domainDevice "bioacoustic-monitor/internal/domain/device"
	domainSite "bioacoustic-monitor/internal/domain/site"
	"bioacoustic-monitor/internal/infrastructure/realtime"
	"bioacoustic-monitor/internal/logger"
	appErrors "bioacoustic-monitor/pkg/errors"
	"bioacoustic-monitor/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const changedTable = "devices"

// Service implements device use cases: claiming, inventory and simulation.
type Service struct {
	deviceRepo   domainDevice.Repository
	roomRepo     domainSite.RoomRepository
	buildingRepo domainSite.BuildingRepository
	publisher    realtime.Publisher
	now          func() time.Time
}

func NewService(deviceRepo domainDevice.Repository, roomRepo domainSite.RoomRepository, buildingRepo domainSite.BuildingRepository, publisher realtime.Publisher) *Service {
	if publisher == nil {
		publisher = realtime.NopPublisher{}
	}
	return &Service{
		deviceRepo:   deviceRepo,
		roomRepo:     roomRepo,
		buildingRepo: buildingRepo,
		publisher:    publisher,
		now:          time.Now,
	}
}

// ClaimDevice binds the device with the given hardware UID to a room.
// Concurrent claims are last-write-wins.
func (s *Service) ClaimDevice(ctx context.Context, req *ClaimDeviceRequest) (*DeviceResponse, error) {
	req.DeviceUID = utils.SanitizeUID(req.DeviceUID)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	room, err := s.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if !room.Active {
		return nil, domainSite.ErrRoomNotFound
	}
	if err := s.checkRoomSite(ctx, room); err != nil {
		return nil, err
	}

	device, err := s.deviceRepo.GetByUID(ctx, req.DeviceUID)
	if err != nil {
		return nil, err
	}

	if err := s.deviceRepo.AssignRoom(ctx, device.ID, room.ID); err != nil {
		return nil, err
	}
	device.RoomID = &room.ID

	logger.Info("Device claimed",
		zap.String("device_id", device.ID.String()),
		zap.String("device_uid", device.DeviceUID),
		zap.String("room_id", room.ID.String()),
		zap.String("event", "device_claimed"),
	)
	s.notify(ctx)

	return ToDeviceResponse(device, s.now()), nil
}

func (s *Service) RegisterDevice(ctx context.Context, req *RegisterDeviceRequest) (*DeviceResponse, error) {
	req.DeviceUID = utils.SanitizeUID(req.DeviceUID)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	device := &domainDevice.Device{
		DeviceUID:       req.DeviceUID,
		Name:            trimmed(req.Name),
		Status:          domainDevice.StatusOffline,
		FirmwareVersion: trimmed(req.FirmwareVersion),
	}
	if err := s.deviceRepo.Create(ctx, device); err != nil {
		return nil, err
	}

	logger.Info("Device registered",
		zap.String("device_id", device.ID.String()),
		zap.String("device_uid", device.DeviceUID),
		zap.String("event", "device_registered"),
	)
	s.notify(ctx)

	return ToDeviceResponse(device, s.now()), nil
}

func (s *Service) ListInventory(ctx context.Context) ([]DeviceResponse, error) {
	devices, err := s.deviceRepo.ListInventory(ctx)
	if err != nil {
		return nil, err
	}
	return toDeviceResponses(devices, s.now()), nil
}

func (s *Service) ListRoomDevices(ctx context.Context, roomID uuid.UUID) ([]DeviceResponse, error) {
	if authz.SiteBound(ctx) {
		room, err := s.roomRepo.GetByID(ctx, roomID)
		if err != nil {
			return nil, err
		}
		if err := s.checkRoomSite(ctx, room); err != nil {
			return nil, err
		}
	}
	devices, err := s.deviceRepo.ListByRooms(ctx, []uuid.UUID{roomID})
	if err != nil {
		return nil, err
	}
	return toDeviceResponses(devices, s.now()), nil
}

func (s *Service) UpdateInventoryDevice(ctx context.Context, deviceID uuid.UUID, req *UpdateInventoryRequest) (*DeviceResponse, error) {
	if req.DeviceUID != nil {
		uid := utils.SanitizeUID(*req.DeviceUID)
		req.DeviceUID = &uid
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	device, err := s.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if !device.InInventory() {
		return nil, domainDevice.ErrDeviceAssigned
	}

	if req.DeviceUID != nil {
		device.DeviceUID = *req.DeviceUID
	}
	if req.Name != nil {
		device.Name = trimmed(req.Name)
	}

	if err := s.deviceRepo.Update(ctx, device); err != nil {
		return nil, err
	}

	logger.Info("Inventory device updated",
		zap.String("device_id", device.ID.String()),
		zap.String("device_uid", device.DeviceUID),
		zap.String("event", "device_updated"),
	)
	s.notify(ctx)

	return ToDeviceResponse(device, s.now()), nil
}

func (s *Service) DeleteInventoryDevice(ctx context.Context, deviceID uuid.UUID) error {
	if err := s.deviceRepo.DeleteInventory(ctx, deviceID); err != nil {
		return err
	}

	logger.Info("Inventory device deleted",
		zap.String("device_id", deviceID.String()),
		zap.String("event", "device_deleted"),
	)
	s.notify(ctx)
	return nil
}

// RecordHeartbeat marks a device online as of at. Devices in maintenance
// are left untouched.
func (s *Service) RecordHeartbeat(ctx context.Context, deviceUID string, firmware *string, at time.Time) error {
	uid := utils.SanitizeUID(deviceUID)
	if uid == "" {
		return appErrors.Validation("device UID is required", nil)
	}
	if at.IsZero() {
		at = s.now()
	}
	return s.deviceRepo.RecordHeartbeat(ctx, uid, trimmed(firmware), at)
}

// checkRoomSite resolves the site of room for site-bound callers.
func (s *Service) checkRoomSite(ctx context.Context, room *domainSite.Room) error {
	if !authz.SiteBound(ctx) {
		return nil
	}
	b, err := s.buildingRepo.GetByID(ctx, room.BuildingID)
	if err != nil {
		return err
	}
	return authz.RequireSite(ctx, b.SiteID)
}

func (s *Service) notify(ctx context.Context) {
	if err := s.publisher.Publish(ctx, changedTable); err != nil {
		logger.Warn("Failed to publish change", zap.String("table", changedTable), zap.Error(err))
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
