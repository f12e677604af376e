package device

import (
	"bytes"
	"context"
	"testing"
	"time"

	"bioacoustic-monitor/internal/authz"
	domainDevice "bioacoustic-monitor/internal/domain/device"
	domainProfile "bioacoustic-monitor/internal/domain/profile"
	domainSite "bioacoustic-monitor/internal/domain/site"
	"bioacoustic-monitor/internal/mocks"
	appErrors "bioacoustic-monitor/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)

type fixture struct {
	svc       *Service
	devices   *mocks.MockDeviceRepository
	rooms     *mocks.MockRoomRepository
	buildings *mocks.MockBuildingRepository
	publisher *mocks.MockPublisher
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		devices:   mocks.NewMockDeviceRepository(ctrl),
		rooms:     mocks.NewMockRoomRepository(ctrl),
		buildings: mocks.NewMockBuildingRepository(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
	}
	f.svc = NewService(f.devices, f.rooms, f.buildings, f.publisher)
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func TestClaimDevice_UnknownUID(t *testing.T) {
	f := newFixture(t)
	roomID := uuid.New()

	f.rooms.EXPECT().GetByID(gomock.Any(), roomID).Return(&domainSite.Room{ID: roomID, Active: true}, nil)
	f.devices.EXPECT().GetByUID(gomock.Any(), "RPI-404").Return(nil, domainDevice.ErrDeviceNotFound)
	// no AssignRoom expectation: nothing may be written

	resp, err := f.svc.ClaimDevice(context.Background(), &ClaimDeviceRequest{DeviceUID: "  rpi-404 ", RoomID: roomID})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domainDevice.ErrDeviceNotFound)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestClaimDevice_AssignsRoom(t *testing.T) {
	f := newFixture(t)
	roomID := uuid.New()
	deviceID := uuid.New()
	oldRoom := uuid.New()

	f.rooms.EXPECT().GetByID(gomock.Any(), roomID).Return(&domainSite.Room{ID: roomID, Active: true}, nil)
	f.devices.EXPECT().GetByUID(gomock.Any(), "RPI-001").
		Return(&domainDevice.Device{ID: deviceID, DeviceUID: "RPI-001", RoomID: &oldRoom, Status: domainDevice.StatusOffline}, nil)
	f.devices.EXPECT().AssignRoom(gomock.Any(), deviceID, roomID).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), "devices").Return(nil)

	resp, err := f.svc.ClaimDevice(context.Background(), &ClaimDeviceRequest{DeviceUID: "RPI-001", RoomID: roomID})

	require.NoError(t, err)
	require.NotNil(t, resp.RoomID)
	assert.Equal(t, roomID, *resp.RoomID)
	assert.False(t, resp.IsOnline)
}

func TestClaimDevice_EmptyUID(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ClaimDevice(context.Background(), &ClaimDeviceRequest{DeviceUID: "   ", RoomID: uuid.New()})

	assert.ErrorIs(t, err, appErrors.ErrValidationFailed)
}

func TestClaimDevice_InactiveRoom(t *testing.T) {
	f := newFixture(t)
	roomID := uuid.New()

	f.rooms.EXPECT().GetByID(gomock.Any(), roomID).Return(&domainSite.Room{ID: roomID, Active: false}, nil)

	_, err := f.svc.ClaimDevice(context.Background(), &ClaimDeviceRequest{DeviceUID: "RPI-001", RoomID: roomID})

	assert.ErrorIs(t, err, domainSite.ErrRoomNotFound)
}

func TestClaimDevice_SiteScoped(t *testing.T) {
	siteID := uuid.New()
	room := &domainSite.Room{ID: uuid.New(), BuildingID: uuid.New(), Active: true}
	ctx := authz.WithPrincipal(context.Background(), authz.Principal{
		UserID:         uuid.New(),
		Role:           domainProfile.RoleSiteManager,
		AssignedSiteID: &siteID,
	})

	t.Run("room in another site", func(t *testing.T) {
		f := newFixture(t)
		f.rooms.EXPECT().GetByID(gomock.Any(), room.ID).Return(room, nil)
		f.buildings.EXPECT().GetByID(gomock.Any(), room.BuildingID).Return(&domainSite.Building{ID: room.BuildingID, SiteID: uuid.New()}, nil)

		_, err := f.svc.ClaimDevice(ctx, &ClaimDeviceRequest{DeviceUID: "RPI-001", RoomID: room.ID})

		assert.ErrorIs(t, err, appErrors.ErrPermissionDenied)
	})

	t.Run("room in own site", func(t *testing.T) {
		f := newFixture(t)
		deviceID := uuid.New()
		f.rooms.EXPECT().GetByID(gomock.Any(), room.ID).Return(room, nil)
		f.buildings.EXPECT().GetByID(gomock.Any(), room.BuildingID).Return(&domainSite.Building{ID: room.BuildingID, SiteID: siteID}, nil)
		f.devices.EXPECT().GetByUID(gomock.Any(), "RPI-001").Return(&domainDevice.Device{ID: deviceID, DeviceUID: "RPI-001"}, nil)
		f.devices.EXPECT().AssignRoom(gomock.Any(), deviceID, room.ID).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), "devices").Return(nil)

		resp, err := f.svc.ClaimDevice(ctx, &ClaimDeviceRequest{DeviceUID: "RPI-001", RoomID: room.ID})

		require.NoError(t, err)
		assert.Equal(t, room.ID, *resp.RoomID)
	})
}

func TestListRoomDevices_OtherSiteDenied(t *testing.T) {
	f := newFixture(t)
	siteID := uuid.New()
	room := &domainSite.Room{ID: uuid.New(), BuildingID: uuid.New(), Active: true}
	ctx := authz.WithPrincipal(context.Background(), authz.Principal{
		UserID:         uuid.New(),
		Role:           domainProfile.RoleViewer,
		AssignedSiteID: &siteID,
	})

	f.rooms.EXPECT().GetByID(gomock.Any(), room.ID).Return(room, nil)
	f.buildings.EXPECT().GetByID(gomock.Any(), room.BuildingID).Return(&domainSite.Building{ID: room.BuildingID, SiteID: uuid.New()}, nil)

	_, err := f.svc.ListRoomDevices(ctx, room.ID)

	assert.ErrorIs(t, err, appErrors.ErrPermissionDenied)
}

func TestRegisterDevice(t *testing.T) {
	f := newFixture(t)

	f.devices.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d *domainDevice.Device) error {
		assert.Equal(t, "RPI-010", d.DeviceUID)
		assert.Equal(t, domainDevice.StatusOffline, d.Status)
		assert.Nil(t, d.RoomID)
		d.ID = uuid.New()
		return nil
	})
	f.publisher.EXPECT().Publish(gomock.Any(), "devices").Return(nil)

	name := " Nave 3 "
	resp, err := f.svc.RegisterDevice(context.Background(), &RegisterDeviceRequest{DeviceUID: "rpi-010", Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Nave 3", *resp.Name)
}

func TestRegisterDevice_Duplicate(t *testing.T) {
	f := newFixture(t)

	f.devices.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domainDevice.ErrDeviceAlreadyExists)

	_, err := f.svc.RegisterDevice(context.Background(), &RegisterDeviceRequest{DeviceUID: "RPI-001"})

	assert.ErrorIs(t, err, appErrors.ErrDuplicateKey)
	assert.EqualError(t, err, "device UID already registered")
}

func TestUpdateInventoryDevice_RejectsAssigned(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	room := uuid.New()

	f.devices.EXPECT().GetByID(gomock.Any(), id).Return(&domainDevice.Device{ID: id, RoomID: &room}, nil)

	uid := "RPI-777"
	_, err := f.svc.UpdateInventoryDevice(context.Background(), id, &UpdateInventoryRequest{DeviceUID: &uid})

	assert.ErrorIs(t, err, domainDevice.ErrDeviceAssigned)
}

func TestDeleteInventoryDevice_PublishesChange(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()

	f.devices.EXPECT().DeleteInventory(gomock.Any(), id).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), "devices").Return(nil)

	require.NoError(t, f.svc.DeleteInventoryDevice(context.Background(), id))
}

func TestDeleteInventoryDevice_AssignedNotPublished(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()

	f.devices.EXPECT().DeleteInventory(gomock.Any(), id).Return(domainDevice.ErrDeviceNotFound)

	assert.ErrorIs(t, f.svc.DeleteInventoryDevice(context.Background(), id), domainDevice.ErrDeviceNotFound)
}

func TestSimulateCriticalFailure_AtMostTwo(t *testing.T) {
	f := newFixture(t)
	siteID := uuid.New()

	devices := []*domainDevice.Device{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}}
	f.devices.EXPECT().ListBySite(gomock.Any(), siteID).Return(devices, nil)
	f.devices.EXPECT().SetLiveness(gomock.Any(), gomock.Len(2), domainDevice.StatusOffline, fixedNow.Add(-time.Hour)).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), "devices").Return(nil)

	resp, err := f.svc.SimulateCriticalFailure(context.Background(), siteID)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Affected)
	assert.Equal(t, ScenarioCriticalFailure, resp.Scenario)
}

func TestSimulateTotalOutage(t *testing.T) {
	f := newFixture(t)
	siteID := uuid.New()

	f.devices.EXPECT().ListBySite(gomock.Any(), siteID).Return([]*domainDevice.Device{{ID: uuid.New()}}, nil)
	f.devices.EXPECT().SetLiveness(gomock.Any(), gomock.Len(1), domainDevice.StatusOffline, fixedNow.Add(-24*time.Hour)).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), "devices").Return(nil)

	resp, err := f.svc.SimulateTotalOutage(context.Background(), siteID)

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Affected)
}

func TestForceSiteOnline_EmptySite(t *testing.T) {
	f := newFixture(t)
	siteID := uuid.New()

	f.devices.EXPECT().ListBySite(gomock.Any(), siteID).Return(nil, nil)

	_, err := f.svc.ForceSiteOnline(context.Background(), siteID)

	assert.ErrorIs(t, err, domainDevice.ErrSiteHasNoDevices)
	assert.ErrorIs(t, err, appErrors.ErrValidationFailed)
}

func TestRecordHeartbeat(t *testing.T) {
	f := newFixture(t)
	fw := "1.4.2"

	f.devices.EXPECT().RecordHeartbeat(gomock.Any(), "RPI-001", &fw, fixedNow).Return(nil)

	require.NoError(t, f.svc.RecordHeartbeat(context.Background(), "rpi-001", &fw, time.Time{}))
}

func TestExportInventory(t *testing.T) {
	f := newFixture(t)
	name := "Spare"

	f.devices.EXPECT().ListInventory(gomock.Any()).Return([]*domainDevice.Device{
		{DeviceUID: "RPI-100", Name: &name, Status: domainDevice.StatusOffline, CreatedAt: fixedNow},
		{DeviceUID: "RPI-101", Status: domainDevice.StatusOffline, CreatedAt: fixedNow},
	}, nil)

	data, err := f.svc.ExportInventory(context.Background())
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytesReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows(inventorySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, inventoryHeaders, rows[0])
	assert.Equal(t, []string{"RPI-100", "Spare", "offline", "", "2026-03-14 15:30"}, rows[1])
	assert.Equal(t, "RPI-101", rows[2][0])
}

func bytesReader(b []byte) *bytes.Reader { return bytes.NewReader(b) }
