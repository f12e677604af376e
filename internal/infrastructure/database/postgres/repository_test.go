package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"bioacoustic-monitor/internal/authz"
	domainDevice "bioacoustic-monitor/internal/domain/device"
	domainEvent "bioacoustic-monitor/internal/domain/event"
	domainOrg "bioacoustic-monitor/internal/domain/organization"
	domainProfile "bioacoustic-monitor/internal/domain/profile"
	appErrors "bioacoustic-monitor/pkg/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	return Wrap(gdb, DriverPostgres), mock
}

var deviceColumns = []string{"id", "device_uid", "name", "room_id", "status", "last_heartbeat", "firmware_version", "created_at", "updated_at"}

func TestDeviceRepository_GetByUID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "devices" WHERE device_uid = $1`)).
		WillReturnRows(sqlmock.NewRows(deviceColumns))

	d, err := repo.GetByUID(context.Background(), "RPI-404")

	assert.Nil(t, d)
	assert.ErrorIs(t, err, domainDevice.ErrDeviceNotFound)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository_GetByUID_Found(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDeviceRepository(db)

	id := uuid.New()
	roomID := uuid.New()
	hb := time.Now().Add(-time.Minute)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "devices" WHERE device_uid = $1`)).
		WillReturnRows(sqlmock.NewRows(deviceColumns).
			AddRow(id.String(), "RPI-001", "Nave 1", roomID.String(), "online", hb, "1.2.0", time.Now(), time.Now()))

	d, err := repo.GetByUID(context.Background(), "RPI-001")

	require.NoError(t, err)
	assert.Equal(t, id, d.ID)
	assert.Equal(t, "RPI-001", d.DeviceUID)
	require.NotNil(t, d.RoomID)
	assert.Equal(t, roomID, *d.RoomID)
	assert.Equal(t, domainDevice.StatusOnline, d.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository_Create_DuplicateUID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "devices"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := repo.Create(context.Background(), &domainDevice.Device{DeviceUID: "RPI-001", Status: domainDevice.StatusOffline})

	assert.ErrorIs(t, err, domainDevice.ErrDeviceAlreadyExists)
	assert.ErrorIs(t, err, appErrors.ErrDuplicateKey)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository_AssignRoom(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "devices" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AssignRoom(context.Background(), uuid.New(), uuid.New())

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository_AssignRoom_NoRow(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "devices" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AssignRoom(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domainDevice.ErrDeviceNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository_RecordHeartbeat_MaintenanceIgnored(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "devices" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "devices" WHERE device_uid = $1`)).
		WithArgs("RPI-001").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := repo.RecordHeartbeat(context.Background(), "RPI-001", nil, time.Now())

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository_RecordHeartbeat_UnknownUID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "devices" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "devices" WHERE device_uid = $1`)).
		WithArgs("RPI-404").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	err := repo.RecordHeartbeat(context.Background(), "RPI-404", nil, time.Now())

	assert.ErrorIs(t, err, domainDevice.ErrDeviceNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository_DeleteInventory_OnlyUnassigned(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "devices" WHERE id = $1 AND room_id IS NULL`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteInventory(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domainDevice.ErrDeviceNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository_ListAssigned(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDeviceRepository(db)

	siteID := uuid.New()
	roomID := uuid.New()
	columns := append(append([]string{}, deviceColumns...), "site_id")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT devices.*, buildings.site_id AS site_id FROM "devices" JOIN rooms`)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(uuid.NewString(), "RPI-001", nil, roomID.String(), "online", time.Now(), nil, time.Now(), time.Now(), siteID.String()).
			AddRow(uuid.NewString(), "RPI-002", nil, roomID.String(), "offline", nil, nil, time.Now(), time.Now(), siteID.String()))

	placed, err := repo.ListAssigned(context.Background())

	require.NoError(t, err)
	require.Len(t, placed, 2)
	assert.Equal(t, siteID, placed[0].SiteID)
	assert.Equal(t, "RPI-002", placed[1].Device.DeviceUID)
	assert.Nil(t, placed[1].Device.LastHeartbeat)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository_TransientFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "devices" WHERE room_id IS NULL`)).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.ListInventory(context.Background())

	assert.ErrorIs(t, err, appErrors.ErrTransientIO)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrganizationRepository_PermissionDenied(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOrganizationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "organizations"`)).
		WillReturnError(&pgconn.PgError{Code: "42501", Message: "permission denied for table organizations"})

	_, err := repo.List(context.Background())

	assert.ErrorIs(t, err, appErrors.ErrPermissionDenied)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrganizationRepository_Update_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOrganizationRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "organizations" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domainOrg.Organization{ID: uuid.New(), Name: "Granja"})

	assert.ErrorIs(t, err, domainOrg.ErrOrganizationNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrganizationRepository_Create_SlugTaken(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewOrganizationRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "organizations"`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &domainOrg.Organization{Name: "Granja", Slug: "granja"})

	assert.ErrorIs(t, err, domainOrg.ErrSlugTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_List_SiteScoped(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewEventRepository(db)

	siteID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "events" WHERE room_id IN \(SELECT rooms\.id FROM "rooms" JOIN buildings ON buildings\.id = rooms\.building_id WHERE buildings\.site_id = .+\) ORDER BY created_at DESC, id DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "device_id", "room_id", "alert_type", "confidence", "metadata"}).
			AddRow(uuid.NewString(), time.Now(), uuid.NewString(), uuid.NewString(), "high_pitch", 0.92, `{"rms":0.41,"storage_path":"alerts/RPI-001/clip.wav"}`))

	events, err := repo.List(context.Background(), &domainEvent.Filter{SiteID: &siteID})

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domainEvent.AlertHighPitch, events[0].AlertType)
	require.NotNil(t, events[0].Metadata.RMS)
	assert.InDelta(t, 0.41, *events[0].Metadata.RMS, 1e-9)
	require.NotNil(t, events[0].Metadata.StoragePath)
	assert.Equal(t, "alerts/RPI-001/clip.wav", *events[0].Metadata.StoragePath)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_List_PagesAfterCursor(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewEventRepository(db)

	since := time.Date(2026, 3, 13, 16, 0, 0, 0, time.UTC)
	cursor := &domainEvent.Cursor{CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC), ID: uuid.New()}
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "events" WHERE created_at >= $1 AND (created_at < $2 OR (created_at = $3 AND id < $4)) ORDER BY created_at DESC, id DESC LIMIT $5`)).
		WithArgs(since, cursor.CreatedAt, cursor.CreatedAt, cursor.ID, 1000).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "device_id", "room_id", "alert_type", "confidence", "metadata"}))

	events, err := repo.List(context.Background(), &domainEvent.Filter{Since: &since, Before: cursor, Limit: 1000})

	require.NoError(t, err)
	assert.Empty(t, events)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestScoped_SetsClaimsForPrincipal(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProfileRepository(db)

	orgID := uuid.New()
	userID := uuid.New()
	ctx := authz.WithPrincipal(context.Background(), authz.Principal{
		UserID:         userID,
		Role:           domainProfile.RoleOrgAdmin,
		OrganizationID: &orgID,
	})

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`SELECT set_config('app.user_id', $1, true)`)).
		WithArgs(userID.String(), "org_admin", orgID.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "profiles" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "role", "email"}).
			AddRow(userID.String(), orgID.String(), "org_admin", "admin@granja.io"))
	mock.ExpectCommit()

	p, err := repo.GetByID(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, domainProfile.RoleOrgAdmin, p.Role)
	require.NotNil(t, p.OrganizationID)
	assert.Equal(t, orgID, *p.OrganizationID)
	require.NoError(t, mock.ExpectationsWereMet())
}
