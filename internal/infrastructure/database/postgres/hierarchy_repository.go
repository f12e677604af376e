package postgres

import (
	"context"
	"errors"
	"time"

	domainSite "bioacoustic-monitor/internal/domain/site"
	"bioacoustic-monitor/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BuildingRepository struct {
	db *DB
}

func NewBuildingRepository(db *DB) domainSite.BuildingRepository {
	return &BuildingRepository{db: db}
}

func (r *BuildingRepository) Create(ctx context.Context, b *domainSite.Building) error {
	now := time.Now()
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedAt = now
	b.UpdatedAt = now

	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		return tx.Create(toBuildingModel(b)).Error
	})
	return storeError("create building", err)
}

func (r *BuildingRepository) GetByID(ctx context.Context, buildingID uuid.UUID) (*domainSite.Building, error) {
	var dbModel models.BuildingModel
	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		return tx.Where("id = ?", buildingID).First(&dbModel).Error
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainSite.ErrBuildingNotFound
	}
	if err != nil {
		return nil, storeError("get building", err)
	}

	return toBuildingEntity(&dbModel), nil
}

func (r *BuildingRepository) ListBySite(ctx context.Context, siteID uuid.UUID) ([]*domainSite.Building, error) {
	var dbModels []models.BuildingModel
	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		return tx.Where("site_id = ? AND active = ?", siteID, true).
			Order("name ASC").
			Find(&dbModels).Error
	})
	if err != nil {
		return nil, storeError("list buildings", err)
	}

	buildings := make([]*domainSite.Building, len(dbModels))
	for i := range dbModels {
		buildings[i] = toBuildingEntity(&dbModels[i])
	}
	return buildings, nil
}

func (r *BuildingRepository) Update(ctx context.Context, b *domainSite.Building) error {
	b.UpdatedAt = time.Now()
	return r.updates(ctx, "update building", b.ID, map[string]interface{}{
		"name":          b.Name,
		"building_type": b.BuildingType,
		"capacity":      b.Capacity,
		"updated_at":    b.UpdatedAt,
	})
}

// Deactivate clears the active flag. Rooms under the building are left alone.
func (r *BuildingRepository) Deactivate(ctx context.Context, buildingID uuid.UUID) error {
	return r.updates(ctx, "deactivate building", buildingID, map[string]interface{}{
		"active":     false,
		"updated_at": time.Now(),
	})
}

func (r *BuildingRepository) updates(ctx context.Context, op string, id uuid.UUID, values map[string]interface{}) error {
	var rows int64
	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&models.BuildingModel{}).Where("id = ?", id).Updates(values)
		rows = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return storeError(op, err)
	}
	if rows == 0 {
		return domainSite.ErrBuildingNotFound
	}
	return nil
}

type RoomRepository struct {
	db *DB
}

func NewRoomRepository(db *DB) domainSite.RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *domainSite.Room) error {
	now := time.Now()
	if room.ID == uuid.Nil {
		room.ID = uuid.New()
	}
	room.CreatedAt = now
	room.UpdatedAt = now

	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		return tx.Create(toRoomModel(room)).Error
	})
	return storeError("create room", err)
}

func (r *RoomRepository) GetByID(ctx context.Context, roomID uuid.UUID) (*domainSite.Room, error) {
	var dbModel models.RoomModel
	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		return tx.Where("id = ?", roomID).First(&dbModel).Error
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainSite.ErrRoomNotFound
	}
	if err != nil {
		return nil, storeError("get room", err)
	}

	return toRoomEntity(&dbModel), nil
}

// ListByBuildings loads the active rooms of several buildings in one query.
func (r *RoomRepository) ListByBuildings(ctx context.Context, buildingIDs []uuid.UUID) ([]*domainSite.Room, error) {
	if len(buildingIDs) == 0 {
		return []*domainSite.Room{}, nil
	}

	var dbModels []models.RoomModel
	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		return tx.Where("building_id IN ? AND active = ?", buildingIDs, true).
			Order("name ASC").
			Find(&dbModels).Error
	})
	if err != nil {
		return nil, storeError("list rooms", err)
	}

	rooms := make([]*domainSite.Room, len(dbModels))
	for i := range dbModels {
		rooms[i] = toRoomEntity(&dbModels[i])
	}
	return rooms, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domainSite.Room) error {
	room.UpdatedAt = time.Now()
	return r.updates(ctx, "update room", room.ID, map[string]interface{}{
		"name":       room.Name,
		"room_type":  room.RoomType,
		"capacity":   room.Capacity,
		"updated_at": room.UpdatedAt,
	})
}

// Deactivate clears the active flag. Devices keep their room binding.
func (r *RoomRepository) Deactivate(ctx context.Context, roomID uuid.UUID) error {
	return r.updates(ctx, "deactivate room", roomID, map[string]interface{}{
		"active":     false,
		"updated_at": time.Now(),
	})
}

func (r *RoomRepository) updates(ctx context.Context, op string, id uuid.UUID, values map[string]interface{}) error {
	var rows int64
	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&models.RoomModel{}).Where("id = ?", id).Updates(values)
		rows = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return storeError(op, err)
	}
	if rows == 0 {
		return domainSite.ErrRoomNotFound
	}
	return nil
}

func toBuildingModel(b *domainSite.Building) *models.BuildingModel {
	return &models.BuildingModel{
		ID:           b.ID,
		SiteID:       b.SiteID,
		Name:         b.Name,
		BuildingType: b.BuildingType,
		Capacity:     b.Capacity,
		Active:       b.Active,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func toBuildingEntity(m *models.BuildingModel) *domainSite.Building {
	return &domainSite.Building{
		ID:           m.ID,
		SiteID:       m.SiteID,
		Name:         m.Name,
		BuildingType: m.BuildingType,
		Capacity:     m.Capacity,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toRoomModel(room *domainSite.Room) *models.RoomModel {
	return &models.RoomModel{
		ID:         room.ID,
		BuildingID: room.BuildingID,
		Name:       room.Name,
		RoomType:   room.RoomType,
		Capacity:   room.Capacity,
		Active:     room.Active,
		CreatedAt:  room.CreatedAt,
		UpdatedAt:  room.UpdatedAt,
	}
}

func toRoomEntity(m *models.RoomModel) *domainSite.Room {
	return &domainSite.Room{
		ID:         m.ID,
		BuildingID: m.BuildingID,
		Name:       m.Name,
		RoomType:   m.RoomType,
		Capacity:   m.Capacity,
		Active:     m.Active,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
