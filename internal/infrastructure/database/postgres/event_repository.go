package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	domainEvent "bioacoustic-monitor/internal/domain/event"
	"bioacoustic-monitor/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	defaultEventLimit = 20
	maxEventLimit     = 1000
)

type EventRepository struct {
	db *DB
}

func NewEventRepository(db *DB) domainEvent.Repository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, e *domainEvent.Event) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	dbModel, err := toEventModel(e)
	if err != nil {
		return err
	}
	err = r.db.Scoped(ctx, func(tx *gorm.DB) error {
		return tx.Create(dbModel).Error
	})
	return storeError("create event", err)
}

func (r *EventRepository) GetByID(ctx context.Context, eventID uuid.UUID) (*domainEvent.Event, error) {
	var dbModel models.EventModel
	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		return tx.Where("id = ?", eventID).First(&dbModel).Error
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainEvent.ErrEventNotFound
	}
	if err != nil {
		return nil, storeError("get event", err)
	}

	return toEventEntity(&dbModel), nil
}

// List returns events newest first, ties broken by id so a Before cursor
// pages without gaps. A site filter is applied with a sub-select so a site
// with no rooms yields no events.
func (r *EventRepository) List(ctx context.Context, filter *domainEvent.Filter) ([]*domainEvent.Event, error) {
	if filter == nil {
		filter = &domainEvent.Filter{}
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultEventLimit
	}
	if limit > maxEventLimit {
		limit = maxEventLimit
	}

	var dbModels []models.EventModel
	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		q := tx.Model(&models.EventModel{})
		if filter.SiteID != nil {
			siteRooms := tx.Session(&gorm.Session{NewDB: true}).
				Model(&models.RoomModel{}).
				Select("rooms.id").
				Joins("JOIN buildings ON buildings.id = rooms.building_id").
				Where("buildings.site_id = ?", *filter.SiteID)
			q = q.Where("room_id IN (?)", siteRooms)
		}
		if filter.Since != nil {
			q = q.Where("created_at >= ?", *filter.Since)
		}
		if c := filter.Before; c != nil {
			q = q.Where("created_at < ? OR (created_at = ? AND id < ?)", c.CreatedAt, c.CreatedAt, c.ID)
		}
		return q.Order("created_at DESC, id DESC").Limit(limit).Find(&dbModels).Error
	})
	if err != nil {
		return nil, storeError("list events", err)
	}

	events := make([]*domainEvent.Event, len(dbModels))
	for i := range dbModels {
		events[i] = toEventEntity(&dbModels[i])
	}
	return events, nil
}

func toEventModel(e *domainEvent.Event) (*models.EventModel, error) {
	raw, err := json.Marshal(e.Metadata)
	if err != nil {
		return nil, err
	}
	metadata := datatypes.JSONMap{}
	if err := json.Unmarshal(raw, &metadata); err != nil {
		return nil, err
	}

	return &models.EventModel{
		ID:         e.ID,
		CreatedAt:  e.CreatedAt,
		DeviceID:   e.DeviceID,
		RoomID:     e.RoomID,
		AlertType:  string(e.AlertType),
		Confidence: e.Confidence,
		Metadata:   metadata,
	}, nil
}

func toEventEntity(m *models.EventModel) *domainEvent.Event {
	e := &domainEvent.Event{
		ID:         m.ID,
		CreatedAt:  m.CreatedAt,
		DeviceID:   m.DeviceID,
		RoomID:     m.RoomID,
		AlertType:  domainEvent.AlertType(m.AlertType),
		Confidence: m.Confidence,
	}
	// Metadata is free-form; fields that do not fit are dropped.
	if raw, err := json.Marshal(m.Metadata); err == nil {
		_ = json.Unmarshal(raw, &e.Metadata)
	}
	return e
}
