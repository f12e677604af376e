package site

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, site *Site) error
	GetByID(ctx context.Context, siteID uuid.UUID) (*Site, error)
	List(ctx context.Context, filter *Filter) ([]*Site, error)
	Update(ctx context.Context, site *Site) error
}

// BuildingRepository soft-deletes; listings only return active rows.
type BuildingRepository interface {
	Create(ctx context.Context, building *Building) error
	GetByID(ctx context.Context, buildingID uuid.UUID) (*Building, error)
	ListBySite(ctx context.Context, siteID uuid.UUID) ([]*Building, error)
	Update(ctx context.Context, building *Building) error
	Deactivate(ctx context.Context, buildingID uuid.UUID) error
}

// RoomRepository soft-deletes; listings only return active rows.
type RoomRepository interface {
	Create(ctx context.Context, room *Room) error
	GetByID(ctx context.Context, roomID uuid.UUID) (*Room, error)
	ListByBuildings(ctx context.Context, buildingIDs []uuid.UUID) ([]*Room, error)
	Update(ctx context.Context, room *Room) error
	Deactivate(ctx context.Context, roomID uuid.UUID) error
}

type Filter struct {
	OrganizationID *uuid.UUID
	ActiveOnly     bool
}
