package site

import (
	"time"

	"github.com/google/uuid"
)

// Site is a physical farm location owned by an organization.
type Site struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	Location       *string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Building is a structure at a site, e.g. "Maternidad".
type Building struct {
	ID           uuid.UUID
	SiteID       uuid.UUID
	Name         string
	BuildingType *string
	Capacity     *int
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Room is an area within a building. Devices are claimed into rooms.
type Room struct {
	ID         uuid.UUID
	BuildingID uuid.UUID
	Name       string
	RoomType   *string
	Capacity   *int
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
