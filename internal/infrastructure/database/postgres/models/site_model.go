package models

import (
	"time"

	"github.com/google/uuid"
)

type SiteModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Location       *string   `gorm:"type:varchar(255)"`
	Active         bool      `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (SiteModel) TableName() string {
	return "sites"
}

type BuildingModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	SiteID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
	BuildingType *string   `gorm:"type:varchar(100)"`
	Capacity     *int      `gorm:"type:integer"`
	Active       bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (BuildingModel) TableName() string {
	return "buildings"
}

type RoomModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuildingID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(255);not null"`
	RoomType   *string   `gorm:"type:varchar(100)"`
	Capacity   *int      `gorm:"type:integer"`
	Active     bool      `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (RoomModel) TableName() string {
	return "rooms"
}
