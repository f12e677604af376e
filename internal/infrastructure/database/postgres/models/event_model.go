package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EventModel struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time         `gorm:"not null;index"`
	DeviceID   uuid.UUID         `gorm:"type:uuid;not null;index"`
	RoomID     uuid.UUID         `gorm:"type:uuid;not null;index"`
	AlertType  string            `gorm:"type:varchar(50);not null"`
	Confidence float64           `gorm:"not null"`
	Metadata   datatypes.JSONMap `gorm:"not null"`
}

func (EventModel) TableName() string {
	return "events"
}
