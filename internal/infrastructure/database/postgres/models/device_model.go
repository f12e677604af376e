package models

import (
	"time"

	"github.com/google/uuid"
)

type DeviceModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DeviceUID       string     `gorm:"column:device_uid;type:varchar(255);not null;uniqueIndex"`
	Name            *string    `gorm:"type:varchar(255)"`
	RoomID          *uuid.UUID `gorm:"type:uuid;index"`
	Status          string     `gorm:"type:varchar(50);not null"`
	LastHeartbeat   *time.Time `gorm:"type:timestamptz"`
	FirmwareVersion *string    `gorm:"type:varchar(100)"`
	CreatedAt       time.Time  `gorm:"not null"`
	UpdatedAt       time.Time  `gorm:"not null"`
}

func (DeviceModel) TableName() string {
	return "devices"
}
