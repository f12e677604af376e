package models

import (
	"time"

	"github.com/google/uuid"
)

type ProfileModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrganizationID *uuid.UUID `gorm:"type:uuid;index"`
	AssignedSiteID *uuid.UUID `gorm:"type:uuid"`
	Role           string     `gorm:"type:varchar(50);not null"`
	FullName       *string    `gorm:"type:varchar(255)"`
	Email          string     `gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time  `gorm:"not null"`
	UpdatedAt      time.Time  `gorm:"not null"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}
