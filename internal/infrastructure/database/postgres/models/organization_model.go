package models

import (
	"time"

	"github.com/google/uuid"
)

type OrganizationModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string    `gorm:"type:varchar(255);not null"`
	Slug               string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	SubscriptionPlan   string    `gorm:"type:varchar(50);not null"`
	SubscriptionStatus string    `gorm:"type:varchar(50);not null"`
	BillingEmail       *string   `gorm:"type:varchar(255)"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

func (OrganizationModel) TableName() string {
	return "organizations"
}
