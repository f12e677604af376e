package postgres

import (
	"context"
	"errors"
	"time"

	domainProfile "bioacoustic-monitor/internal/domain/profile"
	"bioacoustic-monitor/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct {
	db *DB
}

func NewProfileRepository(db *DB) domainProfile.Repository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByID(ctx context.Context, userID uuid.UUID) (*domainProfile.Profile, error) {
	var dbModel models.ProfileModel
	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		return tx.Where("id = ?", userID).First(&dbModel).Error
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainProfile.ErrProfileNotFound
	}
	if err != nil {
		return nil, storeError("get profile", err)
	}

	return toProfileEntity(&dbModel), nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, p *domainProfile.Profile) error {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"organization_id", "role", "full_name", "email", "updated_at"}),
		}).Create(toProfileModel(p)).Error
	})
	return storeError("upsert profile", err)
}

func toProfileModel(p *domainProfile.Profile) *models.ProfileModel {
	return &models.ProfileModel{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		AssignedSiteID: p.AssignedSiteID,
		Role:           string(p.Role),
		FullName:       p.FullName,
		Email:          p.Email,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toProfileEntity(m *models.ProfileModel) *domainProfile.Profile {
	return &domainProfile.Profile{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		AssignedSiteID: m.AssignedSiteID,
		Role:           domainProfile.Role(m.Role),
		FullName:       m.FullName,
		Email:          m.Email,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
