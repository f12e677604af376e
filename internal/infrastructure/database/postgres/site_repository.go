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

type SiteRepository struct {
	db *DB
}

func NewSiteRepository(db *DB) domainSite.Repository {
	return &SiteRepository{db: db}
}

func (r *SiteRepository) Create(ctx context.Context, s *domainSite.Site) error {
	now := time.Now()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt = now
	s.UpdatedAt = now

	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		return tx.Create(toSiteModel(s)).Error
	})
	return storeError("create site", err)
}

func (r *SiteRepository) GetByID(ctx context.Context, siteID uuid.UUID) (*domainSite.Site, error) {
	var dbModel models.SiteModel
	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		return tx.Where("id = ?", siteID).First(&dbModel).Error
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainSite.ErrSiteNotFound
	}
	if err != nil {
		return nil, storeError("get site", err)
	}

	return toSiteEntity(&dbModel), nil
}

func (r *SiteRepository) List(ctx context.Context, filter *domainSite.Filter) ([]*domainSite.Site, error) {
	var dbModels []models.SiteModel
	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		q := tx.Model(&models.SiteModel{})
		if filter != nil && filter.OrganizationID != nil {
			q = q.Where("organization_id = ?", *filter.OrganizationID)
		}
		if filter != nil && filter.ActiveOnly {
			q = q.Where("active = ?", true)
		}
		return q.Order("name ASC").Find(&dbModels).Error
	})
	if err != nil {
		return nil, storeError("list sites", err)
	}

	sites := make([]*domainSite.Site, len(dbModels))
	for i := range dbModels {
		sites[i] = toSiteEntity(&dbModels[i])
	}
	return sites, nil
}

func (r *SiteRepository) Update(ctx context.Context, s *domainSite.Site) error {
	s.UpdatedAt = time.Now()

	var rows int64
	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&models.SiteModel{}).
			Where("id = ?", s.ID).
			Updates(map[string]interface{}{
				"name":       s.Name,
				"location":   s.Location,
				"active":     s.Active,
				"updated_at": s.UpdatedAt,
			})
		rows = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return storeError("update site", err)
	}
	if rows == 0 {
		return domainSite.ErrSiteNotFound
	}

	return nil
}

func toSiteModel(s *domainSite.Site) *models.SiteModel {
	return &models.SiteModel{
		ID:             s.ID,
		OrganizationID: s.OrganizationID,
		Name:           s.Name,
		Location:       s.Location,
		Active:         s.Active,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func toSiteEntity(m *models.SiteModel) *domainSite.Site {
	return &domainSite.Site{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		Location:       m.Location,
		Active:         m.Active,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
