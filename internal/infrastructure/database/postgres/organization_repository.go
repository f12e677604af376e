package postgres

import (
	"context"
	"errors"
	"time"

	domainOrg "bioacoustic-monitor/internal/domain/organization"
	"bioacoustic-monitor/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganizationRepository struct {
	db *DB
}

func NewOrganizationRepository(db *DB) domainOrg.Repository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) Create(ctx context.Context, o *domainOrg.Organization) error {
	now := time.Now()
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	o.CreatedAt = now
	o.UpdatedAt = now

	dbModel := toOrganizationModel(o)
	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		return tx.Create(dbModel).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return domainOrg.ErrSlugTaken
		}
		return storeError("create organization", err)
	}

	return nil
}

func (r *OrganizationRepository) GetByID(ctx context.Context, orgID uuid.UUID) (*domainOrg.Organization, error) {
	var dbModel models.OrganizationModel
	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		return tx.Where("id = ?", orgID).First(&dbModel).Error
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainOrg.ErrOrganizationNotFound
	}
	if err != nil {
		return nil, storeError("get organization", err)
	}

	return toOrganizationEntity(&dbModel), nil
}

func (r *OrganizationRepository) List(ctx context.Context) ([]*domainOrg.Organization, error) {
	var dbModels []models.OrganizationModel
	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		return tx.Order("name ASC").Find(&dbModels).Error
	})
	if err != nil {
		return nil, storeError("list organizations", err)
	}

	orgs := make([]*domainOrg.Organization, len(dbModels))
	for i := range dbModels {
		orgs[i] = toOrganizationEntity(&dbModels[i])
	}
	return orgs, nil
}

func (r *OrganizationRepository) Update(ctx context.Context, o *domainOrg.Organization) error {
	o.UpdatedAt = time.Now()

	var rows int64
	err := r.db.Scoped(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&models.OrganizationModel{}).
			Where("id = ?", o.ID).
			Updates(map[string]interface{}{
				"name":                o.Name,
				"subscription_plan":   string(o.SubscriptionPlan),
				"subscription_status": string(o.SubscriptionStatus),
				"billing_email":       o.BillingEmail,
				"updated_at":          o.UpdatedAt,
			})
		rows = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return storeError("update organization", err)
	}
	if rows == 0 {
		return domainOrg.ErrOrganizationNotFound
	}

	return nil
}

func toOrganizationModel(o *domainOrg.Organization) *models.OrganizationModel {
	return &models.OrganizationModel{
		ID:                 o.ID,
		Name:               o.Name,
		Slug:               o.Slug,
		SubscriptionPlan:   string(o.SubscriptionPlan),
		SubscriptionStatus: string(o.SubscriptionStatus),
		BillingEmail:       o.BillingEmail,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func toOrganizationEntity(m *models.OrganizationModel) *domainOrg.Organization {
	return &domainOrg.Organization{
		ID:                 m.ID,
		Name:               m.Name,
		Slug:               m.Slug,
		SubscriptionPlan:   domainOrg.Plan(m.SubscriptionPlan),
		SubscriptionStatus: domainOrg.SubscriptionStatus(m.SubscriptionStatus),
		BillingEmail:       m.BillingEmail,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
