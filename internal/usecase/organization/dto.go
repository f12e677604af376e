package organization

import (
	"time"

	domainOrg "bioacoustic-monitor/internal/domain/organization"
	domainSite "bioacoustic-monitor/internal/domain/site"

	"github.com/google/uuid"
)

type CreateOrganizationRequest struct {
	Name               string                       `json:"name" validate:"required,min=2,max=120"`
	Slug               string                       `json:"slug" validate:"omitempty,max=120"`
	SubscriptionPlan   domainOrg.Plan               `json:"subscription_plan" validate:"omitempty,plan"`
	SubscriptionStatus domainOrg.SubscriptionStatus `json:"subscription_status" validate:"omitempty,subscription_status"`
	BillingEmail       *string                      `json:"billing_email" validate:"omitempty,email"`
	InitialSite        *CreateSiteRequest           `json:"initial_site"`
}

type CreateSiteRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=120"`
	Location *string `json:"location" validate:"omitempty,max=255"`
}

type UpdateOrganizationRequest struct {
	Name               *string                       `json:"name" validate:"omitempty,min=2,max=120"`
	SubscriptionPlan   *domainOrg.Plan               `json:"subscription_plan" validate:"omitempty,plan"`
	SubscriptionStatus *domainOrg.SubscriptionStatus `json:"subscription_status" validate:"omitempty,subscription_status"`
	BillingEmail       *string                       `json:"billing_email" validate:"omitempty,email"`
}

type OrganizationResponse struct {
	ID                 uuid.UUID                    `json:"id"`
	Name               string                       `json:"name"`
	Slug               string                       `json:"slug"`
	SubscriptionPlan   domainOrg.Plan               `json:"subscription_plan"`
	SubscriptionStatus domainOrg.SubscriptionStatus `json:"subscription_status"`
	BillingEmail       *string                      `json:"billing_email"`
	CreatedAt          time.Time                    `json:"created_at"`
	UpdatedAt          time.Time                    `json:"updated_at"`
}

type SiteResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	Location       *string   `json:"location"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateOrganizationResponse reports each step separately. The organization
// is kept when the site step fails; PartialSuccess is then set.
type CreateOrganizationResponse struct {
	Organization   *OrganizationResponse `json:"organization"`
	Site           *SiteResponse         `json:"site,omitempty"`
	PartialSuccess bool                  `json:"partial_success"`
	Warning        string                `json:"warning,omitempty"`
}

func ToOrganizationResponse(o *domainOrg.Organization) *OrganizationResponse {
	if o == nil {
		return nil
	}
	return &OrganizationResponse{
		ID:                 o.ID,
		Name:               o.Name,
		Slug:               o.Slug,
		SubscriptionPlan:   o.SubscriptionPlan,
		SubscriptionStatus: o.SubscriptionStatus,
		BillingEmail:       o.BillingEmail,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func ToSiteResponse(s *domainSite.Site) *SiteResponse {
	if s == nil {
		return nil
	}
	return &SiteResponse{
		ID:             s.ID,
		OrganizationID: s.OrganizationID,
		Name:           s.Name,
		Location:       s.Location,
		Active:         s.Active,
		CreatedAt:      s.CreatedAt,
	}
}
