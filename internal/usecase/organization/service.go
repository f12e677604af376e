package organization

import (
	"context"
	"fmt"
	"strings"

	domainOrg "bioacoustic-monitor/internal/domain/organization"
	domainSite "bioacoustic-monitor/internal/domain/site"
	"bioacoustic-monitor/internal/logger"
	appErrors "bioacoustic-monitor/pkg/errors"
	"bioacoustic-monitor/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements tenant administration.
type Service struct {
	orgRepo  domainOrg.Repository
	siteRepo domainSite.Repository
}

func NewService(orgRepo domainOrg.Repository, siteRepo domainSite.Repository) *Service {
	return &Service{
		orgRepo:  orgRepo,
		siteRepo: siteRepo,
	}
}

// CreateOrganization creates the organization and, when requested, its first
// site. The two inserts are independent: a failed site insert leaves the
// organization in place and is reported as a partial success.
func (s *Service) CreateOrganization(ctx context.Context, req *CreateOrganizationRequest) (*CreateOrganizationResponse, error) {
	req.Name = utils.SanitizeString(req.Name)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	slug := utils.Slugify(req.Slug)
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	if slug == "" {
		return nil, appErrors.Validation("organization name must contain letters or digits", nil)
	}

	org := &domainOrg.Organization{
		Name:               req.Name,
		Slug:               slug,
		SubscriptionPlan:   req.SubscriptionPlan,
		SubscriptionStatus: req.SubscriptionStatus,
		BillingEmail:       req.BillingEmail,
	}
	if org.SubscriptionPlan == "" {
		org.SubscriptionPlan = domainOrg.PlanBasic
	}
	if org.SubscriptionStatus == "" {
		org.SubscriptionStatus = domainOrg.StatusTrial
	}

	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, err
	}

	logger.Info("Organization created",
		zap.String("organization_id", org.ID.String()),
		zap.String("slug", org.Slug),
		zap.String("plan", string(org.SubscriptionPlan)),
		zap.String("event", "organization_created"),
	)

	resp := &CreateOrganizationResponse{Organization: ToOrganizationResponse(org)}
	if req.InitialSite == nil {
		return resp, nil
	}

	site, err := s.createSite(ctx, org.ID, req.InitialSite)
	if err != nil {
		logger.Warn("Initial site creation failed",
			zap.String("organization_id", org.ID.String()),
			zap.Error(err),
		)
		resp.PartialSuccess = true
		resp.Warning = fmt.Sprintf("organization created but site creation failed: %v", err)
		return resp, nil
	}

	resp.Site = ToSiteResponse(site)
	return resp, nil
}

// CreateSite adds a site to an existing organization. It is also the retry
// path for a partially created organization.
func (s *Service) CreateSite(ctx context.Context, orgID uuid.UUID, req *CreateSiteRequest) (*SiteResponse, error) {
	if _, err := s.orgRepo.GetByID(ctx, orgID); err != nil {
		return nil, err
	}

	site, err := s.createSite(ctx, orgID, req)
	if err != nil {
		return nil, err
	}
	return ToSiteResponse(site), nil
}

func (s *Service) createSite(ctx context.Context, orgID uuid.UUID, req *CreateSiteRequest) (*domainSite.Site, error) {
	req.Name = utils.SanitizeString(req.Name)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid site", err)
	}

	site := &domainSite.Site{
		OrganizationID: orgID,
		Name:           req.Name,
		Location:       req.Location,
		Active:         true,
	}
	if err := s.siteRepo.Create(ctx, site); err != nil {
		return nil, err
	}

	logger.Info("Site created",
		zap.String("site_id", site.ID.String()),
		zap.String("organization_id", orgID.String()),
		zap.String("event", "site_created"),
	)
	return site, nil
}

func (s *Service) GetOrganization(ctx context.Context, orgID uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return ToOrganizationResponse(org), nil
}

func (s *Service) ListOrganizations(ctx context.Context) ([]OrganizationResponse, error) {
	orgs, err := s.orgRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]OrganizationResponse, len(orgs))
	for i, o := range orgs {
		out[i] = *ToOrganizationResponse(o)
	}
	return out, nil
}

func (s *Service) UpdateOrganization(ctx context.Context, orgID uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		org.Name = utils.SanitizeString(*req.Name)
	}
	if req.SubscriptionPlan != nil {
		org.SubscriptionPlan = *req.SubscriptionPlan
	}
	if req.SubscriptionStatus != nil {
		org.SubscriptionStatus = *req.SubscriptionStatus
	}
	if req.BillingEmail != nil {
		email := strings.TrimSpace(*req.BillingEmail)
		if email == "" {
			org.BillingEmail = nil
		} else {
			org.BillingEmail = &email
		}
	}

	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, err
	}

	logger.Info("Organization updated",
		zap.String("organization_id", org.ID.String()),
		zap.String("plan", string(org.SubscriptionPlan)),
		zap.String("status", string(org.SubscriptionStatus)),
		zap.String("event", "organization_updated"),
	)
	return ToOrganizationResponse(org), nil
}
