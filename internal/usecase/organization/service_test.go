package organization

import (
	"context"
	"errors"
	"testing"

	domainOrg "bioacoustic-monitor/internal/domain/organization"
	domainSite "bioacoustic-monitor/internal/domain/site"
	"bioacoustic-monitor/internal/mocks"
	appErrors "bioacoustic-monitor/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (*Service, *mocks.MockOrganizationRepository, *mocks.MockSiteRepository) {
	ctrl := gomock.NewController(t)
	orgs := mocks.NewMockOrganizationRepository(ctrl)
	sites := mocks.NewMockSiteRepository(ctrl)
	return NewService(orgs, sites), orgs, sites
}

func assignID(_ context.Context, o *domainOrg.Organization) error {
	o.ID = uuid.New()
	return nil
}

func TestCreateOrganization_Defaults(t *testing.T) {
	svc, orgs, _ := newService(t)

	orgs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, o *domainOrg.Organization) error {
		assert.Equal(t, "granja-el-roble", o.Slug)
		assert.Equal(t, domainOrg.PlanBasic, o.SubscriptionPlan)
		assert.Equal(t, domainOrg.StatusTrial, o.SubscriptionStatus)
		return assignID(ctx, o)
	})

	resp, err := svc.CreateOrganization(context.Background(), &CreateOrganizationRequest{Name: "Granja El Roble"})

	require.NoError(t, err)
	assert.False(t, resp.PartialSuccess)
	assert.Nil(t, resp.Site)
}

func TestCreateOrganization_SiteFailureIsPartialSuccess(t *testing.T) {
	svc, orgs, sites := newService(t)

	orgs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(assignID)
	sites.EXPECT().Create(gomock.Any(), gomock.Any()).Return(appErrors.Wrap("create site", errors.New("connection reset")))

	resp, err := svc.CreateOrganization(context.Background(), &CreateOrganizationRequest{
		Name:        "Granja Norte",
		InitialSite: &CreateSiteRequest{Name: "Planta 1"},
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Organization)
	assert.NotEqual(t, uuid.Nil, resp.Organization.ID)
	assert.True(t, resp.PartialSuccess)
	assert.Contains(t, resp.Warning, "site creation failed")
	assert.Nil(t, resp.Site)
}

func TestCreateOrganization_WithSite(t *testing.T) {
	svc, orgs, sites := newService(t)

	orgs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(assignID)
	sites.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *domainSite.Site) error {
		assert.True(t, s.Active)
		s.ID = uuid.New()
		return nil
	})

	resp, err := svc.CreateOrganization(context.Background(), &CreateOrganizationRequest{
		Name:             "Granja Sur",
		SubscriptionPlan: domainOrg.PlanPro,
		InitialSite:      &CreateSiteRequest{Name: "Planta 1"},
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Site)
	assert.Equal(t, resp.Organization.ID, resp.Site.OrganizationID)
	assert.Equal(t, domainOrg.PlanPro, resp.Organization.SubscriptionPlan)
}

func TestCreateOrganization_OrgFailureCreatesNothing(t *testing.T) {
	svc, orgs, _ := newService(t)

	orgs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domainOrg.ErrSlugTaken)

	resp, err := svc.CreateOrganization(context.Background(), &CreateOrganizationRequest{
		Name:        "Granja Sur",
		InitialSite: &CreateSiteRequest{Name: "Planta 1"},
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, appErrors.ErrDuplicateKey)
}

func TestCreateOrganization_InvalidPlan(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.CreateOrganization(context.Background(), &CreateOrganizationRequest{Name: "Granja", SubscriptionPlan: "Gold"})

	assert.ErrorIs(t, err, appErrors.ErrValidationFailed)
}

func TestCreateSite_RetryAfterPartialSuccess(t *testing.T) {
	svc, orgs, sites := newService(t)
	orgID := uuid.New()

	orgs.EXPECT().GetByID(gomock.Any(), orgID).Return(&domainOrg.Organization{ID: orgID}, nil)
	sites.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *domainSite.Site) error {
		s.ID = uuid.New()
		return nil
	})

	site, err := svc.CreateSite(context.Background(), orgID, &CreateSiteRequest{Name: "Planta 1"})

	require.NoError(t, err)
	assert.Equal(t, orgID, site.OrganizationID)
}

func TestCreateSite_UnknownOrganization(t *testing.T) {
	svc, orgs, _ := newService(t)
	orgID := uuid.New()

	orgs.EXPECT().GetByID(gomock.Any(), orgID).Return(nil, domainOrg.ErrOrganizationNotFound)

	_, err := svc.CreateSite(context.Background(), orgID, &CreateSiteRequest{Name: "Planta 1"})

	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestUpdateOrganization(t *testing.T) {
	svc, orgs, _ := newService(t)
	orgID := uuid.New()
	plan := domainOrg.PlanEnterprise
	status := domainOrg.StatusActive

	orgs.EXPECT().GetByID(gomock.Any(), orgID).
		Return(&domainOrg.Organization{ID: orgID, Name: "Granja", SubscriptionPlan: domainOrg.PlanBasic, SubscriptionStatus: domainOrg.StatusTrial}, nil)
	orgs.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := svc.UpdateOrganization(context.Background(), orgID, &UpdateOrganizationRequest{SubscriptionPlan: &plan, SubscriptionStatus: &status})

	require.NoError(t, err)
	assert.Equal(t, domainOrg.PlanEnterprise, resp.SubscriptionPlan)
	assert.Equal(t, domainOrg.StatusActive, resp.SubscriptionStatus)
}
