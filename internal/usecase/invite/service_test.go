package invite

import (
	"context"
	"errors"
	"testing"

	domainOrg "bioacoustic-monitor/internal/domain/organization"
	domainProfile "bioacoustic-monitor/internal/domain/profile"
	"bioacoustic-monitor/internal/infrastructure/identity"
	"bioacoustic-monitor/internal/mocks"
	appErrors "bioacoustic-monitor/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc      *Service
	orgs     *mocks.MockOrganizationRepository
	profiles *mocks.MockProfileRepository
	inviter  *mocks.MockInviter
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		orgs:     mocks.NewMockOrganizationRepository(ctrl),
		profiles: mocks.NewMockProfileRepository(ctrl),
		inviter:  mocks.NewMockInviter(ctrl),
	}
	f.svc = NewService(f.orgs, f.profiles, f.inviter, "https://app.example.com/")
	return f
}

func TestInvite_Success(t *testing.T) {
	f := newFixture(t)
	org := &domainOrg.Organization{ID: uuid.New(), Name: "Granja Norte"}
	userID := uuid.New()

	f.orgs.EXPECT().GetByID(gomock.Any(), org.ID).Return(org, nil)
	f.inviter.EXPECT().Invite(gomock.Any(), identity.Invitation{
		Email:          "ana@granja.io",
		FullName:       "ana",
		OrganizationID: org.ID,
		Role:           "org_admin",
		RedirectTo:     "https://app.example.com/auth/callback",
	}).Return(&identity.InvitedUser{ID: userID, Email: "ana@granja.io"}, nil)
	f.profiles.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domainProfile.Profile) error {
		assert.Equal(t, userID, p.ID)
		assert.Equal(t, domainProfile.RoleOrgAdmin, p.Role)
		assert.Equal(t, org.ID, *p.OrganizationID)
		return nil
	})

	resp, err := f.svc.Invite(context.Background(), &Request{Email: " Ana@Granja.io ", OrganizationID: org.ID})

	require.NoError(t, err)
	assert.Equal(t, &Response{Success: true, Message: "Invitation sent to ana@granja.io", Organization: "Granja Norte"}, resp)
}

func TestInvite_MissingFields(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Invite(context.Background(), &Request{Email: "ana@granja.io"})

	assert.ErrorIs(t, err, appErrors.ErrValidationFailed)
}

func TestInvite_UnknownOrganization(t *testing.T) {
	f := newFixture(t)
	orgID := uuid.New()

	f.orgs.EXPECT().GetByID(gomock.Any(), orgID).Return(nil, domainOrg.ErrOrganizationNotFound)

	_, err := f.svc.Invite(context.Background(), &Request{Email: "ana@granja.io", OrganizationID: orgID})

	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	assert.EqualError(t, err, "organization not found")
}

func TestInvite_ProviderFailure(t *testing.T) {
	f := newFixture(t)
	org := &domainOrg.Organization{ID: uuid.New(), Name: "Granja Norte"}

	f.orgs.EXPECT().GetByID(gomock.Any(), org.ID).Return(org, nil)
	f.inviter.EXPECT().Invite(gomock.Any(), gomock.Any()).Return(nil, errors.New("rate limit exceeded"))

	_, err := f.svc.Invite(context.Background(), &Request{Email: "ana@granja.io", OrganizationID: org.ID})

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVITATION_FAILED", appErr.Code)
	assert.Equal(t, "invitation failed: rate limit exceeded", err.Error())
}

func TestInvite_ProfileUpsertFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	org := &domainOrg.Organization{ID: uuid.New(), Name: "Granja Norte"}
	name := "Ana Pérez"

	f.orgs.EXPECT().GetByID(gomock.Any(), org.ID).Return(org, nil)
	f.inviter.EXPECT().Invite(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, inv identity.Invitation) (*identity.InvitedUser, error) {
		assert.Equal(t, "Ana Pérez", inv.FullName)
		return &identity.InvitedUser{ID: uuid.New()}, nil
	})
	f.profiles.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(appErrors.ErrPermissionDenied)

	resp, err := f.svc.Invite(context.Background(), &Request{Email: "ana@granja.io", OrganizationID: org.ID, FullName: &name})

	require.NoError(t, err)
	assert.True(t, resp.Success)
}
