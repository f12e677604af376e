package invite

import (
	"context"
	"fmt"
	"strings"

	domainOrg "bioacoustic-monitor/internal/domain/organization"
	domainProfile "bioacoustic-monitor/internal/domain/profile"
	"bioacoustic-monitor/internal/infrastructure/identity"
	"bioacoustic-monitor/internal/logger"
	appErrors "bioacoustic-monitor/pkg/errors"
	"bioacoustic-monitor/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const callbackPath = "/auth/callback"

type Request struct {
	Email          string    `json:"email" validate:"required"`
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	FullName       *string   `json:"full_name" validate:"omitempty,max=120"`
}

type Response struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	Organization string `json:"organization"`
}

// Inviter sends the magic-link invitation through the auth provider.
type Inviter interface {
	Invite(ctx context.Context, inv identity.Invitation) (*identity.InvitedUser, error)
}

// Service onboards the first administrator of an organization.
type Service struct {
	orgRepo     domainOrg.Repository
	profileRepo domainProfile.Repository
	inviter     Inviter
	appURL      string
}

func NewService(orgRepo domainOrg.Repository, profileRepo domainProfile.Repository, inviter Inviter, appURL string) *Service {
	return &Service{
		orgRepo:     orgRepo,
		profileRepo: profileRepo,
		inviter:     inviter,
		appURL:      strings.TrimRight(appURL, "/"),
	}
}

func (s *Service) Invite(ctx context.Context, req *Request) (*Response, error) {
	email, err := utils.ValidateAndSanitizeEmail(req.Email)
	if req.Email == "" || req.OrganizationID == uuid.Nil {
		return nil, appErrors.Validation("email and organization_id are required", nil)
	}
	if err != nil {
		return nil, appErrors.Validation("invalid email", err)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	org, err := s.orgRepo.GetByID(ctx, req.OrganizationID)
	if err != nil {
		return nil, err
	}

	fullName := utils.EmailLocalPart(email)
	if req.FullName != nil && strings.TrimSpace(*req.FullName) != "" {
		fullName = utils.SanitizeString(*req.FullName)
	}

	user, err := s.inviter.Invite(ctx, identity.Invitation{
		Email:          email,
		FullName:       fullName,
		OrganizationID: org.ID,
		Role:           string(domainProfile.RoleOrgAdmin),
		RedirectTo:     s.appURL + callbackPath,
	})
	if err != nil {
		return nil, appErrors.NewAppError("INVITATION_FAILED", fmt.Sprintf("invitation failed: %v", err), nil)
	}

	orgID := org.ID
	profile := &domainProfile.Profile{
		ID:             user.ID,
		OrganizationID: &orgID,
		Role:           domainProfile.RoleOrgAdmin,
		FullName:       &fullName,
		Email:          email,
	}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		// the provider trigger may still create the profile; do not fail the invite
		logger.Warn("Profile upsert after invite failed",
			zap.String("user_id", user.ID.String()),
			zap.String("organization_id", org.ID.String()),
			zap.Error(err),
		)
	}

	logger.Info("Organization admin invited",
		zap.String("email", email),
		zap.String("organization_id", org.ID.String()),
		zap.String("event", "admin_invited"),
	)

	return &Response{
		Success:      true,
		Message:      "Invitation sent to " + email,
		Organization: org.Name,
	}, nil
}
