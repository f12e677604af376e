package profile

import (
	"context"

	"bioacoustic-monitor/internal/authz"
	domainProfile "bioacoustic-monitor/internal/domain/profile"
	"bioacoustic-monitor/internal/logger"
	appErrors "bioacoustic-monitor/pkg/errors"
	"bioacoustic-monitor/pkg/utils"

	"go.uber.org/zap"
)

// Service exposes the caller's own profile.
type Service struct {
	profileRepo domainProfile.Repository
}

func NewService(profileRepo domainProfile.Repository) *Service {
	return &Service{profileRepo: profileRepo}
}

func (s *Service) GetProfile(ctx context.Context) (*ProfileResponse, error) {
	p, ok := authz.FromContext(ctx)
	if !ok {
		return nil, appErrors.ErrAuthenticationRequired
	}

	profile, err := s.profileRepo.GetByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// UpdateProfile changes display fields only. Role and organization are
// managed through invitations.
func (s *Service) UpdateProfile(ctx context.Context, req *UpdateProfileRequest) (*ProfileResponse, error) {
	p, ok := authz.FromContext(ctx)
	if !ok {
		return nil, appErrors.ErrAuthenticationRequired
	}

	if req.FullName != nil {
		name := utils.SanitizeString(*req.FullName)
		req.FullName = &name
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.Validation("Invalid input", err)
	}

	profile, err := s.profileRepo.GetByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	if req.FullName != nil {
		profile.FullName = req.FullName
	}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	logger.Info("Profile updated",
		zap.String("user_id", profile.ID.String()),
		zap.String("event", "profile_updated"),
	)
	return toProfileResponse(profile), nil
}

func toProfileResponse(p *domainProfile.Profile) *ProfileResponse {
	landing := authz.DashboardPath
	if p.Role == domainProfile.RoleSuperAdmin {
		landing = authz.AdminPath
	}

	return &ProfileResponse{
		ID:             p.ID,
		Email:          p.Email,
		FullName:       p.FullName,
		Role:           p.Role,
		OrganizationID: p.OrganizationID,
		AssignedSiteID: p.AssignedSiteID,
		LandingPath:    landing,
		CreatedAt:      p.CreatedAt,
	}
}
