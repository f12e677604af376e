package profile

import (
	"time"

	domainProfile "bioacoustic-monitor/internal/domain/profile"

	"github.com/google/uuid"
)

type UpdateProfileRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=2,max=120"`
}

type ProfileResponse struct {
	ID             uuid.UUID          `json:"id"`
	Email          string             `json:"email"`
	FullName       *string            `json:"full_name"`
	Role           domainProfile.Role `json:"role"`
	OrganizationID *uuid.UUID         `json:"organization_id"`
	AssignedSiteID *uuid.UUID         `json:"assigned_site_id"`
	LandingPath    string             `json:"landing_path"`
	CreatedAt      time.Time          `json:"created_at"`
}
