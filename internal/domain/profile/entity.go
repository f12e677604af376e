package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the application-side record of an authenticated user.
// OrganizationID is nil only for super admins.
type Profile struct {
	ID             uuid.UUID
	OrganizationID *uuid.UUID
	AssignedSiteID *uuid.UUID
	Role           Role
	FullName       *string
	Email          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Role string

const (
	RoleSuperAdmin  Role = "super_admin"
	RoleOrgAdmin    Role = "org_admin"
	RoleSiteManager Role = "site_manager"
	RoleViewer      Role = "viewer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleOrgAdmin, RoleSiteManager, RoleViewer:
		return true
	}
	return false
}
