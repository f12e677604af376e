package authz

import (
	"context"

	"bioacoustic-monitor/internal/domain/profile"
	appErrors "bioacoustic-monitor/pkg/errors"

	"github.com/google/uuid"
)

// Principal is the authenticated caller as seen by services and the store.
type Principal struct {
	UserID         uuid.UUID
	Email          string
	Role           profile.Role
	OrganizationID *uuid.UUID
	AssignedSiteID *uuid.UUID
}

func FromProfile(p *profile.Profile) Principal {
	return Principal{
		UserID:         p.ID,
		Email:          p.Email,
		Role:           p.Role,
		OrganizationID: p.OrganizationID,
		AssignedSiteID: p.AssignedSiteID,
	}
}

func (p Principal) IsSuperAdmin() bool {
	return p.Role == profile.RoleSuperAdmin
}

// CanReachSite reports whether the caller may read or change siteID.
// Principals without an assigned site are bounded by their organization.
func (p Principal) CanReachSite(siteID uuid.UUID) bool {
	return p.AssignedSiteID == nil || *p.AssignedSiteID == siteID
}

var ErrOutsideSite = appErrors.New(appErrors.ErrPermissionDenied, "site is outside your assignment")

// SiteBound reports whether the caller in ctx is narrowed to a single site.
func SiteBound(ctx context.Context) bool {
	p, ok := FromContext(ctx)
	return ok && p.AssignedSiteID != nil
}

// RequireSite fails with ErrOutsideSite when the caller in ctx is bound to
// another site. Calls without a principal pass.
func RequireSite(ctx context.Context, siteID uuid.UUID) error {
	if p, ok := FromContext(ctx); ok && !p.CanReachSite(siteID) {
		return ErrOutsideSite
	}
	return nil
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
