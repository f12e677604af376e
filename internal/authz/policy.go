// Package authz holds every role decision the service makes. Handlers and
// views ask CanAccess instead of comparing roles themselves.
package authz

import "bioacoustic-monitor/internal/domain/profile"

type Resource string

const (
	ResourceOrganization Resource = "organization"
	ResourceSite         Resource = "site"
	ResourceBuilding     Resource = "building"
	ResourceRoom         Resource = "room"
	ResourceDevice       Resource = "device"
	ResourceInventory    Resource = "inventory"
	ResourceEvent        Resource = "event"
	ResourceInvitation   Resource = "invitation"
	ResourceSimulator    Resource = "simulator"
	ResourceOverview     Resource = "overview"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionClaim  Action = "claim"
)

type grants map[Resource][]Action

var (
	readTenant = []Action{ActionRead}
	editTree   = []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete}
)

// Super admins are not listed; they may do anything.
var policy = map[profile.Role]grants{
	profile.RoleOrgAdmin: {
		ResourceOrganization: readTenant,
		ResourceSite:         {ActionRead, ActionUpdate},
		ResourceBuilding:     editTree,
		ResourceRoom:         editTree,
		ResourceDevice:       {ActionRead, ActionClaim},
		ResourceEvent:        readTenant,
	},
	profile.RoleSiteManager: {
		ResourceOrganization: readTenant,
		ResourceSite:         readTenant,
		ResourceBuilding:     {ActionRead, ActionUpdate},
		ResourceRoom:         {ActionRead, ActionUpdate},
		ResourceDevice:       {ActionRead, ActionClaim},
		ResourceEvent:        readTenant,
	},
	profile.RoleViewer: {
		ResourceOrganization: readTenant,
		ResourceSite:         readTenant,
		ResourceBuilding:     readTenant,
		ResourceRoom:         readTenant,
		ResourceDevice:       readTenant,
		ResourceEvent:        readTenant,
	},
}

// CanAccess reports whether role may perform action on resource. Unknown
// roles get nothing.
func CanAccess(role profile.Role, resource Resource, action Action) bool {
	if role == profile.RoleSuperAdmin {
		return true
	}
	for _, a := range policy[role][resource] {
		if a == action {
			return true
		}
	}
	return false
}
