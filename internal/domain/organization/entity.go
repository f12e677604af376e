package organization

import (
	"time"

	"github.com/google/uuid"
)

// Organization is a paying tenant and the unit of data isolation.
type Organization struct {
	ID                 uuid.UUID
	Name               string
	Slug               string
	SubscriptionPlan   Plan
	SubscriptionStatus SubscriptionStatus
	BillingEmail       *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Plan is a subscription tier. Stored as free text so unknown tiers survive
// a round trip.
type Plan string

const (
	PlanEnterprise Plan = "Enterprise"
	PlanPro        Plan = "Pro"
	PlanBasic      Plan = "Basic"
)

type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusTrial     SubscriptionStatus = "trial"
	StatusSuspended SubscriptionStatus = "suspended"
)

func (o *Organization) IsActive() bool {
	return o.SubscriptionStatus == StatusActive
}
