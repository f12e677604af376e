package profile

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*Profile, error)
	// Upsert inserts the profile or overwrites organization, role and name.
	Upsert(ctx context.Context, p *Profile) error
}
