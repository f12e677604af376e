package event

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, eventID uuid.UUID) (*Event, error)
	List(ctx context.Context, filter *Filter) ([]*Event, error)
}

// Filter narrows event listings. Results are newest first.
type Filter struct {
	SiteID *uuid.UUID
	Since  *time.Time
	Before *Cursor
	Limit  int
}

// Cursor marks the last event of a page; the next page starts strictly
// after it in (created_at, id) descending order.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// CursorAfter points at the last event of page, or nil for an empty page.
func CursorAfter(page []*Event) *Cursor {
	if len(page) == 0 {
		return nil
	}
	last := page[len(page)-1]
	return &Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
}
