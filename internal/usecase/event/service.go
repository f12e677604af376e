package event

import (
	"context"
	"strings"
	"time"

	"bioacoustic-monitor/internal/authz"
	domainEvent "bioacoustic-monitor/internal/domain/event"
	"bioacoustic-monitor/internal/fleet"
	"bioacoustic-monitor/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 100

	// page size when walking a whole window for aggregate views
	aggregatePage = 1000
)

// Presigner turns a stored object key into a short-lived download URL.
type Presigner interface {
	PresignGet(ctx context.Context, key string) (string, error)
}

// Service serves the tenant dashboard: alert feed, timeline and KPIs.
type Service struct {
	eventRepo domainEvent.Repository
	presigner Presigner
}

func NewService(eventRepo domainEvent.Repository, presigner Presigner) *Service {
	return &Service{
		eventRepo: eventRepo,
		presigner: presigner,
	}
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]EventResponse, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	events, err := s.eventRepo.List(ctx, s.filter(ctx, nil, limit))
	if err != nil {
		return nil, err
	}

	out := make([]EventResponse, len(events))
	for i, e := range events {
		out[i] = ToEventResponse(e)
	}
	return out, nil
}

func (s *Service) Timeline(ctx context.Context, now time.Time, hours int) ([]fleet.HourBucket, error) {
	if hours <= 0 {
		hours = fleet.DefaultWindowHours
	}
	since := fleet.WindowStart(now, hours)

	events, err := s.listSince(ctx, since)
	if err != nil {
		return nil, err
	}
	return fleet.BucketEventsByHour(events, now, hours), nil
}

// Summary computes the dashboard KPI cards. The last alert falls back to the
// newest event overall when nothing fired today.
func (s *Service) Summary(ctx context.Context, now time.Time) (*fleet.KPISummary, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	events, err := s.listSince(ctx, midnight)
	if err != nil {
		return nil, err
	}
	summary := fleet.SummarizeEvents(events, now)

	if len(events) == 0 {
		latest, err := s.eventRepo.List(ctx, s.filter(ctx, nil, 1))
		if err != nil {
			return nil, err
		}
		if len(latest) > 0 {
			at := latest[0].CreatedAt
			summary.LastAlertAt = &at
		}
	}
	return &summary, nil
}

// AudioURL resolves the clip of an event. Uploaded clips are presigned;
// events recorded before uploads existed may carry a direct URL.
func (s *Service) AudioURL(ctx context.Context, eventID uuid.UUID) (*AudioURLResponse, error) {
	e, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if path := e.Metadata.StoragePath; path != nil && strings.TrimSpace(*path) != "" && s.presigner != nil {
		url, err := s.presigner.PresignGet(ctx, strings.TrimSpace(*path))
		if err == nil {
			return &AudioURLResponse{EventID: e.ID, URL: url}, nil
		}
		logger.Warn("Failed to presign audio clip",
			zap.String("event_id", e.ID.String()),
			zap.Error(err),
		)
	}

	if u := e.Metadata.AudioURL; u != nil && strings.TrimSpace(*u) != "" {
		return &AudioURLResponse{EventID: e.ID, URL: strings.TrimSpace(*u)}, nil
	}
	return nil, domainEvent.ErrNoAudioClip
}

// listSince walks every event created at or after since, page by page.
func (s *Service) listSince(ctx context.Context, since time.Time) ([]*domainEvent.Event, error) {
	var all []*domainEvent.Event
	f := s.filter(ctx, &since, aggregatePage)
	for {
		page, err := s.eventRepo.List(ctx, f)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < aggregatePage {
			return all, nil
		}
		next := *f
		next.Before = domainEvent.CursorAfter(page)
		f = &next
	}
}

func (s *Service) filter(ctx context.Context, since *time.Time, limit int) *domainEvent.Filter {
	f := &domainEvent.Filter{Since: since, Limit: limit}
	if p, ok := authz.FromContext(ctx); ok && p.AssignedSiteID != nil {
		f.SiteID = p.AssignedSiteID
	}
	return f
}
