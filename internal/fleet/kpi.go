package fleet

import (
	"time"

	"bioacoustic-monitor/internal/domain/event"
)

type KPISummary struct {
	AlertsToday int        `json:"alerts_today"`
	LastAlertAt *time.Time `json:"last_alert_at"`
	AverageRMS  float64    `json:"average_rms"`
}

// SummarizeEvents counts alerts since local midnight of now and averages RMS
// over the events that carry one.
func SummarizeEvents(events []*event.Event, now time.Time) KPISummary {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var (
		summary  KPISummary
		rmsSum   float64
		rmsCount int
	)
	for _, e := range events {
		if e == nil {
			continue
		}
		if !e.CreatedAt.Before(midnight) {
			summary.AlertsToday++
		}
		if summary.LastAlertAt == nil || e.CreatedAt.After(*summary.LastAlertAt) {
			at := e.CreatedAt
			summary.LastAlertAt = &at
		}
		if e.Metadata.RMS != nil {
			rmsSum += *e.Metadata.RMS
			rmsCount++
		}
	}
	if rmsCount > 0 {
		summary.AverageRMS = rmsSum / float64(rmsCount)
	}
	return summary
}
