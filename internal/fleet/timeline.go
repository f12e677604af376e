package fleet

import (
	"time"

	"bioacoustic-monitor/internal/domain/event"
)

const DefaultWindowHours = 24

type HourBucket struct {
	Start             time.Time `json:"start"`
	Count             int       `json:"count"`
	AverageConfidence float64   `json:"average_confidence"`
}

// BucketEventsByHour returns windowHours buckets, oldest first, the last one
// starting at the top of now's hour. Each bucket covers [Start, Start+1h).
func BucketEventsByHour(events []*event.Event, now time.Time, windowHours int) []HourBucket {
	if windowHours <= 0 {
		windowHours = DefaultWindowHours
	}

	first := WindowStart(now, windowHours)

	buckets := make([]HourBucket, windowHours)
	sums := make([]float64, windowHours)
	for i := range buckets {
		buckets[i].Start = first.Add(time.Duration(i) * time.Hour)
	}

	for _, e := range events {
		if e == nil || e.CreatedAt.Before(first) {
			continue
		}
		idx := int(e.CreatedAt.Sub(first) / time.Hour)
		if idx >= windowHours {
			continue
		}
		buckets[idx].Count++
		sums[idx] += e.Confidence
	}

	for i := range buckets {
		if buckets[i].Count > 0 {
			buckets[i].AverageConfidence = sums[i] / float64(buckets[i].Count)
		}
	}
	return buckets
}

// WindowStart is the start of the oldest bucket of a windowHours timeline.
func WindowStart(now time.Time, windowHours int) time.Time {
	if windowHours <= 0 {
		windowHours = DefaultWindowHours
	}
	return topOfHour(now).Add(-time.Duration(windowHours-1) * time.Hour)
}

func topOfHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}
