package fleet

import (
	"time"

	"bioacoustic-monitor/internal/domain/device"
)

type Band string

const (
	BandHealthy  Band = "healthy"
	BandDegraded Band = "degraded"
	BandCritical Band = "critical"
)

// degradedFloor is the lowest online percentage still classed as degraded.
const degradedFloor = 60

type Health struct {
	Total  int `json:"total"`
	Online int `json:"online"`
}

func AggregateHealth(devices []*device.Device, now time.Time) Health {
	h := Health{Total: len(devices)}
	for _, d := range devices {
		if IsEffectivelyOnline(d, now) {
			h.Online++
		}
	}
	return h
}

func (h Health) Offline() int {
	return h.Total - h.Online
}

// Percentage is rounded to the nearest integer. An empty fleet reads 100.
func (h Health) Percentage() int {
	if h.Total == 0 {
		return 100
	}
	return (h.Online*200 + h.Total) / (h.Total * 2)
}

func (h Health) Band() Band {
	return ClassifyHealthBand(h.Online, h.Total)
}

// ClassifyHealthBand buckets an online ratio. Exactly 60% is degraded and an
// empty fleet is healthy.
func ClassifyHealthBand(online, total int) Band {
	switch {
	case total <= 0 || online >= total:
		return BandHealthy
	case online*100 >= degradedFloor*total:
		return BandDegraded
	default:
		return BandCritical
	}
}
