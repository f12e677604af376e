package fleet

import (
	"testing"
	"time"

	"bioacoustic-monitor/internal/domain/device"
	"bioacoustic-monitor/internal/domain/event"
	"bioacoustic-monitor/internal/domain/organization"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refNow = time.Date(2026, 3, 14, 15, 42, 10, 0, time.UTC)

func newDevice(status device.DeviceStatus, heartbeatAgo *time.Duration) *device.Device {
	d := &device.Device{ID: uuid.New(), DeviceUID: "RPI-" + uuid.NewString()[:4], Status: status}
	if heartbeatAgo != nil {
		hb := refNow.Add(-*heartbeatAgo)
		d.LastHeartbeat = &hb
	}
	return d
}

func ago(d time.Duration) *time.Duration { return &d }

func TestIsEffectivelyOnline(t *testing.T) {
	tests := []struct {
		name   string
		device *device.Device
		want   bool
	}{
		{"online with fresh heartbeat", newDevice(device.StatusOnline, ago(time.Minute)), true},
		{"online at 9:59", newDevice(device.StatusOnline, ago(9*time.Minute+59*time.Second)), true},
		{"online at exactly 10:00", newDevice(device.StatusOnline, ago(10*time.Minute)), false},
		{"online with stale heartbeat", newDevice(device.StatusOnline, ago(time.Hour)), false},
		{"online with nil heartbeat", newDevice(device.StatusOnline, nil), false},
		{"offline with fresh heartbeat", newDevice(device.StatusOffline, ago(time.Second)), false},
		{"maintenance with fresh heartbeat", newDevice(device.StatusMaintenance, ago(time.Second)), false},
		{"nil device", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEffectivelyOnline(tt.device, refNow))
		})
	}
}

func TestAggregateHealth(t *testing.T) {
	devices := []*device.Device{
		newDevice(device.StatusOnline, ago(time.Minute)),
		newDevice(device.StatusOnline, ago(2*time.Minute)),
		newDevice(device.StatusOnline, ago(time.Hour)),
		newDevice(device.StatusOffline, nil),
	}

	h := AggregateHealth(devices, refNow)
	assert.Equal(t, Health{Total: 4, Online: 2}, h)
	assert.Equal(t, 2, h.Offline())
	assert.Equal(t, 50, h.Percentage())
	assert.Equal(t, BandCritical, h.Band())
	assert.True(t, HasOffline(devices, refNow))
	assert.False(t, HasOffline(devices[:2], refNow))
}

func TestAggregateHealth_EmptyFleet(t *testing.T) {
	h := AggregateHealth(nil, refNow)

	assert.Equal(t, Health{}, h)
	assert.Equal(t, 100, h.Percentage())
	assert.Equal(t, BandHealthy, h.Band())
}

func TestClassifyHealthBand(t *testing.T) {
	assert.Equal(t, BandDegraded, ClassifyHealthBand(6, 10))
	assert.Equal(t, BandCritical, ClassifyHealthBand(5, 10))
	assert.Equal(t, BandHealthy, ClassifyHealthBand(10, 10))
	assert.Equal(t, BandHealthy, ClassifyHealthBand(0, 0))
	assert.Equal(t, BandCritical, ClassifyHealthBand(0, 3))
	assert.Equal(t, BandDegraded, ClassifyHealthBand(9, 10))
	assert.Equal(t, BandDegraded, ClassifyHealthBand(3, 5))
	assert.Equal(t, BandCritical, ClassifyHealthBand(59, 100))
}

func TestComputeMRR(t *testing.T) {
	plans := []organization.Plan{
		organization.PlanEnterprise,
		organization.PlanPro,
		organization.PlanBasic,
		organization.Plan("Unknown"),
	}

	assert.Equal(t, 1450.0, ComputeMRR(plans, DefaultPlanRates))
	assert.Equal(t, 0.0, ComputeMRR(nil, DefaultPlanRates))
}

func TestBucketEventsByHour(t *testing.T) {
	mk := func(at time.Time, confidence float64) *event.Event {
		return &event.Event{ID: uuid.New(), CreatedAt: at, Confidence: confidence}
	}
	currentHour := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

	events := []*event.Event{
		mk(refNow.Add(-time.Minute), 0.9),
		mk(currentHour, 0.5),
		mk(currentHour.Add(-time.Nanosecond), 0.4),
		mk(currentHour.Add(-23*time.Hour), 0.8),
		mk(currentHour.Add(-23*time.Hour-time.Second), 0.7),
		mk(refNow.Add(-48*time.Hour), 0.3),
	}

	buckets := BucketEventsByHour(events, refNow, 24)
	require.Len(t, buckets, 24)

	assert.Equal(t, currentHour, buckets[23].Start)
	assert.Equal(t, currentHour.Add(-23*time.Hour), buckets[0].Start)
	assert.Equal(t, 2, buckets[23].Count)
	assert.InDelta(t, 0.7, buckets[23].AverageConfidence, 1e-9)
	assert.Equal(t, 1, buckets[22].Count)
	assert.InDelta(t, 0.4, buckets[22].AverageConfidence, 1e-9)
	assert.Equal(t, 1, buckets[0].Count)
	assert.Equal(t, 0, buckets[10].Count)
	assert.Equal(t, 0.0, buckets[10].AverageConfidence)

	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	assert.Equal(t, 4, total)
}

func TestBucketEventsByHour_NoEvents(t *testing.T) {
	buckets := BucketEventsByHour(nil, refNow, 0)

	require.Len(t, buckets, DefaultWindowHours)
	for i, b := range buckets {
		assert.Zero(t, b.Count)
		assert.Zero(t, b.Start.Minute())
		assert.Zero(t, b.Start.Second())
		if i > 0 {
			assert.Equal(t, time.Hour, b.Start.Sub(buckets[i-1].Start))
		}
	}
}

func TestSummarizeEvents(t *testing.T) {
	rms := func(v float64) *float64 { return &v }
	yesterday := refNow.Add(-20 * time.Hour)
	events := []*event.Event{
		{CreatedAt: refNow.Add(-time.Hour), Metadata: event.Metadata{RMS: rms(0.2)}},
		{CreatedAt: refNow.Add(-5 * time.Minute), Metadata: event.Metadata{RMS: rms(0.4)}},
		{CreatedAt: yesterday},
	}

	summary := SummarizeEvents(events, refNow)

	assert.Equal(t, 2, summary.AlertsToday)
	require.NotNil(t, summary.LastAlertAt)
	assert.Equal(t, refNow.Add(-5*time.Minute), *summary.LastAlertAt)
	assert.InDelta(t, 0.3, summary.AverageRMS, 1e-9)

	empty := SummarizeEvents(nil, refNow)
	assert.Zero(t, empty.AlertsToday)
	assert.Nil(t, empty.LastAlertAt)
	assert.Zero(t, empty.AverageRMS)
}
