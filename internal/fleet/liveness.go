// Package fleet derives health, revenue and timeline view state from raw
// hierarchy rows. Nothing here performs I/O or mutates its inputs.
package fleet

import (
	"time"

	"bioacoustic-monitor/internal/domain/device"
)

// LivenessWindow is how recent a heartbeat must be for an "online" device
// to count as online.
const LivenessWindow = 10 * time.Minute

// IsEffectivelyOnline reports whether d is flagged online and has
// heartbeated strictly less than LivenessWindow before now.
func IsEffectivelyOnline(d *device.Device, now time.Time) bool {
	if d == nil || d.Status != device.StatusOnline || d.LastHeartbeat == nil {
		return false
	}
	return now.Sub(*d.LastHeartbeat) < LivenessWindow
}

// HasOffline reports whether any device in the slice is not effectively online.
func HasOffline(devices []*device.Device, now time.Time) bool {
	for _, d := range devices {
		if !IsEffectivelyOnline(d, now) {
			return true
		}
	}
	return false
}
