package ingestion

import (
	"fmt"
	"time"
)

// maxClockSkew bounds how far in the future a device timestamp may be.
const maxClockSkew = 5 * time.Minute

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error [%s]: %s", e.Field, e.Message)
}

func ValidateHeartbeat(msg *HeartbeatMessage, now time.Time) error {
	if msg.DeviceUID == "" {
		return &ValidationError{Field: "device_uid", Message: "device_uid is required"}
	}
	if msg.Timestamp.After(now.Add(maxClockSkew)) {
		return &ValidationError{Field: "timestamp", Message: "timestamp is in the future"}
	}
	if msg.FirmwareVersion != nil && len(*msg.FirmwareVersion) > 50 {
		return &ValidationError{Field: "firmware_version", Message: "firmware_version must be at most 50 characters"}
	}
	return nil
}

func ValidateAlert(msg *AlertMessage, now time.Time) error {
	if msg.DeviceUID == "" {
		return &ValidationError{Field: "device_uid", Message: "device_uid is required"}
	}
	if !msg.AlertType.Valid() {
		return &ValidationError{Field: "alert_type", Message: fmt.Sprintf("unknown alert_type %q", msg.AlertType)}
	}
	if msg.Confidence < 0 || msg.Confidence > 1 {
		return &ValidationError{Field: "confidence", Message: "confidence must be between 0 and 1"}
	}
	if msg.Timestamp.After(now.Add(maxClockSkew)) {
		return &ValidationError{Field: "timestamp", Message: "timestamp is in the future"}
	}

	// RMS is an amplitude and the zero crossing rate a fraction of samples.
	if rms := msg.Metadata.RMS; rms != nil && *rms < 0 {
		return &ValidationError{Field: "metadata.rms", Message: "rms must be non-negative"}
	}
	if zcr := msg.Metadata.ZCR; zcr != nil && (*zcr < 0 || *zcr > 1) {
		return &ValidationError{Field: "metadata.zcr", Message: "zcr must be between 0 and 1"}
	}
	return nil
}
