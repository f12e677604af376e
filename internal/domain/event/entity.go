package event

import (
	"time"

	"github.com/google/uuid"
)

// Event is a bioacoustic alert raised by a device.
type Event struct {
	ID         uuid.UUID
	CreatedAt  time.Time
	DeviceID   uuid.UUID
	RoomID     uuid.UUID
	AlertType  AlertType
	Confidence float64
	Metadata   Metadata
}

type AlertType string

const (
	AlertNoiseThreshold AlertType = "noise_threshold"
	AlertHighPitch      AlertType = "high_pitch"
	AlertMLPrediction   AlertType = "ml_prediction"
)

func (a AlertType) Valid() bool {
	switch a {
	case AlertNoiseThreshold, AlertHighPitch, AlertMLPrediction:
		return true
	}
	return false
}

// Metadata carries the acoustic features and clip references captured at
// detection time. All fields are optional.
type Metadata struct {
	RMS            *float64 `json:"rms,omitempty"`
	ZCR            *float64 `json:"zcr,omitempty"`
	AudioURL       *string  `json:"audio_url,omitempty"`
	StoragePath    *string  `json:"storage_path,omitempty"`
	AudioFileLocal *string  `json:"audio_file_local,omitempty"`
}
