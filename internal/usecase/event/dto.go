package event

import (
	"time"

	domainEvent "bioacoustic-monitor/internal/domain/event"

	"github.com/google/uuid"
)

type EventResponse struct {
	ID         uuid.UUID             `json:"id"`
	CreatedAt  time.Time             `json:"created_at"`
	DeviceID   uuid.UUID             `json:"device_id"`
	RoomID     uuid.UUID             `json:"room_id"`
	AlertType  domainEvent.AlertType `json:"alert_type"`
	Confidence float64               `json:"confidence"`
	Metadata   domainEvent.Metadata  `json:"metadata"`
}

type AudioURLResponse struct {
	EventID uuid.UUID `json:"event_id"`
	URL     string    `json:"url"`
}

func ToEventResponse(e *domainEvent.Event) EventResponse {
	return EventResponse{
		ID:         e.ID,
		CreatedAt:  e.CreatedAt,
		DeviceID:   e.DeviceID,
		RoomID:     e.RoomID,
		AlertType:  e.AlertType,
		Confidence: e.Confidence,
		Metadata:   e.Metadata,
	}
}
