package ingestion

import (
	"encoding/json"
	"strings"
	"time"

	domainEvent "bioacoustic-monitor/internal/domain/event"
	"bioacoustic-monitor/pkg/utils"
)

// HeartbeatMessage is published by a device on <prefix>/<uid>/heartbeat.
type HeartbeatMessage struct {
	DeviceUID       string    `json:"device_uid"`
	Timestamp       time.Time `json:"timestamp"`
	FirmwareVersion *string   `json:"firmware_version"`
}

// AlertMessage is published by a device on <prefix>/<uid>/alert once its
// on-board detector has classified a sound.
type AlertMessage struct {
	DeviceUID  string                `json:"device_uid"`
	Timestamp  time.Time             `json:"timestamp"`
	AlertType  domainEvent.AlertType `json:"alert_type"`
	Confidence float64               `json:"confidence"`
	Metadata   domainEvent.Metadata  `json:"metadata"`
}

// DeviceUIDFromTopic extracts the uid segment of <prefix>/<uid>/<kind>.
func DeviceUIDFromTopic(topic string) string {
	parts := strings.Split(topic, "/")
	if len(parts) < 3 {
		return ""
	}
	return parts[len(parts)-2]
}

// ParseHeartbeat decodes payload. The topic supplies the device UID when the
// payload omits it; an empty payload is a valid heartbeat.
func ParseHeartbeat(topic string, payload []byte) (*HeartbeatMessage, error) {
	var msg HeartbeatMessage
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &msg); err != nil {
			return nil, err
		}
	}
	msg.DeviceUID = normalizeUID(msg.DeviceUID, topic)
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	return &msg, nil
}

func ParseAlert(topic string, payload []byte) (*AlertMessage, error) {
	var msg AlertMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil, err
	}
	msg.DeviceUID = normalizeUID(msg.DeviceUID, topic)
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	return &msg, nil
}

func normalizeUID(uid, topic string) string {
	if strings.TrimSpace(uid) == "" {
		uid = DeviceUIDFromTopic(topic)
	}
	return utils.SanitizeUID(uid)
}
