package ingestion

import (
	"context"
	"errors"
	"testing"
	"time"

	domainDevice "bioacoustic-monitor/internal/domain/device"
	domainEvent "bioacoustic-monitor/internal/domain/event"
	"bioacoustic-monitor/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProcessor(t *testing.T, workers, buffer int) (*Processor, *mocks.MockDeviceRepository, *mocks.MockEventRepository, *mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	devices := mocks.NewMockDeviceRepository(ctrl)
	events := mocks.NewMockEventRepository(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)
	return NewProcessor(devices, events, publisher, workers, buffer), devices, events, publisher
}

func TestDeviceUIDFromTopic(t *testing.T) {
	assert.Equal(t, "RPI-001", DeviceUIDFromTopic("farm/RPI-001/alert"))
	assert.Equal(t, "rpi-7", DeviceUIDFromTopic("a/b/rpi-7/heartbeat"))
	assert.Equal(t, "", DeviceUIDFromTopic("alert"))
}

func TestTopics(t *testing.T) {
	hb, alert := Topics("farm/")
	assert.Equal(t, "farm/+/heartbeat", hb)
	assert.Equal(t, "farm/+/alert", alert)
}

func TestParseHeartbeat_UIDFromTopic(t *testing.T) {
	msg, err := ParseHeartbeat("farm/rpi-001/heartbeat", nil)

	require.NoError(t, err)
	assert.Equal(t, "RPI-001", msg.DeviceUID)
	assert.False(t, msg.Timestamp.IsZero())
}

func TestParseAlert(t *testing.T) {
	payload := []byte(`{"alert_type":"high_pitch","confidence":0.87,"timestamp":"2026-03-01T10:00:00Z","metadata":{"rms":0.3,"storage_path":"alerts/RPI-002/a.wav"}}`)

	msg, err := ParseAlert("farm/RPI-002/alert", payload)

	require.NoError(t, err)
	assert.Equal(t, "RPI-002", msg.DeviceUID)
	assert.Equal(t, domainEvent.AlertHighPitch, msg.AlertType)
	assert.InDelta(t, 0.87, msg.Confidence, 1e-9)
	require.NotNil(t, msg.Metadata.StoragePath)
	assert.Equal(t, "alerts/RPI-002/a.wav", *msg.Metadata.StoragePath)

	_, err = ParseAlert("farm/RPI-002/alert", []byte(`{not json`))
	assert.Error(t, err)
}

func TestValidateAlert(t *testing.T) {
	now := time.Now()
	zcr := 1.5
	tests := []struct {
		name  string
		msg   AlertMessage
		field string
	}{
		{"missing uid", AlertMessage{AlertType: domainEvent.AlertHighPitch, Timestamp: now}, "device_uid"},
		{"unknown type", AlertMessage{DeviceUID: "RPI-1", AlertType: "bark", Timestamp: now}, "alert_type"},
		{"confidence", AlertMessage{DeviceUID: "RPI-1", AlertType: domainEvent.AlertMLPrediction, Confidence: 1.2, Timestamp: now}, "confidence"},
		{"future", AlertMessage{DeviceUID: "RPI-1", AlertType: domainEvent.AlertMLPrediction, Timestamp: now.Add(time.Hour)}, "timestamp"},
		{"zcr", AlertMessage{DeviceUID: "RPI-1", AlertType: domainEvent.AlertNoiseThreshold, Timestamp: now, Metadata: domainEvent.Metadata{ZCR: &zcr}}, "metadata.zcr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAlert(&tt.msg, now)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}

	ok := AlertMessage{DeviceUID: "RPI-1", AlertType: domainEvent.AlertHighPitch, Confidence: 0.5, Timestamp: now}
	assert.NoError(t, ValidateAlert(&ok, now))
}

func TestProcessor_AlertStoredAgainstRoom(t *testing.T) {
	p, devices, events, publisher := newTestProcessor(t, 1, 10)
	roomID := uuid.New()
	d := &domainDevice.Device{ID: uuid.New(), DeviceUID: "RPI-001", RoomID: &roomID}
	at := time.Now().Add(-time.Second)

	devices.EXPECT().GetByUID(gomock.Any(), "RPI-001").Return(d, nil)
	events.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *domainEvent.Event) error {
		assert.Equal(t, d.ID, e.DeviceID)
		assert.Equal(t, roomID, e.RoomID)
		assert.Equal(t, at, e.CreatedAt)
		return nil
	})
	publisher.EXPECT().Publish(gomock.Any(), "events").Return(nil)

	p.Start(context.Background())
	require.NoError(t, p.SubmitAlert(&AlertMessage{DeviceUID: "RPI-001", AlertType: domainEvent.AlertHighPitch, Confidence: 0.9, Timestamp: at}))
	p.Stop()

	m := p.Metrics()
	assert.Equal(t, int64(1), m.MessagesReceived)
	assert.Equal(t, int64(1), m.MessagesProcessed)
	assert.Equal(t, int64(1), m.EventsInserted)
}

func TestProcessor_UnassignedAlertDropped(t *testing.T) {
	p, devices, _, _ := newTestProcessor(t, 1, 10)

	devices.EXPECT().GetByUID(gomock.Any(), "RPI-009").Return(&domainDevice.Device{ID: uuid.New(), DeviceUID: "RPI-009"}, nil)

	err := p.handle(context.Background(), job{alert: &AlertMessage{DeviceUID: "RPI-009", AlertType: domainEvent.AlertHighPitch, Timestamp: time.Now()}})

	require.NoError(t, err)
	assert.Equal(t, int64(1), p.Metrics().UnassignedAlerts)
	assert.Zero(t, p.Metrics().EventsInserted)
}

func TestProcessor_HeartbeatUnknownDevice(t *testing.T) {
	p, devices, _, _ := newTestProcessor(t, 1, 10)

	devices.EXPECT().RecordHeartbeat(gomock.Any(), "RPI-404", nil, gomock.Any()).Return(domainDevice.ErrDeviceNotFound)

	err := p.handle(context.Background(), job{heartbeat: &HeartbeatMessage{DeviceUID: "RPI-404", Timestamp: time.Now()}})

	assert.ErrorIs(t, err, domainDevice.ErrDeviceNotFound)
	assert.Zero(t, p.Metrics().HeartbeatsRecorded)
}

func TestProcessor_HeartbeatPublishFailureIsNotFatal(t *testing.T) {
	p, devices, _, publisher := newTestProcessor(t, 1, 10)
	fw := "1.4.0"

	devices.EXPECT().RecordHeartbeat(gomock.Any(), "RPI-001", &fw, gomock.Any()).Return(nil)
	publisher.EXPECT().Publish(gomock.Any(), "devices").Return(errors.New("redis down"))

	err := p.handle(context.Background(), job{heartbeat: &HeartbeatMessage{DeviceUID: "RPI-001", FirmwareVersion: &fw, Timestamp: time.Now()}})

	require.NoError(t, err)
	assert.Equal(t, int64(1), p.Metrics().HeartbeatsRecorded)
}

func TestProcessor_DrainsQueueAfterCancel(t *testing.T) {
	p, devices, _, publisher := newTestProcessor(t, 2, 10)

	devices.EXPECT().RecordHeartbeat(gomock.Any(), "RPI-001", nil, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ *string, _ time.Time) error {
			assert.NoError(t, ctx.Err())
			return nil
		}).Times(5)
	publisher.EXPECT().Publish(gomock.Any(), "devices").Return(nil).Times(5)

	for i := 0; i < 5; i++ {
		require.NoError(t, p.SubmitHeartbeat(&HeartbeatMessage{DeviceUID: "RPI-001", Timestamp: time.Now()}))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.Start(ctx)
	p.Stop()

	m := p.Metrics()
	assert.Equal(t, int64(5), m.HeartbeatsRecorded)
	assert.Zero(t, m.MessagesFailed)
	assert.Zero(t, m.MessagesDropped)
}

func TestProcessor_DropsWhenBufferFull(t *testing.T) {
	p, _, _, _ := newTestProcessor(t, 1, 1)
	msg := &HeartbeatMessage{DeviceUID: "RPI-001", Timestamp: time.Now()}

	// Not started: the single slot fills and the next message is dropped.
	require.NoError(t, p.SubmitHeartbeat(msg))
	assert.Error(t, p.SubmitHeartbeat(msg))

	m := p.Metrics()
	assert.Equal(t, int64(1), m.MessagesReceived)
	assert.Equal(t, int64(1), m.MessagesDropped)
}

func TestProcessor_RejectsAfterStop(t *testing.T) {
	p, _, _, _ := newTestProcessor(t, 2, 4)
	p.Start(context.Background())
	p.Stop()
	p.Stop()

	err := p.SubmitHeartbeat(&HeartbeatMessage{DeviceUID: "RPI-001", Timestamp: time.Now()})
	assert.ErrorIs(t, err, errStopped)
}

func TestProcessor_InvalidMessageCountsFailure(t *testing.T) {
	p, _, _, _ := newTestProcessor(t, 1, 4)

	err := p.SubmitAlert(&AlertMessage{DeviceUID: "RPI-001", AlertType: "howl", Timestamp: time.Now()})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, int64(1), p.Metrics().MessagesFailed)
}
