package ingestion

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	domainDevice "bioacoustic-monitor/internal/domain/device"
	domainEvent "bioacoustic-monitor/internal/domain/event"
	"bioacoustic-monitor/internal/infrastructure/realtime"
	"bioacoustic-monitor/internal/logger"

	"go.uber.org/zap"
)

const messageTimeout = 5 * time.Second

var errStopped = errors.New("processor stopped")

type job struct {
	heartbeat *HeartbeatMessage
	alert     *AlertMessage
}

// Processor applies device messages to the store with a fixed worker pool
// fed by a bounded buffer. Messages arriving while the buffer is full are
// dropped.
type Processor struct {
	devices   domainDevice.Repository
	events    domainEvent.Repository
	publisher realtime.Publisher

	workerCount int
	jobs        chan job

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup

	metrics *MetricsTracker
	now     func() time.Time
}

func NewProcessor(devices domainDevice.Repository, events domainEvent.Repository, publisher realtime.Publisher, workerCount, bufferSize int) *Processor {
	if workerCount <= 0 {
		workerCount = 1
	}
	if bufferSize <= 0 {
		bufferSize = 100
	}
	if publisher == nil {
		publisher = realtime.NopPublisher{}
	}

	return &Processor{
		devices:     devices,
		events:      events,
		publisher:   publisher,
		workerCount: workerCount,
		jobs:        make(chan job, bufferSize),
		metrics:     NewMetricsTracker(),
		now:         time.Now,
	}
}

func (p *Processor) Start(ctx context.Context) {
	logger.Info("Starting ingestion processor",
		zap.Int("workers", p.workerCount),
		zap.Int("buffer", cap(p.jobs)),
	)

	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

// Stop refuses new messages and waits for the queued ones to drain. Call it
// on shutdown even when the Start context is already cancelled.
func (p *Processor) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
	logger.Info("Ingestion processor stopped", p.metrics.Snapshot().Fields()...)
}

func (p *Processor) SubmitHeartbeat(msg *HeartbeatMessage) error {
	if err := ValidateHeartbeat(msg, p.now()); err != nil {
		p.metrics.Update(func(m *IngestMetrics) { m.MessagesFailed++ })
		return err
	}
	return p.enqueue(job{heartbeat: msg}, msg.DeviceUID)
}

func (p *Processor) SubmitAlert(msg *AlertMessage) error {
	if err := ValidateAlert(msg, p.now()); err != nil {
		p.metrics.Update(func(m *IngestMetrics) { m.MessagesFailed++ })
		return err
	}
	return p.enqueue(job{alert: msg}, msg.DeviceUID)
}

func (p *Processor) enqueue(j job, uid string) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return errStopped
	}

	select {
	case p.jobs <- j:
		p.metrics.Update(func(m *IngestMetrics) {
			m.MessagesReceived++
			m.BufferSize = len(p.jobs)
		})
		return nil
	default:
		logger.Warn("Ingestion buffer full, dropping message", zap.String("device_uid", uid))
		p.metrics.Update(func(m *IngestMetrics) { m.MessagesDropped++ })
		return fmt.Errorf("buffer full: message from %s dropped", uid)
	}
}

// worker runs until the buffer is closed by Stop. Jobs still queued after
// ctx is cancelled are written with a detached context so shutdown does not
// lose them.
func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for j := range p.jobs {
		jobCtx := ctx
		if ctx.Err() != nil {
			jobCtx = context.WithoutCancel(ctx)
		}

		start := time.Now()
		if err := p.handle(jobCtx, j); err != nil {
			logger.Warn("Failed to process device message", zap.Int("worker", id), zap.Error(err))
			p.metrics.Update(func(m *IngestMetrics) { m.MessagesFailed++ })
			continue
		}
		p.metrics.observe(time.Since(start), p.now())
	}
}

func (p *Processor) handle(ctx context.Context, j job) error {
	ctx, cancel := context.WithTimeout(ctx, messageTimeout)
	defer cancel()

	switch {
	case j.heartbeat != nil:
		return p.recordHeartbeat(ctx, j.heartbeat)
	case j.alert != nil:
		return p.recordAlert(ctx, j.alert)
	}
	return nil
}

func (p *Processor) recordHeartbeat(ctx context.Context, msg *HeartbeatMessage) error {
	if err := p.devices.RecordHeartbeat(ctx, msg.DeviceUID, msg.FirmwareVersion, msg.Timestamp); err != nil {
		return fmt.Errorf("heartbeat from %s: %w", msg.DeviceUID, err)
	}
	p.metrics.Update(func(m *IngestMetrics) { m.HeartbeatsRecorded++ })
	p.notify(ctx, "devices")
	return nil
}

// recordAlert stores the alert against the room the device sits in. Devices
// still in inventory have no room and no audience, so their alerts are
// counted and discarded.
func (p *Processor) recordAlert(ctx context.Context, msg *AlertMessage) error {
	d, err := p.devices.GetByUID(ctx, msg.DeviceUID)
	if err != nil {
		return fmt.Errorf("alert from %s: %w", msg.DeviceUID, err)
	}
	if d.RoomID == nil {
		p.metrics.Update(func(m *IngestMetrics) { m.UnassignedAlerts++ })
		logger.Debug("Dropping alert from unassigned device", zap.String("device_uid", d.DeviceUID))
		return nil
	}

	e := &domainEvent.Event{
		CreatedAt:  msg.Timestamp,
		DeviceID:   d.ID,
		RoomID:     *d.RoomID,
		AlertType:  msg.AlertType,
		Confidence: msg.Confidence,
		Metadata:   msg.Metadata,
	}
	if err := p.events.Create(ctx, e); err != nil {
		return fmt.Errorf("store alert from %s: %w", msg.DeviceUID, err)
	}

	p.metrics.Update(func(m *IngestMetrics) { m.EventsInserted++ })
	logger.Info("Alert ingested",
		zap.String("event", "alert_ingested"),
		zap.String("device_uid", d.DeviceUID),
		zap.String("alert_type", string(e.AlertType)),
		zap.Float64("confidence", e.Confidence),
	)
	p.notify(ctx, "events")
	return nil
}

func (p *Processor) notify(ctx context.Context, table string) {
	if err := p.publisher.Publish(ctx, table); err != nil {
		logger.Warn("Failed to publish change", zap.String("table", table), zap.Error(err))
	}
}

func (p *Processor) Metrics() IngestMetrics {
	return p.metrics.Snapshot()
}
