package ingestion

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"bioacoustic-monitor/internal/logger"
	pkgmqtt "bioacoustic-monitor/pkg/mqtt"

	"go.uber.org/zap"
)

// Topics returns the heartbeat and alert subscriptions under prefix.
func Topics(prefix string) (heartbeat, alert string) {
	prefix = strings.TrimSuffix(prefix, "/")
	return prefix + "/+/heartbeat", prefix + "/+/alert"
}

// MQTTIngestionConfig describes the topics and MQTT connection parameters.
type MQTTIngestionConfig struct {
	ClientConfig   *pkgmqtt.Config
	HeartbeatTopic string
	AlertTopic     string
	QoS            byte
}

// MQTTIngestionClient wires MQTT messages into the ingestion processor.
type MQTTIngestionClient struct {
	cfg       *MQTTIngestionConfig
	client    *pkgmqtt.Client
	processor *Processor

	mu            sync.Mutex
	started       bool
	subscriptions []string
}

func NewMQTTIngestionClient(cfg *MQTTIngestionConfig, processor *Processor) (*MQTTIngestionClient, error) {
	if cfg == nil || cfg.ClientConfig == nil {
		return nil, errors.New("mqtt ingestion config is not configured")
	}
	if processor == nil {
		return nil, errors.New("processor is required")
	}
	if cfg.HeartbeatTopic == "" || cfg.AlertTopic == "" {
		return nil, errors.New("heartbeat and alert topics are required")
	}

	return &MQTTIngestionClient{
		cfg:       cfg,
		client:    pkgmqtt.NewClient(cfg.ClientConfig),
		processor: processor,
	}, nil
}

// Start connects to the broker and subscribes to the device topics.
func (c *MQTTIngestionClient) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return nil
	}
	if err := c.client.Connect(); err != nil {
		return err
	}

	subs := map[string]pkgmqtt.MessageHandler{
		c.cfg.HeartbeatTopic: c.handleHeartbeat,
		c.cfg.AlertTopic:     c.handleAlert,
	}
	for topic, handler := range subs {
		if err := c.client.Subscribe(topic, c.cfg.QoS, handler); err != nil {
			c.client.Disconnect()
			return fmt.Errorf("subscribe failed for topic %s: %w", topic, err)
		}
		c.subscriptions = append(c.subscriptions, topic)
	}

	c.started = true
	return nil
}

func (c *MQTTIngestionClient) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return
	}
	if err := c.client.Unsubscribe(c.subscriptions...); err != nil {
		logger.Warn("Failed to unsubscribe from MQTT topics", zap.Error(err))
	}

	c.client.Disconnect()
	c.started = false
	c.subscriptions = nil
}

func (c *MQTTIngestionClient) handleHeartbeat(topic string, payload []byte) {
	msg, err := ParseHeartbeat(topic, payload)
	if err != nil {
		logger.Warn("Invalid heartbeat payload", zap.String("topic", topic), zap.Error(err))
		return
	}
	if err := c.processor.SubmitHeartbeat(msg); err != nil {
		logger.Debug("Heartbeat rejected", zap.String("topic", topic), zap.Error(err))
	}
}

func (c *MQTTIngestionClient) handleAlert(topic string, payload []byte) {
	msg, err := ParseAlert(topic, payload)
	if err != nil {
		logger.Warn("Invalid alert payload", zap.String("topic", topic), zap.Error(err))
		return
	}
	if err := c.processor.SubmitAlert(msg); err != nil {
		logger.Warn("Alert rejected", zap.String("topic", topic), zap.Error(err))
	}
}
