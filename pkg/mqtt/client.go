package mqtt

import (
	"fmt"
	"sync"
	"time"

	"bioacoustic-monitor/internal/logger"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

type Config struct {
	Broker               string
	ClientID             string
	Username             string
	Password             string
	CleanSession         bool
	KeepAlive            time.Duration
	ConnectTimeout       time.Duration
	MaxReconnectInterval time.Duration
}

type Client struct {
	client mqtt.Client
	config *Config

	mu   sync.Mutex
	subs map[string]subscription
}

type subscription struct {
	qos     byte
	handler MessageHandler
}

type MessageHandler func(topic string, payload []byte)

func NewClient(config *Config) *Client {
	c := &Client{config: config, subs: make(map[string]subscription)}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(config.Broker)
	opts.SetClientID(config.ClientID)
	opts.SetUsername(config.Username)
	opts.SetPassword(config.Password)
	opts.SetCleanSession(config.CleanSession)
	opts.SetKeepAlive(orDefault(config.KeepAlive, 30*time.Second))
	opts.SetConnectTimeout(orDefault(config.ConnectTimeout, 10*time.Second))
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(orDefault(config.MaxReconnectInterval, time.Minute))

	// A clean session drops subscriptions on reconnect, so replay them.
	opts.SetOnConnectHandler(func(client mqtt.Client) {
		logger.Info("MQTT connected", zap.String("broker", config.Broker))
		c.mu.Lock()
		defer c.mu.Unlock()
		for topic, sub := range c.subs {
			if token := client.Subscribe(topic, sub.qos, wrap(sub.handler)); token.Wait() && token.Error() != nil {
				logger.Error("MQTT resubscribe failed", zap.String("topic", topic), zap.Error(token.Error()))
			}
		}
	})
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		logger.Warn("MQTT connection lost", zap.Error(err))
	})
	opts.SetReconnectingHandler(func(mqtt.Client, *mqtt.ClientOptions) {
		logger.Info("MQTT reconnecting", zap.String("broker", config.Broker))
	})

	c.client = mqtt.NewClient(opts)
	return c
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

func wrap(handler MessageHandler) mqtt.MessageHandler {
	return func(_ mqtt.Client, msg mqtt.Message) {
		handler(msg.Topic(), msg.Payload())
	}
}

// Connect establishes a connection to the MQTT broker
func (c *Client) Connect() error {
	token := c.client.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to connect to MQTT broker %s: %w", c.config.Broker, err)
	}
	return nil
}

// Subscribe registers handler for topic. The subscription is replayed after
// every reconnect.
func (c *Client) Subscribe(topic string, qos byte, handler MessageHandler) error {
	token := c.client.Subscribe(topic, qos, wrap(handler))
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to subscribe to topic %s: %w", topic, err)
	}

	c.mu.Lock()
	c.subs[topic] = subscription{qos: qos, handler: handler}
	c.mu.Unlock()
	logger.Info("MQTT subscribed", zap.String("topic", topic), zap.Uint8("qos", qos))
	return nil
}

func (c *Client) Unsubscribe(topics ...string) error {
	token := c.client.Unsubscribe(topics...)
	token.Wait()
	c.mu.Lock()
	for _, t := range topics {
		delete(c.subs, t)
	}
	c.mu.Unlock()
	return token.Error()
}

func (c *Client) Disconnect() {
	c.client.Disconnect(250)
	logger.Info("MQTT disconnected", zap.String("broker", c.config.Broker))
}

func (c *Client) IsConnected() bool {
	return c.client.IsConnected()
}
