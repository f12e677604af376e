package realtime

import (
	"context"
	"fmt"
	"time"

	"bioacoustic-monitor/internal/logger"

	"github.com/go-redis/redis/v8"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

// Source delivers change notifications; the payload is the table name.
type Source interface {
	Listen(ctx context.Context, emit func(table string)) error
}

// Pump forwards every notification from src into the hub until ctx ends.
func Pump(ctx context.Context, src Source, hub *Hub) error {
	return src.Listen(ctx, func(table string) {
		hub.Broadcast(Refresh(table))
	})
}

type RedisSource struct {
	client  *redis.Client
	channel string
}

func NewRedisSource(client *redis.Client, channel string) *RedisSource {
	return &RedisSource{client: client, channel: channel}
}

func (s *RedisSource) Listen(ctx context.Context, emit func(string)) error {
	pubsub := s.client.Subscribe(ctx, s.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", s.channel, err)
	}
	logger.Info("Realtime source listening", zap.String("source", "redis"), zap.String("channel", s.channel))

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			emit(msg.Payload)
		}
	}
}

// PostgresSource listens for NOTIFY on channel. The database triggers
// send the changed table name as payload.
type PostgresSource struct {
	dsn     string
	channel string
}

func NewPostgresSource(dsn, channel string) *PostgresSource {
	return &PostgresSource{dsn: dsn, channel: channel}
}

func (s *PostgresSource) Listen(ctx context.Context, emit func(string)) error {
	listener := pq.NewListener(s.dsn, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			logger.Warn("Postgres listener event", zap.Int("event", int(ev)), zap.Error(err))
		}
	})
	defer listener.Close()

	if err := listener.Listen(s.channel); err != nil {
		return fmt.Errorf("listen %s: %w", s.channel, err)
	}
	logger.Info("Realtime source listening", zap.String("source", "postgres"), zap.String("channel", s.channel))

	for {
		select {
		case <-ctx.Done():
			return nil
		case n := <-listener.Notify:
			// nil after a reconnect; state may have changed in between.
			if n == nil {
				emit("*")
				continue
			}
			emit(n.Extra)
		case <-time.After(90 * time.Second):
			go func() { _ = listener.Ping() }()
		}
	}
}

// Publisher announces a change made outside the database triggers' reach.
type Publisher interface {
	Publish(ctx context.Context, table string) error
}

type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, table string) error {
	return p.client.Publish(ctx, p.channel, table).Err()
}

// NopPublisher is used when the Postgres triggers already notify.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string) error { return nil }
