package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bioacoustic-monitor/internal/config"
	"bioacoustic-monitor/internal/infrastructure/database/postgres"
	"bioacoustic-monitor/internal/infrastructure/realtime"
	"bioacoustic-monitor/internal/ingestion"
	"bioacoustic-monitor/internal/logger"
	pkgmqtt "bioacoustic-monitor/pkg/mqtt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// The ingestor connects with a role that bypasses row level security; it
// writes on behalf of devices, not users.
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}
	if err := logger.Init(cfg.Server.Environment); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.MQTT.Broker == "" {
		logger.Fatal("MQTT broker is missing. Please set MQTT_BROKER environment variable.")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	var publisher realtime.Publisher = realtime.NopPublisher{}
	if cfg.Realtime.Source != "postgres" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		publisher = realtime.NewRedisPublisher(rdb, cfg.Realtime.Channel)
	}

	processor := ingestion.NewProcessor(
		postgres.NewDeviceRepository(db),
		postgres.NewEventRepository(db),
		publisher,
		cfg.Ingestion.Workers,
		cfg.Ingestion.BufferSize,
	)
	processor.Start(ctx)

	heartbeatTopic, alertTopic := ingestion.Topics(cfg.MQTT.TopicPrefix)
	client, err := ingestion.NewMQTTIngestionClient(&ingestion.MQTTIngestionConfig{
		ClientConfig: &pkgmqtt.Config{
			Broker:       cfg.MQTT.Broker,
			ClientID:     cfg.MQTT.ClientID,
			Username:     cfg.MQTT.Username,
			Password:     cfg.MQTT.Password,
			CleanSession: true,
		},
		HeartbeatTopic: heartbeatTopic,
		AlertTopic:     alertTopic,
		QoS:            byte(cfg.MQTT.QoS),
	}, processor)
	if err != nil {
		logger.Fatal("Failed to configure MQTT ingestion", zap.Error(err))
	}
	if err := client.Start(); err != nil {
		logger.Fatal("Failed to start MQTT ingestion", zap.Error(err))
	}

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			logger.Info("Ingestion metrics", processor.Metrics().Fields()...)
		case <-ctx.Done():
			logger.Info("Shutting down ingestor")
			client.Stop()
			processor.Stop()
			return
		}
	}
}
