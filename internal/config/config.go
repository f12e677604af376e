package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Redis     RedisConfig
	Realtime  RealtimeConfig
	Storage   StorageConfig
	MQTT      MQTTConfig
	Ingestion IngestionConfig
}

type ServerConfig struct {
	Port        string
	Host        string
	Environment string
	AppURL      string
}

type DatabaseConfig struct {
	Driver      string
	Host        string
	Port        string
	User        string
	Password    string
	DBName      string
	SSLMode     string
	SQLitePath  string
	AutoMigrate bool
}

// AuthConfig points at the hosted identity provider. JWTSecret verifies the
// access tokens it issues; ServiceKey authorizes admin calls such as invites.
type AuthConfig struct {
	JWTSecret   string
	ProviderURL string
	ServiceKey  string
}

type RateLimitConfig struct {
	GeneralRPS   float64 // Requests per second for general endpoints
	GeneralBurst int     // Burst size for general endpoints
}

type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RealtimeConfig selects where change notifications come from: "redis"
// (pub/sub channel) or "postgres" (LISTEN/NOTIFY).
type RealtimeConfig struct {
	Source  string
	Channel string
}

type StorageConfig struct {
	Bucket       string
	Region       string
	Endpoint     string
	UsePathStyle bool
	URLExpiry    time.Duration
}

type MQTTConfig struct {
	Broker      string
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
	QoS         int
}

type IngestionConfig struct {
	Workers    int
	BufferSize int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AddConfigPath(".")
	if homeDir, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(homeDir)
	}
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		log.Printf("Warning: config file not found: %v. Falling back to environment variables only.", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:        viper.GetString("SERVER_PORT"),
			Host:        viper.GetString("SERVER_HOST"),
			Environment: viper.GetString("ENVIRONMENT"),
			AppURL:      viper.GetString("APP_URL"),
		},
		Database: DatabaseConfig{
			Driver:      viper.GetString("DB_DRIVER"),
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetString("DB_PORT"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASSWORD"),
			DBName:      viper.GetString("DB_NAME"),
			SSLMode:     viper.GetString("DB_SSLMODE"),
			SQLitePath:  viper.GetString("DB_SQLITE_PATH"),
			AutoMigrate: viper.GetBool("DB_AUTO_MIGRATE"),
		},
		Auth: AuthConfig{
			JWTSecret:   viper.GetString("JWT_SECRET"),
			ProviderURL: viper.GetString("AUTH_PROVIDER_URL"),
			ServiceKey:  viper.GetString("AUTH_SERVICE_KEY"),
		},
		RateLimit: RateLimitConfig{
			GeneralRPS:   viper.GetFloat64("RATE_LIMIT_GENERAL_RPS"),
			GeneralBurst: viper.GetInt("RATE_LIMIT_GENERAL_BURST"),
		},
		CORS: CORSConfig{
			AllowedOrigins:   viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods:   viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders:   viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
			ExposedHeaders:   viper.GetStringSlice("CORS_EXPOSED_HEADERS"),
			AllowCredentials: viper.GetBool("CORS_ALLOW_CREDENTIALS"),
			MaxAge:           viper.GetInt("CORS_MAX_AGE"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Realtime: RealtimeConfig{
			Source:  viper.GetString("REALTIME_SOURCE"),
			Channel: viper.GetString("REALTIME_CHANNEL"),
		},
		Storage: StorageConfig{
			Bucket:       viper.GetString("S3_BUCKET"),
			Region:       viper.GetString("S3_REGION"),
			Endpoint:     viper.GetString("S3_ENDPOINT"),
			UsePathStyle: viper.GetBool("S3_USE_PATH_STYLE"),
			URLExpiry:    viper.GetDuration("S3_URL_EXPIRY"),
		},
		MQTT: MQTTConfig{
			Broker:      viper.GetString("MQTT_BROKER"),
			ClientID:    viper.GetString("MQTT_CLIENT_ID"),
			Username:    viper.GetString("MQTT_USERNAME"),
			Password:    viper.GetString("MQTT_PASSWORD"),
			TopicPrefix: viper.GetString("MQTT_TOPIC_PREFIX"),
			QoS:         viper.GetInt("MQTT_QOS"),
		},
		Ingestion: IngestionConfig{
			Workers:    viper.GetInt("INGEST_WORKERS"),
			BufferSize: viper.GetInt("INGEST_BUFFER_SIZE"),
		},
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("DB_DRIVER", "postgres")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_SQLITE_PATH", "bioacoustic.db")
	viper.SetDefault("APP_URL", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT_GENERAL_RPS", 20)
	viper.SetDefault("RATE_LIMIT_GENERAL_BURST", 40)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REALTIME_SOURCE", "redis")
	viper.SetDefault("REALTIME_CHANNEL", "events_changes")
	viper.SetDefault("S3_BUCKET", "alerts")
	viper.SetDefault("S3_REGION", "us-east-1")
	viper.SetDefault("S3_URL_EXPIRY", "15m")
	viper.SetDefault("MQTT_CLIENT_ID", "bioacoustic-ingestor")
	viper.SetDefault("MQTT_TOPIC_PREFIX", "farm")
	viper.SetDefault("MQTT_QOS", 1)
	viper.SetDefault("INGEST_WORKERS", 4)
	viper.SetDefault("INGEST_BUFFER_SIZE", 1000)
}

func (c *DatabaseConfig) DSN() string {
	if c.Driver == "sqlite" {
		return c.SQLitePath
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}
