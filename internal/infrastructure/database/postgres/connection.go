package postgres

import (
	"context"
	"fmt"
	"time"

	"bioacoustic-monitor/internal/authz"
	"bioacoustic-monitor/internal/config"
	"bioacoustic-monitor/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DB is the store handle. It is built once in main and passed to every
// repository; nothing in the repo reaches for a package-level connection.
type DB struct {
	*gorm.DB
	driver string
}

func NewDB(cfg *config.Config) (*DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case DriverPostgres, "":
		dialector = postgres.Open(cfg.Database.DSN())
	case DriverSQLite:
		dialector = sqlite.Open(cfg.Database.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	var gormLogLevel gormLogger.LogLevel
	if cfg.Server.Environment == "production" {
		gormLogLevel = gormLogger.Warn
	} else {
		gormLogLevel = gormLogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormLogger.Default.LogMode(gormLogLevel),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	driver := cfg.Database.Driver
	if driver == "" {
		driver = DriverPostgres
	}

	logger.Info("Database connection established",
		zap.String("driver", driver),
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.DBName),
		zap.Int("max_open_connections", 25),
		zap.Int("max_idle_connections", 5),
	)

	return &DB{DB: db, driver: driver}, nil
}

// Wrap adopts an already opened gorm handle.
func Wrap(db *gorm.DB, driver string) *DB {
	return &DB{DB: db, driver: driver}
}

func (d *DB) Driver() string {
	return d.driver
}

// Scoped runs fn against the store on behalf of the principal in ctx. On
// Postgres the principal's claims are set transaction-locally so row level
// security policies see them; each call is its own transaction. Without a
// principal (background workers) fn runs on the bare connection.
func (d *DB) Scoped(ctx context.Context, fn func(tx *gorm.DB) error) error {
	p, ok := authz.FromContext(ctx)
	if !ok || d.driver != DriverPostgres {
		return fn(d.DB.WithContext(ctx))
	}

	return d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Exec(
			"SELECT set_config('app.user_id', ?, true), set_config('app.role', ?, true), set_config('app.organization_id', ?, true)",
			p.UserID.String(), string(p.Role), uuidString(p.OrganizationID),
		).Error
		if err != nil {
			return err
		}
		return fn(tx)
	})
}

func (d *DB) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *DB) Health() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
