package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/yukikurage/family-task-api/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PoolConfig describes how the shared connection pool is opened and sized.
// When Dialector is set it is used as-is and Driver/DSN are ignored.
type PoolConfig struct {
	Driver          string
	DSN             string
	Dialector       gorm.Dialector
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	LogLevel        logger.LogLevel
	Logger          *slog.Logger
}

// DatabasePool owns the process-wide *gorm.DB. Requests borrow connections
// from the underlying database/sql pool; nothing holds one across requests.
type DatabasePool struct {
	DB     *gorm.DB
	config *PoolConfig
}

func DefaultPoolConfig() *PoolConfig {
	return &PoolConfig{
		Driver:          config.DriverPostgres,
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
		LogLevel:        logger.Warn,
	}
}

// PoolConfigFromConfig derives the pool settings from application config.
func PoolConfigFromConfig(cfg *config.Config, log *slog.Logger) *PoolConfig {
	level := logger.Warn
	if config.ParseLogLevel(cfg.LogLevel) == slog.LevelDebug {
		level = logger.Info
	}

	return &PoolConfig{
		Driver:          cfg.DBDriver,
		DSN:             cfg.DatabaseDSN(),
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		ConnMaxIdleTime: cfg.DBConnMaxIdleTime,
		LogLevel:        level,
		Logger:          log,
	}
}

func (c *PoolConfig) validate() error {
	if c.Dialector == nil && c.DSN == "" {
		return errors.New("database DSN is required")
	}
	if c.MaxOpenConns < 0 || c.MaxIdleConns < 0 {
		return errors.New("connection limits must not be negative")
	}
	if c.ConnMaxLifetime < 0 || c.ConnMaxIdleTime < 0 {
		return errors.New("connection lifetimes must not be negative")
	}
	return nil
}

func (c *PoolConfig) dialector() (gorm.Dialector, error) {
	if c.Dialector != nil {
		return c.Dialector, nil
	}

	switch c.Driver {
	case config.DriverPostgres, "":
		return postgres.Open(c.DSN), nil
	case config.DriverMySQL:
		return mysql.Open(c.DSN), nil
	case config.DriverSQLite:
		return sqlite.Open(c.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}

// NewDatabasePool opens the database and applies the pool limits. Storage
// errors for duplicate keys and constraint violations are translated into
// gorm's sentinel errors (gorm.ErrDuplicatedKey and friends).
func NewDatabasePool(cfg *PoolConfig) (*DatabasePool, error) {
	if cfg == nil {
		cfg = DefaultPoolConfig()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	dialector, err := cfg.dialector()
	if err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(slog.NewLogLogger(log.Handler(), slog.LevelInfo), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  cfg.LogLevel,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	log.Info("database connection established",
		"driver", cfg.Driver,
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)

	return &DatabasePool{DB: db, config: cfg}, nil
}

// Health pings the database using a pooled connection.
func (p *DatabasePool) Health(ctx context.Context) error {
	if p == nil || p.DB == nil {
		return errors.New("database is not connected")
	}

	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Stats reports connection pool counters for diagnostics.
func (p *DatabasePool) Stats() map[string]interface{} {
	if p == nil || p.DB == nil {
		return map[string]interface{}{"error": "database is not connected"}
	}

	sqlDB, err := p.DB.DB()
	if err != nil {
		return map[string]interface{}{"error": err.Error()}
	}

	stats := sqlDB.Stats()
	return map[string]interface{}{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration":        stats.WaitDuration.String(),
	}
}

func (p *DatabasePool) Close() error {
	if p == nil || p.DB == nil {
		return nil
	}

	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
