package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel changes the level of this package's logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// retryDelays is the wait before each reconnect; its length plus one is the attempt budget
var retryDelays = []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second}

// Migrator creates or updates tables on a fresh connection
type Migrator func(db *gorm.DB) error

// InitDatabase opens the configured database with retry and exponential backoff,
// tunes the connection pool and runs the given migrations.
func InitDatabase(cfg DatabaseConfig, migrations ...Migrator) (*gorm.DB, error) {
	driver := cfg.normalizedDriver()

	log.WithFields(logrus.Fields{
		"db_driver": driver,
		"db_host":   cfg.Host,
		"db_name":   cfg.Name,
		"db_path":   cfg.Path,
	}).Info("Initializing database connection")

	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	maxAttempts := len(retryDelays) + 1
	var db *gorm.DB
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		log.WithFields(logrus.Fields{
			"attempt":      attempt,
			"max_attempts": maxAttempts,
		}).Info("Attempting database connection")

		db, err = connect(dialector)
		if err == nil {
			break
		}

		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Database connection attempt failed")

		// Don't wait after the last attempt
		if attempt < maxAttempts {
			delay := retryDelays[attempt-1]
			log.WithField("delay", delay).Info("Retrying database connection")
			time.Sleep(delay)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxAttempts, err)
	}

	for _, migrate := range migrations {
		if err := migrate(db); err != nil {
			return nil, fmt.Errorf("migrate database: %w", err)
		}
	}

	log.WithField("db_driver", driver).Info("Database initialized successfully")
	return db, nil
}

// openDialector selects the gorm dialector for the configured driver
func openDialector(cfg DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.normalizedDriver() {
	case "postgres":
		log.WithField("dsn_host", cfg.Host).Debug("Using PostgreSQL")
		return postgres.Open(cfg.DSN()), nil
	case "sqlite":
		log.WithField("db_path", cfg.DSN()).Debug("Using SQLite")
		return sqlite.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", cfg.Driver)
	}
}

// connect opens a session, verifies it with a ping and configures the pool
func connect(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		// Unique violations come back as gorm.ErrDuplicatedKey.
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Error("Failed to get database instance")
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		log.WithError(err).Error("Failed to ping database")
		return nil, err
	}

	configureConnectionPool(sqlDB, dialector.Name())
	return db, nil
}

// configureConnectionPool sets up connection pool parameters for the driver
func configureConnectionPool(sqlDB *sql.DB, driver string) {
	maxOpen := 25
	if driver == "sqlite" {
		// SQLite allows one writer; a single connection avoids "database is locked".
		maxOpen = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	log.WithFields(logrus.Fields{
		"max_open_conns":    maxOpen,
		"max_idle_conns":    5,
		"conn_max_lifetime": "5m",
	}).Debug("Connection pool configured")
}
