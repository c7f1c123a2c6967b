package connection

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Harshitduggal1/scheduling-software/pkg/config"
)

type Database struct {
	*gorm.DB
	dsn string
}

// Reconnect attempts to reconnect to the database if the connection is lost
func (db *Database) Reconnect() error {
	newDB, err := gorm.Open(postgres.Open(db.dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to reconnect to database: %w", err)
	}

	db.DB = newDB

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying *sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return nil
}

func NewDatabase(cfg *config.Config) (*Database, error) {
	sslMode := cfg.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		sslMode,
	)

	// Verify connectivity with a plain SQL connection first so a bad DSN
	// surfaces as a typed postgres error instead of a GORM wrap.
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create sql.DB: %w", err)
	}
	defer sqlDB.Close()

	sqlDB.SetConnMaxLifetime(10 * time.Second)
	if err = sqlDB.Ping(); err != nil {
		if sqlErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("postgres error: code=%s, message=%s, detail=%s", sqlErr.Code, sqlErr.Message, sqlErr.Detail)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	gormConfig := &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Warn),
		PrepareStmt: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database with GORM: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying *sql.DB: %w", err)
	}

	maxIdleConns := 10
	maxOpenConns := 100
	if cfg.Database.MaxIdleConns > 0 {
		maxIdleConns = cfg.Database.MaxIdleConns
	}
	if cfg.Database.MaxOpenConns > 0 {
		maxOpenConns = cfg.Database.MaxOpenConns
	}

	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping connection pool: %w", err)
	}

	return &Database{
		DB:  db,
		dsn: dsn,
	}, nil
}
