// Package postgres contains the concrete implementation of the persistence
// layer using GORM and PostgreSQL.
package postgres

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pond/config"
)

// New opens the PostgreSQL connection. TranslateError is enabled so driver
// constraint violations surface as gorm.ErrDuplicatedKey and friends, which
// the repositories treat as the authoritative conflict signal.
func New(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	if cfg.Postgres == nil {
		return nil, errors.New("postgres config must be provided")
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.DBName,
		sslModeOrDefault(cfg.Postgres.SSLMode),
		timeZoneOrDefault(cfg.Postgres.TimeZone),
	)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to postgres")
	}

	logger.Info("Connected to postgres",
		slog.String("host", cfg.Postgres.Host),
		slog.String("db", cfg.Postgres.DBName),
	)

	return db, nil
}

func sslModeOrDefault(mode string) string {
	if mode == "" {
		return "disable"
	}

	return mode
}

func timeZoneOrDefault(tz string) string {
	if tz == "" {
		return "UTC"
	}

	return tz
}
