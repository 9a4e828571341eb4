package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/moverhub/backend/internal/config"
)

// Open opens the canonical datastore connection and applies pending
// migrations. Postgres is the production driver; sqlite serves local
// development and tests.
func Open(cfg config.DatabaseConfig) (*sql.DB, error) {
	var (
		d   *sql.DB
		err error
	)

	switch cfg.Driver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.Name, cfg.User, cfg.Password, cfg.SSLMode,
		)
		d, err = sql.Open("postgres", dsn)
	case "sqlite":
		d, err = sql.Open("sqlite", cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.Driver == "postgres" {
		d.SetMaxOpenConns(cfg.MaxOpenConns)
		d.SetMaxIdleConns(cfg.MaxIdleConns)
		d.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := d.Ping(); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := RunMigrations(d); err != nil {
		_ = d.Close()
		return nil, err
	}

	return d, nil
}
