package database

import (
	"context"
	"fmt"

	"wirpackens-service/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func DSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.DBName, cfg.SSLMode)
}

// GetConnection opens and pings a Postgres pool.
func GetConnection(ctx context.Context, cfg *config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS contacts (
		id          BIGSERIAL PRIMARY KEY,
		first_name  TEXT NOT NULL,
		last_name   TEXT NOT NULL,
		email       TEXT NOT NULL,
		phone       TEXT,
		service     TEXT,
		message     TEXT,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS price_calculations (
		id                BIGSERIAL PRIMARY KEY,
		service_type      TEXT NOT NULL,
		room_count        INTEGER NOT NULL DEFAULT 0,
		square_meters     INTEGER NOT NULL,
		floor_count       INTEGER NOT NULL DEFAULT 0,
		express_service   BOOLEAN NOT NULL DEFAULT false,
		weekend_service   BOOLEAN NOT NULL DEFAULT false,
		disposal_service  BOOLEAN NOT NULL DEFAULT false,
		base_price        BIGINT NOT NULL,
		additional_price  BIGINT NOT NULL,
		total_price       BIGINT NOT NULL,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id                        BIGSERIAL PRIMARY KEY,
		price_calculation_id      BIGINT REFERENCES price_calculations(id),
		customer_name             TEXT NOT NULL,
		customer_email            TEXT NOT NULL,
		customer_phone            TEXT NOT NULL,
		service_type              TEXT NOT NULL,
		appointment_date          TIMESTAMPTZ NOT NULL,
		appointment_time          TEXT NOT NULL,
		current_address           TEXT NOT NULL,
		new_address               TEXT,
		special_requests          TEXT,
		total_price               BIGINT NOT NULL,
		deposit_amount            BIGINT NOT NULL DEFAULT 20000,
		payment_status            TEXT NOT NULL DEFAULT 'pending',
		stripe_payment_intent_id  TEXT,
		stripe_session_id         TEXT,
		booking_status            TEXT NOT NULL DEFAULT 'pending',
		created_at                TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at                TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS bookings_created_at_idx ON bookings (created_at DESC, id DESC)`,
}

// Migrate creates the tables if they do not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
