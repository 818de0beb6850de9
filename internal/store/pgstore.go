package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// pgStore implements Store over a single Postgres key-value table. It is the
// backend for deployments that want state to survive the host, at the cost
// of the same last-writer-wins semantics as the file store.
type pgStore struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPGStore creates a Postgres-backed store and ensures its schema exists.
func NewPGStore(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) (Store, error) {
	s := &pgStore{
		pool:   pool,
		logger: logger.With().Str("store", "postgres").Logger(),
	}

	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *pgStore) ensureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS kiosk_state (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`

	if _, err := s.pool.Exec(ctx, query); err != nil {
		s.logger.Error().Err(err).Msg("failed to ensure state table")
		return fmt.Errorf("failed to ensure state table: %w", err)
	}

	return nil
}

// Load reads the JSON value stored under key into dest. An absent row leaves
// dest untouched; an undecodable value is logged and treated as empty.
func (s *pgStore) Load(ctx context.Context, key string, dest any) error {
	query := `SELECT value FROM kiosk_state WHERE key = $1`

	var data []byte
	err := s.pool.QueryRow(ctx, query, key).Scan(&data)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil
		}
		s.logger.Error().Err(err).Str("key", key).Msg("failed to query state")
		return fmt.Errorf("failed to query state for %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("malformed stored state, treating as empty")
		return nil
	}

	return nil
}

// Save upserts the JSON encoding of value under key.
func (s *pgStore) Save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to encode state")
		return fmt.Errorf("failed to encode state for %s: %w", key, err)
	}

	query := `
		INSERT INTO kiosk_state (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()
	`

	if _, err := s.pool.Exec(ctx, query, key, data); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to upsert state")
		return fmt.Errorf("failed to save state for %s: %w", key, err)
	}

	return nil
}
