// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/danielhkuo/movie-night/engine"
	"github.com/danielhkuo/movie-night/models"
)

// Store persists nights as JSON documents keyed by token. It implements
// engine.Backend over database/sql and works unchanged on Postgres
// (lib/pq) and SQLite (modernc.org/sqlite): both accept $1 placeholders
// and ON CONFLICT upserts.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Get(token string) (*models.Night, error) {
	var payload []byte
	err := s.db.QueryRow(`
		SELECT payload FROM night WHERE token = $1
	`, token).Scan(&payload)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("night %q: %w", token, engine.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query night: %w", err)
	}

	var night models.Night
	if err := json.Unmarshal(payload, &night); err != nil {
		return nil, fmt.Errorf("failed to decode night %q: %w", token, err)
	}

	return &night, nil
}

func (s *Store) Insert(night *models.Night) error {
	payload, err := json.Marshal(night)
	if err != nil {
		return fmt.Errorf("failed to encode night: %w", err)
	}

	// DO NOTHING + RowsAffected detects collisions without driver-specific
	// error codes.
	res, err := s.db.Exec(`
		INSERT INTO night (token, name, scheduled_at, payload, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (token) DO NOTHING
	`, night.Token, night.Name, night.ScheduledAt, payload, night.CreatedAt, time.Now())

	if err != nil {
		return fmt.Errorf("failed to insert night: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read insert result: %w", err)
	}
	if affected == 0 {
		return engine.ErrTokenCollision
	}

	return nil
}

func (s *Store) Put(night *models.Night) error {
	payload, err := json.Marshal(night)
	if err != nil {
		return fmt.Errorf("failed to encode night: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO night (token, name, scheduled_at, payload, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (token) DO UPDATE SET
			name = excluded.name,
			scheduled_at = excluded.scheduled_at,
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, night.Token, night.Name, night.ScheduledAt, payload, night.CreatedAt, time.Now())

	if err != nil {
		return fmt.Errorf("failed to upsert night: %w", err)
	}

	return nil
}
