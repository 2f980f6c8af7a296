// Package db provides PostgreSQL storage for screened candidates.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-screener/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS candidates (
    id              BIGSERIAL PRIMARY KEY,
    filename        TEXT NOT NULL,
    name            TEXT NOT NULL DEFAULT '',
    email           TEXT NOT NULL DEFAULT '',
    phone           TEXT NOT NULL DEFAULT '',
    skills          TEXT NOT NULL DEFAULT '',
    education       JSONB NOT NULL DEFAULT '{}',
    experience      JSONB NOT NULL DEFAULT '{}',
    predicted_score DOUBLE PRECISION NOT NULL DEFAULT 0,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// EnsureSchema creates the candidates table if it does not exist yet.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// InsertCandidate stores one parsed candidate and returns its assigned ID.
func (db *DB) InsertCandidate(ctx context.Context, rec *types.CandidateRecord) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO candidates (filename, name, email, phone, skills, education, experience, predicted_score)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		rec.Filename, rec.Name, rec.Email, rec.Phone, rec.Skills,
		rec.Education, rec.Experience, rec.PredictedScore,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert candidate: %w", err)
	}
	return id, nil
}

// ListCandidates returns all stored candidates in insertion order.
func (db *DB) ListCandidates(ctx context.Context) ([]types.CandidateRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, filename, name, email, phone, skills, education, experience, predicted_score, created_at
		 FROM candidates
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var records []types.CandidateRecord
	for rows.Next() {
		var rec types.CandidateRecord
		if err := rows.Scan(
			&rec.ID, &rec.Filename, &rec.Name, &rec.Email, &rec.Phone,
			&rec.Skills, &rec.Education, &rec.Experience, &rec.PredictedScore, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	return records, nil
}

// ClearCandidates deletes every stored candidate and reports how many rows
// were removed.
func (db *DB) ClearCandidates(ctx context.Context) (int64, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM candidates`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear candidates: %w", err)
	}
	return tag.RowsAffected(), nil
}
