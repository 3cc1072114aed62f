// Package db provides PostgreSQL persistence for parse results.
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-parser/internal/types"
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

// Migrate creates the parse_results table if it does not exist.
func (db *DB) Migrate(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS parse_results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			filename TEXT NOT NULL DEFAULT '',
			resume JSONB NOT NULL,
			score JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to migrate parse_results: %w", err)
	}
	return nil
}

// ParseResult is a stored parse, with its optional score.
type ParseResult struct {
	ID        uuid.UUID               `json:"id"`
	Filename  string                  `json:"filename,omitempty"`
	Resume    *types.StructuredResume `json:"resume"`
	Score     *types.ScoreResult      `json:"score,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
}

// ParseResultSummary is a lightweight view of a stored parse for listing.
type ParseResultSummary struct {
	ID        uuid.UUID `json:"id"`
	Filename  string    `json:"filename,omitempty"`
	Name      string    `json:"name,omitempty"`
	Scored    bool      `json:"scored"`
	CreatedAt time.Time `json:"created_at"`
}

// SaveParseResult stores a parsed resume and its optional score, returning
// the new record's ID.
func (db *DB) SaveParseResult(ctx context.Context, filename string, resume *types.StructuredResume, score *types.ScoreResult) (uuid.UUID, error) {
	resumeJSON, err := json.Marshal(resume)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume: %w", err)
	}

	var scoreJSON []byte
	if score != nil {
		scoreJSON, err = json.Marshal(score)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal score: %w", err)
		}
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO parse_results (filename, resume, score)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		filename, resumeJSON, scoreJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save parse result: %w", err)
	}
	return id, nil
}

// GetParseResult retrieves a stored parse by ID. Returns nil without error
// when the ID is unknown.
func (db *DB) GetParseResult(ctx context.Context, id uuid.UUID) (*ParseResult, error) {
	var (
		result     ParseResult
		resumeJSON []byte
		scoreJSON  []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, filename, resume, score, created_at
		 FROM parse_results WHERE id = $1`,
		id,
	).Scan(&result.ID, &result.Filename, &resumeJSON, &scoreJSON, &result.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get parse result: %w", err)
	}

	if err := json.Unmarshal(resumeJSON, &result.Resume); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume: %w", err)
	}
	if len(scoreJSON) > 0 {
		if err := json.Unmarshal(scoreJSON, &result.Score); err != nil {
			return nil, fmt.Errorf("failed to unmarshal score: %w", err)
		}
	}

	return &result, nil
}

// ListParseResults retrieves recent stored parses, newest first.
func (db *DB) ListParseResults(ctx context.Context, limit int) ([]ParseResultSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, filename, COALESCE(resume->'contact'->>'name', ''),
		        score IS NOT NULL, created_at
		 FROM parse_results ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list parse results: %w", err)
	}
	defer rows.Close()

	var summaries []ParseResultSummary
	for rows.Next() {
		var s ParseResultSummary
		if err := rows.Scan(&s.ID, &s.Filename, &s.Name, &s.Scored, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan parse result: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// DeleteParseResult deletes a stored parse by ID.
func (db *DB) DeleteParseResult(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM parse_results WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete parse result: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("parse result not found: %s", id)
	}
	return nil
}
