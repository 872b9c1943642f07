// Package db provides PostgreSQL persistence for compiled depth charts.
// The pipeline treats it as an optional sink: connection failures degrade
// the run to file-only export.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/depthchart-compiler/internal/types"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateRun creates a new compilation run record and returns its ID.
func (db *DB) CreateRun(ctx context.Context) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO compilation_runs (status)
		 VALUES ('running')
		 RETURNING id`,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a compilation run as finished with the given status.
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE compilation_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// UpsertPlayers writes player records for a run, replacing any prior
// observation of the same player-slot within the run.
func (db *DB) UpsertPlayers(ctx context.Context, runID uuid.UUID, records []types.PlayerRecord) error {
	for _, rec := range records {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO players
			   (run_id, name, team, position, position_group, depth, injury_status, source, jersey_number, captured_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 ON CONFLICT (run_id, name, team, position) DO UPDATE
			   SET position_group = $5, depth = $6, injury_status = $7,
			       source = $8, jersey_number = $9, captured_at = $10`,
			runID, rec.Name, rec.Team, rec.Position, string(rec.PositionGroup),
			rec.DepthRank, rec.InjuryStatus, string(rec.Source), rec.JerseyNumber, rec.CapturedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert player %s: %w", rec.Name, err)
		}
	}
	return nil
}

// PlayersByTeam returns the stored records for one team within a run, in
// insertion order.
func (db *DB) PlayersByTeam(ctx context.Context, runID uuid.UUID, team string) ([]types.PlayerRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT name, team, position, position_group, depth, injury_status, source, jersey_number, captured_at
		 FROM players
		 WHERE run_id = $1 AND team = $2
		 ORDER BY id`,
		runID, team,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query players for %s: %w", team, err)
	}
	defer rows.Close()

	var records []types.PlayerRecord
	for rows.Next() {
		var rec types.PlayerRecord
		var group, source string
		if err := rows.Scan(&rec.Name, &rec.Team, &rec.Position, &group, &rec.DepthRank,
			&rec.InjuryStatus, &source, &rec.JerseyNumber, &rec.CapturedAt); err != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", err)
		}
		rec.PositionGroup = types.PositionGroup(group)
		rec.Source = types.Source(source)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate player rows: %w", err)
	}
	return records, nil
}

// SaveReport stores the validation report for a run as a JSON document.
func (db *DB) SaveReport(ctx context.Context, runID uuid.UUID, report *types.ValidationReport) error {
	jsonBytes, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO validation_reports (run_id, content)
		 VALUES ($1, $2)
		 ON CONFLICT (run_id) DO UPDATE SET content = $2, created_at = NOW()`,
		runID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}
