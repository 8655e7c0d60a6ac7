// Package sink persists extracted moves into a tabular SQLite job log.
// Each row is one move; the dedupe key column makes re-polling the same
// email idempotent.
package sink

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"dispatch-move-logger/internal/models"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const dedupeDelimiter = "|"

const schema = `
CREATE TABLE IF NOT EXISTS moves (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	job_ref         TEXT NOT NULL,
	source_email_id TEXT NOT NULL,
	move_date       TEXT NOT NULL DEFAULT '',
	move_time       TEXT NOT NULL DEFAULT '',
	origin          TEXT NOT NULL DEFAULT '',
	destination     TEXT NOT NULL DEFAULT '',
	trucks          INTEGER NOT NULL DEFAULT 0,
	vans            INTEGER NOT NULL DEFAULT 0,
	cars            INTEGER NOT NULL DEFAULT 0,
	vehicle_label   TEXT NOT NULL DEFAULT '',
	distance        TEXT NOT NULL DEFAULT '',
	duration        TEXT NOT NULL DEFAULT '',
	map_url         TEXT NOT NULL DEFAULT '',
	subject         TEXT NOT NULL DEFAULT '',
	received_at     TIMESTAMP NOT NULL,
	dedupe_key      TEXT NOT NULL UNIQUE,
	created_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_moves_source_email ON moves(source_email_id);
`

// Store is the persistence surface the processor depends on.
type Store interface {
	Exists(ctx context.Context, dedupeKey string) (bool, error)
	Insert(ctx context.Context, r *models.Record) error
	CountForEmail(ctx context.Context, sourceEmailID string) (int, error)
	Close() error
}

// SQLiteStore implements Store on a single SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

// Open creates or opens the job log at path. Pass ":memory:" in tests.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open job log: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate job log: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Exists reports whether a record with this dedupe key has already been
// persisted.
func (s *SQLiteStore) Exists(ctx context.Context, dedupeKey string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM moves WHERE dedupe_key = ?`, dedupeKey).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("dedupe check: %w", err)
	}
	return n > 0, nil
}

// Insert appends one record to the job log.
func (s *SQLiteStore) Insert(ctx context.Context, r *models.Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO moves (
			job_ref, source_email_id, move_date, move_time, origin, destination,
			trucks, vans, cars, vehicle_label, distance, duration, map_url,
			subject, received_at, dedupe_key
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.JobRef, r.SourceEmailID, r.Move.Date, r.Move.Time, r.Move.Origin,
		r.Move.Destination, r.Move.Counts.Truck, r.Move.Counts.Van,
		r.Move.Counts.Car, r.VehicleLabel, r.Route.Distance, r.Route.Duration,
		r.Route.MapURL, r.Subject, r.ReceivedAt, r.DedupeKey,
	)
	if err != nil {
		return fmt.Errorf("insert move %s: %w", r.JobRef, err)
	}
	return nil
}

// CountForEmail returns how many records were persisted for one source email.
func (s *SQLiteStore) CountForEmail(ctx context.Context, sourceEmailID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM moves WHERE source_email_id = ?`, sourceEmailID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count for email: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// DedupeKey computes the persisted-record identity for one move of one
// email: the source email id, date, time and lowercased places, joined
// with a fixed delimiter.
func DedupeKey(sourceEmailID string, m models.Move) string {
	return strings.Join([]string{
		sourceEmailID,
		m.Date,
		m.Time,
		strings.ToLower(m.Origin),
		strings.ToLower(m.Destination),
	}, dedupeDelimiter)
}

// NewJobRef generates an opaque human-entry job reference, e.g. "MV-3FA85F64".
func NewJobRef() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "MV-" + strings.ToUpper(id[:8])
}
