// Package escalate records the engine's human-handoff recommendations as
// tickets in a local SQLite log. The dialog core only emits the
// recommendation; this collaborator owns all persistence.
package escalate

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver for database/sql

	"github.com/carebridge-sg/carebot-go/internal/dialog"
)

// Ticket is one recorded escalation.
type Ticket struct {
	ID        string
	SessionID string
	Reason    string
	Query     string
	CreatedAt time.Time
}

// Recorder persists escalation recommendations.
type Recorder interface {
	Record(ctx context.Context, sessionID string, rec dialog.Recommendation, query string) (Ticket, error)
	Close() error
}

// SQLiteRecorder stores tickets in a local SQLite database.
type SQLiteRecorder struct {
	conn *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS tickets (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	reason TEXT NOT NULL,
	query TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tickets_session ON tickets(session_id);
CREATE INDEX IF NOT EXISTS idx_tickets_created ON tickets(created_at);
`

// NewSQLiteRecorder opens (or creates) the ticket database at dbPath and
// initializes the schema.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(5)
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(time.Hour)

	// WAL keeps ticket writes from blocking concurrent turns
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=30000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to apply %s: %w", pragma, err)
		}
	}

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteRecorder{conn: conn, path: dbPath}, nil
}

// Record inserts one ticket for the recommendation.
func (r *SQLiteRecorder) Record(ctx context.Context, sessionID string, rec dialog.Recommendation, query string) (Ticket, error) {
	ticket := Ticket{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Reason:    rec.Reason,
		Query:     query,
		CreatedAt: time.Now().UTC(),
	}
	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO tickets (id, session_id, reason, query, created_at) VALUES (?, ?, ?, ?, ?)`,
		ticket.ID, ticket.SessionID, ticket.Reason, ticket.Query, ticket.CreatedAt.Unix(),
	)
	if err != nil {
		return Ticket{}, fmt.Errorf("failed to insert ticket: %w", err)
	}
	return ticket, nil
}

// BySession returns the tickets recorded for one session, oldest first.
func (r *SQLiteRecorder) BySession(ctx context.Context, sessionID string) ([]Ticket, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, session_id, reason, query, created_at FROM tickets WHERE session_id = ? ORDER BY created_at, id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query tickets: %w", err)
	}
	defer rows.Close()

	var tickets []Ticket
	for rows.Next() {
		var t Ticket
		var createdAt int64
		if err := rows.Scan(&t.ID, &t.SessionID, &t.Reason, &t.Query, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		t.CreatedAt = time.Unix(createdAt, 0).UTC()
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

// Count returns the total number of recorded tickets.
func (r *SQLiteRecorder) Count(ctx context.Context) (int, error) {
	var count int
	err := r.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM tickets`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return count, nil
}

// Close closes the database connection.
func (r *SQLiteRecorder) Close() error {
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

// Path returns the database file path.
func (r *SQLiteRecorder) Path() string {
	return r.path
}
