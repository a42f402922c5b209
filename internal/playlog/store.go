// Package playlog keeps an in-memory DuckDB log of slide impressions for
// the running display. Nothing is written to disk.
package playlog

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tinytelemetry/signboard/internal/model"
	"github.com/tinytelemetry/signboard/internal/playlog/migrate"
)

// ItemCount is how often one item of a section was shown.
type ItemCount struct {
	Section string `json:"section"`
	Item    string `json:"item"`
	Count   int64  `json:"count"`
}

// Store is safe for concurrent use; writes arrive from command goroutines
// while the status API reads.
type Store struct {
	db           *sql.DB
	mu           sync.RWMutex
	QueryTimeout time.Duration
}

var (
	_ model.ImpressionRecorder = (*Store)(nil)
	_ model.ImpressionQuerier  = (*Store)(nil)
)

// Open creates an in-memory database and applies the schema.
func Open() (*Store, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("playlog: open: %w", err)
	}
	if err := migrate.NewRunner(db).Run(); err != nil {
		db.Close()
		return nil, fmt.Errorf("playlog: migrate: %w", err)
	}
	return &Store{db: db, QueryTimeout: 5 * time.Second}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) queryCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.QueryTimeout)
}

// Record appends one impression.
func (s *Store) Record(imp model.Impression) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	shown := imp.ShownAt
	if shown.IsZero() {
		shown = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO impressions (session_id, epoch, section, item, shown_at) VALUES (?, ?, ?, ?, ?)`,
		imp.SessionID, imp.Epoch, imp.Section, imp.Item, shown.UTC(),
	)
	if err != nil {
		return fmt.Errorf("playlog: record: %w", err)
	}
	return nil
}

// SectionCounts returns impressions per section, busiest first.
func (s *Store) SectionCounts() ([]model.SectionCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		`SELECT section, COUNT(*) AS count FROM impressions GROUP BY section ORDER BY count DESC, section`)
	if err != nil {
		return nil, fmt.Errorf("playlog: section counts: %w", err)
	}
	defer rows.Close()

	var out []model.SectionCount
	for rows.Next() {
		var sc model.SectionCount
		if err := rows.Scan(&sc.Section, &sc.Count); err != nil {
			return nil, fmt.Errorf("playlog: scan section count: %w", err)
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

// TopItems returns the most shown items across all sections.
func (s *Store) TopItems(limit int) ([]ItemCount, error) {
	if limit <= 0 {
		limit = 10
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT section, item, COUNT(*) AS count
		FROM impressions
		WHERE item <> ''
		GROUP BY section, item
		ORDER BY count DESC, section, item
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("playlog: top items: %w", err)
	}
	defer rows.Close()

	var out []ItemCount
	for rows.Next() {
		var ic ItemCount
		if err := rows.Scan(&ic.Section, &ic.Item, &ic.Count); err != nil {
			return nil, fmt.Errorf("playlog: scan item count: %w", err)
		}
		out = append(out, ic)
	}
	return out, rows.Err()
}

func (s *Store) TotalImpressions() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM impressions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("playlog: total: %w", err)
	}
	return n, nil
}
