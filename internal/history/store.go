// Package history persists a log of past searches in SQLite. Only the
// criteria and match counts are kept; result sets are never retained.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/corinnekunze/amazon-purchase-search/internal/display"
	"github.com/corinnekunze/amazon-purchase-search/internal/model"
	"github.com/google/uuid"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS searches (
	id TEXT PRIMARY KEY,
	searched_at TIMESTAMP NOT NULL,
	search_date TEXT NOT NULL,
	amount TEXT NOT NULL,
	days_range TEXT NOT NULL,
	search_type TEXT NOT NULL,
	max_combo_items TEXT NOT NULL,
	total_matches INTEGER NOT NULL,
	item_matches INTEGER NOT NULL,
	order_matches INTEGER NOT NULL,
	combination_matches INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_searches_at ON searches(searched_at);
`

// Store is a SQLite-backed search log.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Entry is one recorded search.
type Entry struct {
	SearchedAt         time.Time
	ID                 string
	Criteria           model.Criteria
	TotalMatches       int
	ItemMatches        int
	OrderMatches       int
	CombinationMatches int
}

// NewStore opens (creating if needed) the history database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("history: dbPath must not be empty")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to migrate history schema: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record logs one completed search with its match counts.
func (s *Store) Record(ctx context.Context, criteria model.Criteria, rs *display.ResultSet) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO searches (
			id, searched_at, search_date, amount, days_range, search_type,
			max_combo_items, total_matches, item_matches, order_matches,
			combination_matches
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		time.Now().UTC(),
		criteria.Date,
		criteria.Amount,
		criteria.DaysRange,
		criteria.SearchType,
		criteria.MaxComboItems,
		rs.TotalMatches,
		len(rs.ItemMatches),
		len(rs.OrderMatches),
		len(rs.CombinationMatches),
	)
	if err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}
	return nil
}

// Recent returns the most recent searches, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, searched_at, search_date, amount, days_range, search_type,
		       max_combo_items, total_matches, item_matches, order_matches,
		       combination_matches
		FROM searches
		ORDER BY searched_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query search history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID,
			&e.SearchedAt,
			&e.Criteria.Date,
			&e.Criteria.Amount,
			&e.Criteria.DaysRange,
			&e.Criteria.SearchType,
			&e.Criteria.MaxComboItems,
			&e.TotalMatches,
			&e.ItemMatches,
			&e.OrderMatches,
			&e.CombinationMatches,
		); err != nil {
			return nil, fmt.Errorf("failed to scan search history row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read search history: %w", err)
	}

	return entries, nil
}
