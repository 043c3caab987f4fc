// Package analytics records privacy-conscious page views: client IPs are
// stored only as salted, truncated hashes and old rows are purged.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	timestamp DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_visitors_timestamp ON visitors(timestamp);
`

var ErrClosed = errors.New("analytics: store closed")

// Visit is one recorded page view.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type PathCount struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

// Stats summarises stored visits for the admin endpoint.
type Stats struct {
	TotalVisitors    int64       `json:"total_visitors"`
	UniqueVisitors   int64       `json:"unique_visitors"`
	VisitorsToday    int64       `json:"visitors_today"`
	VisitorsThisWeek int64       `json:"visitors_this_week"`
	TopPaths         []PathCount `json:"top_paths"`
	RecentVisitors   []Visit     `json:"recent_visitors"`
}

// Store is a SQLite-backed visit log.
type Store struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

// Open opens or creates the database at path. An empty salt is replaced
// with a random one, so hashes are only stable for the process lifetime.
func Open(path, salt string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One writer at a time keeps SQLITE_BUSY out of the tracking path.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	if salt == "" {
		salt, err = randomHex(32)
		if err != nil {
			db.Close()
			return nil, err
		}
	}
	return &Store{db: db, salt: salt, now: time.Now}, nil
}

// Close closes the underlying database. Closing a nil Store is a no-op.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// HashIP returns a salted hash of ip, consistent for a given salt.
func (s *Store) HashIP(ip string) string {
	h := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(h[:])[:16]
}

// Track records a page view.
func (s *Store) Track(ctx context.Context, ip, userAgent, path string) error {
	if s == nil || s.db == nil {
		return ErrClosed
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, timestamp) VALUES (?, ?, ?, ?)`,
		s.HashIP(ip), userAgent, path, s.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// Cleanup deletes visits older than retention and returns how many went.
func (s *Store) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	if s == nil || s.db == nil {
		return 0, ErrClosed
	}
	cutoff := s.now().UTC().Add(-retention)
	res, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup visits: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// Stats summarises recorded visits.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	if s == nil || s.db == nil {
		return nil, ErrClosed
	}
	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.Add(-7 * 24 * time.Hour)

	stats := &Stats{}
	counts := []struct {
		query string
		args  []any
		dst   *int64
	}{
		{`SELECT COUNT(*) FROM visitors`, nil, &stats.TotalVisitors},
		{`SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil, &stats.UniqueVisitors},
		{`SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{startOfDay}, &stats.VisitorsToday},
		{`SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{weekAgo}, &stats.VisitorsThisWeek},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	paths, err := s.topPaths(ctx, 10)
	if err != nil {
		return nil, err
	}
	stats.TopPaths = paths

	recent, err := s.Recent(ctx, 50)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors = recent
	return stats, nil
}

func (s *Store) topPaths(ctx context.Context, limit int) ([]PathCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS views
		FROM visitors
		GROUP BY path
		ORDER BY views DESC, path ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("top paths: %w", err)
	}
	defer rows.Close()

	var out []PathCount
	for rows.Next() {
		var pc PathCount
		if err := rows.Scan(&pc.Path, &pc.Views); err != nil {
			return nil, fmt.Errorf("top paths: %w", err)
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}

// Recent returns the newest visits first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Visit, error) {
	if s == nil || s.db == nil {
		return nil, ErrClosed
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent visits: %w", err)
	}
	defer rows.Close()

	var out []Visit
	for rows.Next() {
		var v Visit
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			return nil, fmt.Errorf("recent visits: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}
