package playback

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"sync"
)

// PositionStore persists resume positions as text seconds.
type PositionStore interface {
	// Get returns the stored position. ok is false when nothing usable is stored.
	Get(ctx context.Context, key string) (seconds float64, ok bool, err error)
	// Set overwrites the position for key.
	Set(ctx context.Context, key string, seconds float64) error
}

// FormatPosition renders seconds the way positions are stored.
func FormatPosition(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}

// ParsePosition parses a stored position. Negative or malformed values are
// not usable.
func ParsePosition(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v != v {
		return 0, false
	}
	return v, true
}

// SQLiteStore keeps positions in the playback_positions table.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a store on a migrated database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (float64, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT position FROM playback_positions WHERE key = ?", key,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get position %s: %w", key, err)
	}
	v, ok := ParsePosition(raw)
	return v, ok, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, seconds float64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO playback_positions (key, position, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET position = excluded.position, updated_at = excluded.updated_at`,
		key, FormatPosition(seconds),
	)
	if err != nil {
		return fmt.Errorf("set position %s: %w", key, err)
	}
	return nil
}

// MemoryStore is a process-local PositionStore.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (float64, bool, error) {
	m.mu.RLock()
	raw, ok := m.values[key]
	m.mu.RUnlock()
	if !ok {
		return 0, false, nil
	}
	v, ok := ParsePosition(raw)
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, seconds float64) error {
	m.mu.Lock()
	m.values[key] = FormatPosition(seconds)
	m.mu.Unlock()
	return nil
}
