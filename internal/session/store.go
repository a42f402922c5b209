// Package session holds display-lifetime state shared across page mounts.
package session

import (
	"time"

	"github.com/google/uuid"
)

// Store is constructed once at process start and passed by reference to
// anything that needs state surviving a page being hidden and re-shown.
// It is owned by the UI loop and is not safe for concurrent use.
type Store struct {
	id        string
	startedAt time.Time
	cursors   map[string]int
}

func New() *Store {
	return &Store{
		id:        uuid.NewString(),
		startedAt: time.Now(),
		cursors:   make(map[string]int),
	}
}

// ID is the random identifier of this display session.
func (s *Store) ID() string { return s.id }

func (s *Store) StartedAt() time.Time { return s.startedAt }

// Cursor returns the stored cursor for key, 0 when never set.
func (s *Store) Cursor(key string) int {
	return s.cursors[key]
}

func (s *Store) SetCursor(key string, v int) {
	s.cursors[key] = v
}
