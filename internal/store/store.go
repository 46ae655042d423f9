// internal/store/store.go
//
// Round-history persistence for the jumble game.
//
// A "round" is one generated jumble handed to a player: we record when it
// started, who (anonymous cookie id) is playing it, and how it ended.
// Gameplay itself never depends on this store; failures are logged and
// the player keeps playing.
//
// Two implementations share the Store interface: the in-memory store in
// this file (development, tests) and the SQLite store in sqlite.go.

package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

// ErrNotFound is returned when a round id has no row.
var ErrNotFound = errors.New("store: round not found")

// Round is one jumble handed to one player.
type Round struct {
	ID          string     `json:"id"`
	PlayerID    string     `json:"playerId"` // anonymous cookie id
	Jumble      string     `json:"jumble"`
	TargetCount int        `json:"targetCount"`
	WordsFound  int        `json:"wordsFound"`
	StartedAt   time.Time  `json:"startedAt"`
	FinishedAt  *time.Time `json:"finishedAt,omitempty"`
}

// Store records round history.
type Store interface {
	// StartRound inserts a new round row.
	StartRound(ctx context.Context, r Round) error

	// UpdateProgress records the current found-word count, and stamps the
	// round finished when done is true. Unknown ids return ErrNotFound.
	UpdateProgress(ctx context.Context, id string, wordsFound int, done bool) error

	// Recent returns the latest rounds, newest first.
	Recent(ctx context.Context, limit int) ([]Round, error)
}

// memory is a map-based Store used when no DB_PATH is configured.
type memory struct {
	mu     sync.RWMutex
	rounds map[string]*Round
}

// NewMemoryStore constructs an in-memory Store. State is lost on restart.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]*Round)}
}

func (m *memory) StartRound(ctx context.Context, r Round) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := r
	m.rounds[r.ID] = &cp
	return nil
}

func (m *memory) UpdateProgress(ctx context.Context, id string, wordsFound int, done bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rounds[id]
	if !ok {
		return ErrNotFound
	}
	r.WordsFound = wordsFound
	if done && r.FinishedAt == nil {
		now := time.Now().UTC()
		r.FinishedAt = &now
	}
	return nil
}

func (m *memory) Recent(ctx context.Context, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 20
	}
	m.mu.RLock()
	out := make([]Round, 0, len(m.rounds))
	for _, r := range m.rounds {
		out = append(out, *r)
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
