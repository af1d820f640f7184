package server

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/matzehuels/gensudoku/pkg/sudoku"
)

// ErrNotFound is returned when a puzzle id is not in the store.
var ErrNotFound = errors.New("puzzle not found")

// Puzzle is a generated puzzle kept in the archive.
type Puzzle struct {
	ID         string      `json:"id"`
	Seed       int64       `json:"seed"`
	ExtraHints int         `json:"extraHints"`
	Grid       sudoku.Grid `json:"grid"`
	Solution   sudoku.Grid `json:"solution"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string    `json:"id"`
	Seed      int64     `json:"seed"`
	Hints     int       `json:"hints"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store archives generated puzzles.
type Store interface {
	Save(ctx context.Context, p *Puzzle) error
	Load(ctx context.Context, id string) (*Puzzle, error)
	List(ctx context.Context) ([]PuzzleMeta, error)
	Close(ctx context.Context) error
}

// MemoryStore keeps puzzles in process memory. It is the default for
// single-instance serving and for tests.
type MemoryStore struct {
	mu      sync.RWMutex
	puzzles map[string]Puzzle
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{puzzles: make(map[string]Puzzle)}
}

// Save stores a copy of p, replacing any previous puzzle with the same id.
func (s *MemoryStore) Save(ctx context.Context, p *Puzzle) error {
	s.mu.Lock()
	s.puzzles[p.ID] = *p
	s.mu.Unlock()
	return nil
}

// Load retrieves a puzzle by id.
func (s *MemoryStore) Load(ctx context.Context, id string) (*Puzzle, error) {
	s.mu.RLock()
	p, ok := s.puzzles[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// List returns metadata for all stored puzzles, newest first.
func (s *MemoryStore) List(ctx context.Context) ([]PuzzleMeta, error) {
	s.mu.RLock()
	metas := make([]PuzzleMeta, 0, len(s.puzzles))
	for _, p := range s.puzzles {
		metas = append(metas, PuzzleMeta{
			ID:        p.ID,
			Seed:      p.Seed,
			Hints:     p.Grid.CountFilled(),
			CreatedAt: p.CreatedAt,
		})
	}
	s.mu.RUnlock()

	sort.Slice(metas, func(i, j int) bool {
		if metas[i].CreatedAt.Equal(metas[j].CreatedAt) {
			return metas[i].ID < metas[j].ID
		}
		return metas[i].CreatedAt.After(metas[j].CreatedAt)
	})
	return metas, nil
}

// Close does nothing.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

var _ Store = (*MemoryStore)(nil)
