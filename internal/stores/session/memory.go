package session

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ethanbaker/taskboard/pkg/board"
	"github.com/ethanbaker/taskboard/pkg/session"
	"github.com/google/uuid"
)

// InMemoryStore keeps board sessions in memory for the lifetime of the process
type InMemoryStore struct {
	boards map[uuid.UUID]*session.Board
	now    func() time.Time
	mutex  sync.RWMutex
}

// NewInMemoryStore creates a new in-memory board store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		boards: make(map[uuid.UUID]*session.Board),
		now:    time.Now,
	}
}

// CreateBoard starts a new board session with an empty engine
func (s *InMemoryStore) CreateBoard(ctx context.Context, name string, opts *board.Options) (*session.Board, error) {
	b := session.NewBoard(name, board.NewEngine(opts), s.now())

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.boards[b.ID]; exists {
		return nil, fmt.Errorf("board with id '%s' already exists", b.ID)
	}
	s.boards[b.ID] = b

	return copyBoard(b), nil
}

// GetBoard retrieves a board session and marks it as seen
func (s *InMemoryStore) GetBoard(ctx context.Context, id uuid.UUID) (*session.Board, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	b, exists := s.boards[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", session.ErrBoardNotFound, id)
	}
	b.LastSeen = s.now()

	return copyBoard(b), nil
}

// DeleteBoard ends a board session
func (s *InMemoryStore) DeleteBoard(ctx context.Context, id uuid.UUID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.boards[id]; !exists {
		return fmt.Errorf("%w: %s", session.ErrBoardNotFound, id)
	}
	delete(s.boards, id)

	return nil
}

// ListBoards returns every live board, oldest first
func (s *InMemoryStore) ListBoards(ctx context.Context) []*session.Board {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	boards := make([]*session.Board, 0, len(s.boards))
	for _, b := range s.boards {
		boards = append(boards, copyBoard(b))
	}

	sort.Slice(boards, func(i, j int) bool {
		return boards[i].CreatedAt.Before(boards[j].CreatedAt)
	})

	return boards
}

// Sweep removes boards that have not been seen for longer than maxIdle and
// returns how many were removed
func (s *InMemoryStore) Sweep(ctx context.Context, maxIdle time.Duration) int {
	if maxIdle <= 0 {
		return 0
	}

	cutoff := s.now().Add(-maxIdle)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	removed := 0
	for id, b := range s.boards {
		if b.LastSeen.Before(cutoff) {
			delete(s.boards, id)
			removed++
		}
	}

	return removed
}

// copyBoard returns a copy of the session metadata. The engine is shared since
// it guards its own state.
func copyBoard(b *session.Board) *session.Board {
	c := *b
	return &c
}
