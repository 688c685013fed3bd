package session

import (
	"context"
	"errors"
	"time"

	"github.com/ethanbaker/taskboard/pkg/board"
	"github.com/google/uuid"
)

// ErrBoardNotFound is returned when a board id does not match a live session
var ErrBoardNotFound = errors.New("board not found")

// Store defines the operations for holding board sessions
type Store interface {
	CreateBoard(ctx context.Context, name string, opts *board.Options) (*Board, error)
	GetBoard(ctx context.Context, id uuid.UUID) (*Board, error)
	DeleteBoard(ctx context.Context, id uuid.UUID) error
	ListBoards(ctx context.Context) []*Board
	Sweep(ctx context.Context, maxIdle time.Duration) int
}
