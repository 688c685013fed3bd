package session

import (
	"time"

	"github.com/ethanbaker/taskboard/pkg/board"
	"github.com/google/uuid"
)

// Board is one live board session. Each client screen works against its own board.
type Board struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	LastSeen  time.Time `json:"last_seen"`

	Engine *board.Engine `json:"-"`
}

// NewBoard creates a board session with a generated UUID
func NewBoard(name string, engine *board.Engine, now time.Time) *Board {
	return &Board{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		LastSeen:  now,
		Engine:    engine,
	}
}
