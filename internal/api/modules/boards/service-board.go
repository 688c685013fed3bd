package boards

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/ethanbaker/taskboard/internal/seed"
	session_store "github.com/ethanbaker/taskboard/internal/stores/session"
	"github.com/ethanbaker/taskboard/pkg/board"
	"github.com/ethanbaker/taskboard/pkg/session"
	"github.com/ethanbaker/taskboard/pkg/sdk"
	"github.com/ethanbaker/taskboard/pkg/utils"
	"github.com/google/uuid"
)

var (
	ErrInvalidID    = errors.New("invalid id")
	ErrTaskNotFound = errors.New("task not found")
)

// BoardService hosts the live boards behind the API
type BoardService struct {
	store   session.Store
	janitor *session_store.Janitor
	seed    *seed.Seed
	opts    board.Options

	seedByDefault bool
}

var boardService *BoardService

/** ---- INIT ---- */

// Init creates the board service from configuration and starts the idle sweep
func Init(cfg *utils.Config) error {
	searchMode, err := board.ParseSearchMode(cfg.GetWithDefault("BOARD_SEARCH_MODE", string(board.SearchConjunctive)))
	if err != nil {
		return fmt.Errorf("failed to parse BOARD_SEARCH_MODE: %w", err)
	}

	sortOrder, err := board.ParseSortOrder(cfg.Get("BOARD_DEFAULT_SORT"))
	if err != nil {
		return fmt.Errorf("failed to parse BOARD_DEFAULT_SORT: %w", err)
	}

	// Load the board template if one is configured
	var template *seed.Seed
	if path := cfg.Get("BOARD_SEED_FILE"); path != "" {
		if template, err = seed.Load(path); err != nil {
			return err
		}
		log.Printf("[BOARD]: Loaded board template with %d task(s) from %s", len(template.Tasks), path)
	}

	store := session_store.NewInMemoryStore()

	ttl := cfg.GetDurationWithDefault("BOARD_SESSION_TTL", 2*time.Hour)
	janitor, err := session_store.NewJanitor(store, cfg.GetWithDefault("BOARD_SWEEP_SPEC", "@every 5m"), ttl)
	if err != nil {
		return err
	}

	// Replace any previous service
	if boardService != nil {
		boardService.Stop()
	}

	boardService = &BoardService{
		store:         store,
		janitor:       janitor,
		seed:          template,
		seedByDefault: cfg.GetBoolWithDefault("BOARD_SEED_DEFAULT", true),
		opts: board.Options{
			SearchMode: searchMode,
			SortOrder:  sortOrder,
		},
	}
	janitor.Start()

	log.Printf("[BOARD]: Board service started (search mode %s, idle ttl %s)", searchMode, ttl)
	return nil
}

/** ---- SERVICE METHODS ---- */

// Stop halts the idle sweep
func (s *BoardService) Stop() {
	s.janitor.Stop()
}

// CreateBoard starts a board. The template is applied when the request asks for it,
// or by default per BOARD_SEED_DEFAULT when the request does not say.
func (s *BoardService) CreateBoard(ctx context.Context, req *sdk.CreateBoardRequest) (*session.Board, error) {
	name := req.Name
	if name == "" && s.seed != nil {
		name = s.seed.Name
	}

	opts := s.opts
	b, err := s.store.CreateBoard(ctx, name, &opts)
	if err != nil {
		return nil, err
	}

	apply := s.seedByDefault
	if req.Seed != nil {
		apply = *req.Seed
	}

	if apply {
		if err := s.seed.Apply(b.Engine); err != nil {
			_ = s.store.DeleteBoard(ctx, b.ID)
			return nil, fmt.Errorf("failed to seed board: %w", err)
		}
	}

	return b, nil
}

// GetBoard finds a live board by its string id
func (s *BoardService) GetBoard(ctx context.Context, boardID string) (*session.Board, error) {
	id, err := parseID(boardID)
	if err != nil {
		return nil, err
	}
	return s.store.GetBoard(ctx, id)
}

// DeleteBoard ends a board session
func (s *BoardService) DeleteBoard(ctx context.Context, boardID string) error {
	id, err := parseID(boardID)
	if err != nil {
		return err
	}
	return s.store.DeleteBoard(ctx, id)
}

// ListBoards returns every live board
func (s *BoardService) ListBoards(ctx context.Context) []*session.Board {
	return s.store.ListBoards(ctx)
}

// CreateTask adds a task to a board
func (s *BoardService) CreateTask(ctx context.Context, boardID string, req *sdk.CreateTaskRequest) (uuid.UUID, error) {
	b, err := s.GetBoard(ctx, boardID)
	if err != nil {
		return uuid.Nil, err
	}

	draft, err := toDraft(req)
	if err != nil {
		return uuid.Nil, err
	}

	return b.Engine.CreateTask(draft)
}

// GetTask retrieves a single task
func (s *BoardService) GetTask(ctx context.Context, boardID, taskID string) (board.Task, error) {
	b, id, err := s.resolveTask(ctx, boardID, taskID)
	if err != nil {
		return board.Task{}, err
	}

	task, ok := b.Engine.Task(id)
	if !ok {
		return board.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return task, nil
}

// UpdateStatus moves a task; unknown task ids are ignored
func (s *BoardService) UpdateStatus(ctx context.Context, boardID, taskID, value string) error {
	b, id, err := s.resolveTask(ctx, boardID, taskID)
	if err != nil {
		return err
	}

	status, err := board.ParseStatus(value)
	if err != nil {
		return err
	}
	return b.Engine.UpdateStatus(id, status)
}

// UpdatePriority changes a task's priority; unknown task ids are ignored
func (s *BoardService) UpdatePriority(ctx context.Context, boardID, taskID, value string) error {
	b, id, err := s.resolveTask(ctx, boardID, taskID)
	if err != nil {
		return err
	}

	priority, err := board.ParsePriority(value)
	if err != nil {
		return err
	}
	return b.Engine.UpdatePriority(id, priority)
}

// DeleteTask removes a task; unknown task ids are ignored
func (s *BoardService) DeleteTask(ctx context.Context, boardID, taskID string) error {
	b, id, err := s.resolveTask(ctx, boardID, taskID)
	if err != nil {
		return err
	}

	b.Engine.DeleteTask(id)
	return nil
}

// SetFilter replaces a board's filter
func (s *BoardService) SetFilter(ctx context.Context, boardID string, req *sdk.Filter) error {
	b, err := s.GetBoard(ctx, boardID)
	if err != nil {
		return err
	}

	criteria, err := toCriteria(req)
	if err != nil {
		return err
	}
	return b.Engine.SetFilter(criteria)
}

// ClearFilter applies one of the clearing operations to a board's filter
func (s *BoardService) ClearFilter(ctx context.Context, boardID string, clear func(e *board.Engine)) error {
	b, err := s.GetBoard(ctx, boardID)
	if err != nil {
		return err
	}

	clear(b.Engine)
	return nil
}

// SetSortOrder changes a board's priority ordering
func (s *BoardService) SetSortOrder(ctx context.Context, boardID, value string) error {
	b, err := s.GetBoard(ctx, boardID)
	if err != nil {
		return err
	}

	order, err := board.ParseSortOrder(value)
	if err != nil {
		return err
	}
	return b.Engine.SetSortOrder(order)
}

// resolveTask finds the board and parses the task id
func (s *BoardService) resolveTask(ctx context.Context, boardID, taskID string) (*session.Board, uuid.UUID, error) {
	b, err := s.GetBoard(ctx, boardID)
	if err != nil {
		return nil, uuid.Nil, err
	}

	id, err := parseID(taskID)
	if err != nil {
		return nil, uuid.Nil, err
	}

	return b, id, nil
}

// parseID parses a board or task id
func parseID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidID, value)
	}
	return id, nil
}
