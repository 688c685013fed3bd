package board

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Engine owns one board. Every call swaps in a new State produced by Reduce,
// so readers always work on a complete snapshot.
type Engine struct {
	mu    sync.RWMutex
	state State

	now   func() time.Time
	newID func() uuid.UUID
}

// Options configures an Engine. Nil functions fall back to time.Now and uuid.New.
type Options struct {
	SearchMode SearchMode `json:"search_mode" yaml:"search_mode"`
	SortOrder  SortOrder  `json:"sort_order" yaml:"sort_order"`

	Clock       func() time.Time `json:"-" yaml:"-"`
	IDGenerator func() uuid.UUID `json:"-" yaml:"-"`
}

// NewEngine creates an engine with an empty board
func NewEngine(opts *Options) *Engine {
	if opts == nil {
		opts = &Options{}
	}

	e := &Engine{
		state: NewState(opts.SearchMode, opts.SortOrder),
		now:   opts.Clock,
		newID: opts.IDGenerator,
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.newID == nil {
		e.newID = uuid.New
	}

	return e
}

// dispatch applies an action to the current state
func (e *Engine) dispatch(action Action) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = Reduce(e.state, action)
}

// CreateTask adds a task built from draft and returns its new id
func (e *Engine) CreateTask(draft TaskDraft) (uuid.UUID, error) {
	task, err := e.buildTask(draft)
	if err != nil {
		return uuid.Nil, err
	}

	e.dispatch(AddTaskAction{Task: task})
	return task.ID, nil
}

// buildTask fills in the defaults of a draft and assigns an id
func (e *Engine) buildTask(draft TaskDraft) (Task, error) {
	status := draft.Status
	if status == "" {
		status = StatusInProgress
	}
	if !status.Valid() {
		return Task{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	priority := draft.Priority
	if priority == "" {
		priority = PriorityP2
	}
	if !priority.Valid() {
		return Task{}, fmt.Errorf("%w: %q", ErrInvalidPriority, priority)
	}

	now := e.now()
	start := draft.StartDate
	if start.IsZero() {
		start = now
	}

	task := Task{
		ID:          e.newID(),
		Title:       draft.Title,
		Description: draft.Description,
		Team:        draft.Team,
		Assignees:   draft.Assignees,
		Status:      status,
		Priority:    priority,
		StartDate:   start,
	}
	if status == StatusCompleted {
		task.EndDate = &now
	}

	return task, nil
}

// UpdateStatus moves a task to a new status. Unknown ids are ignored.
func (e *Engine) UpdateStatus(id uuid.UUID, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	e.dispatch(SetStatusAction{ID: id, Status: status, At: e.now()})
	return nil
}

// UpdatePriority changes the priority of a task. Unknown ids are ignored.
func (e *Engine) UpdatePriority(id uuid.UUID, priority Priority) error {
	if !priority.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, priority)
	}

	e.dispatch(SetPriorityAction{ID: id, Priority: priority})
	return nil
}

// DeleteTask removes a task. Unknown ids are ignored.
func (e *Engine) DeleteTask(id uuid.UUID) {
	e.dispatch(DeleteTaskAction{ID: id})
}

// SetFilter replaces the filter criteria
func (e *Engine) SetFilter(criteria FilterCriteria) error {
	if criteria.Priority != "" && !criteria.Priority.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, criteria.Priority)
	}

	e.dispatch(SetFilterAction{Criteria: criteria})
	return nil
}

// ClearFilter resets every filter rule
func (e *Engine) ClearFilter() {
	e.dispatch(ClearFilterAction{})
}

// ClearFromDate drops the lower date bound of the filter
func (e *Engine) ClearFromDate() {
	e.dispatch(ClearFromDateAction{})
}

// ClearToDate drops the upper date bound of the filter
func (e *Engine) ClearToDate() {
	e.dispatch(ClearToDateAction{})
}

// SetSortOrder changes the priority ordering of the view
func (e *Engine) SetSortOrder(order SortOrder) error {
	if !order.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSortOrder, order)
	}

	e.dispatch(SetSortOrderAction{Order: order})
	return nil
}

// State returns a deep copy of the current snapshot. Writing to it never
// reaches the board.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()

	s := e.state
	s.Tasks = cloneTasks(s.Tasks)
	s.Filter = cloneCriteria(s.Filter)
	return s
}

// View recomputes the board view from the current snapshot
func (e *Engine) View() View {
	return e.State().View()
}

// Tasks returns every task in creation order, unfiltered
func (e *Engine) Tasks() []Task {
	return e.State().Tasks
}

// Task looks up a single task
func (e *Engine) Task(id uuid.UUID) (Task, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return FindTask(e.state.Tasks, id)
}

// Filter returns the active filter criteria
func (e *Engine) Filter() FilterCriteria {
	return e.State().Filter
}

// SortOrder returns the active sort order
func (e *Engine) SortOrder() SortOrder {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Sort
}

// Len returns the number of tasks on the board, ignoring the filter
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.state.Tasks)
}
