package board

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidSortOrder = errors.New("invalid sort order")
)

/** ---- STATUS ---- **/

// Status is the lifecycle stage of a task
type Status string

const (
	StatusInProgress Status = "In Progress"
	StatusPending    Status = "Pending"
	StatusDeployed   Status = "Deployed"
	StatusDeferred   Status = "Deferred"
	StatusCompleted  Status = "Completed"
)

// Statuses lists every status in board column order
var Statuses = []Status{
	StatusInProgress,
	StatusPending,
	StatusDeployed,
	StatusDeferred,
	StatusCompleted,
}

// Valid reports whether the status is one of the board columns
func (s Status) Valid() bool {
	switch s {
	case StatusInProgress, StatusPending, StatusDeployed, StatusDeferred, StatusCompleted:
		return true
	default:
		return false
	}
}

// ParseStatus accepts either the display value ("In Progress") or a compact
// identifier ("in_progress", "inprogress"), ignoring case
func ParseStatus(value string) (Status, error) {
	key := strings.ToLower(strings.TrimSpace(value))
	key = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(key)

	switch key {
	case "inprogress":
		return StatusInProgress, nil
	case "pending":
		return StatusPending, nil
	case "deployed":
		return StatusDeployed, nil
	case "deferred":
		return StatusDeferred, nil
	case "completed":
		return StatusCompleted, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, value)
}

/** ---- PRIORITY ---- **/

// Priority is the urgency tier of a task, P0 being the most urgent
type Priority string

const (
	PriorityP0 Priority = "P0"
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
)

// Priorities lists every priority from most to least urgent
var Priorities = []Priority{PriorityP0, PriorityP1, PriorityP2}

// Valid reports whether the priority is P0, P1 or P2
func (p Priority) Valid() bool {
	return p.rank() >= 0
}

// rank is the position of the priority in ascending order, -1 when unknown
func (p Priority) rank() int {
	switch p {
	case PriorityP0:
		return 0
	case PriorityP1:
		return 1
	case PriorityP2:
		return 2
	default:
		return -1
	}
}

// ParsePriority parses "P0", "p1", ... into a Priority
func ParsePriority(value string) (Priority, error) {
	p := Priority(strings.ToUpper(strings.TrimSpace(value)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, value)
	}
	return p, nil
}

/** ---- SORT ORDER ---- **/

// SortOrder selects the priority ordering of the board. The zero value sorts ascending.
type SortOrder string

const (
	// SortAscending lists P0 first ("P0 to P2")
	SortAscending SortOrder = "low"

	// SortDescending lists P2 first ("P2 to P0")
	SortDescending SortOrder = "high"
)

// Valid reports whether the order is known; the empty order counts as ascending
func (o SortOrder) Valid() bool {
	switch o {
	case "", SortAscending, SortDescending:
		return true
	default:
		return false
	}
}

// ParseSortOrder accepts "low"/"asc", "high"/"desc" and the empty string (ascending)
func ParseSortOrder(value string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "low", "asc", "ascending":
		return SortAscending, nil
	case "high", "desc", "descending":
		return SortDescending, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortOrder, value)
}

/** ---- TASKS ---- **/

// Task is a single card on the board
type Task struct {
	ID          uuid.UUID  `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Team        string     `json:"team" yaml:"team"`
	Assignees   string     `json:"assignees" yaml:"assignees"`
	Status      Status     `json:"status" yaml:"status"`
	Priority    Priority   `json:"priority" yaml:"priority"`
	StartDate   time.Time  `json:"start_date" yaml:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty" yaml:"end_date,omitempty"`
}

// TaskDraft holds the user input for a new task. Empty status, priority and
// start date fall back to In Progress, P2 and the current time.
type TaskDraft struct {
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Team        string    `json:"team" yaml:"team"`
	Assignees   string    `json:"assignees" yaml:"assignees"`
	Status      Status    `json:"status" yaml:"status"`
	Priority    Priority  `json:"priority" yaml:"priority"`
	StartDate   time.Time `json:"start_date" yaml:"start_date"`
}

// FilterCriteria narrows the board view. Zero values leave a rule inactive.
type FilterCriteria struct {
	FromDate  *time.Time `json:"from_date,omitempty"` // Inclusive lower bound on StartDate
	ToDate    *time.Time `json:"to_date,omitempty"`   // Inclusive upper bound on StartDate
	Assignees string     `json:"assignees,omitempty"` // Exact, case-sensitive match
	Priority  Priority   `json:"priority,omitempty"`  // Exact match
	Search    string     `json:"search,omitempty"`    // Whitespace separated words, all must match
}

// Active reports whether any filter rule is set
func (f FilterCriteria) Active() bool {
	return f.FromDate != nil || f.ToDate != nil || f.Assignees != "" || f.Priority != "" || strings.TrimSpace(f.Search) != ""
}
