package board

import (
	"time"

	"github.com/google/uuid"
)

// State is an immutable snapshot of one board: the task collection plus the
// criteria used to derive its view
type State struct {
	Tasks      []Task         `json:"tasks"`
	Filter     FilterCriteria `json:"filter"`
	Sort       SortOrder      `json:"sort"`
	SearchMode SearchMode     `json:"search_mode"`
}

// NewState creates an empty board state
func NewState(mode SearchMode, order SortOrder) State {
	if mode == "" {
		mode = SearchConjunctive
	}
	if order == "" {
		order = SortAscending
	}

	return State{
		Tasks:      []Task{},
		SearchMode: mode,
		Sort:       order,
	}
}

// View recomputes the filtered, sorted and grouped board
func (s State) View() View {
	return Group(Sort(Filter(s.Tasks, s.Filter, s.SearchMode), s.Sort))
}

// Action is a single change to a board State
type Action interface {
	apply(s State) State
}

// Reduce returns the state that results from applying action to s. The input
// state is left untouched.
func Reduce(s State, action Action) State {
	if action == nil {
		return s
	}
	return action.apply(s)
}

/** ---- ACTIONS ---- **/

// AddTaskAction appends a fully formed task
type AddTaskAction struct {
	Task Task
}

func (a AddTaskAction) apply(s State) State {
	s.Tasks = AddTask(s.Tasks, a.Task)
	return s
}

// SetStatusAction moves a task to a new status at the given time
type SetStatusAction struct {
	ID     uuid.UUID
	Status Status
	At     time.Time
}

func (a SetStatusAction) apply(s State) State {
	s.Tasks = SetStatus(s.Tasks, a.ID, a.Status, a.At)
	return s
}

// SetPriorityAction changes the priority of a task
type SetPriorityAction struct {
	ID       uuid.UUID
	Priority Priority
}

func (a SetPriorityAction) apply(s State) State {
	s.Tasks = SetPriority(s.Tasks, a.ID, a.Priority)
	return s
}

// DeleteTaskAction removes a task
type DeleteTaskAction struct {
	ID uuid.UUID
}

func (a DeleteTaskAction) apply(s State) State {
	s.Tasks = DeleteTask(s.Tasks, a.ID)
	return s
}

// SetFilterAction replaces the filter criteria
type SetFilterAction struct {
	Criteria FilterCriteria
}

func (a SetFilterAction) apply(s State) State {
	s.Filter = cloneCriteria(a.Criteria)
	return s
}

// ClearFilterAction resets every filter rule
type ClearFilterAction struct{}

func (ClearFilterAction) apply(s State) State {
	s.Filter = FilterCriteria{}
	return s
}

// ClearFromDateAction drops the lower date bound only
type ClearFromDateAction struct{}

func (ClearFromDateAction) apply(s State) State {
	s.Filter = cloneCriteria(s.Filter)
	s.Filter.FromDate = nil
	return s
}

// ClearToDateAction drops the upper date bound only
type ClearToDateAction struct{}

func (ClearToDateAction) apply(s State) State {
	s.Filter = cloneCriteria(s.Filter)
	s.Filter.ToDate = nil
	return s
}

// SetSortOrderAction changes the priority ordering
type SetSortOrderAction struct {
	Order SortOrder
}

func (a SetSortOrderAction) apply(s State) State {
	s.Sort = a.Order
	if s.Sort == "" {
		s.Sort = SortAscending
	}
	return s
}

// cloneCriteria copies the date bounds so the state never shares them with the caller
func cloneCriteria(c FilterCriteria) FilterCriteria {
	if c.FromDate != nil {
		from := *c.FromDate
		c.FromDate = &from
	}
	if c.ToDate != nil {
		to := *c.ToDate
		c.ToDate = &to
	}
	return c
}
