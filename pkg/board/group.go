package board

import "fmt"

// View is the filtered, sorted board split into status columns. Every status
// key is present, empty columns hold an empty slice.
type View map[Status][]Task

// Column is one status column of a View
type Column struct {
	Status Status `json:"status"`
	Tasks  []Task `json:"tasks"`
}

// Group partitions tasks by status, keeping their order within each column
func Group(tasks []Task) View {
	view := make(View, len(Statuses))
	for _, s := range Statuses {
		view[s] = []Task{}
	}

	for _, t := range tasks {
		column, ok := view[t.Status]
		if !ok {
			// Statuses are checked on every way in, so this is a broken invariant
			panic(fmt.Sprintf("board: task %s has unknown status %q", t.ID, t.Status))
		}
		view[t.Status] = append(column, t)
	}

	return view
}

// Columns returns the view as columns in board order
func (v View) Columns() []Column {
	columns := make([]Column, 0, len(Statuses))
	for _, s := range Statuses {
		tasks := v[s]
		if tasks == nil {
			tasks = []Task{}
		}
		columns = append(columns, Column{Status: s, Tasks: tasks})
	}
	return columns
}

// Len returns the number of tasks across all columns
func (v View) Len() int {
	n := 0
	for _, tasks := range v {
		n += len(tasks)
	}
	return n
}

// Tasks flattens the view back into board order
func (v View) Tasks() []Task {
	out := make([]Task, 0, v.Len())
	for _, s := range Statuses {
		out = append(out, v[s]...)
	}
	return out
}
