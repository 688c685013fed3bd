package board

import "slices"

// Sort returns a copy of tasks ordered by priority. Tasks of equal priority keep
// their relative order.
func Sort(tasks []Task, order SortOrder) []Task {
	out := slices.Clone(tasks)
	if out == nil {
		out = []Task{}
	}

	slices.SortStableFunc(out, func(a, b Task) int {
		if order == SortDescending {
			return b.Priority.rank() - a.Priority.rank()
		}
		return a.Priority.rank() - b.Priority.rank()
	})

	return out
}
