package board

import (
	"time"

	"github.com/google/uuid"
)

// Collection operations never write to the slice they are given. Each returns a
// fresh snapshot so a view computed from the previous slice stays valid.

// AddTask returns a new snapshot with task appended
func AddTask(tasks []Task, task Task) []Task {
	next := make([]Task, len(tasks), len(tasks)+1)
	copy(next, tasks)
	return append(next, cloneTask(task))
}

// SetStatus returns a new snapshot where the task matching id has the given
// status. Moving to Completed stamps the end date with at. Unknown ids are a no-op.
func SetStatus(tasks []Task, id uuid.UUID, status Status, at time.Time) []Task {
	return update(tasks, id, func(t *Task) {
		t.Status = status
		if status == StatusCompleted {
			end := at
			t.EndDate = &end
		}
	})
}

// SetPriority returns a new snapshot where the task matching id has the given priority
func SetPriority(tasks []Task, id uuid.UUID, priority Priority) []Task {
	return update(tasks, id, func(t *Task) {
		t.Priority = priority
	})
}

// DeleteTask returns a new snapshot without the task matching id
func DeleteTask(tasks []Task, id uuid.UUID) []Task {
	next := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}
	return next
}

// FindTask returns the task matching id
func FindTask(tasks []Task, id uuid.UUID) (Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return cloneTask(t), true
		}
	}
	return Task{}, false
}

// cloneTask copies a task including its end date
func cloneTask(t Task) Task {
	if t.EndDate != nil {
		end := *t.EndDate
		t.EndDate = &end
	}
	return t
}

// cloneTasks deep copies a snapshot. The result is never nil.
func cloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = cloneTask(t)
	}
	return out
}

// update copies the snapshot and applies fn to the copy of the matching task
func update(tasks []Task, id uuid.UUID, fn func(t *Task)) []Task {
	next := make([]Task, len(tasks))
	copy(next, tasks)

	for i := range next {
		if next[i].ID == id {
			fn(&next[i])
			break
		}
	}

	return next
}
