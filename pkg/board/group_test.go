package board

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup(t *testing.T) {
	t.Run("empty board has every column", func(t *testing.T) {
		view := Group(nil)
		assert.Len(t, view, len(Statuses))
		for _, s := range Statuses {
			tasks, ok := view[s]
			assert.True(t, ok, "missing column %s", s)
			assert.NotNil(t, tasks)
			assert.Empty(t, tasks)
		}
		assert.Equal(t, 0, view.Len())
	})

	t.Run("tasks keep their order within a column", func(t *testing.T) {
		tasks := []Task{
			{ID: uuid.New(), Title: "one", Status: StatusPending},
			{ID: uuid.New(), Title: "two", Status: StatusCompleted},
			{ID: uuid.New(), Title: "three", Status: StatusPending},
			{ID: uuid.New(), Title: "four", Status: StatusInProgress},
		}

		view := Group(tasks)
		assert.Equal(t, []string{"one", "three"}, titles(view[StatusPending]))
		assert.Equal(t, []string{"two"}, titles(view[StatusCompleted]))
		assert.Equal(t, []string{"four"}, titles(view[StatusInProgress]))
		assert.Equal(t, len(tasks), view.Len())
		assert.Equal(t, []string{"four", "one", "three", "two"}, titles(view.Tasks()))
	})

	t.Run("columns follow board order", func(t *testing.T) {
		columns := Group(nil).Columns()
		require.Len(t, columns, len(Statuses))
		for i, column := range columns {
			assert.Equal(t, Statuses[i], column.Status)
			assert.NotNil(t, column.Tasks)
		}
	})

	t.Run("unknown status panics", func(t *testing.T) {
		assert.Panics(t, func() {
			Group([]Task{{ID: uuid.New(), Status: "Archived"}})
		})
	})
}
