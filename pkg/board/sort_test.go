package board

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSort(t *testing.T) {
	tasks := []Task{
		{ID: uuid.New(), Title: "a", Priority: PriorityP2},
		{ID: uuid.New(), Title: "b", Priority: PriorityP0},
		{ID: uuid.New(), Title: "c", Priority: PriorityP1},
		{ID: uuid.New(), Title: "d", Priority: PriorityP0},
		{ID: uuid.New(), Title: "e", Priority: PriorityP2},
	}

	tests := []struct {
		name  string
		order SortOrder
		want  []string
	}{
		{"ascending", SortAscending, []string{"b", "d", "c", "a", "e"}},
		{"unset sorts ascending", "", []string{"b", "d", "c", "a", "e"}},
		{"descending keeps ties stable", SortDescending, []string{"a", "e", "c", "b", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(Sort(tasks, tt.order)))
		})
	}

	// Input order is untouched
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, titles(tasks))
}

func TestSortEmpty(t *testing.T) {
	got := Sort(nil, SortDescending)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
