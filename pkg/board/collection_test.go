package board

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionSnapshots(t *testing.T) {
	first := Task{ID: uuid.New(), Title: "first", Status: StatusPending, Priority: PriorityP1}
	second := Task{ID: uuid.New(), Title: "second", Status: StatusInProgress, Priority: PriorityP2}

	base := AddTask(nil, first)
	withTwo := AddTask(base, second)
	require.Len(t, base, 1)
	require.Len(t, withTwo, 2)

	at := time.Date(2024, 7, 4, 15, 0, 0, 0, time.UTC)
	done := SetStatus(withTwo, first.ID, StatusCompleted, at)
	assert.Equal(t, StatusPending, withTwo[0].Status)
	assert.Equal(t, StatusCompleted, done[0].Status)
	require.NotNil(t, done[0].EndDate)
	assert.Equal(t, at, *done[0].EndDate)

	bumped := SetPriority(done, second.ID, PriorityP0)
	assert.Equal(t, PriorityP2, done[1].Priority)
	assert.Equal(t, PriorityP0, bumped[1].Priority)

	removed := DeleteTask(bumped, first.ID)
	assert.Len(t, bumped, 2)
	assert.Equal(t, []string{"second"}, titles(removed))

	found, ok := FindTask(removed, second.ID)
	assert.True(t, ok)
	assert.Equal(t, "second", found.Title)
	_, ok = FindTask(removed, first.ID)
	assert.False(t, ok)
}

func TestCollectionUnknownID(t *testing.T) {
	tasks := []Task{{ID: uuid.New(), Title: "only", Status: StatusPending, Priority: PriorityP1}}
	missing := uuid.New()

	assert.Equal(t, tasks, SetStatus(tasks, missing, StatusCompleted, time.Now()))
	assert.Equal(t, tasks, SetPriority(tasks, missing, PriorityP0))
	assert.Equal(t, tasks, DeleteTask(tasks, missing))
}
