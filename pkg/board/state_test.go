package board

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceLeavesInputUntouched(t *testing.T) {
	start := NewState("", "")
	id := uuid.New()
	at := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	s1 := Reduce(start, AddTaskAction{Task: Task{ID: id, Title: "x", Status: StatusPending, Priority: PriorityP1, StartDate: at}})
	assert.Empty(t, start.Tasks)
	require.Len(t, s1.Tasks, 1)

	s2 := Reduce(s1, SetStatusAction{ID: id, Status: StatusCompleted, At: at.Add(time.Hour)})
	assert.Equal(t, StatusPending, s1.Tasks[0].Status)
	assert.Nil(t, s1.Tasks[0].EndDate)
	assert.Equal(t, StatusCompleted, s2.Tasks[0].Status)
	require.NotNil(t, s2.Tasks[0].EndDate)
	assert.Equal(t, at.Add(time.Hour), *s2.Tasks[0].EndDate)

	s3 := Reduce(s2, SetPriorityAction{ID: id, Priority: PriorityP0})
	assert.Equal(t, PriorityP1, s2.Tasks[0].Priority)
	assert.Equal(t, PriorityP0, s3.Tasks[0].Priority)

	s4 := Reduce(s3, DeleteTaskAction{ID: id})
	assert.Len(t, s3.Tasks, 1)
	assert.Empty(t, s4.Tasks)
}

func TestReduceCriteria(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(48 * time.Hour)

	s := Reduce(NewState("", ""), SetFilterAction{Criteria: FilterCriteria{FromDate: &from, ToDate: &to, Search: "x"}})
	assert.NotSame(t, &from, s.Filter.FromDate)

	cleared := Reduce(s, ClearFromDateAction{})
	assert.NotNil(t, s.Filter.FromDate)
	assert.Nil(t, cleared.Filter.FromDate)
	assert.Equal(t, "x", cleared.Filter.Search)

	cleared = Reduce(cleared, ClearToDateAction{})
	assert.NotNil(t, s.Filter.ToDate)
	assert.Nil(t, cleared.Filter.ToDate)

	reset := Reduce(s, ClearFilterAction{})
	assert.False(t, reset.Filter.Active())
	assert.True(t, s.Filter.Active())

	sorted := Reduce(s, SetSortOrderAction{Order: SortDescending})
	assert.Equal(t, SortAscending, s.Sort)
	assert.Equal(t, SortDescending, sorted.Sort)

	assert.Equal(t, s, Reduce(s, nil))
}

func TestStateViewPipeline(t *testing.T) {
	s := NewState(SearchConjunctive, SortDescending)
	for _, task := range filterFixture() {
		s = Reduce(s, AddTaskAction{Task: task})
	}
	s = Reduce(s, AddTaskAction{Task: Task{ID: uuid.New(), Title: "Web audit", Team: "Web", Status: StatusPending, Priority: PriorityP2, StartDate: day(3)}})
	s = Reduce(s, SetFilterAction{Criteria: FilterCriteria{Search: "web"}})

	view := s.View()
	assert.Equal(t, []string{"Web audit", "Fix login"}, titles(view[StatusPending]))
	assert.Equal(t, []string{"Add logout"}, titles(view[StatusInProgress]))
	assert.Empty(t, view[StatusDeferred])
	assert.Equal(t, len(Filter(s.Tasks, s.Filter, s.SearchMode)), view.Len())
}
