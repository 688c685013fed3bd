package board

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2024, 5, d, 12, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

func filterFixture() []Task {
	return []Task{
		{ID: uuid.New(), Title: "Fix login", Description: "OAuth redirect loop", Team: "Web", Assignees: "Ana", Status: StatusPending, Priority: PriorityP1, StartDate: day(1)},
		{ID: uuid.New(), Title: "Add logout", Description: "Button in header", Team: "Web", Assignees: "Ben", Status: StatusInProgress, Priority: PriorityP0, StartDate: day(5)},
		{ID: uuid.New(), Title: "Rotate keys", Description: "Quarterly", Team: "Infra", Assignees: "Ana", Status: StatusDeferred, Priority: PriorityP2, StartDate: day(10)},
	}
}

func TestMatchRules(t *testing.T) {
	tasks := filterFixture()

	tests := []struct {
		name     string
		criteria FilterCriteria
		want     []string
	}{
		{
			name:     "no criteria keeps everything",
			criteria: FilterCriteria{},
			want:     []string{"Fix login", "Add logout", "Rotate keys"},
		},
		{
			name:     "from date is inclusive",
			criteria: FilterCriteria{FromDate: ptr(day(5))},
			want:     []string{"Add logout", "Rotate keys"},
		},
		{
			name:     "to date is inclusive",
			criteria: FilterCriteria{ToDate: ptr(day(5))},
			want:     []string{"Fix login", "Add logout"},
		},
		{
			name:     "date range",
			criteria: FilterCriteria{FromDate: ptr(day(2)), ToDate: ptr(day(9))},
			want:     []string{"Add logout"},
		},
		{
			name:     "assignee exact match",
			criteria: FilterCriteria{Assignees: "Ana"},
			want:     []string{"Fix login", "Rotate keys"},
		},
		{
			name:     "assignee is case sensitive",
			criteria: FilterCriteria{Assignees: "ana"},
			want:     []string{},
		},
		{
			name:     "assignee is not a substring match",
			criteria: FilterCriteria{Assignees: "An"},
			want:     []string{},
		},
		{
			name:     "priority",
			criteria: FilterCriteria{Priority: PriorityP0},
			want:     []string{"Add logout"},
		},
		{
			name:     "search is case insensitive",
			criteria: FilterCriteria{Search: "LOGIN"},
			want:     []string{"Fix login"},
		},
		{
			name:     "every search word must match",
			criteria: FilterCriteria{Search: "web p0"},
			want:     []string{"Add logout"},
		},
		{
			name:     "search covers status",
			criteria: FilterCriteria{Search: "deferred"},
			want:     []string{"Rotate keys"},
		},
		{
			name:     "search words match substrings",
			criteria: FilterCriteria{Search: "  redir  "},
			want:     []string{"Fix login"},
		},
		{
			name:     "blank search is inactive",
			criteria: FilterCriteria{Search: "   "},
			want:     []string{"Fix login", "Add logout", "Rotate keys"},
		},
		{
			name:     "search and assignee combine",
			criteria: FilterCriteria{Search: "web", Assignees: "Ana"},
			want:     []string{"Fix login"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tasks, tt.criteria, SearchConjunctive)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestMatchSearchModes(t *testing.T) {
	tasks := filterFixture()
	criteria := FilterCriteria{Search: "web", Assignees: "Ben", Priority: PriorityP2}

	t.Run("conjunctive", func(t *testing.T) {
		assert.Empty(t, Filter(tasks, criteria, SearchConjunctive))
	})

	t.Run("override ignores the other rules", func(t *testing.T) {
		got := Filter(tasks, criteria, SearchOverride)
		assert.Equal(t, []string{"Fix login", "Add logout"}, titles(got))
	})

	t.Run("override without search uses the other rules", func(t *testing.T) {
		got := Filter(tasks, FilterCriteria{Assignees: "Ben"}, SearchOverride)
		assert.Equal(t, []string{"Add logout"}, titles(got))
	})
}

func TestFilterKeepsOrderAndInput(t *testing.T) {
	tasks := filterFixture()
	before := append([]Task(nil), tasks...)

	got := Filter(tasks, FilterCriteria{Assignees: "Ana"}, SearchConjunctive)
	assert.Equal(t, []string{"Fix login", "Rotate keys"}, titles(got))
	assert.Equal(t, before, tasks)
}

func TestParseSearchMode(t *testing.T) {
	mode, err := ParseSearchMode("")
	assert.NoError(t, err)
	assert.Equal(t, SearchConjunctive, mode)

	mode, err = ParseSearchMode("Override")
	assert.NoError(t, err)
	assert.Equal(t, SearchOverride, mode)

	_, err = ParseSearchMode("fuzzy")
	assert.Error(t, err)
}

func titles(tasks []Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return out
}
