package seed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethanbaker/taskboard/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSeed = `
name: Sprint 12
tasks:
  - title: Fix login
    description: OAuth redirect loop
    team: Web
    assignees: Ana
    status: Pending
    priority: P1
    start_date: 2024-05-01
  - title: Add logout
    team: Web
    status: in_progress
    priority: p0
    start_date: 2024-05-02T10:30:00Z
  - title: Write notes
`

func TestLoadAndApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSeed), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Sprint 12", s.Name)
	require.Len(t, s.Tasks, 3)

	engine := board.NewEngine(nil)
	require.NoError(t, s.Apply(engine))

	tasks := engine.Tasks()
	require.Len(t, tasks, 3)

	assert.Equal(t, "Fix login", tasks[0].Title)
	assert.Equal(t, board.StatusPending, tasks[0].Status)
	assert.Equal(t, board.PriorityP1, tasks[0].Priority)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), tasks[0].StartDate)

	assert.Equal(t, board.StatusInProgress, tasks[1].Status)
	assert.Equal(t, board.PriorityP0, tasks[1].Priority)
	assert.Equal(t, time.Date(2024, 5, 2, 10, 30, 0, 0, time.UTC), tasks[1].StartDate)

	// Defaults come from the engine
	assert.Equal(t, board.StatusInProgress, tasks[2].Status)
	assert.Equal(t, board.PriorityP2, tasks[2].Priority)
	assert.False(t, tasks[2].StartDate.IsZero())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "tasks: [\n"},
		{"bad status", "tasks:\n  - title: x\n    status: archived\n"},
		{"bad priority", "tasks:\n  - title: x\n    priority: P5\n"},
		{"bad date", "tasks:\n  - title: x\n    start_date: tomorrow\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestApplyNilSeed(t *testing.T) {
	var s *Seed
	assert.NoError(t, s.Apply(board.NewEngine(nil)))
}
