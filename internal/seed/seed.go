package seed

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethanbaker/taskboard/pkg/board"
	"gopkg.in/yaml.v3"
)

// DATE_FORMAT is accepted for start dates alongside RFC3339
const DATE_FORMAT = "2006-01-02"

// Seed is a board template: tasks every new board starts with
type Seed struct {
	Name  string     `yaml:"name"`
	Tasks []SeedTask `yaml:"tasks"`
}

// SeedTask is one task of a template, as written in YAML
type SeedTask struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Team        string `yaml:"team"`
	Assignees   string `yaml:"assignees"`
	Status      string `yaml:"status"`
	Priority    string `yaml:"priority"`
	StartDate   string `yaml:"start_date"`
}

// Load reads a template from a YAML file
func Load(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a template and checks every task can be turned into a draft
func Parse(data []byte) (*Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	for i, task := range s.Tasks {
		if _, err := task.Draft(); err != nil {
			return nil, fmt.Errorf("seed task %d (%q): %w", i, task.Title, err)
		}
	}

	return &s, nil
}

// Draft converts a template task into engine input
func (t SeedTask) Draft() (board.TaskDraft, error) {
	draft := board.TaskDraft{
		Title:       t.Title,
		Description: t.Description,
		Team:        t.Team,
		Assignees:   t.Assignees,
	}

	if t.Status != "" {
		status, err := board.ParseStatus(t.Status)
		if err != nil {
			return draft, err
		}
		draft.Status = status
	}

	if t.Priority != "" {
		priority, err := board.ParsePriority(t.Priority)
		if err != nil {
			return draft, err
		}
		draft.Priority = priority
	}

	if t.StartDate != "" {
		start, err := parseDate(t.StartDate)
		if err != nil {
			return draft, err
		}
		draft.StartDate = start
	}

	return draft, nil
}

// Apply creates every template task on the engine, in file order
func (s *Seed) Apply(engine *board.Engine) error {
	if s == nil {
		return nil
	}

	for _, task := range s.Tasks {
		draft, err := task.Draft()
		if err != nil {
			return err
		}
		if _, err := engine.CreateTask(draft); err != nil {
			return fmt.Errorf("failed to seed task %q: %w", task.Title, err)
		}
	}

	return nil
}

// parseDate accepts RFC3339 timestamps or plain dates
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	t, err := time.Parse(DATE_FORMAT, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start_date %q, expected RFC3339 or %s", value, DATE_FORMAT)
	}
	return t, nil
}
