package board

import (
	"fmt"
	"strings"
)

// SearchMode decides how the free-text search combines with the other filter rules
type SearchMode string

const (
	// SearchConjunctive requires a task to pass the search and every other active rule
	SearchConjunctive SearchMode = "conjunctive"

	// SearchOverride lets a non-empty search alone decide inclusion, ignoring the
	// date, assignee and priority rules
	SearchOverride SearchMode = "override"
)

// ParseSearchMode parses a search mode, defaulting to SearchConjunctive for the empty string
func ParseSearchMode(value string) (SearchMode, error) {
	switch SearchMode(strings.ToLower(strings.TrimSpace(value))) {
	case "", SearchConjunctive:
		return SearchConjunctive, nil
	case SearchOverride:
		return SearchOverride, nil
	}
	return "", fmt.Errorf("unknown search mode %q", value)
}

// Filter returns the tasks that match criteria, keeping their order
func Filter(tasks []Task, criteria FilterCriteria, mode SearchMode) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if Match(t, criteria, mode) {
			out = append(out, t)
		}
	}
	return out
}

// Match reports whether a single task passes the filter criteria
func Match(t Task, criteria FilterCriteria, mode SearchMode) bool {
	include := matchFields(t, criteria)

	words := strings.Fields(strings.ToLower(criteria.Search))
	if len(words) == 0 {
		return include
	}

	found := matchSearch(t, words)
	if mode == SearchOverride {
		return found
	}
	return include && found
}

// matchFields applies the date range, assignee and priority rules
func matchFields(t Task, criteria FilterCriteria) bool {
	if criteria.FromDate != nil && t.StartDate.Before(*criteria.FromDate) {
		return false
	}
	if criteria.ToDate != nil && t.StartDate.After(*criteria.ToDate) {
		return false
	}
	if criteria.Assignees != "" && t.Assignees != criteria.Assignees {
		return false
	}
	if criteria.Priority != "" && t.Priority != criteria.Priority {
		return false
	}
	return true
}

// matchSearch requires every word to appear somewhere in the task's searchable text
func matchSearch(t Task, words []string) bool {
	text := searchText(t)
	for _, word := range words {
		if !strings.Contains(text, word) {
			return false
		}
	}
	return true
}

// searchText joins the searchable fields of a task, lowercased
func searchText(t Task) string {
	return strings.ToLower(strings.Join([]string{
		t.Title,
		t.Description,
		t.Team,
		t.Assignees,
		string(t.Priority),
		string(t.Status),
	}, " "))
}
