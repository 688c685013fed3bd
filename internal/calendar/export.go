package calendar

import (
	"fmt"
	"strconv"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/ethanbaker/taskboard/pkg/board"
)

const PRODUCT_ID = "-//ethanbaker//taskboard//EN"

// priorities maps board priorities onto the RFC 5545 1 (highest) to 9 (lowest) scale
var priorities = map[board.Priority]int{
	board.PriorityP0: 1,
	board.PriorityP1: 5,
	board.PriorityP2: 9,
}

// Export renders a board view as an iCalendar document, one event per task in
// column order. Open tasks have a start only; completed tasks end at their
// completion time.
func Export(name string, view board.View, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(PRODUCT_ID)
	if name != "" {
		cal.SetXWRCalName(name)
	}

	for _, task := range view.Tasks() {
		addTask(cal, task, stamp)
	}

	return cal.Serialize()
}

// addTask appends one task as a VEVENT
func addTask(cal *ics.Calendar, task board.Task, stamp time.Time) {
	event := cal.AddEvent(task.ID.String())
	event.SetDtStampTime(stamp)
	event.SetStartAt(task.StartDate)
	if task.EndDate != nil && !task.EndDate.Before(task.StartDate) {
		event.SetEndAt(*task.EndDate)
	}

	event.SetSummary(task.Title)
	event.SetDescription(describe(task))
	event.SetProperty(ics.ComponentPropertyCategories, string(task.Status))
	if p, ok := priorities[task.Priority]; ok {
		event.SetProperty(ics.ComponentPropertyPriority, strconv.Itoa(p))
	}
}

// describe builds the event body from the task metadata
func describe(task board.Task) string {
	desc := task.Description
	if task.Team != "" {
		desc += fmt.Sprintf("\nTeam: %s", task.Team)
	}
	if task.Assignees != "" {
		desc += fmt.Sprintf("\nAssignees: %s", task.Assignees)
	}
	desc += fmt.Sprintf("\nStatus: %s\nPriority: %s", task.Status, task.Priority)
	return desc
}
