package boards

import (
	"github.com/ethanbaker/taskboard/pkg/board"
	"github.com/ethanbaker/taskboard/pkg/session"
	"github.com/ethanbaker/taskboard/pkg/sdk"
)

// toDraft converts a create request into a task draft, validating the enum fields
func toDraft(req *sdk.CreateTaskRequest) (board.TaskDraft, error) {
	draft := board.TaskDraft{
		Title:       req.Title,
		Description: req.Description,
		Team:        req.Team,
		Assignees:   req.Assignees,
	}

	if req.Status != "" {
		status, err := board.ParseStatus(req.Status)
		if err != nil {
			return draft, err
		}
		draft.Status = status
	}

	if req.Priority != "" {
		priority, err := board.ParsePriority(req.Priority)
		if err != nil {
			return draft, err
		}
		draft.Priority = priority
	}

	if req.StartDate != nil {
		draft.StartDate = *req.StartDate
	}

	return draft, nil
}

// toCriteria converts an SDK filter into filter criteria
func toCriteria(req *sdk.Filter) (board.FilterCriteria, error) {
	criteria := board.FilterCriteria{
		FromDate:  req.FromDate,
		ToDate:    req.ToDate,
		Assignees: req.Assignees,
		Search:    req.Search,
	}

	if req.Priority != "" {
		priority, err := board.ParsePriority(req.Priority)
		if err != nil {
			return criteria, err
		}
		criteria.Priority = priority
	}

	return criteria, nil
}

// toSDKTask converts a board task into its API form
func toSDKTask(t board.Task) sdk.Task {
	return sdk.Task{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Team:        t.Team,
		Assignees:   t.Assignees,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
	}
}

// toSDKFilter converts filter criteria into the API form
func toSDKFilter(c board.FilterCriteria) sdk.Filter {
	return sdk.Filter{
		FromDate:  c.FromDate,
		ToDate:    c.ToDate,
		Assignees: c.Assignees,
		Priority:  string(c.Priority),
		Search:    c.Search,
	}
}

// toSDKView converts a grouped view into columns in display order
func toSDKView(v board.View) sdk.ViewResponse {
	resp := sdk.ViewResponse{Columns: make([]sdk.Column, 0, len(board.Statuses))}

	for _, column := range v.Columns() {
		tasks := make([]sdk.Task, 0, len(column.Tasks))
		for _, t := range column.Tasks {
			tasks = append(tasks, toSDKTask(t))
		}

		resp.Columns = append(resp.Columns, sdk.Column{
			Status: string(column.Status),
			Count:  len(tasks),
			Tasks:  tasks,
		})
		resp.Total += len(tasks)
	}

	return resp
}

// toSDKSummary converts a board session into a summary
func toSDKSummary(b *session.Board) sdk.BoardSummary {
	return sdk.BoardSummary{
		ID:        b.ID.String(),
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
		LastSeen:  b.LastSeen,
		TaskCount: b.Engine.Len(),
	}
}

// toSDKBoard converts a board session, including its view, into the API form
func toSDKBoard(b *session.Board) sdk.BoardResponse {
	state := b.Engine.State()

	sort := state.Sort
	if sort == "" {
		sort = board.SortAscending
	}

	return sdk.BoardResponse{
		BoardSummary: toSDKSummary(b),
		Filter:       toSDKFilter(state.Filter),
		Sort:         string(sort),
		SearchMode:   string(state.SearchMode),
		View:         toSDKView(state.View()),
	}
}
