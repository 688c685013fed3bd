package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ethanbaker/taskboard/internal/calendar"
	"github.com/ethanbaker/taskboard/internal/seed"
	"github.com/ethanbaker/taskboard/pkg/board"
	"github.com/google/uuid"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
)

// shell runs board commands typed one line at a time
type shell struct {
	name   string
	engine *board.Engine
	out    io.Writer
	done   bool
}

func newShell(name string, engine *board.Engine, out io.Writer) *shell {
	return &shell{name: name, engine: engine, out: out}
}

// splitLine splits a command line into words, honoring shell quoting and escapes
func splitLine(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("could not parse command: %w", err)
	}
	if len(args) == 0 {
		return nil, nil
	}
	return args, nil
}

// execute runs a single command line. Each line gets a fresh command tree so
// flag values never leak between lines.
func (s *shell) execute(line string) error {
	args, err := splitLine(line)
	if err != nil || len(args) == 0 {
		return err
	}

	root := s.rootCommand()
	root.SetArgs(args)
	return root.Execute()
}

func (s *shell) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "board",
		Short:         "Manage the task board",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(s.out)
	root.SetErr(s.out)
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		s.addCmd(),
		s.statusCmd(),
		s.priorityCmd(),
		s.deleteCmd(),
		s.filterCmd(),
		s.clearCmd(),
		s.sortCmd(),
		s.viewCmd(),
		s.showCmd(),
		s.exportCmd(),
		s.exitCmd(),
	)

	return root
}

/** ---- TASK COMMANDS ---- */

func (s *shell) addCmd() *cobra.Command {
	var draft board.TaskDraft
	var status, priority, start string

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft.Title = args[0]

			var err error
			if status != "" {
				if draft.Status, err = board.ParseStatus(status); err != nil {
					return err
				}
			}
			if priority != "" {
				if draft.Priority, err = board.ParsePriority(priority); err != nil {
					return err
				}
			}
			if start != "" {
				if draft.StartDate, err = parseDate(start); err != nil {
					return err
				}
			}

			id, err := s.engine.CreateTask(draft)
			if err != nil {
				return err
			}

			fmt.Fprintf(s.out, "Added task %s\n", shortID(id))
			return nil
		},
	}

	cmd.Flags().StringVarP(&draft.Description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&draft.Team, "team", "t", "", "Owning team")
	cmd.Flags().StringVarP(&draft.Assignees, "assignees", "a", "", "Assigned people")
	cmd.Flags().StringVarP(&status, "status", "s", "", "Initial status, one of "+strings.Join(statusNames(), ", ")+" (default In Progress)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority, one of "+strings.Join(priorityNames(), ", ")+" (default P2)")
	cmd.Flags().StringVar(&start, "start", "", "Start date, YYYY-MM-DD (default now)")
	_ = cmd.RegisterFlagCompletionFunc("status", complete(statusNames()))
	_ = cmd.RegisterFlagCompletionFunc("priority", complete(priorityNames()))

	return cmd
}

func (s *shell) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "status [task] [status]",
		ValidArgsFunction: completeSecond(statusNames()),
		Short:             "Move a task to another column",
		Args:              cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := s.resolve(args[0])
			if err != nil {
				return err
			}
			status, err := board.ParseStatus(args[1])
			if err != nil {
				return err
			}
			if err := s.engine.UpdateStatus(id, status); err != nil {
				return err
			}

			fmt.Fprintf(s.out, "Task %s is now %s\n", shortID(id), status)
			return nil
		},
	}
}

func (s *shell) priorityCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "priority [task] [priority]",
		ValidArgsFunction: completeSecond(priorityNames()),
		Short:             "Change the priority of a task",
		Args:              cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := s.resolve(args[0])
			if err != nil {
				return err
			}
			priority, err := board.ParsePriority(args[1])
			if err != nil {
				return err
			}
			if err := s.engine.UpdatePriority(id, priority); err != nil {
				return err
			}

			fmt.Fprintf(s.out, "Task %s is now %s\n", shortID(id), priority)
			return nil
		},
	}
}

func (s *shell) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete [task]",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := s.resolve(args[0])
			if err != nil {
				return err
			}

			s.engine.DeleteTask(id)
			fmt.Fprintf(s.out, "Deleted task %s\n", shortID(id))
			return nil
		},
	}
}

func (s *shell) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [task]",
		Short: "Show the details of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := s.resolve(args[0])
			if err != nil {
				return err
			}

			task, _ := s.engine.Task(id)
			fmt.Fprintf(s.out, "%s\n", task.Title)
			fmt.Fprintf(s.out, "  ID:          %s\n", task.ID)
			fmt.Fprintf(s.out, "  Status:      %s\n", task.Status)
			fmt.Fprintf(s.out, "  Priority:    %s\n", task.Priority)
			fmt.Fprintf(s.out, "  Team:        %s\n", task.Team)
			fmt.Fprintf(s.out, "  Assignees:   %s\n", task.Assignees)
			fmt.Fprintf(s.out, "  Started:     %s\n", task.StartDate.Format(seed.DATE_FORMAT))
			if task.EndDate != nil {
				fmt.Fprintf(s.out, "  Completed:   %s\n", task.EndDate.Format(seed.DATE_FORMAT))
			}
			if task.Description != "" {
				fmt.Fprintf(s.out, "  Description: %s\n", task.Description)
			}
			return nil
		},
	}
}

/** ---- VIEW COMMANDS ---- */

func (s *shell) filterCmd() *cobra.Command {
	var criteria board.FilterCriteria
	var from, to, priority string

	cmd := &cobra.Command{
		Use:   "filter [search words...]",
		Short: "Replace the board filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria.Search = strings.Join(args, " ")

			if from != "" {
				t, err := parseDate(from)
				if err != nil {
					return err
				}
				criteria.FromDate = &t
			}
			if to != "" {
				t, err := parseDate(to)
				if err != nil {
					return err
				}
				t = endOfDay(t)
				criteria.ToDate = &t
			}
			if priority != "" {
				p, err := board.ParsePriority(priority)
				if err != nil {
					return err
				}
				criteria.Priority = p
			}

			if err := s.engine.SetFilter(criteria); err != nil {
				return err
			}
			return s.printView()
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Earliest start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "Latest start date, YYYY-MM-DD (the whole day is included)")
	cmd.Flags().StringVarP(&criteria.Assignees, "assignees", "a", "", "Exact assignees")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority, one of "+strings.Join(priorityNames(), ", "))
	_ = cmd.RegisterFlagCompletionFunc("priority", complete(priorityNames()))

	return cmd
}

func (s *shell) clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "clear [all|from|to]",
		Short:     "Clear the filter or one of its date bounds",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"all", "from", "to"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "all"
			if len(args) == 1 {
				target = args[0]
			}

			switch target {
			case "from":
				s.engine.ClearFromDate()
			case "to":
				s.engine.ClearToDate()
			default:
				s.engine.ClearFilter()
			}
			return s.printView()
		},
	}
}

func (s *shell) sortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort [low|high]",
		Short: "Order columns by priority, P0 first (low) or P2 first (high)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := board.ParseSortOrder(args[0])
			if err != nil {
				return err
			}
			if err := s.engine.SetSortOrder(order); err != nil {
				return err
			}
			return s.printView()
		},
	}
}

func (s *shell) viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "view",
		Aliases: []string{"ls"},
		Short:   "Print the board",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.printView()
		},
	}
}

func (s *shell) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the current view as an iCalendar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			feed := calendar.Export(s.name, s.engine.View(), time.Now())
			if err := os.WriteFile(args[0], []byte(feed), 0o644); err != nil {
				return fmt.Errorf("failed to write calendar: %w", err)
			}

			fmt.Fprintf(s.out, "Exported %d task(s) to %s\n", s.engine.View().Len(), args[0])
			return nil
		},
	}
}

func (s *shell) exitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "exit",
		Aliases: []string{"quit"},
		Short:   "Leave the session",
		Run: func(cmd *cobra.Command, args []string) {
			s.done = true
		},
	}
}

/** ---- HELPERS ---- */

// printView writes the filtered, sorted board column by column
func (s *shell) printView() error {
	state := s.engine.State()
	if state.Filter.Active() {
		fmt.Fprintln(s.out, "(filtered)")
	}

	for _, column := range state.View().Columns() {
		fmt.Fprintf(s.out, "== %s (%d) ==\n", column.Status, len(column.Tasks))
		for _, task := range column.Tasks {
			line := fmt.Sprintf("  [%s] %s %s", shortID(task.ID), task.Priority, task.Title)
			if task.Assignees != "" {
				line += " (" + task.Assignees + ")"
			}
			fmt.Fprintln(s.out, line)
		}
	}
	return nil
}

// resolve finds the task whose id starts with prefix
func (s *shell) resolve(prefix string) (uuid.UUID, error) {
	prefix = strings.ToLower(prefix)

	var match uuid.UUID
	found := 0
	for _, task := range s.engine.Tasks() {
		if strings.HasPrefix(task.ID.String(), prefix) {
			match = task.ID
			found++
		}
	}

	switch found {
	case 0:
		return uuid.Nil, fmt.Errorf("no task matches %q", prefix)
	case 1:
		return match, nil
	default:
		return uuid.Nil, fmt.Errorf("%q matches %d tasks", prefix, found)
	}
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

// parseDate reads a YYYY-MM-DD date as local midnight
func parseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(seed.DATE_FORMAT, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

// endOfDay returns the last instant of the day starting at t
func endOfDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func statusNames() []string {
	names := make([]string, 0, len(board.Statuses))
	for _, status := range board.Statuses {
		names = append(names, string(status))
	}
	return names
}

func priorityNames() []string {
	names := make([]string, 0, len(board.Priorities))
	for _, priority := range board.Priorities {
		names = append(names, string(priority))
	}
	return names
}

// complete offers a fixed set of values
func complete(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

// completeSecond offers a fixed set of values for the argument after the task id
func completeSecond(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) != 1 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
