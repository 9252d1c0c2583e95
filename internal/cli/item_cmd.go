package cli

import (
	"fmt"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks (assignments, projects, seatwork)",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskDeadlineCmd(app),
		newTaskPriorityCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var due, typ, priority string
	var blocks int

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := domain.ParsePriority(priority)
			if err != nil {
				return err
			}
			t := &domain.TaskRecord{Name: args[0], Type: typ, Deadline: due, Priority: p}
			if cmd.Flags().Changed("blocks") {
				if blocks <= 0 {
					return fmt.Errorf("--blocks must be positive")
				}
				t.EstimatedBlocks = &blocks
			}

			if err := app.Items.AddTask(cmd.Context(), app.User, t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s due %s\n", t.Type, t.Name, t.Deadline)
			return nil
		},
	}

	cmd.Flags().StringVar(&due, "due", "", "Deadline (YYYY-MM-DD or YYYY-MM-DDTHH:MM[:SS])")
	cmd.Flags().StringVar(&typ, "type", domain.TypeAssignment, "assignment, project or seatwork")
	cmd.Flags().StringVar(&priority, "priority", "", "top, high, medium or low (default by type)")
	cmd.Flags().IntVar(&blocks, "blocks", 0, "1-hour blocks needed (default by type)")
	_ = cmd.MarkFlagRequired("due")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks and tests",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Items.ListTasks(cmd.Context(), app.User, all)
			if err != nil {
				return err
			}
			tests, err := app.Items.ListTests(cmd.Context(), app.User, all)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("Tasks"))
			fmt.Fprint(out, formatter.FormatTasks(tasks))
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.Header("Tests"))
			fmt.Fprint(out, formatter.FormatTests(tests))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include finished items")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done NAME",
		Short: "Mark a task or test as finished",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Items.MarkDone(cmd.Context(), app.User, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked %s done\n", args[0])
			return nil
		},
	}
}

func newTaskDeadlineCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "deadline NAME DEADLINE",
		Short: "Move a task or test deadline",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Items.UpdateDeadline(cmd.Context(), app.User, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s now due %s\n", args[0], args[1])
			return nil
		},
	}
}

func newTaskPriorityCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "priority NAME LEVEL",
		Short: "Set a priority label (top, high, medium, low or none)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := args[1]
			if level == "none" {
				level = ""
			}
			p, err := domain.ParsePriority(level)
			if err != nil {
				return err
			}
			if err := app.Items.SetPriority(cmd.Context(), app.User, args[0], p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s priority set to %s\n", args[0], formatter.PriorityBadge(p))
			return nil
		},
	}
}

func newTestCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Manage quizzes and exams",
	}
	cmd.AddCommand(newTestAddCmd(app))
	return cmd
}

func newTestAddCmd(app *App) *cobra.Command {
	var date, typ, priority string
	var blocks int

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a quiz or exam",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := domain.ParsePriority(priority)
			if err != nil {
				return err
			}
			t := &domain.TestRecord{Name: args[0], Type: typ, Date: date, Priority: p}
			if cmd.Flags().Changed("blocks") {
				if blocks <= 0 {
					return fmt.Errorf("--blocks must be positive")
				}
				t.EstimatedBlocks = &blocks
			}

			if err := app.Items.AddTest(cmd.Context(), app.User, t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s on %s\n", t.Type, t.Name, t.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Test date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&typ, "type", domain.TypeExam, "quiz or exam")
	cmd.Flags().StringVar(&priority, "priority", "", "top, high, medium or low (default by type)")
	cmd.Flags().IntVar(&blocks, "blocks", 0, "1-hour blocks needed (default by type)")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm NAME",
		Short: "Delete a task, test or class by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := app.Items.Delete(cmd.Context(), app.User, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", kind, args[0])
			return nil
		},
	}
}
