package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	studyapp "github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/scheduler"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// maxPromptRounds bounds interactive resolution; every winner is promoted
// to top, so each round removes at least one tie.
const maxPromptRounds = 20

func newPlanCmd(app *App) *cobra.Command {
	var auto bool
	var choose string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a study plan for the next two weeks",
		Long: `Generate a study plan for the next two weeks and store it.

When two items share a priority and a due date the planner stops and asks
which goes first. Answer with --choose NAME (the item is raised to top
priority for good) or skip the question with --auto.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if auto && choose != "" {
				return fmt.Errorf("--auto and --choose cannot be combined")
			}
			ctx := cmd.Context()

			var resp *studyapp.PlanResponse
			var err error
			if choose != "" {
				resp, err = app.Plans.Resolve(ctx, studyapp.ResolveRequest{UserID: app.User, Now: app.nowPtr(), Winner: choose})
			} else {
				req := studyapp.NewPlanRequest(app.User)
				req.Now = app.nowPtr()
				req.ForceAuto = auto
				resp, err = app.Plans.Generate(ctx, req)
			}
			if err != nil {
				return err
			}

			if resp.Status == scheduler.StatusConflict && app.interactive() {
				resp, err = resolveInteractively(ctx, app, resp)
				if err != nil {
					return err
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&auto, "auto", false, "Ignore priority ties and plan in queue order")
	cmd.Flags().StringVar(&choose, "choose", "", "Resolve the pending tie in favor of NAME")

	cmd.AddCommand(newPlanShowCmd(app))

	return cmd
}

// resolveInteractively prompts until the plan no longer stops on a tie. An
// aborted prompt leaves the conflict response as is.
func resolveInteractively(ctx context.Context, a *App, resp *studyapp.PlanResponse) (*studyapp.PlanResponse, error) {
	for round := 0; resp.Status == scheduler.StatusConflict && round < maxPromptRounds; round++ {
		choice, err := conflictPrompt(resp.Conflict)
		if errors.Is(err, huh.ErrUserAborted) {
			return resp, nil
		}
		if err != nil {
			return nil, err
		}

		req := studyapp.ResolveRequest{UserID: a.User, Now: a.nowPtr(), Winner: choice, ForceAuto: choice == autoChoice}
		if resp, err = a.Plans.Resolve(ctx, req); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func newPlanShowCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the stored plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if date != "" {
				return showPlanDay(cmd.Context(), out, app, date)
			}

			resp, err := app.Plans.Show(cmd.Context(), studyapp.ShowRequest{UserID: app.User})
			if err != nil {
				return err
			}
			if !resp.HasPlan {
				fmt.Fprintln(out, formatter.Dim("No plan yet. Run `studyplan plan` first."))
				return nil
			}
			fmt.Fprintln(out, formatter.Dim("Generated "+resp.GeneratedAt.Local().Format("Mon 2006-01-02 15:04")))
			fmt.Fprint(out, formatter.FormatEntries(resp.Entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Only show one date (YYYY-MM-DD)")

	return cmd
}

func showPlanDay(ctx context.Context, out io.Writer, a *App, date string) error {
	day, err := time.ParseInLocation(domain.DateLayout, date, a.now().Location())
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	resp, err := a.Plans.Daily(ctx, studyapp.DailyRequest{UserID: a.User, Now: a.nowPtr(), Date: &day})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, formatter.Header(formatter.DayLabel(day)))
	fmt.Fprint(out, formatter.FormatSummary(resp.Planned))
	return nil
}
