package cli

import (
	"fmt"

	studyapp "github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Daily check-in: today's blocks, classes and what is due",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			resp, err := app.Plans.Daily(cmd.Context(), studyapp.DailyRequest{UserID: app.User, Now: &now})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDaily(resp, now))
			return nil
		},
	}
}

func newSuggestCmd(app *App) *cobra.Command {
	var hours int

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "What to work on with a few free hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Plans.Suggest(cmd.Context(), studyapp.SuggestRequest{
				UserID: app.User, Now: app.nowPtr(), AvailableHours: hours,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSuggestion(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&hours, "hours", 0, "Free hours available")
	_ = cmd.MarkFlagRequired("hours")

	return cmd
}

func newWeekCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Browse the stored plan week by week",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				_, err := tea.NewProgram(newWeekView(cmd.Context(), app), tea.WithContext(cmd.Context())).Run()
				return err
			}
			resp, err := app.Plans.Week(cmd.Context(), studyapp.WeekRequest{UserID: app.User, Start: app.now()})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeek(resp))
			return nil
		},
	}
}
