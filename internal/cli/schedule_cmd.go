package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/spf13/cobra"
)

func newClassCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "class",
		Short: "Manage weekly class commitments",
	}
	cmd.AddCommand(newClassAddCmd(app), newClassListCmd(app))
	return cmd
}

func newClassAddCmd(app *App) *cobra.Command {
	var day, start, end string

	cmd := &cobra.Command{
		Use:   "add SUBJECT",
		Short: "Add a recurring class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekday, err := domain.ParseWeekday(day)
			if err != nil {
				return err
			}
			s, e, err := parseClockPair(start, end)
			if err != nil {
				return err
			}
			c := &domain.ClassCommitment{Subject: args[0], Weekday: weekday, Start: s, End: e}
			if err := app.Schedule.AddClass(cmd.Context(), app.User, c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s on %s %s\n", c.Subject, c.Weekday, formatter.ClockRange(s, e))
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Weekday (mon..sun)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newClassListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List classes",
		RunE: func(cmd *cobra.Command, args []string) error {
			classes, err := app.Schedule.ListClasses(cmd.Context(), app.User)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatClasses(classes))
			return nil
		},
	}
}

func newPrefsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Sleep and awake times",
	}
	cmd.AddCommand(newPrefsSetCmd(app), newPrefsShowCmd(app))
	return cmd
}

func newPrefsSetCmd(app *App) *cobra.Command {
	var awake, sleep string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set when you wake up and go to sleep",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := domain.ParseClock(awake)
			if err != nil {
				return err
			}
			s, err := domain.ParseClock(sleep)
			if err != nil {
				return err
			}
			p := domain.Preferences{AwakeTime: a, SleepTime: s}
			if err := app.Schedule.SetPreferences(cmd.Context(), app.User, p); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPreferences(&p))
			return nil
		},
	}

	cmd.Flags().StringVar(&awake, "awake", "", "Wake-up time (HH:MM)")
	cmd.Flags().StringVar(&sleep, "sleep", "", "Bedtime (HH:MM)")
	_ = cmd.MarkFlagRequired("awake")
	_ = cmd.MarkFlagRequired("sleep")

	return cmd
}

func newPrefsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show sleep and awake times",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Schedule.GetPreferences(cmd.Context(), app.User)
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No preferences set. Use `studyplan prefs set`."))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPreferences(p))
			return nil
		},
	}
}

func newWindowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Manage preferred weekly study windows",
	}
	cmd.AddCommand(newWindowAddCmd(app), newWindowListCmd(app), newWindowClearCmd(app))
	return cmd
}

func newWindowAddCmd(app *App) *cobra.Command {
	var day, start, end, focus string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a study window",
		RunE: func(cmd *cobra.Command, args []string) error {
			weekday, err := domain.ParseWeekday(day)
			if err != nil {
				return err
			}
			s, e, err := parseClockPair(start, end)
			if err != nil {
				return err
			}
			f, err := domain.ParseFocus(focus)
			if err != nil {
				return err
			}
			w := &domain.StudyWindow{Weekday: weekday, Start: s, End: e, Focus: f}
			if err := app.Schedule.AddWindow(cmd.Context(), app.User, w); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added study window %s %s\n", w.Weekday, formatter.ClockRange(s, e))
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Weekday (mon..sun)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&focus, "focus", "", "high, medium or low")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newWindowListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List study windows",
		RunE: func(cmd *cobra.Command, args []string) error {
			windows, err := app.Schedule.ListWindows(cmd.Context(), app.User)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWindows(windows))
			return nil
		},
	}
}

func newWindowClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every study window",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Schedule.ClearWindows(cmd.Context(), app.User); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cleared study windows")
			return nil
		},
	}
}

func newOverrideCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "override",
		Short: "Replace availability for a single date",
	}
	cmd.AddCommand(newOverrideSetCmd(app), newOverrideClearCmd(app), newOverrideListCmd(app))
	return cmd
}

func newOverrideSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set DATE BLOCK...",
		Short: "Only study inside the given blocks on DATE",
		Long: `Only study inside the given blocks on DATE. Each BLOCK is HH:MM-HH:MM,
optionally followed by =high, =medium or =low.

  studyplan override set 2025-03-12 13:00-15:00 19:00-21:00=high`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			blocks := make([]domain.OverrideBlock, 0, len(args)-1)
			for _, arg := range args[1:] {
				b, err := parseOverrideBlock(arg)
				if err != nil {
					return err
				}
				blocks = append(blocks, b)
			}
			if err := app.Schedule.SetOverride(cmd.Context(), app.User, args[0], blocks); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %d override block(s) on %s\n", len(blocks), args[0])
			return nil
		},
	}
}

func newOverrideClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear DATE",
		Short: "Drop the override for DATE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Schedule.ClearOverride(cmd.Context(), app.User, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared override on %s\n", args[0])
			return nil
		},
	}
}

func newOverrideListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List overrides from today on",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := app.Schedule.ListOverrides(cmd.Context(), app.User, domain.DateKey(app.now()))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOverrides(overrides))
			return nil
		},
	}
}

func parseClockPair(start, end string) (domain.ClockTime, domain.ClockTime, error) {
	s, err := domain.ParseClock(start)
	if err != nil {
		return 0, 0, err
	}
	e, err := domain.ParseClock(end)
	if err != nil {
		return 0, 0, err
	}
	return s, e, nil
}

// parseOverrideBlock reads "HH:MM-HH:MM" with an optional "=focus" suffix.
func parseOverrideBlock(s string) (domain.OverrideBlock, error) {
	span, focus, _ := strings.Cut(s, "=")
	start, end, ok := strings.Cut(span, "-")
	if !ok {
		return domain.OverrideBlock{}, fmt.Errorf("block %q: want HH:MM-HH:MM", s)
	}
	b := domain.OverrideBlock{}
	var err error
	if b.Start, b.End, err = parseClockPair(start, end); err != nil {
		return domain.OverrideBlock{}, err
	}
	if b.Focus, err = domain.ParseFocus(focus); err != nil {
		return domain.OverrideBlock{}, err
	}
	return b, nil
}
