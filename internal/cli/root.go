package cli

import (
	"time"

	"github.com/alexanderramin/studyplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Items    service.ItemService
	Schedule service.ScheduleService
	Plans    service.PlanService

	// User is the default profile; --user overrides it per invocation.
	User string

	// IsInteractive reports whether prompts and the week view may take over
	// the terminal. Nil means never.
	IsInteractive func() bool

	// Now is the clock used for planning. Nil means time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) nowPtr() *time.Time {
	n := a.now()
	return &n
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "studyplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var user string

	root := &cobra.Command{
		Use:           "studyplan",
		Short:         "Plan study blocks around classes, sleep and deadlines",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Flags().Changed("user") {
				app.User = user
			}
		},
	}

	// --config is read before services are wired; it is declared here so
	// cobra accepts it and lists it in help.
	root.PersistentFlags().String("config", "", "Config file (default ~/.studyplan/config.yaml)")
	root.PersistentFlags().StringVar(&user, "user", "", "Profile to act on")

	root.AddCommand(
		newTaskCmd(app),
		newTestCmd(app),
		newRemoveCmd(app),
		newClassCmd(app),
		newPrefsCmd(app),
		newWindowCmd(app),
		newOverrideCmd(app),
		newPlanCmd(app),
		newTodayCmd(app),
		newSuggestCmd(app),
		newWeekCmd(app),
	)

	return root
}
