package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/studyplan/internal/cli"
	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/config"
	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/repository"
	"github.com/alexanderramin/studyplan/internal/scheduler"
	"github.com/alexanderramin/studyplan/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// configPath scans the arguments for --config ahead of cobra, which only
// parses flags after the services it dispatches to have been built.
func configPath(args []string) string {
	fs := pflag.NewFlagSet("studyplan", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	path := fs.String("config", config.DefaultPath(), "")
	_ = fs.Parse(args)
	return *path
}

func run() error {
	cfg, err := config.Load(configPath(os.Args[1:]))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := config.NewLogger(cfg.Log, os.Stderr)
	formatter.SetColorMode(cfg.UI.Color)

	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	repos := service.Repos{
		Tasks:     repository.NewSQLiteTaskRepo(database),
		Tests:     repository.NewSQLiteTestRepo(database),
		Classes:   repository.NewSQLiteClassRepo(database),
		Prefs:     repository.NewSQLitePreferencesRepo(database),
		Windows:   repository.NewSQLiteStudyWindowRepo(database),
		Overrides: repository.NewSQLiteOverrideRepo(database),
		Plans:     repository.NewSQLitePlanRepo(database),
	}
	uow := db.NewSQLiteUnitOfWork(database)

	table := scheduler.DefaultPriorityTable().
		WithTypeScores(cfg.Planner.Priority).
		WithTypeBlocks(cfg.Planner.Blocks)

	app := &cli.App{
		Items:    service.NewItemService(repos.Tasks, repos.Tests, repos.Classes, uow),
		Schedule: service.NewScheduleService(repos.Prefs, repos.Classes, repos.Windows, repos.Overrides, uow),
		Plans: service.NewPlanService(repos, uow,
			service.WithPriorityTable(table),
			service.WithLogger(logger),
			service.WithObserver(service.NewLogUseCaseObserver(logger)),
		),
		User: cfg.User,
	}

	app.IsInteractive = func() bool {
		in, out := os.Stdin.Fd(), os.Stdout.Fd()
		return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
			(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
	}

	return cli.NewRootCmd(app).ExecuteContext(context.Background())
}
