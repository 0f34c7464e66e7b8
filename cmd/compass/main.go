package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/compass/internal/cli"
	"github.com/alexanderramin/compass/internal/db"
	"github.com/alexanderramin/compass/internal/repository"
	"github.com/alexanderramin/compass/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.compass/compass.db
	dbPath := os.Getenv("COMPASS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".compass", "compass.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	templateRepo := repository.NewSQLitePathTemplateRepo(database)
	instantiationRepo := repository.NewSQLiteInstantiationRepo(database)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	milestoneRepo := repository.NewSQLiteMilestoneRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	gateRepo := repository.NewSQLiteGateRepo(database)
	overrideRepo := repository.NewSQLiteGateOverrideRepo(database)
	snapshotRepo := repository.NewSQLiteSnapshotRepo(database)

	// Wire unit of work for the transactional template walk
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("COMPASS_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Templates: service.NewTemplateService(templateRepo),
		Paths:     service.NewInstantiationService(templateRepo, uow, observer),
		Plans:     service.NewPlanService(instantiationRepo, goalRepo, milestoneRepo, taskRepo),
		Gates:     service.NewGateService(gateRepo, overrideRepo, milestoneRepo, snapshotRepo, observer),
	}

	// Detect interactive terminal for wizard prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
