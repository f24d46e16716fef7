package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/zeit/internal/cli"
	"github.com/alexanderramin/zeit/internal/config"
	"github.com/alexanderramin/zeit/internal/db"
	"github.com/alexanderramin/zeit/internal/repository"
	"github.com/alexanderramin/zeit/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	taskRepo := repository.NewSQLiteTaskRepo(database)
	recordRepo := repository.NewSQLiteRecordRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogEnabled {
		observer = service.NewLogUseCaseObserver(os.Stderr, cfg.LogLevel)
	}

	app := &cli.App{
		Tasks:      service.NewTaskService(taskRepo, recordRepo, uow, observer),
		Tracking:   service.NewTrackingService(taskRepo, recordRepo, uow, service.WithObserver(observer)),
		ChartWidth: cfg.ChartWidth,
	}

	// Detect interactive terminal for the task creation form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
