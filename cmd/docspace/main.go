package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/docspace/internal/cli"
	"github.com/alexanderramin/docspace/internal/config"
	"github.com/alexanderramin/docspace/internal/db"
	"github.com/alexanderramin/docspace/internal/intelligence"
	"github.com/alexanderramin/docspace/internal/llm"
	"github.com/alexanderramin/docspace/internal/repository"
	"github.com/alexanderramin/docspace/internal/seed"
	"github.com/alexanderramin/docspace/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	// The TUI owns the terminal, so logs go to a file or nowhere.
	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	if cfg.Seed {
		applied, err := seed.Apply(context.Background(), uow, time.Now())
		if err != nil {
			return fmt.Errorf("seeding demo workspace: %w", err)
		}
		if applied {
			logger.Info("seeded demo workspace", "db", cfg.DBPath)
		}
	}

	// Wire repositories
	ideaRepo := repository.NewSQLiteIdeaRepo(database)
	sectionRepo := repository.NewSQLiteSectionRepo(database)
	approvalRepo := repository.NewSQLiteApprovalRepo(database)
	memberRepo := repository.NewSQLiteMemberRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)

	// The model-backed assistant only runs when enabled and reachable;
	// otherwise the simulated one answers after the configured delay.
	var assistant intelligence.Assistant = intelligence.NewSimulatedAssistant(cfg.SubmitDelay)
	if cfg.LLM.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if cfg.LLM.LogCalls {
			observer = llm.NewSlogObserver(logger)
		}
		var usesModel bool
		assistant, usesModel = intelligence.SelectAssistant(context.Background(), llm.NewOllamaClient(cfg.LLM, observer), assistant)
		if !usesModel {
			logger.Warn("model endpoint unavailable, using simulated assistant", "endpoint", cfg.LLM.Endpoint)
		}
	}

	observer := service.NewLogUseCaseObserver(logger)

	app := &cli.App{
		Ideas:     service.NewIdeaService(ideaRepo, assistant, uow, observer),
		Documents: service.NewDocumentService(ideaRepo, sectionRepo, assistant, observer),
		Approvals: service.NewApprovalService(approvalRepo, logger, observer),
		Team:      service.NewTeamService(memberRepo, taskRepo),
		Imports:   service.NewImportService(uow, observer),
	}

	// Detect interactive terminal for the TUI entrypoint and prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

func openLogger(cfg config.Config) (*slog.Logger, func(), error) {
	if !cfg.LogEnabled {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, nil)), func() { f.Close() }, nil
}
