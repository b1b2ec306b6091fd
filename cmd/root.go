package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/parleyhq/parley/internal/config"
	"github.com/parleyhq/parley/internal/domain/project"
	"github.com/parleyhq/parley/internal/domain/session"
	"github.com/parleyhq/parley/internal/fsstore"
	"github.com/parleyhq/parley/internal/sqlite"
	"github.com/parleyhq/parley/internal/workspace"
)

var (
	workspaceFlag string
	configFlag    string
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "parley",
		Short:         "Parley workspace: project folders for chat sessions and files",
		Long:          "parley manages a workspace of project folders grouping chat sessions and user files, and serves them to host applications over MCP.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&workspaceFlag, "workspace", "", "workspace root directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to a YAML config file")

	rootCmd.AddCommand(
		newServeCmd(),
		newProjectCmd(),
		newFilesCmd(),
	)

	return rootCmd
}

// app bundles the wired services a command needs.
type app struct {
	cfg      config.Config
	ws       workspace.Workspace
	logger   *slog.Logger
	projects *project.Service
	sessions *session.Service
	db       *sqlite.DB
}

func (a *app) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func wireApp(logWriter io.Writer) (*app, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	return wireAppFrom(cfg, logWriter)
}

func wireAppFrom(cfg config.Config, logWriter io.Writer) (*app, error) {
	if workspaceFlag != "" {
		cfg.Workspace.Root = workspaceFlag
		cfg.Sessions.DBPath = filepath.Join(cfg.Workspace.Root, "sessions.db")
	}

	if logWriter == nil {
		logWriter = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := os.MkdirAll(cfg.Workspace.Root, 0o755); err != nil {
		return nil, fmt.Errorf("preparing workspace root: %w", err)
	}

	db, err := sqlite.New(cfg.Sessions.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening session index: %w", err)
	}
	if err := db.RunMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating session index: %w", err)
	}

	index := sqlite.NewSessionIndex(db)
	store := fsstore.Open(cfg.Workspace.Root, logger)

	return &app{
		cfg:      cfg,
		ws:       workspace.Workspace{Root: cfg.Workspace.Root},
		logger:   logger,
		projects: project.NewService(store, index, logger),
		sessions: session.NewService(index, logger),
		db:       db,
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
