package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"balju/internal/config"
	"balju/internal/database"
	"balju/internal/focus"
	"balju/internal/models"
	"balju/internal/monitoring"
	"balju/internal/ordering"
	"balju/internal/store"
	"balju/internal/tui"
)

var (
	configFile = flag.String("config", "configs/config.yaml", "Path to configuration file")
	dataDir    = flag.String("data-dir", "", "Override the data directory")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create data directory: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	backing, cleanup := openBacking(cfg, logger)
	defer cleanup()

	catalog := models.NewCatalog().WithBranches(cfg.Branches)
	monitor := monitoring.NewMonitor()
	repo := store.NewRepository(backing, cfg.Retention(), nil, logger)
	drafts := store.NewDraftStore(backing, logger)
	controller := focus.NewController()

	svc := ordering.NewService(catalog, repo, drafts, controller, monitor, nil, logger)
	svc.Hydrate()

	program := tea.NewProgram(tui.New(svc), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "UI error: %v\n", err)
		os.Exit(1)
	}

	if submitted, ok := monitor.GetMetric("orders_submitted_total"); ok {
		logger.Info("session finished", "orders_submitted", submitted)
	} else {
		logger.Info("session finished")
	}
}

// newLogger writes the session log to a file; the terminal belongs to
// the UI. Logging failures must never block the form, so a broken log
// path just discards output.
func newLogger(cfg *config.Config) *slog.Logger {
	var w io.Writer = io.Discard
	f, err := os.OpenFile(
		filepath.Join(cfg.DataDir, "balju.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0o644,
	)
	if err == nil {
		w = f
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}

// openBacking selects the configured backing store. The order form is
// favored over durability: when the store cannot be opened the session
// runs on memory and the user is never interrupted.
func openBacking(cfg *config.Config, logger *slog.Logger) (store.BackingStore, func()) {
	if cfg.Storage == "file" {
		return store.NewFileStore(filepath.Join(cfg.DataDir, "slots")), func() {}
	}

	db, err := database.Open(cfg.DBPath())
	if err != nil {
		logger.Warn("database unavailable, running without persistence", "error", err)
		return store.NewMemoryStore(), func() {}
	}
	slots, err := store.NewSlotStore(db)
	if err != nil {
		logger.Warn("slot schema migration failed, running without persistence", "error", err)
		database.Close(db)
		return store.NewMemoryStore(), func() {}
	}
	return slots, func() {
		if err := database.Close(db); err != nil {
			logger.Warn("database close failed", "error", err)
		}
	}
}
