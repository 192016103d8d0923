package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ganot/portico/internal/cache"
	"github.com/ganot/portico/internal/config"
	"github.com/ganot/portico/internal/domain/portfolio"
	"github.com/ganot/portico/internal/sqlite"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "portico",
		Short:         "Project portfolio dashboard over a tracker database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "path to a YAML config file")
	root.PersistentFlags().String("db", "", "path to the tracker database (overrides config)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newServeCmd(), newReportCmd(), newSeedCmd(), newMCPCmd())

	return root
}

// loadConfig reads the configuration and applies the persistent flag
// overrides on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		os.Setenv("PORTICO_CONFIG_PATH", path)
	}

	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func newLogger(cfg config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
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

// app bundles the wiring every subcommand shares: database, load service,
// and snapshot cache.
type app struct {
	cfg       config.Config
	logger    *slog.Logger
	db        *sqlite.DB
	service   *portfolio.Service
	snapshots *cache.SnapshotCache
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg)

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		return nil, err
	}

	repo := sqlite.NewRecordRepository(db)
	service := portfolio.NewService(repo, logger)
	snapshots := cache.New(service.Load, cfg.Cache.TTL())

	return &app{
		cfg:       cfg,
		logger:    logger,
		db:        db,
		service:   service,
		snapshots: snapshots,
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
