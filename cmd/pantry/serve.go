package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dukaforge/pantry/internal/api"
	"github.com/dukaforge/pantry/internal/loader"
	"github.com/dukaforge/pantry/internal/paths"

	"github.com/dukaforge/pantry/internal/sqlite"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the cereal API server",
	Long: `Start the cereal API server. The SQLite schema is created if needed
and the cereal CSV (when configured) is bulk-loaded before the server
begins accepting traffic; existing rows are left untouched.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	log, err := newLogger(flagDebug)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	store, err := sqlite.Open(cfg.DBPath, log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	if err := store.InitSchema(); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	// The startup load runs to completion before the listener starts;
	// readiness implies the seed data is in place.
	if cfg.CSVPath != "" {
		cereals, err := loader.Load(cfg.CSVPath)
		if err != nil {
			return fmt.Errorf("load csv: %w", err)
		}
		if resp := store.BulkInsert(cereals); !resp.IsSuccess() {
			return fmt.Errorf("bulk insert: %s", resp.Details)
		}
		log.Info("csv loaded", zap.String("path", cfg.CSVPath), zap.Int("rows", len(cereals)))
	}

	server := api.NewServer(store, cfg.Password, log)
	log.Info("listening", zap.String("addr", cfg.ListenAddr))
	return http.ListenAndServe(cfg.ListenAddr, server.Router())
}

// newLogger builds the process logger; --debug lowers the level.
func newLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
