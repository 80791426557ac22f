// Config loading for the pantry CLI.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/dukaforge/pantry/internal/paths"
	"github.com/dukaforge/pantry/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyListenAddr = "listen_addr"
	cfgKeyDBPath     = "db_path"
	cfgKeyCSVPath    = "csv_path"
	cfgKeyPassword   = "password"

	defaultListenAddr = ":8080"
	dbFileName        = "cereals.db"
)

// loadConfig reads config.yaml from the resolved config directory using
// Viper. Environment variables prefixed PANTRY_ override file values, so
// the shared secret can be supplied as PANTRY_PASSWORD without touching
// disk. A missing config.yaml is not an error.
func loadConfig(configDir string) (types.Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyListenAddr, defaultListenAddr)
	v.SetDefault(cfgKeyDBPath, "")
	v.SetDefault(cfgKeyCSVPath, "")
	v.SetDefault(cfgKeyPassword, "")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("PANTRY")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		ListenAddr: v.GetString(cfgKeyListenAddr),
		DBPath:     v.GetString(cfgKeyDBPath),
		CSVPath:    v.GetString(cfgKeyCSVPath),
		Password:   v.GetString(cfgKeyPassword),
	}

	if cfg.DBPath == "" {
		dataDir, err := paths.ResolveDataDir("")
		if err != nil {
			return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
		}
		cfg.DBPath = filepath.Join(dataDir, dbFileName)
	}

	return cfg, nil
}
