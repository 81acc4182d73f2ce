package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	DBPath       string `toml:"db_path" env:"RCALC_DB_PATH"`
	History      bool   `toml:"history" env:"RCALC_HISTORY"`
	HistoryLimit int    `toml:"history_limit" env:"RCALC_HISTORY_LIMIT"`
	Environment  string `toml:"environment" env:"RCALC_ENVIRONMENT"`
	// Plain forces the line-by-line loop even on a terminal.
	Plain bool `toml:"plain" env:"RCALC_PLAIN"`

	// Path is the config file that was read, empty if none existed.
	Path string `toml:"-"`
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DBPath:       filepath.Join(home, ".config", "rcalc", "history.db"),
		History:      true,
		HistoryLimit: 20,
		Environment:  "development",
	}

	cfgPath := filepath.Join(home, ".config", "rcalc", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
		cfg.Path = cfgPath
	}

	// environment wins over the file
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	cfg.DBPath = expandHome(cfg.DBPath, home)
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 20
	}

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
