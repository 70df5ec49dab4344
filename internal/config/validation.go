package config

import (
	"errors"
	"fmt"
	"os"
)

var validLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration for values the server cannot run with
func Validate(cfg *Config) error {
	if cfg.Board.Scale <= 0 {
		return fmt.Errorf("board.scale must be positive, got %v", cfg.Board.Scale)
	}
	if cfg.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}
	if cfg.Server.MaxGames < 0 {
		return fmt.Errorf("server.max_games must be >= 0, got %d", cfg.Server.MaxGames)
	}
	if cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout must be >= 0, got %s", cfg.Server.ShutdownTimeout)
	}
	if !validLevels[cfg.Log.Level] {
		return fmt.Errorf("log.level %q is not one of trace, debug, info, warn, error", cfg.Log.Level)
	}
	if cfg.Log.Format != "console" && cfg.Log.Format != "json" {
		return fmt.Errorf("log.format %q must be console or json", cfg.Log.Format)
	}
	return nil
}

func isMissingFile(err error) bool {
	var pathErr *os.PathError
	return errors.As(err, &pathErr) && errors.Is(pathErr, os.ErrNotExist)
}
