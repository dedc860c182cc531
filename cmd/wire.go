package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/luoyen/weibot/internal/adapters/settings"
)

type app struct {
	baseDir    string
	configPath string
	cookiePath string
	stateDir   string
	settings   settings.Settings
	logger     *slog.Logger
}

func wireApp() (*app, error) {
	baseDir := os.Getenv("WEIBOT_HOME")
	if baseDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".weibot")
	}

	// Optional; the generator key can come from the environment directly.
	_ = godotenv.Load(filepath.Join(baseDir, ".env"))

	loaded, err := settings.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	return &app{
		baseDir:    baseDir,
		configPath: filepath.Join(baseDir, "config.json"),
		cookiePath: filepath.Join(baseDir, "weibo_cookie.json"),
		stateDir:   filepath.Join(baseDir, "state"),
		settings:   loaded,
		logger:     slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
