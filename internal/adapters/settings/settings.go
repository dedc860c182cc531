// Package settings loads optional engine tuning from a TOML file. Every
// knob has a default; the file only needs to exist when an operator wants
// to override one.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName      = "config"
	configType      = "toml"
	settingsPathKey = "settings.path"

	settingsConfigDir  = ".weibot"
	settingsConfigFile = "settings.toml"
)

type Settings struct {
	Lookback     int
	Pacing       time.Duration
	SleepDefault time.Duration
	HTTPTimeout  time.Duration
	CooldownMin  time.Duration
	CooldownMax  time.Duration

	WeiboBaseURL     string
	GeneratorBaseURL string
	GeneratorModel   string
}

type fileSchema struct {
	Poll struct {
		Lookback      int `toml:"lookback"`
		PacingSeconds int `toml:"pacing_seconds"`
		SleepSeconds  int `toml:"sleep_seconds"`
	} `toml:"poll"`
	HTTP struct {
		TimeoutSeconds int    `toml:"timeout_seconds"`
		WeiboBaseURL   string `toml:"weibo_base_url"`
	} `toml:"http"`
	Generator struct {
		BaseURL string `toml:"base_url"`
		Model   string `toml:"model"`
	} `toml:"generator"`
	Cooldown struct {
		MinSeconds int `toml:"min_seconds"`
		MaxSeconds int `toml:"max_seconds"`
	} `toml:"cooldown"`
}

// Load resolves the settings path through viper and merges file values
// over defaults. A missing file is not an error.
func Load(cfg *viper.Viper) (Settings, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Settings{}, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, settingsConfigDir, settingsConfigFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, settingsConfigDir))
	cfg.SetDefault(settingsPathKey, defaultPath)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Settings{}, fmt.Errorf("read config file: %w", err)
		}
	}

	return loadPath(cfg.GetString(settingsPathKey))
}

func loadPath(path string) (Settings, error) {
	settings := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return Settings{}, fmt.Errorf("read settings file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return Settings{}, fmt.Errorf("decode settings file: %w", err)
	}

	if file.Poll.Lookback > 0 {
		settings.Lookback = file.Poll.Lookback
	}
	if file.Poll.PacingSeconds > 0 {
		settings.Pacing = time.Duration(file.Poll.PacingSeconds) * time.Second
	}
	if file.Poll.SleepSeconds > 0 {
		settings.SleepDefault = time.Duration(file.Poll.SleepSeconds) * time.Second
	}
	if file.HTTP.TimeoutSeconds > 0 {
		settings.HTTPTimeout = time.Duration(file.HTTP.TimeoutSeconds) * time.Second
	}
	if file.HTTP.WeiboBaseURL != "" {
		settings.WeiboBaseURL = file.HTTP.WeiboBaseURL
	}
	if file.Generator.BaseURL != "" {
		settings.GeneratorBaseURL = file.Generator.BaseURL
	}
	if file.Generator.Model != "" {
		settings.GeneratorModel = file.Generator.Model
	}
	if file.Cooldown.MinSeconds > 0 {
		settings.CooldownMin = time.Duration(file.Cooldown.MinSeconds) * time.Second
	}
	if file.Cooldown.MaxSeconds > 0 {
		settings.CooldownMax = time.Duration(file.Cooldown.MaxSeconds) * time.Second
	}

	return settings, nil
}

func defaults() Settings {
	return Settings{
		Lookback:     5,
		Pacing:       time.Second,
		SleepDefault: 60 * time.Second,
		HTTPTimeout:  30 * time.Second,
		CooldownMin:  10 * time.Second,
		CooldownMax:  5 * time.Minute,
	}
}
