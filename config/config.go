package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config carries the engine's static settings. Values come from defaults,
// an optional gomoku config file in the working directory, and GOMOKU_*
// environment variables, in increasing priority.
type Config struct {
	Name         string `mapstructure:"name"`
	Version      string `mapstructure:"version"`
	Author       string `mapstructure:"author"`
	Country      string `mapstructure:"country"`
	SearchDepth  int    `mapstructure:"search_depth"`
	MinBoardSize int    `mapstructure:"min_board_size"`
	TurnMarginMs int    `mapstructure:"turn_margin_ms"`
	LogLevel     string `mapstructure:"log_level"`
}

func Setup() (*Config, error) {
	v := viper.New()
	v.SetDefault("name", "smelly_ai")
	v.SetDefault("version", "1.0")
	v.SetDefault("author", "Heisen & zif")
	v.SetDefault("country", "France")
	v.SetDefault("search_depth", 3)
	v.SetDefault("min_board_size", 20)
	v.SetDefault("turn_margin_ms", 200)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("gomoku")
	v.AutomaticEnv()

	v.SetConfigName("gomoku")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.SearchDepth < 1 {
		return nil, fmt.Errorf("search_depth must be positive, got %d", cfg.SearchDepth)
	}
	if cfg.MinBoardSize < 5 {
		return nil, fmt.Errorf("min_board_size must be at least 5, got %d", cfg.MinBoardSize)
	}
	return &cfg, nil
}

// About renders the identification line sent in reply to the ABOUT command.
func (c *Config) About() string {
	return fmt.Sprintf("name=%q, version=%q, author=%q, country=%q",
		c.Name, c.Version, c.Author, c.Country)
}

// TurnMargin is the safety margin subtracted from the manager's per-turn
// timeout when deriving the search deadline.
func (c *Config) TurnMargin() time.Duration {
	return time.Duration(c.TurnMarginMs) * time.Millisecond
}
