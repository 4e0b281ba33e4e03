package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thenoetrevino/flowmaster/internal/config/colors"
	"github.com/thenoetrevino/flowmaster/internal/models"
	"gopkg.in/yaml.v3"
)

// ColorScheme is the board's color theme.
type ColorScheme = colors.ColorScheme

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig `yaml:"storage"`
	Log         LogConfig     `yaml:"log"`
	Auth        AuthConfig    `yaml:"auth"`
	Board       BoardConfig   `yaml:"board"`
	ColorScheme ColorScheme   `yaml:"theme"`
}

// StorageConfig locates the durable key-value mirror.
type StorageConfig struct {
	Path        string `yaml:"path"` // sqlite file, ":memory:" keeps nothing on disk
	WorkflowKey string `yaml:"workflow_key"`
	AuthKey     string `yaml:"auth_key"`
	AccountsKey string `yaml:"accounts_key"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// AuthConfig controls session tokens.
type AuthConfig struct {
	Secret     string `yaml:"secret"`
	SessionTTL string `yaml:"session_ttl"` // Go duration, e.g. "168h"
	HashCost   int    `yaml:"hash_cost"`   // bcrypt cost, 4-31
}

// BoardConfig is the geometry the CLI lays cards and stages out with when it
// resolves pointer positions.
type BoardConfig struct {
	CardHeight float64 `yaml:"card_height"`
	CardGap    float64 `yaml:"card_gap"`
	StageWidth float64 `yaml:"stage_width"`
	StageGap   float64 `yaml:"stage_gap"`
}

// Environment overrides
const (
	EnvDBPath    = "FLOWMASTER_DB"
	EnvThemeFile = "FLOWMASTER_THEME_FILE"
	EnvSecret    = "FLOWMASTER_SECRET"
)

const (
	defaultSessionTTL = 7 * 24 * time.Hour
	defaultHashCost   = 10
)

// Default returns the configuration used when no file exists.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile loads and merges theme from FLOWMASTER_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("failed to read theme file", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		slog.Warn("failed to parse theme file", "path", themeFile, "error", err)
		return
	}
	config.ColorScheme.MergeFrom(themeConfig.Theme)
}

// applyEnv applies environment overrides
func applyEnv(config *Config) {
	if path := os.Getenv(EnvDBPath); path != "" {
		config.Storage.Path = path
	}
	if secret := os.Getenv(EnvSecret); secret != "" {
		config.Auth.Secret = secret
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		applyEnv(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		applyEnv(config)
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	loadThemeFile(&config)
	config.applyDefaults()
	applyEnv(&config)

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "flowmaster", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "flowmaster", "config.yaml"), nil
}

// DataDir returns ~/.flowmaster, where the database and logs live by default.
func DataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".flowmaster"
	}
	return filepath.Join(homeDir, ".flowmaster")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.Path == "" {
		c.Storage.Path = filepath.Join(DataDir(), "flowmaster.db")
	}
	if c.Storage.WorkflowKey == "" {
		c.Storage.WorkflowKey = models.WorkflowStorageKey
	}
	if c.Storage.AuthKey == "" {
		c.Storage.AuthKey = models.AuthStorageKey
	}
	if c.Storage.AccountsKey == "" {
		c.Storage.AccountsKey = models.AccountsStorageKey
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Auth.SessionTTL == "" {
		c.Auth.SessionTTL = defaultSessionTTL.String()
	}
	if c.Auth.HashCost <= 0 {
		c.Auth.HashCost = defaultHashCost
	}
	if c.Board.CardHeight <= 0 {
		c.Board.CardHeight = 80
	}
	if c.Board.CardGap <= 0 {
		c.Board.CardGap = 8
	}
	if c.Board.StageWidth <= 0 {
		c.Board.StageWidth = 280
	}
	if c.Board.StageGap <= 0 {
		c.Board.StageGap = 16
	}
	c.ColorScheme.ApplyDefaults()
}

// LogLevel parses Log.Level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SessionTTL parses Auth.SessionTTL, defaulting to seven days.
func (c *Config) SessionTTL() time.Duration {
	ttl, err := time.ParseDuration(c.Auth.SessionTTL)
	if err != nil || ttl <= 0 {
		return defaultSessionTTL
	}
	return ttl
}
