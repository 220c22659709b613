package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/hayakil/internal/catalog"
)

// EnvPrefix namespaces environment overrides, e.g. HAYAKIL_LOG_LEVEL.
const EnvPrefix = "HAYAKIL"

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env     string  `mapstructure:"env"` // local or production
	Log     Log     `mapstructure:"log"`
	Catalog Catalog `mapstructure:"catalog"`
	UI      UI      `mapstructure:"ui"`
}

// Log configures the file logger. The TUI owns stdout, so logs only go to File.
type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"` // empty disables logging
}

// Catalog points at an alternative topics document.
type Catalog struct {
	Path string `mapstructure:"path"` // empty uses the embedded catalog
}

// UI tunes the terminal interface.
type UI struct {
	StartTopic    string        `mapstructure:"start_topic"`
	TraversalStep time.Duration `mapstructure:"traversal_step"`
	HighlightHold time.Duration `mapstructure:"highlight_hold"`
	SkipWelcome   bool          `mapstructure:"skip_welcome"`
}

// StartTopicID returns the configured start topic, or "" when unset.
func (u UI) StartTopicID() catalog.TopicID {
	return catalog.TopicID(u.StartTopic)
}

// Load reads configuration from an optional .env file, a config file and
// HAYAKIL_* environment variables, in increasing order of precedence.
// An explicit path must exist; otherwise config.yaml is looked up in the
// working directory and the user config directory.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "hayakil"))
		}
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Env: "local",
		Log: Log{Level: "info"},
		UI: UI{
			TraversalStep: 800 * time.Millisecond,
			HighlightHold: time.Second,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("env", d.Env)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("catalog.path", d.Catalog.Path)
	v.SetDefault("ui.start_topic", d.UI.StartTopic)
	v.SetDefault("ui.traversal_step", d.UI.TraversalStep)
	v.SetDefault("ui.highlight_hold", d.UI.HighlightHold)
	v.SetDefault("ui.skip_welcome", d.UI.SkipWelcome)
}

// Validate checks values viper cannot type-check.
func (c *Config) Validate() error {
	var errs []string

	switch c.Env {
	case "local", "production":
	default:
		errs = append(errs, fmt.Sprintf("env: want local or production, got %q", c.Env))
	}
	if c.UI.StartTopic != "" {
		if _, err := catalog.ParseTopicID(c.UI.StartTopic); err != nil {
			errs = append(errs, fmt.Sprintf("ui.start_topic: %v", err))
		}
	}
	if c.UI.TraversalStep <= 0 {
		errs = append(errs, fmt.Sprintf("ui.traversal_step: must be positive, got %s", c.UI.TraversalStep))
	}
	if c.UI.HighlightHold < 0 {
		errs = append(errs, fmt.Sprintf("ui.highlight_hold: must not be negative, got %s", c.UI.HighlightHold))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
