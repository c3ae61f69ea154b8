// Package config loads the completion demo configuration from defaults, a TOML
// file and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/flourish-complete/popup"
)

const envPrefix = "FLOURISH_COMPLETE_"

// Config holds the demo configuration.
type Config struct {
	Popup  PopupConfig  `toml:"popup"`
	Editor EditorConfig `toml:"editor"`
	Words  WordsConfig  `toml:"words"`
	Log    LogConfig    `toml:"log"`
}

// PopupConfig describes the completion view. Zero sizes fall back to the
// metrics defaults.
type PopupConfig struct {
	Metrics    string `toml:"metrics"` // "cell" or "pixel"
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	MaxVisible int    `toml:"max_visible"`
	Horizontal bool   `toml:"horizontal"`
	Header     string `toml:"header"`
	NoResults  string `toml:"no_results"`
}

// EditorConfig holds host editor settings.
type EditorConfig struct {
	Text        string `toml:"text"`
	AutoTrigger bool   `toml:"auto_trigger"`
}

// WordsConfig is the candidate source of the demo supplier.
type WordsConfig struct {
	List []string `toml:"list"`
	File string   `toml:"file"` // one word per line, appended to List
}

// LogConfig controls the file logger. An empty File disables logging.
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Popup: PopupConfig{
			Metrics:    "cell",
			Width:      32,
			MaxVisible: 8,
			NoResults:  "No results",
		},
		Editor: EditorConfig{
			AutoTrigger: true,
		},
		Words: WordsConfig{
			List: []string{
				"break", "case", "chan", "const", "continue", "default", "defer",
				"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
				"interface", "map", "package", "range", "return", "select",
				"struct", "switch", "type", "var",
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "flourish-complete.toml"
	}
	return filepath.Join(dir, "flourish-complete", "config.toml")
}

// LoadFrom starts with defaults, overlays the file at path if it exists, then
// applies environment overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Words.File = expandPath(cfg.Words.File)
	cfg.Log.File = expandPath(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// applyEnvOverrides applies FLOURISH_COMPLETE_* variables. They take
// precedence over the file.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(envPrefix + "METRICS"); v != "" {
		cfg.Popup.Metrics = v
	}
	if err := envInt("WIDTH", &cfg.Popup.Width); err != nil {
		return err
	}
	if err := envInt("HEIGHT", &cfg.Popup.Height); err != nil {
		return err
	}
	if err := envInt("MAX_VISIBLE", &cfg.Popup.MaxVisible); err != nil {
		return err
	}
	if err := envBool("HORIZONTAL", &cfg.Popup.Horizontal); err != nil {
		return err
	}
	if v := os.Getenv(envPrefix + "HEADER"); v != "" {
		cfg.Popup.Header = v
	}
	if err := envBool("AUTO_TRIGGER", &cfg.Editor.AutoTrigger); err != nil {
		return err
	}
	if v := os.Getenv(envPrefix + "WORDS"); v != "" {
		cfg.Words.List = splitList(v)
	}
	if v := os.Getenv(envPrefix + "WORDS_FILE"); v != "" {
		cfg.Words.File = v
	}
	if v := os.Getenv(envPrefix + "LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv(envPrefix + "LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

func envInt(name string, dst *int) error {
	v := os.Getenv(envPrefix + name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s%s: %w", envPrefix, name, err)
	}
	*dst = n
	return nil
}

func envBool(name string, dst *bool) error {
	v := os.Getenv(envPrefix + name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s%s: %w", envPrefix, name, err)
	}
	*dst = b
	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Popup.Metrics {
	case "cell", "pixel":
	default:
		return fmt.Errorf("metrics must be \"cell\" or \"pixel\", got %q", c.Popup.Metrics)
	}
	if c.Popup.Width < 0 {
		return errors.New("width must not be negative")
	}
	if c.Popup.Height < 0 {
		return errors.New("height must not be negative")
	}
	if c.Popup.MaxVisible < 0 {
		return errors.New("max_visible must not be negative")
	}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	return nil
}

// Metrics returns the popup metrics selected by Popup.Metrics.
func (c *Config) Metrics() popup.Metrics {
	if c.Popup.Metrics == "pixel" {
		return popup.PixelMetrics()
	}
	return popup.CellMetrics()
}

// LoadWords returns Words.List followed by the non-empty lines of Words.File.
func (c *Config) LoadWords() ([]string, error) {
	words := append([]string(nil), c.Words.List...)
	if c.Words.File == "" {
		return words, nil
	}
	data, err := os.ReadFile(c.Words.File)
	if err != nil {
		return nil, fmt.Errorf("reading words file: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			words = append(words, line)
		}
	}
	return words, nil
}

// SaveTo writes the configuration to path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
