package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/kelseyhightower/envconfig"
)

// Config represents the standup configuration.
type Config struct {
	Author      string  `json:"author,omitempty"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"maxTokens"`
	EveningHour int     `json:"eveningHour"`
	Format      string  `json:"format"`
}

// envOverrides is the environment layer, read with the STANDUP_ prefix
// (STANDUP_MODEL, STANDUP_MAX_TOKENS, ...).
type envOverrides struct {
	Author      string
	Model       string
	Temperature float64
	MaxTokens   int `split_words:"true"`
	EveningHour int `split_words:"true"`
	Format      string
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Model:       "gpt-4o-mini",
		Temperature: 0.2,
		MaxTokens:   300,
		EveningHour: 18,
		Format:      "text",
	}
}

// ConfigDir returns the platform-appropriate config directory for standup.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "standup"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "standup"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "standup"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "standup"), nil
	default:
		return filepath.Join(home, ".config", "standup"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Author != "" {
		dst.Author = src.Author
	}
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.Temperature > 0 {
		dst.Temperature = src.Temperature
	}
	if src.MaxTokens > 0 {
		dst.MaxTokens = src.MaxTokens
	}
	if src.EveningHour > 0 {
		dst.EveningHour = src.EveningHour
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
}

func mergeEnv(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process("standup", &env); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	if env.Author != "" {
		cfg.Author = env.Author
	}
	if env.Model != "" {
		cfg.Model = env.Model
	}
	if env.Temperature > 0 {
		cfg.Temperature = env.Temperature
	}
	if env.MaxTokens > 0 {
		cfg.MaxTokens = env.MaxTokens
	}
	if env.EveningHour > 0 {
		cfg.EveningHour = env.EveningHour
	}
	if env.Format != "" {
		cfg.Format = env.Format
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["author"]; ok && v != "" {
		cfg.Author = v
	}
	if v, ok := overrides["model"]; ok && v != "" {
		cfg.Model = v
	}
	if v, ok := overrides["temperature"]; ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Temperature = f
		}
	}
	if v, ok := overrides["maxTokens"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxTokens = n
		}
	}
	if v, ok := overrides["eveningHour"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.EveningHour = n
		}
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
}

// SetField sets a config field by its JSON key name, parsing the value.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "author":
		cfg.Author = value
	case "model":
		cfg.Model = value
	case "temperature":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("temperature must be a number: %w", err)
		}
		cfg.Temperature = f
	case "maxTokens":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxTokens must be an integer: %w", err)
		}
		cfg.MaxTokens = n
	case "eveningHour":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("eveningHour must be an integer: %w", err)
		}
		if n < 0 || n > 23 {
			return fmt.Errorf("eveningHour must be between 0 and 23")
		}
		cfg.EveningHour = n
	case "format":
		if value != "text" && value != "json" {
			return fmt.Errorf("format must be text or json")
		}
		cfg.Format = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
