package config

import (
	"fmt"
	"slices"

	"github.com/spf13/pflag"
	"golang.org/x/text/language"
)

// Config holds runtime settings for the janol CLI. None of them change the
// behavior of the record keeper itself, only how it logs and formats.
type Config struct {
	LogLevel   string `json:"log_level" yaml:"log_level" env:"JANOL_LOG_LEVEL"`
	LogFormat  string `json:"log_format" yaml:"log_format" env:"JANOL_LOG_FORMAT"`
	LogBackend string `json:"log_backend" yaml:"log_backend" env:"JANOL_LOG_BACKEND"`
	LogFile    string `json:"log_file" yaml:"log_file" env:"JANOL_LOG_FILE"`
	Locale     string `json:"locale" yaml:"locale" env:"JANOL_LOCALE"`
	LoginHint  bool   `json:"login_hint" yaml:"login_hint" env:"JANOL_LOGIN_HINT"`
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.LogBackend = "slog"
	c.LogFile = ""
	c.Locale = "en"
	c.LoginHint = true
}

// Validate reports the first setting outside its allowed values.
func (c *Config) Validate() error {
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.LogLevel) {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if !slices.Contains([]string{"text", "json"}, c.LogFormat) {
		return fmt.Errorf("invalid log_format %q", c.LogFormat)
	}
	if !slices.Contains([]string{"slog", "zap"}, c.LogBackend) {
		return fmt.Errorf("invalid log_backend %q", c.LogBackend)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	return nil
}

// Load builds a Config from defaults, the config file, the environment and
// the changed flags of fs, in that order. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, configPath(fs)); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := applyFlags(cfg, fs); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
