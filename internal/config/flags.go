package config

import (
	"github.com/spf13/pflag"
)

// RegisterFlags declares the configuration flags on fs. Flag defaults only
// document the built-in values; Load applies a flag only when it was set.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP("config", "c", "", "path to a JSON or YAML config file")
	fs.String("log-level", d.LogLevel, "log level: debug, info, warn, error")
	fs.String("log-format", d.LogFormat, "log format: text, json")
	fs.String("log-backend", d.LogBackend, "logging backend: slog, zap")
	fs.String("log-file", d.LogFile, "write logs to this file instead of stderr")
	fs.String("locale", d.Locale, "locale for money and percentage formatting")
	fs.Bool("login-hint", d.LoginHint, "show the demo credentials on the login screen")
}

func configPath(fs *pflag.FlagSet) string {
	if fs != nil && fs.Changed("config") {
		if p, err := fs.GetString("config"); err == nil {
			return p
		}
	}
	return envConfigPath()
}

// applyFlags copies the flags the user changed into cfg.
func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}

	strs := map[string]*string{
		"log-level":   &cfg.LogLevel,
		"log-format":  &cfg.LogFormat,
		"log-backend": &cfg.LogBackend,
		"log-file":    &cfg.LogFile,
		"locale":      &cfg.Locale,
	}
	for name, dst := range strs {
		if !fs.Changed(name) {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}

	if fs.Changed("login-hint") {
		v, err := fs.GetBool("login-hint")
		if err != nil {
			return err
		}
		cfg.LoginHint = v
	}
	return nil
}
