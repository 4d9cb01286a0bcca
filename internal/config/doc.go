// Package config loads runtime configuration for the janol CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c/--config or JANOL_CONFIG.
//     Files ending in .yaml or .yml are YAML, anything else is JSON.
//  3. Environment variables (JANOL_*).
//  4. Command-line flags the user actually set.
//
// # File schema
//
//	{
//	  "log_level": "info",
//	  "log_format": "text",
//	  "log_backend": "slog",
//	  "log_file": "",
//	  "locale": "en",
//	  "login_hint": true
//	}
//
// Keys missing from the file keep their earlier value.
package config
