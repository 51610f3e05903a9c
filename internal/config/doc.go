// Package config loads and validates YAML configuration for the scoreboard
// client core.
//
// Configuration is read from a YAML file with environment variable expansion
// (${VAR} syntax). Missing optional fields fall back to defaults; Default()
// returns a fully defaulted config for hosts that run without a file.
package config
