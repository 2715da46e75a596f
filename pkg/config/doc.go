// Package config handles configuration management for overlay.
// Settings are layered with koanf: embedded defaults, then the user's
// config file (TOML or YAML, under the XDG config home), then OVERLAY_*
// environment variables, then explicit overrides such as command-line flags.
package config
