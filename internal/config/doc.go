// Package config loads and merges standup configuration.
//
// The effective configuration is built from four layers, later layers
// winning: compiled defaults, the JSON config file in the platform config
// directory, STANDUP_-prefixed environment variables, and CLI flag
// overrides.
package config
