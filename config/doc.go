// Package config loads service configuration from defaults, an optional
// YAML file, and CONTRACT_SIM_* environment variables.
package config
