// Package config locates the per-user ga directory (~/.config/ga/) and reads
// the optional settings file stored there (config.yaml). Settings can be
// overridden with GA_* environment variables.
package config
