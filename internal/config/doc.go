// Package config defines the application configuration structure and
// loading logic. Configuration is read from environment variables (with a
// TASKDECK_ prefix) and an optional config.yaml file, then validated
// before the application starts.
package config
