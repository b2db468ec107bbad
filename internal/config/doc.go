// Package config loads application configuration from environment
// variables with development-friendly defaults.
package config
