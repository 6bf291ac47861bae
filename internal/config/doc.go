// Package config defines the application configuration structure and
// loading. Configuration comes from environment variables (TASKLINE_
// prefix) layered over an optional config.yaml, with validation applied
// after unmarshalling.
package config
