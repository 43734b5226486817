// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable the generator reads
const EnvPrefix = "DUNGEON_"

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	return ParseEnvPrefix(target, "")
}

// ParseEnvPrefix loads configuration from environment variables named prefix + tag.
func ParseEnvPrefix(target any, prefix string) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
