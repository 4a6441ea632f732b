package config

import (
	"quest-tracker/internal/validation"
)

// Validate checks the struct tags and returns the first failure as a ConfigError.
func (c *Config) Validate() error {
	err := validation.Default().Struct(c)
	if err == nil {
		return nil
	}

	ve, ok := validation.AsValidationError(err)
	if !ok || !ve.HasErrors() {
		return &ConfigError{Field: "config", Message: err.Error(), Cause: err}
	}

	first := ve.Errors[0]
	return &ConfigError{Field: first.Field, Message: first.Message, Cause: ve}
}
