package cli

import (
	"errors"
	"fmt"

	"lingo-hq/cldr/pkg/config"
	"lingo-hq/cldr/pkg/resources"
)

// Exit codes returned by the cldr binary.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitNotFound = 2
	ExitConfig   = 3
)

// ConfigError represents an error in configuration.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}

// CommandError represents an error from a command execution.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
	}
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Err:     err,
	}
}

// ExitCode maps an error returned by a command to a process exit code.
// Missing resources exit with ExitNotFound so scripts can tell them apart
// from other failures.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var cfgErr *ConfigError
	var validationErr config.ValidationError
	switch {
	case errors.Is(err, resources.ErrResourceNotFound):
		return ExitNotFound
	case errors.As(err, &cfgErr), errors.As(err, &validationErr):
		return ExitConfig
	default:
		return ExitFailure
	}
}
