package config

import (
	"fmt"
	"strings"

	"github.com/mj1618/selwatch/internal/logging"
	"github.com/mj1618/selwatch/internal/output"
	"github.com/mj1618/selwatch/internal/probe"
)

// ValidationError represents a single validation failure.
type ValidationError struct {
	Field   string // config key, e.g. "watch.interval"
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Validate checks c for invalid values and returns every failure found.
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.validateWatch()...)
	errors = append(errors, c.validateCondition()...)
	errors = append(errors, c.validateExtract()...)
	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateLogging()...)
	return errors
}

func (c *Config) validateWatch() []ValidationError {
	var errors []ValidationError

	if _, err := probe.ParseSource(c.Watch.Source); err != nil {
		errors = append(errors, ValidationError{
			Field:   "watch.source",
			Value:   c.Watch.Source,
			Message: "must be focus or pointer",
		})
	}
	if c.Watch.Interval <= 0 {
		errors = append(errors, ValidationError{
			Field:   "watch.interval",
			Value:   c.Watch.Interval,
			Message: "must be positive",
		})
	}
	if c.Watch.StartupDelay < 0 {
		errors = append(errors, ValidationError{
			Field:   "watch.startup_delay",
			Value:   c.Watch.StartupDelay,
			Message: "must be non-negative",
		})
	}
	if c.Watch.Duration < 0 {
		errors = append(errors, ValidationError{
			Field:   "watch.duration",
			Value:   c.Watch.Duration,
			Message: "must be non-negative (0 runs until interrupted)",
		})
	}
	return errors
}

func (c *Config) validateCondition() []ValidationError {
	var errors []ValidationError

	if len(c.Condition.Require) > 0 {
		if _, err := probe.ParsePredicates(c.Condition.Require); err != nil {
			errors = append(errors, ValidationError{
				Field:   "condition.require",
				Value:   c.Condition.Require,
				Message: err.Error(),
			})
		}
		return errors
	}
	if _, err := probe.LookupPreset(c.Condition.Preset); err != nil {
		errors = append(errors, ValidationError{
			Field:   "condition.preset",
			Value:   c.Condition.Preset,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(probe.PresetNames(), ", ")),
		})
	}
	return errors
}

func (c *Config) validateExtract() []ValidationError {
	if c.Extract.MaxChars <= 0 {
		return []ValidationError{{
			Field:   "extract.max_chars",
			Value:   c.Extract.MaxChars,
			Message: "must be positive",
		}}
	}
	return nil
}

func (c *Config) validateOutput() []ValidationError {
	if _, err := output.ParseFormat(c.Output.Format); err != nil {
		return []ValidationError{{
			Field:   "output.format",
			Value:   c.Output.Format,
			Message: "must be text, yaml, or json",
		}}
	}
	return nil
}

func (c *Config) validateLogging() []ValidationError {
	if c.Logging.Level != "" && !logging.IsValidLevel(c.Logging.Level) {
		return []ValidationError{{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		}}
	}
	return nil
}
