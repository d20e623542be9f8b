package config

import (
	"fmt"
	"strings"
)

// ConfigurationError reports required connection settings that are absent
// at the moment a tool needs the n8n backend.
type ConfigurationError struct {
	Missing []string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	names := e.Missing
	if len(names) == 0 {
		names = []string{EnvURL, EnvAPIKey}
	}
	return fmt.Sprintf("Missing required configuration: %s. Set them before using any tools.", strings.Join(names, " and "))
}

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	messages := make([]string, 0, len(ve))
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// Add adds a new validation error
func (ve *ValidationErrors) Add(field, message string, value interface{}) {
	*ve = append(*ve, ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	})
}
