package config

import (
	"fmt"
	"strings"
)

// InvalidSetting is one rejected configuration value.
type InvalidSetting struct {
	Key    string
	Value  string
	Reason string
}

// ValidationErrors collects all validation errors
type ValidationErrors struct {
	Invalid []InvalidSetting
}

// Add records an invalid setting.
func (e *ValidationErrors) Add(key, value, reason string) {
	e.Invalid = append(e.Invalid, InvalidSetting{Key: key, Value: value, Reason: reason})
}

// HasErrors returns true if any validation errors exist
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Invalid) > 0
}

// Error formats all validation errors into a clear message
func (e *ValidationErrors) Error() string {
	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, s := range e.Invalid {
		sb.WriteString(fmt.Sprintf("  - %s=%q: %s\n", s.Key, s.Value, s.Reason))
	}
	return sb.String()
}
