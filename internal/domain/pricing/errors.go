package pricing

import (
	"errors"
	"fmt"

	"studio_interiors/internal/domain/entities"
)

var (
	// ErrInvalidMilestones is wrapped with detail by ValidateMilestones.
	ErrInvalidMilestones = errors.New("invalid milestone percentages")

	// ErrNotTemplate is returned when instantiating from a non-template record.
	ErrNotTemplate = errors.New("estimate is not a template")
)

// ConfigNotFoundError reports a scope reference with no matching active
// configuration. The calculation fails atomically; an estimate silently
// omitting a requested line item would be a correctness bug, not a graceful
// degradation.
type ConfigNotFoundError struct {
	ConfigType entities.ConfigType
	Name       string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("no active %s config named %q", e.ConfigType, e.Name)
}

// InvalidScopeError reports a structurally malformed scope.
type InvalidScopeError struct {
	Field  string
	Reason string
}

func (e *InvalidScopeError) Error() string {
	return fmt.Sprintf("invalid scope: %s %s", e.Field, e.Reason)
}
