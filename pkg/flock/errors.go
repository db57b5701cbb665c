package flock

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is matched by every *ConfigurationError.
	ErrConfiguration = errors.New("invalid flock configuration")

	// ErrInvariantViolation is matched by every *InvariantViolation.
	ErrInvariantViolation = errors.New("heading magnitude invariant violated")
)

// ConfigurationError reports an initial population that cannot be used.
// The caller has to supply a corrected list, retrying is pointless.
type ConfigurationError struct {
	Expected int
	Got      int
	Reason   string
}

func (e *ConfigurationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", ErrConfiguration, e.Reason)
	}
	return fmt.Sprintf("%s: expected %d agents, got %d", ErrConfiguration, e.Expected, e.Got)
}

// Is makes errors.Is(err, ErrConfiguration) work.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// InvariantViolation reports a blended heading longer than one unit per tick.
// It means the weights are not tuned to respect the speed cap: the run must stop.
type InvariantViolation struct {
	AgentID   string
	Magnitude float64
	Tick      uint64
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("%s: agent %s would move %.6f units at tick %d (max 1)",
		ErrInvariantViolation, e.AgentID, e.Magnitude, e.Tick)
}

// Is makes errors.Is(err, ErrInvariantViolation) work.
func (e *InvariantViolation) Is(target error) bool {
	return target == ErrInvariantViolation
}
