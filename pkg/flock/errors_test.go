package flock

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConfigurationError(t *testing.T) {
	tests := []struct {
		name string
		err  *ConfigurationError
		want string
	}{
		{"Size mismatch", &ConfigurationError{Expected: 10, Got: 9}, "expected 10 agents, got 9"},
		{"With reason", &ConfigurationError{Expected: 2, Got: 2, Reason: `agent id "a" is used more than once`}, `agent id "a" is used more than once`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.err.Error(), tt.want) {
				t.Errorf("Error() = %q; want it to contain %q", tt.err.Error(), tt.want)
			}
			wrapped := fmt.Errorf("loading flock: %w", tt.err)
			if !errors.Is(wrapped, ErrConfiguration) {
				t.Error("errors.Is(wrapped, ErrConfiguration) = false; want true")
			}
			if errors.Is(wrapped, ErrInvariantViolation) {
				t.Error("errors.Is(wrapped, ErrInvariantViolation) = true; want false")
			}
			var target *ConfigurationError
			if !errors.As(wrapped, &target) || target != tt.err {
				t.Errorf("errors.As() = %v; want %v", target, tt.err)
			}
		})
	}
}

func TestInvariantViolation(t *testing.T) {
	err := &InvariantViolation{AgentID: "Robot-03", Magnitude: 1.25, Tick: 7}

	msg := err.Error()
	for _, want := range []string{"Robot-03", "1.250000", "tick 7"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q; want it to contain %q", msg, want)
		}
	}

	wrapped := fmt.Errorf("step: %w", err)
	if !errors.Is(wrapped, ErrInvariantViolation) {
		t.Error("errors.Is(wrapped, ErrInvariantViolation) = false; want true")
	}
	if errors.Is(wrapped, ErrConfiguration) {
		t.Error("errors.Is(wrapped, ErrConfiguration) = true; want false")
	}
	var target *InvariantViolation
	if !errors.As(wrapped, &target) || target.Tick != 7 {
		t.Errorf("errors.As() = %+v; want tick 7", target)
	}
}

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if m := cfg.Weights.Magnitude(); m > 1 {
		t.Errorf("DefaultConfig().Weights.Magnitude() = %v; want <= 1", m)
	}

	specs := DefaultSpecs()
	if len(specs) != RobotCount {
		t.Fatalf("len(DefaultSpecs()) = %d; want %d", len(specs), RobotCount)
	}
	seen := map[string]bool{}
	for _, s := range specs {
		if seen[s.ID] {
			t.Errorf("duplicate id %s", s.ID)
		}
		seen[s.ID] = true
		if l := s.Heading.Len(); l > 1 {
			t.Errorf("%s initial heading length = %v; want <= 1", s.ID, l)
		}
	}
}
