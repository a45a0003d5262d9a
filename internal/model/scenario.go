// Package model defines the data structures for viewmock scenarios and reports.
package model

import (
	"errors"
	"fmt"
)

// Path represents a file system path.
type Path string

// StepKind identifies the action a scenario step performs.
type StepKind string

const (
	// StepSet mutates fields and notifies each change.
	StepSet StepKind = "set"
	// StepSetSilently mutates fields without notifying.
	StepSetSilently StepKind = "set_silently"
	// StepNotify raises a notification for one field, or for all fields when empty.
	StepNotify StepKind = "notify"
	// StepExpect checks what the view displays for a field.
	StepExpect StepKind = "expect"
)

// ErrInvalidStep is returned for steps that declare no action or several.
var ErrInvalidStep = errors.New("invalid step")

// Scenario is a scripted sequence of model mutations, notifications and
// expectations replayed against a map-backed model.
type Scenario struct {
	Name    string         `yaml:"name"`
	Source  Path           `yaml:"-"`
	Fields  map[string]any `yaml:"fields"`
	Observe []string       `yaml:"observe,omitempty"` // nil observes every field
	Steps   []Step         `yaml:"steps"`
}

// Step holds exactly one action.
type Step struct {
	Set         map[string]any `yaml:"set,omitempty"`
	SetSilently map[string]any `yaml:"set_silently,omitempty"`
	Notify      *string        `yaml:"notify,omitempty"`
	Expect      *Expectation   `yaml:"expect,omitempty"`
}

// Expectation asserts the value a view displays for a field.
type Expectation struct {
	Field     string `yaml:"field"`
	Displayed any    `yaml:"displayed"`
}

// Kind returns the action of the step.
func (s Step) Kind() (StepKind, error) {
	var kinds []StepKind

	if s.Set != nil {
		kinds = append(kinds, StepSet)
	}

	if s.SetSilently != nil {
		kinds = append(kinds, StepSetSilently)
	}

	if s.Notify != nil {
		kinds = append(kinds, StepNotify)
	}

	if s.Expect != nil {
		kinds = append(kinds, StepExpect)
	}

	if len(kinds) != 1 {
		return "", fmt.Errorf("%w: want exactly one action, got %v", ErrInvalidStep, kinds)
	}

	return kinds[0], nil
}

// Validate checks every step of the scenario.
func (s Scenario) Validate() error {
	for i, step := range s.Steps {
		kind, err := step.Kind()
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}

		if kind == StepExpect && step.Expect.Field == "" {
			return fmt.Errorf("step %d: %w: expect without field", i+1, ErrInvalidStep)
		}
	}

	return nil
}
