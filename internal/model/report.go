package model

// ExpectationResult is the outcome of one expect step.
type ExpectationResult struct {
	Step       int    `json:"step"`
	Field      string `json:"field"`
	Expected   any    `json:"expected"`
	Displayed  any    `json:"displayed"`
	Actual     any    `json:"actual"`
	Passed     bool   `json:"passed"`
	Diagnostic string `json:"diagnostic,omitempty"`
}

// StaleField is an observed field whose displayed value lags the model.
type StaleField struct {
	Field     string `json:"field"`
	Displayed any    `json:"displayed"`
	Actual    any    `json:"actual"`
}

// Report is the result of replaying one scenario.
type Report struct {
	RunID     string              `json:"run_id"`
	Scenario  string              `json:"scenario"`
	Source    Path                `json:"source"`
	Results   []ExpectationResult `json:"results"`
	Stale     []StaleField        `json:"stale,omitempty"`
	Displayed map[string]any      `json:"displayed"`
	Actual    map[string]any      `json:"actual"`
}

// Passed reports whether every expectation of the scenario held.
func (r Report) Passed() bool {
	for _, result := range r.Results {
		if !result.Passed {
			return false
		}
	}

	return true
}

// Failures returns the number of failed expectations.
func (r Report) Failures() int {
	failures := 0

	for _, result := range r.Results {
		if !result.Passed {
			failures++
		}
	}

	return failures
}
