package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep_Kind(t *testing.T) {
	field := "Name"

	tests := []struct {
		name    string
		step    Step
		want    StepKind
		wantErr bool
	}{
		{"set", Step{Set: map[string]any{"Name": "Two"}}, StepSet, false},
		{"empty set still counts", Step{Set: map[string]any{}}, StepSet, false},
		{"set silently", Step{SetSilently: map[string]any{"Name": "X"}}, StepSetSilently, false},
		{"notify", Step{Notify: &field}, StepNotify, false},
		{"expect", Step{Expect: &Expectation{Field: "Name"}}, StepExpect, false},
		{"no action", Step{}, "", true},
		{"two actions", Step{Notify: &field, Expect: &Expectation{Field: "Name"}}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.step.Kind()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidStep)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScenario_Validate(t *testing.T) {
	valid := Scenario{Steps: []Step{
		{Set: map[string]any{"Name": "Two"}},
		{Expect: &Expectation{Field: "Name", Displayed: "Two"}},
	}}
	require.NoError(t, valid.Validate())

	err := Scenario{Steps: []Step{{Set: map[string]any{}}, {}}}.Validate()
	require.ErrorIs(t, err, ErrInvalidStep)
	assert.Contains(t, err.Error(), "step 2")

	err = Scenario{Steps: []Step{{Expect: &Expectation{Displayed: 1}}}}.Validate()
	require.ErrorIs(t, err, ErrInvalidStep)
	assert.Contains(t, err.Error(), "expect without field")
}

func TestReport_PassedAndFailures(t *testing.T) {
	report := Report{Results: []ExpectationResult{{Passed: true}, {Passed: false}, {Passed: false}}}
	assert.False(t, report.Passed())
	assert.Equal(t, 2, report.Failures())

	assert.True(t, Report{}.Passed())
	assert.Zero(t, Report{}.Failures())
}
