package domain_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/viewmock/internal/domain"
	m "gooze.dev/pkg/viewmock/internal/model"
	"gooze.dev/pkg/viewmock/pkg/viewmock"
)

func notify(field string) *string {
	return &field
}

func TestReplayer_Replay_NotifiedChange(t *testing.T) {
	scenario := m.Scenario{
		Name:    "refresh all",
		Source:  "refresh.viewmock.yaml",
		Fields:  map[string]any{"Name": "One", "Count": 1},
		Observe: []string{"Name"},
		Steps: []m.Step{
			{Set: map[string]any{"Name": "Two"}},
			{Expect: &m.Expectation{Field: "Name", Displayed: "Two"}},
			{SetSilently: map[string]any{"Name": "X"}},
			{Notify: notify(viewmock.AllFields)},
			{Expect: &m.Expectation{Field: "vm.Name", Displayed: "X"}},
		},
	}

	report, err := domain.NewReplayer().Replay(context.Background(), scenario)
	require.NoError(t, err)

	_, err = uuid.Parse(report.RunID)
	require.NoError(t, err)
	assert.Equal(t, "refresh all", report.Scenario)
	assert.Equal(t, m.Path("refresh.viewmock.yaml"), report.Source)
	assert.True(t, report.Passed())
	require.Len(t, report.Results, 2)
	assert.Equal(t, 2, report.Results[0].Step)
	assert.Equal(t, 5, report.Results[1].Step)
	assert.Equal(t, "X", report.Results[1].Displayed)
	assert.Empty(t, report.Results[1].Diagnostic)
	assert.Empty(t, report.Stale)
	assert.Equal(t, map[string]any{"Count": 1, "Name": "X"}, report.Displayed)
	assert.Equal(t, map[string]any{"Count": 1, "Name": "X"}, report.Actual)
}

func TestReplayer_Replay_ForgottenNotification(t *testing.T) {
	scenario := m.Scenario{
		Name:   "forgotten",
		Fields: map[string]any{"Name": "One", "Count": 1},
		Steps: []m.Step{
			{SetSilently: map[string]any{"Name": "Two"}},
			{Expect: &m.Expectation{Field: "Name", Displayed: "Two"}},
			{Expect: &m.Expectation{Field: "Count", Displayed: 2}},
		},
	}

	report, err := domain.NewReplayer().Replay(context.Background(), scenario)
	require.NoError(t, err)

	assert.False(t, report.Passed())
	assert.Equal(t, 2, report.Failures())

	name := report.Results[0]
	assert.False(t, name.Passed)
	assert.Equal(t, "One", name.Displayed)
	assert.Equal(t, "Two", name.Actual)
	assert.Equal(t, viewmock.NotNotifiedMessage, name.Diagnostic)

	count := report.Results[1]
	assert.False(t, count.Passed)
	assert.Empty(t, count.Diagnostic)

	assert.Equal(t, []m.StaleField{{Field: "Name", Displayed: "One", Actual: "Two"}}, report.Stale)
	assert.Equal(t, map[string]any{"Name": "One", "Count": 1}, report.Displayed)
}

func TestReplayer_Replay_UnobservedExpectation(t *testing.T) {
	scenario := m.Scenario{
		Fields:  map[string]any{"Name": "One", "Count": 1},
		Observe: []string{"Name"},
		Steps: []m.Step{
			{Expect: &m.Expectation{Field: "Count", Displayed: 1}},
		},
	}

	report, err := domain.NewReplayer().Replay(context.Background(), scenario)
	require.NoError(t, err)

	require.Len(t, report.Results, 1)
	assert.False(t, report.Results[0].Passed)
	assert.Contains(t, report.Results[0].Diagnostic, "The property Count is not being observed in this test.")
}

func TestReplayer_Replay_Errors(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name     string
		ctx      context.Context
		scenario m.Scenario
		wantErr  error
		wantText string
	}{
		{
			name: "unknown notified field",
			ctx:  context.Background(),
			scenario: m.Scenario{
				Fields: map[string]any{"Name": "One"},
				Steps:  []m.Step{{Notify: notify("Missing")}},
			},
			wantErr:  viewmock.ErrUnknownNotifiedField,
			wantText: "step 1: Property of name Missing does not exist",
		},
		{
			name: "unknown observed field",
			ctx:  context.Background(),
			scenario: m.Scenario{
				Fields:  map[string]any{"Name": "One"},
				Observe: []string{"Missing"},
			},
			wantErr: viewmock.ErrUnknownField,
		},
		{
			name: "invalid step",
			ctx:  context.Background(),
			scenario: m.Scenario{
				Fields: map[string]any{"Name": "One"},
				Steps:  []m.Step{{}},
			},
			wantErr: m.ErrInvalidStep,
		},
		{
			name: "empty field name in set",
			ctx:  context.Background(),
			scenario: m.Scenario{
				Fields: map[string]any{"Name": "One"},
				Steps:  []m.Step{{Set: map[string]any{"": 1}}},
			},
			wantErr: viewmock.ErrUnknownField,
		},
		{
			name: "canceled context",
			ctx:  canceled,
			scenario: m.Scenario{
				Fields: map[string]any{"Name": "One"},
				Steps:  []m.Step{{Set: map[string]any{"Name": "Two"}}},
			},
			wantErr: context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewReplayer().Replay(tt.ctx, tt.scenario)
			require.ErrorIs(t, err, tt.wantErr)

			if tt.wantText != "" {
				assert.EqualError(t, err, tt.wantText)
			}
		})
	}
}
