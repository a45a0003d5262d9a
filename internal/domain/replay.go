// Package domain replays viewmock scenarios against map-backed models.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	m "gooze.dev/pkg/viewmock/internal/model"
	"gooze.dev/pkg/viewmock/pkg/viewmock"
)

// Replayer runs the steps of a scenario against a fresh model and view and
// reports the outcome of every expectation.
type Replayer interface {
	Replay(ctx context.Context, scenario m.Scenario) (m.Report, error)
}

type replayer struct {
	newID func() string
}

// NewReplayer constructs a Replayer that tags each report with a random run ID.
func NewReplayer() Replayer {
	return &replayer{newID: uuid.NewString}
}

func (r *replayer) Replay(ctx context.Context, scenario m.Scenario) (m.Report, error) {
	record := viewmock.NewRecord(scenario.Fields)

	view, err := observe(record, scenario.Observe)
	if err != nil {
		return m.Report{}, fmt.Errorf("observe: %w", err)
	}

	report := m.Report{
		RunID:    r.newID(),
		Scenario: scenario.Name,
		Source:   scenario.Source,
		Results:  []m.ExpectationResult{},
	}

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return m.Report{}, err
		}

		number := i + 1

		kind, err := step.Kind()
		if err != nil {
			return m.Report{}, fmt.Errorf("step %d: %w", number, err)
		}

		slog.Debug("replaying step", "scenario", scenario.Name, "step", number, "kind", kind)

		switch kind {
		case m.StepSet:
			err = applySet(step.Set, record.Set)
		case m.StepSetSilently:
			err = applySet(step.SetSilently, func(name string, value any) error {
				record.SetSilently(name, value)
				return nil
			})
		case m.StepNotify:
			err = record.Notify(record, *step.Notify)
		case m.StepExpect:
			report.Results = append(report.Results, expect(view, number, *step.Expect))
		}

		if err != nil {
			return m.Report{}, fmt.Errorf("step %d: %w", number, err)
		}
	}

	if err := snapshot(view, &report); err != nil {
		return m.Report{}, err
	}

	return report, nil
}

func observe(record *viewmock.Record, fields []string) (*viewmock.View[*viewmock.Record], error) {
	if fields == nil {
		return viewmock.Observe(record)
	}

	builder, err := viewmock.ObservePartial(record)
	if err != nil {
		return nil, err
	}

	for _, field := range fields {
		builder.WithField(field)
	}

	return builder.Build()
}

// applySet applies values in name order so notifications are deterministic.
func applySet(values map[string]any, set func(name string, value any) error) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		if err := set(name, values[name]); err != nil {
			return err
		}
	}

	return nil
}

func expect(view *viewmock.View[*viewmock.Record], step int, expectation m.Expectation) m.ExpectationResult {
	result := m.ExpectationResult{
		Step:     step,
		Field:    expectation.Field,
		Expected: expectation.Displayed,
	}

	passed, err := view.IsDisplayedAs(expectation.Field, expectation.Displayed)
	if err != nil {
		result.Diagnostic = err.Error()
		return result
	}

	result.Passed = passed
	result.Diagnostic = view.LastError()
	result.Displayed, _ = view.Displayed(expectation.Field)
	result.Actual, _ = view.Actual(expectation.Field)

	return result
}

func snapshot(view *viewmock.View[*viewmock.Record], report *m.Report) error {
	report.Displayed = make(map[string]any)
	report.Actual = make(map[string]any)

	for _, name := range view.Observed() {
		displayed, err := view.Displayed(name)
		if err != nil {
			return err
		}

		actual, err := view.Actual(name)
		if err != nil {
			return err
		}

		report.Displayed[name] = displayed
		report.Actual[name] = actual
	}

	stale, err := view.Stale()
	if err != nil {
		return err
	}

	for _, s := range stale {
		report.Stale = append(report.Stale, m.StaleField{Field: s.Field, Displayed: s.Displayed, Actual: s.Actual})
	}

	return nil
}
