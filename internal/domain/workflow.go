package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"gooze.dev/pkg/viewmock/internal/adapter"
	"gooze.dev/pkg/viewmock/internal/controller"
	m "gooze.dev/pkg/viewmock/internal/model"
)

var (
	// ErrNoScenarios is returned when the given paths hold no scenario file.
	ErrNoScenarios = errors.New("no scenario files found")
	// ErrExpectationsFailed is returned after the reports are displayed when
	// at least one expectation did not hold.
	ErrExpectationsFailed = errors.New("expectations failed")
)

// CheckArgs contains the arguments for checking scenario files.
type CheckArgs struct {
	Paths    []m.Path
	Exclude  []string
	Parallel int
	Format   controller.Format
}

// Workflow defines the interface for the scenario checking workflow.
type Workflow interface {
	Check(ctx context.Context, args CheckArgs) error
}

type workflow struct {
	adapter.ScenarioStore
	controller.UI
	Replayer
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(store adapter.ScenarioStore, ui controller.UI, replayer Replayer) Workflow {
	return &workflow{
		ScenarioStore: store,
		UI:            ui,
		Replayer:      replayer,
	}
}

func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	paths, err := w.Find(args.Paths, args.Exclude...)
	if err != nil {
		slog.Error("Failed to find scenarios", "paths", args.Paths, "error", err)
		return fmt.Errorf("find scenarios: %w", err)
	}

	if len(paths) == 0 {
		return ErrNoScenarios
	}

	reports, err := w.replayAll(ctx, paths, args.Parallel)
	if err != nil {
		return err
	}

	if err := w.DisplayReports(ctx, reports, args.Format); err != nil {
		slog.Error("Failed to display reports", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	for _, report := range reports {
		if !report.Passed() {
			return ErrExpectationsFailed
		}
	}

	return nil
}

// replayAll loads and replays each scenario with at most parallel workers.
// Every scenario is attempted; failures are joined in path order.
func (w *workflow) replayAll(ctx context.Context, paths []m.Path, parallel int) ([]m.Report, error) {
	reports := make([]m.Report, len(paths))
	errs := make([]error, len(paths))

	var group errgroup.Group
	if parallel > 0 {
		group.SetLimit(parallel)
	}

	for i, path := range paths {
		group.Go(func() error {
			report, err := w.replayFile(ctx, path)
			if err != nil {
				errs[i] = err
				return nil
			}

			reports[i] = report

			return nil
		})
	}

	_ = group.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	sort.SliceStable(reports, func(i, j int) bool { return reports[i].Source < reports[j].Source })

	return reports, nil
}

func (w *workflow) replayFile(ctx context.Context, path m.Path) (m.Report, error) {
	scenario, err := w.Load(path)
	if err != nil {
		return m.Report{}, fmt.Errorf("load scenario %s: %w", path, err)
	}

	report, err := w.Replay(ctx, scenario)
	if err != nil {
		slog.Error("Failed to replay scenario", "path", path, "error", err)
		return m.Report{}, fmt.Errorf("replay scenario %s: %w", path, err)
	}

	slog.Debug("scenario replayed", "path", path, "run", report.RunID, "failures", report.Failures())

	return report, nil
}
