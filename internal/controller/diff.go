package controller

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	m "gooze.dev/pkg/viewmock/internal/model"
)

// renderDiff returns a unified diff from the displayed snapshot of a report
// to the model's actual values, or "" when the view is in sync.
func renderDiff(report m.Report) (string, error) {
	if len(report.Stale) == 0 {
		return "", nil
	}

	diff := difflib.UnifiedDiff{
		A:        snapshotLines(report.Displayed),
		B:        snapshotLines(report.Actual),
		FromFile: "displayed",
		ToFile:   "actual",
		Context:  1,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", report.Scenario, err)
	}

	return text, nil
}

func snapshotLines(values map[string]any) []string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}

	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s: %s\n", name, formatValue(values[name]))
	}

	return difflib.SplitLines(b.String())
}

func formatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return fmt.Sprintf("%q", value)
	default:
		return fmt.Sprintf("%v", value)
	}
}
