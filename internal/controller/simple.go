package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/viewmock/internal/model"
)

const runIDLength = 8

// SimpleUI implements UI using cobra Command's Println.
type SimpleUI struct {
	cmd    *cobra.Command
	styles styles
}

// NewSimpleUI creates a new SimpleUI. Labels are colored when colored is true.
func NewSimpleUI(cmd *cobra.Command, colored bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, styles: newStyles(colored)}
}

// DisplayReports prints every report followed by a summary line.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.Report, format Format) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if format == FormatJSON {
		out, err := renderJSON(reports)
		if err != nil {
			return err
		}

		s.printf("%s", out)

		return nil
	}

	for _, report := range reports {
		if err := s.displayReport(report); err != nil {
			return err
		}
	}

	s.printf("%s\n", s.summary(reports))

	return nil
}

func (s *SimpleUI) displayReport(report m.Report) error {
	runID := report.RunID
	if len(runID) > runIDLength {
		runID = runID[:runIDLength]
	}

	s.printf("%s %s (%s) run %s\n",
		s.styles.status(report.Passed()),
		s.styles.render(s.styles.title, report.Scenario),
		report.Source,
		runID,
	)

	if len(report.Results) > 0 {
		s.printf("%s", renderResultsTable(report.Results, s.styles))
	}

	for _, result := range report.Results {
		if result.Diagnostic != "" {
			s.printf("  step %d: %s\n", result.Step, s.styles.render(s.styles.hint, result.Diagnostic))
		}
	}

	diff, err := renderDiff(report)
	if err != nil {
		return err
	}

	if diff != "" {
		s.printf("%s", diff)
	}

	s.printf("\n")

	return nil
}

func renderResultsTable(results []m.ExpectationResult, st styles) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Step", "Field", "Expected", "Displayed", "Actual", "Result"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	passed := 0

	for _, result := range results {
		if result.Passed {
			passed++
		}

		table.Append([]string{
			strconv.Itoa(result.Step),
			result.Field,
			formatValue(result.Expected),
			formatValue(result.Displayed),
			formatValue(result.Actual),
			st.status(result.Passed),
		})
	}

	table.SetFooter([]string{"", "", "", "", "Passed", fmt.Sprintf("%d/%d", passed, len(results))})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) summary(reports []m.Report) string {
	expectations, failures, failedScenarios := 0, 0, 0

	for _, report := range reports {
		expectations += len(report.Results)
		failures += report.Failures()

		if !report.Passed() {
			failedScenarios++
		}
	}

	return fmt.Sprintf("%d scenario(s), %d expectation(s), %d failed expectation(s) in %d scenario(s)",
		len(reports), expectations, failures, failedScenarios)
}

func (s *SimpleUI) printf(format string, args ...any) {
	s.cmd.Printf(format, args...)
}
