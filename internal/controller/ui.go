// Package controller provides output adapters for displaying scenario reports.
package controller

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "gooze.dev/pkg/viewmock/internal/model"
)

// Format selects how reports are rendered.
type Format string

// Available report formats.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// UI defines the interface for displaying scenario reports.
// Implementations can use different output methods (table, JSON, etc).
type UI interface {
	DisplayReports(ctx context.Context, reports []m.Report, format Format) error
}

// NewUI returns the UI for cmd's output. Pass/fail labels are colored only
// when tty is true.
func NewUI(cmd *cobra.Command, tty bool) UI {
	return NewSimpleUI(cmd, tty)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// ParseFormat validates a format name.
func ParseFormat(value string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(value))); format {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown report format %q (want %s or %s)", value, FormatTable, FormatJSON)
	}
}
