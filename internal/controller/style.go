package controller

import "github.com/charmbracelet/lipgloss"

const (
	passLabel = "PASS"
	failLabel = "FAIL"
)

type styles struct {
	enabled bool
	pass    lipgloss.Style
	fail    lipgloss.Style
	title   lipgloss.Style
	hint    lipgloss.Style
}

func newStyles(enabled bool) styles {
	return styles{
		enabled: enabled,
		pass:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		fail:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		title:   lipgloss.NewStyle().Bold(true),
		hint:    lipgloss.NewStyle().Faint(true),
	}
}

func (s styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}

	return style.Render(text)
}

func (s styles) status(passed bool) string {
	if passed {
		return s.render(s.pass, passLabel)
	}

	return s.render(s.fail, failLabel)
}
