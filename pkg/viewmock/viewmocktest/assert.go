// Package viewmocktest provides testify assertions for viewmock views.
package viewmocktest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/viewmock/pkg/viewmock"
)

// View is the read surface of *viewmock.View and *viewmock.Builder.
type View interface {
	Displayed(selector string) (any, error)
	Actual(selector string) (any, error)
	IsDisplayedAs(selector string, expected any) (bool, error)
	LastError() string
	Stale() ([]viewmock.Staleness, error)
}

type tHelper interface {
	Helper()
}

// AssertDisplayedAs asserts that the view displays expected for a field. The
// failure message includes the missing-notification diagnostic when the
// model already holds expected.
func AssertDisplayedAs(t assert.TestingT, v View, selector string, expected any, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	ok, err := v.IsDisplayedAs(selector, expected)
	if err != nil {
		return assert.Fail(t, fmt.Sprintf("cannot compare %s: %v", selector, err), msgAndArgs...)
	}

	diagnostic := v.LastError()
	if ok {
		return true
	}

	displayed, _ := v.Displayed(selector)
	msg := fmt.Sprintf("%s is displayed as %#v, expected %#v", selector, displayed, expected)

	if diagnostic != "" {
		msg += "\n" + diagnostic
	}

	return assert.Fail(t, msg, msgAndArgs...)
}

// RequireDisplayedAs is AssertDisplayedAs that stops the test on failure.
func RequireDisplayedAs(t require.TestingT, v View, selector string, expected any, msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if !AssertDisplayedAs(t, v, selector, expected, msgAndArgs...) {
		t.FailNow()
	}
}

// AssertStale asserts that the model changed a field without notifying the view.
func AssertStale(t assert.TestingT, v View, selector string, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	displayed, err := v.Displayed(selector)
	if err != nil {
		return assert.Fail(t, fmt.Sprintf("cannot read displayed %s: %v", selector, err), msgAndArgs...)
	}

	actual, err := v.Actual(selector)
	if err != nil {
		return assert.Fail(t, fmt.Sprintf("cannot read actual %s: %v", selector, err), msgAndArgs...)
	}

	return assert.NotEqual(t, actual, displayed, msgAndArgs...)
}

// AssertInSync asserts that every observed field displays the model's
// actual value.
func AssertInSync(t assert.TestingT, v View, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	stale, err := v.Stale()
	if err != nil {
		return assert.Fail(t, fmt.Sprintf("cannot compare view: %v", err), msgAndArgs...)
	}

	if len(stale) == 0 {
		return true
	}

	lines := make([]string, 0, len(stale))
	for _, s := range stale {
		lines = append(lines, fmt.Sprintf("  %s: displayed %#v, actual %#v", s.Field, s.Displayed, s.Actual))
	}

	return assert.Fail(t, "view is out of sync with the model:\n"+strings.Join(lines, "\n"), msgAndArgs...)
}

// AssertNotObserved asserts that the view does not track a field.
func AssertNotObserved(t assert.TestingT, v View, selector string, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	_, err := v.Displayed(selector)
	if errors.Is(err, viewmock.ErrFieldNotObserved) {
		return true
	}

	return assert.Fail(t, fmt.Sprintf("expected %s not to be observed, got err=%v", selector, err), msgAndArgs...)
}
