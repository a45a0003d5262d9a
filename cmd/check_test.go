package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/viewmock/internal/adapter"
	"gooze.dev/pkg/viewmock/internal/controller"
	"gooze.dev/pkg/viewmock/internal/domain"
	domainmocks "gooze.dev/pkg/viewmock/internal/domain/mocks"
	m "gooze.dev/pkg/viewmock/internal/model"
)

func TestCheckCmd_PassesArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.EXPECT().Check(mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return args.Parallel == 2 &&
			args.Format == controller.FormatJSON &&
			len(args.Paths) == 2 &&
			args.Paths[0] == m.Path("./testdata/...") &&
			args.Paths[1] == m.Path("x.viewmock.yaml")
	})).Return(nil)

	cmd.SetArgs(tempLogArgs(t, "check", "--parallel", "2", "--format", "json", "./testdata/...", "x.viewmock.yaml"))
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestCheckCmd_Defaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.EXPECT().Check(mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return args.Parallel == defaultCheckParallel &&
			args.Format == controller.FormatTable &&
			len(args.Paths) == 0 &&
			len(args.Exclude) == 0
	})).Return(nil)

	cmd.SetArgs(tempLogArgs(t, "check"))
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestCheckCmd_InvalidFormat(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs(tempLogArgs(t, "check", "--format", "xml"))
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report format")
}

func TestCheckCmd_WorkflowError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.EXPECT().Check(mock.Anything, mock.Anything).Return(domain.ErrExpectationsFailed)

	cmd.SetArgs(tempLogArgs(t, "check"))
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrExpectationsFailed)
}

func TestCheckCmd_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	scenario := `name: forgotten notification
fields: {Name: One, Count: 1}
observe: [Name]
steps:
  - set_silently: {Name: Two}
  - expect: {field: Name, displayed: Two}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "forgotten.viewmock.yaml"), []byte(scenario), 0o644))

	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd())

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = domain.NewWorkflow(adapter.NewLocalScenarioStore(), controller.NewUI(cmd, false), domain.NewReplayer())
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs(tempLogArgs(t, "check", "--format", "table", dir))
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrExpectationsFailed)

	output := out.String()
	assert.Contains(t, output, "FAIL forgotten notification")
	assert.Contains(t, output, "The viewModel is correct but the view was never notified with NotifyPropertyChanged.")
	assert.Contains(t, output, `+Name: "Two"`)
}
