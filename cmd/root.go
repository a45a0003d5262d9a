// Package cmd provides the root command and CLI setup for viewmock.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gooze.dev/pkg/viewmock/internal/adapter"
	"gooze.dev/pkg/viewmock/internal/controller"
	"gooze.dev/pkg/viewmock/internal/domain"
	m "gooze.dev/pkg/viewmock/internal/model"
)

var scenarioStore adapter.ScenarioStore
var replayer domain.Replayer
var workflow domain.Workflow
var ui controller.UI

// excludePatterns is a root-level flag that filters scenario files.
var excludePatterns []string

var verboseFlag bool
var logFileFlag string

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	scenarioStore = adapter.NewLocalScenarioStore()
	replayer = domain.NewReplayer()
	workflow = domain.NewWorkflow(scenarioStore, ui, replayer)
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...                 recursively scan current directory
  - ./testdata/...        recursively scan testdata directory
  - ./a ./b x.viewmock.yaml   scan directories and single files`

const rootLongDescription = `Viewmock replays scripted model changes against a simulated view and
reports fields whose displayed value was never refreshed because the model
forgot to notify the change.

` + pathPatternsHelp

const checkLongDescription = `Replay scenario files (*.viewmock.yaml) and check every expectation
(default: current directory).

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "viewmock",
		Short:        "Check that views are notified of model changes",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude scenario files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
