package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/viewmock/internal/controller"
	"gooze.dev/pkg/viewmock/internal/domain"
)

var checkParallelFlag int
var reportFormatFlag string

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Replay scenario files against a simulated view",
		Long:  checkLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := controller.ParseFormat(viper.GetString(reportFormatConfigKey))
			if err != nil {
				return err
			}

			return workflow.Check(cmd.Context(), domain.CheckArgs{
				Paths:    parsePaths(args),
				Exclude:  viper.GetStringSlice(excludeConfigKey),
				Parallel: viper.GetInt(checkParallelConfigKey),
				Format:   format,
			})
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&checkParallelFlag, checkParallelFlagName, "p", viper.GetInt(checkParallelConfigKey), "number of scenarios replayed in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(checkParallelFlagName), checkParallelConfigKey)

	cmd.Flags().StringVarP(&reportFormatFlag, reportFormatFlagName, "f", viper.GetString(reportFormatConfigKey), "report format: table or json")
	bindFlagToConfig(cmd.Flags().Lookup(reportFormatFlagName), reportFormatConfigKey)
}
