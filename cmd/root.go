// Package cmd provides the root command and CLI setup for opshow.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"opshow.dev/pkg/opshow/internal/controller"
	"opshow.dev/pkg/opshow/internal/domain"
)

// formatFlag selects how results are rendered.
var formatFlag string

// logFileFlag and verboseFlag feed the slog logger; both are root-level.
var logFileFlag string
var verboseFlag bool

const rootLongDescription = `opshow evaluates a fixed set of C operators over fixed operands
and prints one "Label: value" line per result:

  arithmetic  a=5, b=3           + - * / %
  relational  x=10, y=20         == != < > <= >=
  logical     condition1=1, condition2=0   && || !
  bitwise     m=5, n=3           & | ^ ~
  assignment  variable=10        +=
  constant    PI=3.14159`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func init() {
	rootCmd.AddCommand(listCmd, checkCmd, initCmd, versionCmd)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "opshow",
		Short: "Print the results of C operators over fixed operands",
		Long:  rootLongDescription,
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configErr := loadConfig()
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			if configErr != nil {
				slog.Error("config file rejected", "file", configFileName, "error", configErr)
				return configErr
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			workflow, err := newWorkflow(cmd)
			if err != nil {
				return err
			}

			return workflow.Show(cmd.Context())
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&formatFlag, formatFlagName, "f",
			defaultFormat,
			"output format: plain, table or yaml",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), formatConfigKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFlagName, defaultLogFilename, "write logs to this file (disabled when empty)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// newWorkflow builds the demonstration workflow for cmd using the configured format.
func newWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	ui, err := controller.NewUI(cmd, viper.GetString(formatConfigKey), controller.IsTTY(os.Stdout))
	if err != nil {
		return nil, err
	}

	return domain.NewWorkflow(domain.DefaultProgram(), ui), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
