package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const forceFlagName = "force"

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default opshow.yaml configuration file",
		Long: `Create an opshow.yaml in the current working directory holding the
effective output and logging settings (defaults, env and flags merged), so it
can be edited manually. An existing file is kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			write := viper.SafeWriteConfigAs
			if force {
				write = viper.WriteConfigAs
			}

			if err := write(targetPath); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", targetPath)

			return err
		},
	}

	cmd.Flags().BoolVar(&force, forceFlagName, false, "overwrite an existing "+configFileName)

	return cmd
}
