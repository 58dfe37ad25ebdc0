package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"

	"opshow.dev/pkg/opshow/internal/domain"
	m "opshow.dev/pkg/opshow/internal/model"
)

const unknownVersion = "unknown"

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// buildVersion describes the binary and the demonstration it carries.
type buildVersion struct {
	Tool          string
	Go            string
	ConfigVersion int
	Expressions   map[m.Category]int
	Order         []m.Category
}

func currentBuildVersion() buildVersion {
	v := buildVersion{
		Tool:          unknownVersion,
		Go:            unknownVersion,
		ConfigVersion: currentConfigVersion,
		Expressions:   make(map[m.Category]int),
	}

	if info, ok := readBuildInfo(); ok && info != nil {
		if info.Main.Version != "" {
			v.Tool = info.Main.Version
		}

		if info.GoVersion != "" {
			v.Go = info.GoVersion
		}
	}

	for _, entry := range domain.DefaultProgram().Catalog() {
		if _, seen := v.Expressions[entry.Category]; !seen {
			v.Order = append(v.Order, entry.Category)
		}

		v.Expressions[entry.Category]++
	}

	return v
}

func (v buildVersion) write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "opshow version\t%s\ngo version\t%s\nconfig version\t%d\n", v.Tool, v.Go, v.ConfigVersion); err != nil {
		return err
	}

	for _, category := range v.Order {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", category, v.Expressions[category]); err != nil {
			return err
		}
	}

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long: `Displays the build and Go versions, the config file version this binary
writes, and how many expressions of each category it demonstrates.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return currentBuildVersion().write(cmd.OutOrStdout())
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()
