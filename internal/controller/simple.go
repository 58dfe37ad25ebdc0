package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "opshow.dev/pkg/opshow/internal/model"
)

// SimpleUI prints the plain "Label: value" transcript.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayLines prints one "Label: value" line per result.
func (s *SimpleUI) DisplayLines(ctx context.Context, lines []m.Line) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, line := range lines {
		if err := s.printf("%s: %s\n", line.Label, line.Value); err != nil {
			return err
		}
	}

	return nil
}

// DisplayCatalog prints the expressions grouped by category, without values.
func (s *SimpleUI) DisplayCatalog(ctx context.Context, catalog []m.Line) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.printf("%s", renderCatalogTable(catalog))
}

// DisplayCheck prints the diff, or a confirmation when there is none.
func (s *SimpleUI) DisplayCheck(ctx context.Context, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeCheck(s.cmd.OutOrStdout(), diff)
}

func (s *SimpleUI) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
	return err
}

func renderCatalogTable(catalog []m.Line) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Category", "Label", "Expression"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetHeaderLine(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	for _, entry := range catalog {
		table.Append([]string{string(entry.Category), entry.Label, entry.Expression})
	}

	table.Render()

	return tableBuffer.String()
}

const checkPassedMessage = "transcript OK\n"

func writeCheck(w io.Writer, diff string) error {
	if diff == "" {
		_, err := io.WriteString(w, checkPassedMessage)
		return err
	}

	_, err := io.WriteString(w, diff)

	return err
}
