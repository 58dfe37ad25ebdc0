package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "opshow.dev/pkg/opshow/internal/model"
)

const tableTitle = "Operator results"

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// TableUI renders results as a bordered table.
type TableUI struct {
	cmd *cobra.Command
	tty bool
}

// NewTableUI creates a new TableUI. The title is styled only when tty is true.
func NewTableUI(cmd *cobra.Command, tty bool) *TableUI {
	return &TableUI{cmd: cmd, tty: tty}
}

// DisplayLines prints all results in a Category/Label/Expression/Value table.
func (t *TableUI) DisplayLines(ctx context.Context, lines []m.Line) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []string{string(line.Category), line.Label, line.Expression, line.Value})
	}

	return t.render(tableTitle, []string{"Category", "Label", "Expression", "Value"}, rows)
}

// DisplayCatalog prints the catalog without a value column.
func (t *TableUI) DisplayCatalog(ctx context.Context, catalog []m.Line) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := make([][]string, 0, len(catalog))
	for _, entry := range catalog {
		rows = append(rows, []string{string(entry.Category), entry.Label, entry.Expression})
	}

	return t.render("Operators", []string{"Category", "Label", "Expression"}, rows)
}

// DisplayCheck prints the diff, or a confirmation when there is none.
func (t *TableUI) DisplayCheck(ctx context.Context, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeCheck(t.cmd.OutOrStdout(), diff)
}

func (t *TableUI) render(title string, header []string, rows [][]string) error {
	if t.tty {
		title = titleStyle.Render(title)
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()

	_, err := fmt.Fprintf(t.cmd.OutOrStdout(), "%s\n%s", title, tableBuffer.String())

	return err
}
