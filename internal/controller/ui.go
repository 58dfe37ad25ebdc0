// Package controller renders demonstration results for the terminal.
package controller

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "opshow.dev/pkg/opshow/internal/model"
)

// Output formats accepted by NewUI.
const (
	FormatPlain = "plain"
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// ErrUnknownFormat is returned by NewUI for an unrecognized format name.
var ErrUnknownFormat = errors.New("unknown output format")

// UI defines how demonstration results are displayed.
// Implementations can use different output methods (plain text, table, yaml).
type UI interface {
	DisplayLines(ctx context.Context, lines []m.Line) error
	DisplayCatalog(ctx context.Context, catalog []m.Line) error
	DisplayCheck(ctx context.Context, diff string) error
}

// NewUI returns the UI for format, writing to cmd's output stream.
// tty enables styling where the format supports it.
func NewUI(cmd *cobra.Command, format string, tty bool) (UI, error) {
	switch format {
	case "", FormatPlain:
		return NewSimpleUI(cmd), nil
	case FormatTable:
		return NewTableUI(cmd, tty), nil
	case FormatYAML:
		return NewYAMLUI(cmd), nil
	}

	return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
