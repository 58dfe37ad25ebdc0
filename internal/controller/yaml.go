package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "opshow.dev/pkg/opshow/internal/model"
)

// YAMLUI emits results as a YAML document.
type YAMLUI struct {
	cmd *cobra.Command
}

// NewYAMLUI creates a new YAMLUI.
func NewYAMLUI(cmd *cobra.Command) *YAMLUI {
	return &YAMLUI{cmd: cmd}
}

type resultsDocument struct {
	Results []m.Line `yaml:"results"`
}

type catalogDocument struct {
	Operators []m.Line `yaml:"operators"`
}

type checkDocument struct {
	OK   bool   `yaml:"ok"`
	Diff string `yaml:"diff,omitempty"`
}

func (y *YAMLUI) DisplayLines(ctx context.Context, lines []m.Line) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return y.encode(resultsDocument{Results: lines})
}

func (y *YAMLUI) DisplayCatalog(ctx context.Context, catalog []m.Line) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return y.encode(catalogDocument{Operators: catalog})
}

func (y *YAMLUI) DisplayCheck(ctx context.Context, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return y.encode(checkDocument{OK: diff == "", Diff: diff})
}

func (y *YAMLUI) encode(doc interface{}) error {
	encoder := yaml.NewEncoder(y.cmd.OutOrStdout())
	encoder.SetIndent(2)

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return encoder.Close()
}
