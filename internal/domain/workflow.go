package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"opshow.dev/pkg/opshow/internal/controller"
)

// ErrTranscriptMismatch is returned by Check when the output drifts from the expected transcript.
var ErrTranscriptMismatch = errors.New("transcript mismatch")

// Workflow ties the demonstration program to a UI.
type Workflow interface {
	Show(ctx context.Context) error
	List(ctx context.Context) error
	Check(ctx context.Context) error
}

type workflow struct {
	program Program
	ui      controller.UI
}

// NewWorkflow creates a Workflow that runs program and reports through ui.
func NewWorkflow(program Program, ui controller.UI) Workflow {
	return &workflow{program: program, ui: ui}
}

func (w *workflow) Show(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines, err := w.program.Run()
	if err != nil {
		slog.Error("demonstration failed", "error", err)
		return fmt.Errorf("run demonstration: %w", err)
	}

	slog.Info("demonstration evaluated", "lines", len(lines))

	return w.ui.DisplayLines(ctx, lines)
}

func (w *workflow) List(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	catalog := w.program.Catalog()
	slog.Debug("listing catalog", "entries", len(catalog))

	return w.ui.DisplayCatalog(ctx, catalog)
}

func (w *workflow) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines, err := w.program.Run()
	if err != nil {
		return fmt.Errorf("run demonstration: %w", err)
	}

	diff, err := Diff(Render(lines), ExpectedTranscript)
	if err != nil {
		return fmt.Errorf("diff transcript: %w", err)
	}

	if err := w.ui.DisplayCheck(ctx, diff); err != nil {
		return err
	}

	if diff != "" {
		slog.Warn("transcript drifted from expected output")
		return fmt.Errorf("%w:\n%s", ErrTranscriptMismatch, diff)
	}

	slog.Info("transcript matches expected output")

	return nil
}
