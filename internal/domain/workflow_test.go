package domain

import (
	"context"
	"errors"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "opshow.dev/pkg/opshow/internal/model"
)

type recordingUI struct {
	lines   []m.Line
	catalog []m.Line
	diff    *string
	err     error
}

func (r *recordingUI) DisplayLines(_ context.Context, lines []m.Line) error {
	r.lines = lines
	return r.err
}

func (r *recordingUI) DisplayCatalog(_ context.Context, catalog []m.Line) error {
	r.catalog = catalog
	return r.err
}

func (r *recordingUI) DisplayCheck(_ context.Context, diff string) error {
	r.diff = &diff
	return r.err
}

func TestWorkflow_Show(t *testing.T) {
	ui := &recordingUI{}
	wf := NewWorkflow(DefaultProgram(), ui)

	require.NoError(t, wf.Show(context.Background()))
	assert.Equal(t, ExpectedTranscript, Render(ui.lines))
}

func TestWorkflow_ShowPropagatesUIError(t *testing.T) {
	uiErr := errors.New("closed pipe")
	wf := NewWorkflow(DefaultProgram(), &recordingUI{err: uiErr})

	require.ErrorIs(t, wf.Show(context.Background()), uiErr)
}

func TestWorkflow_ShowPropagatesEvaluationError(t *testing.T) {
	program := Program{
		Bindings:    m.Bindings{"a": 1, "b": 0},
		Expressions: []m.Expression{binary(m.CategoryArithmetic, "Remainder", token.REM, "a", "b")},
	}
	ui := &recordingUI{}

	err := NewWorkflow(program, ui).Show(context.Background())
	require.ErrorIs(t, err, ErrDivisionByZero)
	assert.Nil(t, ui.lines)
}

func TestWorkflow_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui := &recordingUI{}
	wf := NewWorkflow(DefaultProgram(), ui)

	require.ErrorIs(t, wf.Show(ctx), context.Canceled)
	require.ErrorIs(t, wf.List(ctx), context.Canceled)
	require.ErrorIs(t, wf.Check(ctx), context.Canceled)
	assert.Nil(t, ui.lines)
	assert.Nil(t, ui.catalog)
	assert.Nil(t, ui.diff)
}

func TestWorkflow_List(t *testing.T) {
	ui := &recordingUI{}
	require.NoError(t, NewWorkflow(DefaultProgram(), ui).List(context.Background()))
	require.Len(t, ui.catalog, 20)
	assert.Equal(t, "a+b", ui.catalog[0].Expression)
}

func TestWorkflow_Check(t *testing.T) {
	t.Run("default program passes", func(t *testing.T) {
		ui := &recordingUI{}
		require.NoError(t, NewWorkflow(DefaultProgram(), ui).Check(context.Background()))
		require.NotNil(t, ui.diff)
		assert.Empty(t, *ui.diff)
	})

	t.Run("modified operands are reported", func(t *testing.T) {
		program := DefaultProgram()
		program.Bindings["b"] = 2

		ui := &recordingUI{}
		err := NewWorkflow(program, ui).Check(context.Background())
		require.ErrorIs(t, err, ErrTranscriptMismatch)
		require.NotNil(t, ui.diff)
		assert.Contains(t, *ui.diff, "+Sum: 7")
		assert.Contains(t, err.Error(), "-Sum: 8")
		assert.Contains(t, err.Error(), "+Sum: 7")
	})
}
