package interpreter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const delta = 1e-6

func TestRunBasicMoves(t *testing.T) {
	ctx, err := Run("forward 100; left 90; forward 50;")
	require.NoError(t, err)
	x, y := ctx.Seq.Net()
	require.InDelta(t, -50, x, delta)
	require.InDelta(t, 100, y, delta)
	require.InDelta(t, 180, ctx.Seq.Heading(), delta)
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name   string
		script string
		wantY  float64
	}{
		{"precedence", "forward 10 + 2 * 5;", 20},
		{"parens", "forward (10 + 2) * 5;", 60},
		{"division", "forward 10 / 4;", 2.5},
		{"unary minus", "forward -5;", -5},
		{"variable", "side = 7; forward side + 3;", 10},
		{"reassignment", "x = 1; x = x + 2; forward x;", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := Run(tt.script)
			require.NoError(t, err)
			_, y := ctx.Seq.Net()
			require.InDelta(t, tt.wantY, y, delta)
		})
	}
}

func TestLoopBuildsSquare(t *testing.T) {
	ctx, err := Run("loop i = 1:4 { forward 10; right 90; }")
	require.NoError(t, err)
	require.Equal(t, 8, ctx.Seq.Len())
	x, y := ctx.Seq.Net()
	require.InDelta(t, 0, x, delta)
	require.InDelta(t, 0, y, delta)
	require.InDelta(t, 90, ctx.Seq.Heading(), delta)
}

func TestLoopVariable(t *testing.T) {
	ctx, err := Run("loop i = 1:3 { forward i; }")
	require.NoError(t, err)
	_, y := ctx.Seq.Net()
	require.InDelta(t, 6, y, delta)
}

func TestRepeatStatement(t *testing.T) {
	ctx, err := Run("forward 10; right 90; repeat 4;")
	require.NoError(t, err)
	require.Equal(t, 8, ctx.Seq.Len())
	x, y := ctx.Seq.Net()
	require.InDelta(t, 0, x, delta)
	require.InDelta(t, 0, y, delta)
}

func TestDilateStatement(t *testing.T) {
	ctx, err := Run("forward 2; dilate 3;")
	require.NoError(t, err)
	_, y := ctx.Seq.Net()
	require.InDelta(t, 6, y, delta)
}

func TestRescaleStatement(t *testing.T) {
	ctx, err := Run("forward 3; right 90; forward 4; rescale 10;")
	require.NoError(t, err)
	require.InDelta(t, 10, ctx.Seq.Displacement(), delta)
}

func TestAlignStatement(t *testing.T) {
	ctx, err := Run("right 37; forward 12; align;")
	require.NoError(t, err)
	x, _ := ctx.Seq.Net()
	require.InDelta(t, 0, x, delta)
	require.InDelta(t, 90, ctx.Seq.Heading(), delta)
}

func TestReverseStatement(t *testing.T) {
	ctx, err := Run("forward 1; left 90; back 2; reverse; reverse;")
	require.NoError(t, err)
	moves := ctx.Seq.Moves()
	require.Len(t, moves, 3)
	require.Equal(t, "forward 1", moves[0].String())
	require.Equal(t, "left 90", moves[1].String())
	require.Equal(t, "back 2", moves[2].String())
}

func TestMotifDefinitionAndFractalize(t *testing.T) {
	ctx, err := Run(`
		motif bump {
			forward 1; left 60; forward 1;
			right 120; forward 1; left 60; forward 1;
		}
		forward 9;
		fractalize bump 1;
	`)
	require.NoError(t, err)
	require.Equal(t, 7, ctx.Seq.Len())
	require.InDelta(t, 9, ctx.Seq.Displacement(), delta)
}

func TestBuiltinMotifFractalize(t *testing.T) {
	ctx, err := Run("forward 10; fractalize koch 2;")
	require.NoError(t, err)
	require.Equal(t, 31, ctx.Seq.Len())
	require.InDelta(t, 10, ctx.Seq.Displacement(), delta)
}

func TestAppendMotif(t *testing.T) {
	ctx, err := Run("append levy;")
	require.NoError(t, err)
	require.Equal(t, 5, ctx.Seq.Len())
	require.InDelta(t, 1, ctx.Seq.Displacement(), delta)
}

func TestCompileMotif(t *testing.T) {
	seq, err := CompileMotif("left 45; forward 1; right 90; forward 1; left 45;")
	require.NoError(t, err)
	require.Equal(t, 5, seq.Len())
	require.InDelta(t, 90, seq.Heading(), delta)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"undefined variable", "forward nope;"},
		{"undefined motif", "forward 1; fractalize nope 2;"},
		{"undefined append", "append nope;"},
		{"division by zero", "forward 1 / 0;"},
		{"rescale empty", "rescale 10;"},
		{"fractalize zero depth", "forward 1; fractalize koch 0;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(tt.script)
			require.Error(t, err)
		})
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse("forward ;")
	require.Error(t, err)
}
