package perft

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cricklet/variantboard/internal/fen"
	. "github.com/cricklet/variantboard/internal/game"
	. "github.com/cricklet/variantboard/internal/helpers"
)

func TestStartingPosition(t *testing.T) {
	b, err := fen.BoardFromFenString(fen.DefaultFen, DefaultPieces())
	require.True(t, IsNil(err), err.String())

	expected := []Result{
		{Nodes: 1},
		{Nodes: 20},
		{Nodes: 400},
		{Nodes: 8902, Captures: 34},
	}

	r := NewRunner(WithLogger(&SilentLogger), WithParallel(4))
	for depth, want := range expected {
		result, perMove, err := r.Count(context.Background(), b, depth)
		require.True(t, IsNil(err), err.String())
		assert.Equal(t, want, result, "depth %v", depth)
		if depth > 0 {
			assert.Len(t, perMove, 20)
		}
	}

	assert.Empty(t, b.MoveHistory())
}

func TestParallelMatchesSerial(t *testing.T) {
	b, err := fen.BoardFromFenString("r3k2r/8/8/3q4/8/2N5/8/R3K2R w 0", DefaultPieces())
	require.True(t, IsNil(err), err.String())

	serial, serialPerMove, err := NewRunner(WithLogger(&SilentLogger)).Count(context.Background(), b, 2)
	require.True(t, IsNil(err), err.String())
	parallel, parallelPerMove, err := NewRunner(WithLogger(&SilentLogger), WithParallel(8)).Count(context.Background(), b, 2)
	require.True(t, IsNil(err), err.String())

	assert.Equal(t, serial, parallel)
	assert.Equal(t, serialPerMove, parallelPerMove)
	assert.True(t, serial.Castles > 0)
	assert.True(t, serial.Captures > 0)
}

func TestDivideLogsRootMoves(t *testing.T) {
	b, err := fen.BoardFromFenString("4k3/8/8/8/8/8/8/4K2R w 0", DefaultPieces())
	require.True(t, IsNil(err), err.String())

	lines := []string{}
	logger := FuncLogger(func(s string) {
		lines = append(lines, strings.TrimSpace(s))
	})

	result, perMove, err := NewRunner(WithLogger(logger), WithDivide()).Count(context.Background(), b, 1)
	require.True(t, IsNil(err), err.String())

	// Five king steps, nine rook moves, castling.
	assert.Equal(t, Result{Nodes: 15, Castles: 1}, result)
	assert.Len(t, lines, 15)
	assert.Contains(t, lines, "e1g1: 1")
	assert.Equal(t, Result{Nodes: 1, Castles: 1}, perMove["e1g1"])
}

func TestCancelled(t *testing.T) {
	b, err := fen.BoardFromFenString(fen.DefaultFen, DefaultPieces())
	require.True(t, IsNil(err), err.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = NewRunner(WithLogger(&SilentLogger)).Count(ctx, b, 3)
	assert.False(t, IsNil(err))
}

func TestOptionsFromArgs(t *testing.T) {
	options, err := OptionsFromArgs("depth=5", "parallel=2", "divide", "fen=8/8 w 0")
	require.True(t, IsNil(err), err.String())
	assert.Equal(t, Options{Fen: "8/8 w 0", Depth: 5, Parallel: 2, Divide: true}, options)

	options, err = OptionsFromArgs("fen=4k3/8/8/8/8/8/8/4K2R", "b", "12", "depth=2")
	require.True(t, IsNil(err), err.String())
	assert.Equal(t, "4k3/8/8/8/8/8/8/4K2R b 12", options.Fen)
	assert.Equal(t, 2, options.Depth)

	options, err = OptionsFromArgs("fen=4k3/8/8/8/8/8/8/4K2R", "w", "divide")
	require.True(t, IsNil(err), err.String())
	assert.Equal(t, "4k3/8/8/8/8/8/8/4K2R w", options.Fen)
	assert.True(t, options.Divide)

	_, err = OptionsFromArgs("w")
	assert.False(t, IsNil(err))

	_, err = OptionsFromArgs("depth=x")
	assert.False(t, IsNil(err))

	_, err = OptionsFromArgs("bogus")
	assert.False(t, IsNil(err))

	options, err = OptionsFromArgs("parallel=2", "divide")
	require.True(t, IsNil(err), err.String())
	assert.Len(t, options.RunnerOptions(&SilentLogger), 3)
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "nodes: 197,281, captures: 1,576, en passants: 0, castles: 0",
		Result{Nodes: 197281, Captures: 1576}.String())
}
