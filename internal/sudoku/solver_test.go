package sudoku

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/gridsolve/internal/domain"
	"svw.info/gridsolve/internal/solver"
	"svw.info/gridsolve/internal/validator"
)

// A classic, uniquely solvable Sudoku (0 = empty).
var sample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func TestEngineSolveSample(t *testing.T) {
	ctx := context.Background()
	s := NewEngineSolver(nil)
	in := &domain.Board{Values: sample}
	in.Fixed[0][0] = true

	out, st, err := s.Solve(ctx, in)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, out.Fixed[0][0], "fixed flags should carry over")
	assert.Positive(t, st.Nodes)

	ok, conflicts, err := validator.New().Validate(ctx, out)
	require.NoError(t, err)
	assert.True(t, ok, "conflicts: %v", conflicts)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			require.NotZero(t, out.Values[r][c], "unsolved cell r%d c%d", r, c)
			if sample[r][c] != 0 {
				require.Equal(t, sample[r][c], out.Values[r][c], "given changed at r%d c%d", r, c)
			}
		}
	}
}

func TestEngineClassify(t *testing.T) {
	ctx := context.Background()
	s := NewEngineSolver(nil)

	t.Run("unique", func(t *testing.T) {
		cls, _, err := s.Classify(ctx, &domain.Board{Values: sample})
		require.NoError(t, err)
		assert.Equal(t, domain.OneSolution, cls)
	})
	t.Run("contradiction", func(t *testing.T) {
		b := &domain.Board{Values: sample}
		b.Values[0][2] = 5 // clashes with the 5 at r0 c0
		cls, _, err := s.Classify(ctx, b)
		require.NoError(t, err)
		assert.Equal(t, domain.NoSolution, cls)
	})
	t.Run("ambiguous", func(t *testing.T) {
		cls, _, err := s.Classify(ctx, &domain.Board{})
		require.NoError(t, err)
		assert.Equal(t, domain.ManySolutions, cls)
	})
}

func TestEngineSolveNoSolution(t *testing.T) {
	b := &domain.Board{Values: sample}
	b.Values[0][2] = 5
	_, _, err := NewEngineSolver(nil).Solve(context.Background(), b)
	assert.ErrorIs(t, err, ErrNoSolution)
}

func TestEngineSolveAmbiguousFallsBack(t *testing.T) {
	ctx := context.Background()

	t.Run("without fallback", func(t *testing.T) {
		_, _, err := NewEngineSolver(nil).Solve(ctx, &domain.Board{})
		assert.Error(t, err)
	})
	t.Run("with fallback", func(t *testing.T) {
		s := NewEngineSolver(solver.NewBacktrackingSolver())
		out, _, err := s.Solve(ctx, &domain.Board{})
		require.NoError(t, err)
		ok, conflicts, err := validator.New().Validate(ctx, out)
		require.NoError(t, err)
		assert.True(t, ok, "conflicts: %v", conflicts)
	})
}

func TestEngineUnique(t *testing.T) {
	ctx := context.Background()
	s := NewEngineSolver(nil)

	uniq, _, err := s.Unique(ctx, &domain.Board{Values: sample})
	require.NoError(t, err)
	assert.True(t, uniq)

	uniq, _, err = s.Unique(ctx, &domain.Board{})
	require.NoError(t, err)
	assert.False(t, uniq)
}

func TestEngineHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewEngineSolver(nil).Solve(ctx, &domain.Board{Values: sample})
	assert.ErrorIs(t, err, context.Canceled)
}
