package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/gridsolve/internal/domain"
)

// A completed 4x4 grid with 2x2 boxes.
var full4 = [][]uint8{
	{1, 2, 3, 4},
	{3, 4, 1, 2},
	{2, 1, 4, 3},
	{4, 3, 2, 1},
}

func grid4(blank func(r, c int) bool) [][]uint8 {
	out := make([][]uint8, 4)
	for r := range out {
		out[r] = make([]uint8, 4)
		for c := range out[r] {
			if blank == nil || !blank(r, c) {
				out[r][c] = full4[r][c]
			}
		}
	}
	return out
}

func TestProblemUniqueCompletion(t *testing.T) {
	// Blanking the diagonal leaves every missing cell forced by its row.
	p, err := NewProblem(2, 2, grid4(func(r, c int) bool { return r == c }))
	require.NoError(t, err)

	require.Equal(t, 4, p.Side())
	assert.Equal(t, 64, p.graph.NumCandidates())

	require.Equal(t, domain.OneSolution, p.Solve())
	got, err := p.Solution()
	require.NoError(t, err)
	assert.Equal(t, full4, got)
}

func TestProblemRepeatInRow(t *testing.T) {
	grid := make([][]uint8, 4)
	for r := range grid {
		grid[r] = make([]uint8, 4)
	}
	grid[0][0] = 1
	grid[0][2] = 1

	p, err := NewProblem(2, 2, grid)
	require.NoError(t, err)
	assert.Equal(t, domain.NoSolution, p.Solve())
	_, err = p.Solution()
	assert.Error(t, err)
}

func TestProblemUnderdetermined(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		p, err := NewProblem(2, 2, grid4(func(r, c int) bool { return true }))
		require.NoError(t, err)
		assert.Equal(t, domain.ManySolutions, p.Solve())
	})
	t.Run("one given", func(t *testing.T) {
		p, err := NewProblem(2, 2, grid4(func(r, c int) bool { return r != 0 || c != 0 }))
		require.NoError(t, err)
		assert.Equal(t, domain.ManySolutions, p.Solve())
		_, err = p.Solution()
		assert.Error(t, err)
	})
}

func TestProblemRejectsBadInput(t *testing.T) {
	_, err := NewProblem(0, 2, nil)
	assert.Error(t, err)

	_, err = NewProblem(2, 2, make([][]uint8, 3))
	assert.Error(t, err)

	grid := grid4(nil)
	grid[1][1] = 9 // out of range for side 4
	_, err = NewProblem(2, 2, grid)
	assert.Error(t, err)
}

// Rectangular boxes: side 6 with boxes 2 wide and 3 tall.
func TestProblemRectangularBoxes(t *testing.T) {
	side := 6
	grid := make([][]uint8, side)
	for r := range grid {
		grid[r] = make([]uint8, side)
		for c := range grid[r] {
			grid[r][c] = uint8((r%3*2+r/3+c)%side) + 1
		}
	}
	// Blank the top row and verify the rest still forces it back.
	want := cloneGrid(grid)
	for c := 0; c < side; c++ {
		grid[0][c] = 0
	}

	p, err := NewProblem(2, 3, grid)
	require.NoError(t, err)
	require.Equal(t, domain.OneSolution, p.Solve())
	got, err := p.Solution()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func cloneGrid(grid [][]uint8) [][]uint8 {
	out := make([][]uint8, len(grid))
	for r := range grid {
		out[r] = append([]uint8(nil), grid[r]...)
	}
	return out
}

func TestCandidateRoundTrip(t *testing.T) {
	p, err := NewProblem(2, 3, make6x6())
	require.NoError(t, err)
	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			for v := 1; v <= 6; v++ {
				gr, gc, gv := p.decode(p.candidate(r, c, v))
				require.Equal(t, []int{r, c, v}, []int{gr, gc, gv})
			}
		}
	}
}

func make6x6() [][]uint8 {
	out := make([][]uint8, 6)
	for r := range out {
		out[r] = make([]uint8, 6)
	}
	return out
}
