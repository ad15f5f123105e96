// Package sudoku maps grid puzzles onto the generic constraint engine.
//
// A grid with nBands x nStacks boxes has side = nBands*nStacks, values
// 1..side, and one candidate per (row, column, value) triple. Four
// families of "exactly one of" constraints encode the rules: each cell
// holds one value, and each row, column and box contains each value once.
package sudoku

import (
	"fmt"

	"svw.info/gridsolve/internal/constraint"
	"svw.info/gridsolve/internal/domain"
)

// Problem is a grid puzzle expressed as a constrained problem. Filled
// cells of the input grid become givens.
type Problem struct {
	bands  int
	stacks int
	side   int
	graph  *constraint.Graph
	prob   *constraint.Problem
}

// NewProblem builds the constraint graph for the given grid. The grid must
// be side x side with side = bands*stacks; entries are 0 for empty or
// 1..side for givens.
func NewProblem(bands, stacks int, grid [][]uint8) (*Problem, error) {
	if bands < 1 || stacks < 1 {
		return nil, fmt.Errorf("sudoku: invalid box shape %dx%d", bands, stacks)
	}
	side := bands * stacks
	if len(grid) != side {
		return nil, fmt.Errorf("sudoku: grid has %d rows, want %d", len(grid), side)
	}
	for r, row := range grid {
		if len(row) != side {
			return nil, fmt.Errorf("sudoku: row %d has %d cells, want %d", r, len(row), side)
		}
	}

	p := &Problem{bands: bands, stacks: stacks, side: side, graph: constraint.NewGraph()}

	// One candidate per (row, col, value). Allocation order is dense, so a
	// candidate id decodes arithmetically, the same trick the exact-cover
	// row index used.
	candidates := make([]constraint.Candidate, 0, side*side*side)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			for v := 1; v <= side; v++ {
				id := p.graph.NewCandidate(fmt.Sprintf("r%d c%d v%d", r, c, v))
				candidates = append(candidates, id)
			}
		}
	}

	constraints := p.buildConstraints()

	var givens []constraint.Candidate
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			v := int(grid[r][c])
			if v == 0 {
				continue
			}
			if v < 1 || v > side {
				return nil, fmt.Errorf("sudoku: invalid given %d at r%d c%d", v, r, c)
			}
			givens = append(givens, p.candidate(r, c, v))
		}
	}

	p.prob = constraint.NewProblem(p.graph, "grid", candidates, constraints, givens)
	return p, nil
}

// candidate returns the id of the (row, col, value) triple.
func (p *Problem) candidate(r, c, v int) constraint.Candidate {
	return constraint.Candidate((r*p.side+c)*p.side + v - 1)
}

// decode inverts candidate.
func (p *Problem) decode(id constraint.Candidate) (r, c, v int) {
	cell := int(id) / p.side
	v = int(id)%p.side + 1
	r = cell / p.side
	c = cell % p.side
	return
}

func (p *Problem) buildConstraints() []constraint.Constraint {
	side := p.side
	var out []constraint.Constraint

	// Each cell contains exactly one value.
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			con := constraint.NewSingleCandidate(p.graph, fmt.Sprintf("cell r%d c%d", r, c))
			for v := 1; v <= side; v++ {
				con.Add(p.candidate(r, c, v))
			}
			out = append(out, con)
		}
	}
	// Each row contains each value exactly once.
	for r := 0; r < side; r++ {
		for v := 1; v <= side; v++ {
			con := constraint.NewSingleCandidate(p.graph, fmt.Sprintf("row %d v%d", r, v))
			for c := 0; c < side; c++ {
				con.Add(p.candidate(r, c, v))
			}
			out = append(out, con)
		}
	}
	// Each column contains each value exactly once.
	for c := 0; c < side; c++ {
		for v := 1; v <= side; v++ {
			con := constraint.NewSingleCandidate(p.graph, fmt.Sprintf("col %d v%d", c, v))
			for r := 0; r < side; r++ {
				con.Add(p.candidate(r, c, v))
			}
			out = append(out, con)
		}
	}
	// Each box contains each value exactly once. Boxes are nBands wide and
	// nStacks tall, arranged in nBands rows of nStacks boxes.
	for br := 0; br < p.bands; br++ {
		for bc := 0; bc < p.stacks; bc++ {
			for v := 1; v <= side; v++ {
				con := constraint.NewSingleCandidate(p.graph, fmt.Sprintf("box r%d c%d v%d", br, bc, v))
				for dr := 0; dr < p.stacks; dr++ {
					for dc := 0; dc < p.bands; dc++ {
						con.Add(p.candidate(br*p.stacks+dr, bc*p.bands+dc, v))
					}
				}
				out = append(out, con)
			}
		}
	}
	return out
}

// Solve runs the engine and reports the solution count classification.
func (p *Problem) Solve() domain.Classification {
	switch n := p.prob.Solve(); n {
	case 0:
		return domain.NoSolution
	case 1:
		return domain.OneSolution
	default:
		return domain.ManySolutions
	}
}

// Solution decodes the unique solution back into a value grid. It fails
// unless the last Solve classified the puzzle as uniquely solvable.
func (p *Problem) Solution() ([][]uint8, error) {
	set, err := p.prob.Solution()
	if err != nil {
		return nil, err
	}
	out := make([][]uint8, p.side)
	for r := range out {
		out[r] = make([]uint8, p.side)
	}
	for id := range set {
		r, c, v := p.decode(id)
		out[r][c] = uint8(v)
	}
	return out, nil
}

// Nodes reports how much work the last Solve performed.
func (p *Problem) Nodes() int { return p.prob.Nodes() }

// Side returns the grid side length.
func (p *Problem) Side() int { return p.side }
