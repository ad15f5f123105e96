package sudoku

import (
	"context"
	"errors"
	"time"

	"svw.info/gridsolve/internal/domain"
	"svw.info/gridsolve/internal/ports"
)

// EngineSolver implements ports.Solver on top of the constraint engine
// for the standard 9x9 board. The engine classifies a board as having
// zero, one or many solutions and yields the completed grid only for the
// unique case, so Solve delegates ambiguous boards to a fallback solver
// that simply returns the first completion it finds.
type EngineSolver struct {
	Fallback ports.Solver
}

func NewEngineSolver(fallback ports.Solver) *EngineSolver {
	return &EngineSolver{Fallback: fallback}
}

var ErrNoSolution = errors.New("sudoku: board has no solution")

func boardGrid(b *domain.Board) [][]uint8 {
	grid := make([][]uint8, 9)
	for r := range grid {
		grid[r] = make([]uint8, 9)
		copy(grid[r], b.Values[r][:])
	}
	return grid
}

func (s *EngineSolver) classify(b *domain.Board) (domain.Classification, *Problem, error) {
	p, err := NewProblem(3, 3, boardGrid(b))
	if err != nil {
		return domain.NoSolution, nil, err
	}
	return p.Solve(), p, nil
}

func (s *EngineSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	cls, p, err := s.classify(b)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	st := ports.Stats{Nodes: p.Nodes(), Duration: time.Since(start)}
	switch cls {
	case domain.NoSolution:
		return nil, st, ErrNoSolution
	case domain.ManySolutions:
		if s.Fallback == nil {
			return nil, st, errors.New("sudoku: board has many solutions")
		}
		out, fst, err := s.Fallback.Solve(ctx, b)
		fst.Nodes += st.Nodes
		fst.Duration = time.Since(start)
		return out, fst, err
	}
	grid, err := p.Solution()
	if err != nil {
		return nil, st, err
	}
	out := &domain.Board{Fixed: b.Fixed}
	for r := 0; r < 9; r++ {
		copy(out.Values[r][:], grid[r])
	}
	st.Duration = time.Since(start)
	return out, st, nil
}

func (s *EngineSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	cls, st, err := s.Classify(ctx, b)
	return cls == domain.OneSolution, st, err
}

// Classify reports whether the board has zero, one or many completions.
// The engine search is synchronous and runs to completion; the context is
// only consulted before it starts.
func (s *EngineSolver) Classify(ctx context.Context, b *domain.Board) (domain.Classification, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return domain.NoSolution, ports.Stats{}, err
	}
	cls, p, err := s.classify(b)
	if err != nil {
		return domain.NoSolution, ports.Stats{}, err
	}
	return cls, ports.Stats{Nodes: p.Nodes(), Duration: time.Since(start)}, nil
}
