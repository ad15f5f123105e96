package validator

import (
	"context"

	"svw.info/gridsolve/internal/domain"
)

// FastValidator flags duplicate values in rows, columns and boxes using
// one bitmask pass per unit. It checks only the filled cells; it does not
// decide solvability.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// unit enumerates the 9 cells of one row, column or box.
type unit func(i int) (r, c int)

func units() []unit {
	out := make([]unit, 0, 27)
	for r := 0; r < 9; r++ {
		r := r
		out = append(out, func(i int) (int, int) { return r, i })
	}
	for c := 0; c < 9; c++ {
		c := c
		out = append(out, func(i int) (int, int) { return i, c })
	}
	for b := 0; b < 9; b++ {
		br, bc := (b/3)*3, (b%3)*3
		out = append(out, func(i int) (int, int) { return br + i/3, bc + i%3 })
	}
	return out
}

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	for _, u := range units() {
		mask := 0
		for i := 0; i < 9; i++ {
			r, c := u(i)
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if mask&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			mask |= bit
		}
	}
	return len(conf) == 0, conf, nil
}
