package hint

import (
	"fmt"

	"svw.info/gridsolve/internal/domain"
)

// HiddenSingles finds hidden singles: values that fit in exactly one cell
// of a box, row or column, even though that cell has other candidates.
// Boxes are checked first, then rows, then columns.
type HiddenSingles struct{}

func NewHiddenSingles() *HiddenSingles { return &HiddenSingles{} }

func (h *HiddenSingles) Tier() domain.StrategyTier { return domain.StrategySingles }

// group enumerates the 9 cells of one box, row or column.
type group struct {
	kind string
	cell func(i int) (r, c int)
}

func groups() []group {
	out := make([]group, 0, 27)
	for b := 0; b < 9; b++ {
		br, bc := (b/3)*3, (b%3)*3
		out = append(out, group{"box", func(i int) (int, int) { return br + i/3, bc + i%3 }})
	}
	for r := 0; r < 9; r++ {
		r := r
		out = append(out, group{"row", func(i int) (int, int) { return r, i }})
	}
	for c := 0; c < 9; c++ {
		c := c
		out = append(out, group{"column", func(i int) (int, int) { return i, c }})
	}
	return out
}

func (h *HiddenSingles) Find(b *domain.Board) (domain.Hint, bool) {
	for _, g := range groups() {
		for v := uint8(1); v <= 9; v++ {
			if groupHas(b, g, v) {
				continue
			}
			if r, c, ok := solePlacement(b, g, v); ok {
				return domain.Hint{
					Message:  fmt.Sprintf("Hidden single: within this %s, only one cell can contain %d", g.kind, v),
					Cells:    []domain.CellCoord{{Row: r, Col: c}},
					Strategy: domain.StrategySingles,
				}, true
			}
		}
	}
	return domain.Hint{}, false
}

func groupHas(b *domain.Board, g group, v uint8) bool {
	for i := 0; i < 9; i++ {
		r, c := g.cell(i)
		if b.Values[r][c] == v {
			return true
		}
	}
	return false
}

// solePlacement reports the only empty cell of the group that can hold v,
// if there is exactly one.
func solePlacement(b *domain.Board, g group, v uint8) (int, int, bool) {
	fr, fc, found := 0, 0, false
	for i := 0; i < 9; i++ {
		r, c := g.cell(i)
		if b.Values[r][c] != 0 || !allowed(b, r, c, v) {
			continue
		}
		if found {
			return 0, 0, false // fits in more than one cell
		}
		fr, fc, found = r, c, true
	}
	return fr, fc, found
}
