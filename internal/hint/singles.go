package hint

import (
	"fmt"

	"svw.info/gridsolve/internal/domain"
)

// Singles finds naked singles: empty cells where only one value fits.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

func (h *Singles) Tier() domain.StrategyTier { return domain.StrategySingles }

func (h *Singles) Find(b *domain.Board) (domain.Hint, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				continue
			}
			if v, ok := soleCandidate(b, r, c); ok {
				return domain.Hint{
					Message:  fmt.Sprintf("Single: only %d fits here", v),
					Cells:    []domain.CellCoord{{Row: r, Col: c}},
					Strategy: domain.StrategySingles,
				}, true
			}
		}
	}
	return domain.Hint{}, false
}

func soleCandidate(b *domain.Board, r, c int) (uint8, bool) {
	var last uint8
	count := 0
	for v := uint8(1); v <= 9; v++ {
		if allowed(b, r, c, v) {
			count++
			last = v
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}
