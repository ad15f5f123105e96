// Package hint implements heuristic hint strategies over a board. Each
// strategy looks for one kind of logical step a player could take next;
// the chain tries them in order of increasing sophistication, capped at
// the caller's maximum tier.
package hint

import (
	"context"

	"github.com/samber/lo"

	"svw.info/gridsolve/internal/domain"
)

// Strategy finds one kind of logical next step.
type Strategy interface {
	Tier() domain.StrategyTier
	Find(b *domain.Board) (domain.Hint, bool)
}

// Chain is a ports.Hinter trying strategies in registration order.
type Chain struct {
	strategies []Strategy
}

func NewChain(strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies}
}

// Default returns the standard chain: naked singles, then hidden singles.
func Default() *Chain {
	return NewChain(NewSingles(), NewHiddenSingles())
}

// Hint returns the first hint found by any strategy at or below max.
func (c *Chain) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	eligible := lo.Filter(c.strategies, func(s Strategy, _ int) bool {
		return s.Tier() <= max
	})
	for _, s := range eligible {
		if err := ctx.Err(); err != nil {
			return domain.Hint{}, false, err
		}
		if h, ok := s.Find(b); ok {
			return h, true, nil
		}
	}
	return domain.Hint{}, false, nil
}

// allowed reports whether value v may be placed at (r, c) without
// conflicting with the filled cells of its row, column or box.
func allowed(b *domain.Board, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b.Values[r][i] == v || b.Values[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b.Values[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
