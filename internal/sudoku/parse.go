package sudoku

import (
	"fmt"
	"strings"

	"svw.info/gridsolve/internal/domain"
)

// ParseBoard reads a 9x9 board from text. Cells are the digits 1-9; '0',
// '.' and '_' mean empty; whitespace and '|' / '-' grid decorations are
// ignored. Exactly 81 cells must remain.
func ParseBoard(s string) (*domain.Board, error) {
	var cells []uint8
	for _, r := range s {
		switch {
		case r >= '1' && r <= '9':
			cells = append(cells, uint8(r-'0'))
		case r == '0' || r == '.' || r == '_':
			cells = append(cells, 0)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '|' || r == '-' || r == '+':
			// decoration
		default:
			return nil, fmt.Errorf("sudoku: unexpected character %q in board text", r)
		}
	}
	if len(cells) != 81 {
		return nil, fmt.Errorf("sudoku: board text has %d cells, want 81", len(cells))
	}
	b := &domain.Board{}
	for i, v := range cells {
		r, c := i/9, i%9
		b.Values[r][c] = v
		b.Fixed[r][c] = v != 0
	}
	return b, nil
}

// FormatBoard renders a board as 9 lines of 9 characters, '.' for empty.
func FormatBoard(b *domain.Board) string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
