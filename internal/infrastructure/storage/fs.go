package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/gridsolve/internal/domain"
)

// FS persists puzzles as one JSON file each, bucketed into a subdirectory
// per difficulty. A flat legacy layout (files directly under dir) is still
// readable.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func diffDir(d domain.Difficulty) string {
	switch d {
	case domain.Easy:
		return "easy"
	case domain.Hard:
		return "hard"
	case domain.Expert:
		return "expert"
	default:
		return "medium"
	}
}

// buckets lists the difficulty subdirectories in load/list order.
var buckets = []struct {
	sub  string
	diff domain.Difficulty
}{
	{"easy", domain.Easy},
	{"medium", domain.Medium},
	{"hard", domain.Hard},
	{"expert", domain.Expert},
	{"", domain.Medium}, // legacy flat layout
}

func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	target := filepath.Join(s.dir, diffDir(p.Difficulty), strings.TrimSpace(p.ID)+".json")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	for _, b := range buckets {
		data, err := os.ReadFile(filepath.Join(s.dir, b.sub, id+".json"))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var out domain.Puzzle
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		// Infer a missing difficulty from the folder the puzzle sat in.
		if out.Difficulty == 0 {
			out.Difficulty = b.diff
		}
		return &out, nil
	}
	return nil, os.ErrNotExist
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	for _, b := range buckets {
		dir := filepath.Join(s.dir, b.sub)
		ents, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			var m domain.PuzzleMeta
			if err := json.Unmarshal(data, &m); err != nil || m.ID == "" {
				continue
			}
			if m.Difficulty == 0 {
				m.Difficulty = b.diff
			}
			out = append(out, m)
		}
	}
	return out, nil
}
