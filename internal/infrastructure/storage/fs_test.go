package storage

import (
	"context"
	"os"
	"testing"

	"svw.info/gridsolve/internal/domain"
)

func TestSaveLoadList(t *testing.T) {
	ctx := context.Background()
	s := NewFS(t.TempDir())

	p := &domain.Puzzle{
		ID:         "abc-123",
		Difficulty: domain.Hard,
		Name:       "test puzzle",
		CreatedAt:  42,
	}
	p.Board.Values[0][0] = 5

	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := s.Load(ctx, "abc-123")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Name != p.Name || got.Difficulty != domain.Hard || got.Board.Values[0][0] != 5 {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}

	metas, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(metas) != 1 || metas[0].ID != "abc-123" || metas[0].Difficulty != domain.Hard {
		t.Fatalf("unexpected listing: %+v", metas)
	}
}

func TestSaveRejectsMissingID(t *testing.T) {
	s := NewFS(t.TempDir())
	if err := s.Save(context.Background(), &domain.Puzzle{}); err == nil {
		t.Fatal("expected error for puzzle without ID")
	}
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	if _, err := s.Load(context.Background(), "nope"); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist, got %v", err)
	}
}
