package httpadapter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"svw.info/gridsolve/internal/hint"
	"svw.info/gridsolve/internal/solver"
	"svw.info/gridsolve/internal/sudoku"
	"svw.info/gridsolve/internal/usecase"
	"svw.info/gridsolve/internal/validator"
)

func testMux(t *testing.T) *http.ServeMux {
	t.Helper()
	s := sudoku.NewEngineSolver(solver.NewBacktrackingSolver())
	uc := usecase.NewService(s, nil, validator.New(), hint.Default(), nil)
	mux := http.NewServeMux()
	New(uc).Register(mux)
	return mux
}

func TestClassifyEndpoint(t *testing.T) {
	mux := testMux(t)

	// An empty board has many completions.
	body := `{"board":[[0,0,0,0,0,0,0,0,0],[0,0,0,0,0,0,0,0,0],[0,0,0,0,0,0,0,0,0],[0,0,0,0,0,0,0,0,0],[0,0,0,0,0,0,0,0,0],[0,0,0,0,0,0,0,0,0],[0,0,0,0,0,0,0,0,0],[0,0,0,0,0,0,0,0,0],[0,0,0,0,0,0,0,0,0]]}`
	req := httptest.NewRequest(http.MethodPost, "/api/classify", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Solutions string `json:"solutions"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}
	if resp.Solutions != "many" {
		t.Fatalf("solutions = %q, want %q", resp.Solutions, "many")
	}
}

func TestClassifyRejectsGet(t *testing.T) {
	mux := testMux(t)
	req := httptest.NewRequest(http.MethodGet, "/api/classify", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
