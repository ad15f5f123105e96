package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/gridsolve/internal/ports"
	"svw.info/gridsolve/internal/solver"
	"svw.info/gridsolve/internal/sudoku"
)

var logLevel string

func newLogger() *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

// newSolver picks the solving strategy. The constraint engine is the
// default; it classifies boards exactly and falls back to plain
// backtracking only when a board has more than one completion.
func newSolver(kind string) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "backtrack", "backtracking":
		return solver.NewBacktrackingSolver()
	default:
		return sudoku.NewEngineSolver(solver.NewBacktrackingSolver())
	}
}

func main() {
	root := &cobra.Command{
		Use:           "gridsolve",
		Short:         "Constraint-based sudoku solver, generator and web UI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	root.AddCommand(newServeCmd(), newSolveCmd(), newGenerateCmd())

	if err := root.Execute(); err != nil {
		newLogger().Error("command failed", "err", err)
		os.Exit(1)
	}
}
