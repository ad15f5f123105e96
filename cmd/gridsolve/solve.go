package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"svw.info/gridsolve/internal/domain"
	"svw.info/gridsolve/internal/sudoku"
)

func newSolveCmd() *cobra.Command {
	var solverKind string
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a board read from a file or stdin",
		Long: `Solve reads a 9x9 board (digits 1-9, with '.', '_' or '0' for empty
cells; whitespace and grid decorations are ignored), classifies it as
having no, one or many completions, and prints a completed grid when one
exists.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				text []byte
				err  error
			)
			if len(args) == 1 {
				text, err = os.ReadFile(args[0])
			} else {
				text, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}
			b, err := sudoku.ParseBoard(string(text))
			if err != nil {
				return err
			}

			s := newSolver(solverKind)
			cls, st, err := s.Classify(cmd.Context(), b)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "solutions: %s (nodes=%d in %v)\n", cls, st.Nodes, st.Duration)
			if cls == domain.NoSolution {
				return errors.New("board has no solution")
			}

			out, _, err := s.Solve(cmd.Context(), b)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), sudoku.FormatBoard(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&solverKind, "solver", "engine", "solver to use: engine|backtrack")
	return cmd
}
