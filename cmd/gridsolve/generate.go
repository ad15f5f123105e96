package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/gridsolve/internal/domain"
	"svw.info/gridsolve/internal/generator"
	"svw.info/gridsolve/internal/sudoku"
)

func newGenerateCmd() *cobra.Command {
	var (
		difficulty string
		seed       int64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle with a unique solution",
		RunE: func(cmd *cobra.Command, args []string) error {
			var diff domain.Difficulty
			switch strings.ToLower(strings.TrimSpace(difficulty)) {
			case "easy":
				diff = domain.Easy
			case "medium":
				diff = domain.Medium
			case "hard":
				diff = domain.Hard
			case "expert":
				diff = domain.Expert
			default:
				return fmt.Errorf("unknown difficulty %q", difficulty)
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			g := generator.NewUniqueGenerator(newSolver("engine"))
			p, st, err := g.Generate(cmd.Context(), seed, diff)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seed=%d difficulty=%s nodes=%d in %v\n", seed, difficulty, st.Nodes, st.Duration)
			fmt.Fprint(cmd.OutOrStdout(), sudoku.FormatBoard(&p.Board))
			return nil
		},
	}
	cmd.Flags().StringVar(&difficulty, "difficulty", "medium", "easy|medium|hard|expert")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	return cmd
}
