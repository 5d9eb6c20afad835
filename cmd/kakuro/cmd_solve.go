package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/kakuro/internal/domain"
	"svw.info/kakuro/internal/solver"
)

var (
	solveInput   string
	solveOutput  string
	solveTimeout time.Duration
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a puzzle file and write the solution",
	Long: `Reads a Kakuro puzzle from a JSON file, solves it, and writes the
document back out with a solution_cells list. When --output is omitted the
solution lands next to the input as <name>_sol.json.`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&solveInput, "input", "i", "", "input puzzle file (JSON)")
	solveCmd.Flags().StringVarP(&solveOutput, "output", "o", "", "output file")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "abort the solve after this duration")
	_ = solveCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(solveInput)
	if err != nil {
		return err
	}
	var doc domain.PuzzleDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", solveInput, err)
	}
	g, err := domain.ParseGrid(&doc)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if solveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, solveTimeout)
		defer cancel()
	}
	sol, st, err := solver.NewConstraintSolver().Solve(ctx, g)
	if errors.Is(err, domain.ErrUnsatisfiable) {
		cmd.Printf("No solution exists for %s\n", solveInput)
		return nil
	}
	if err != nil {
		return err
	}

	doc.SolutionCells = sol.Cells
	out, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return err
	}
	target := solveOutput
	if target == "" {
		target = strings.TrimSuffix(solveInput, ".json") + "_sol.json"
	}
	cmd.Printf("Writing solution to %s (nodes=%d dur=%v)\n", target, st.Nodes, st.Duration.Round(time.Millisecond))
	return os.WriteFile(target, out, 0o644)
}
