// The benchmark command demonstrates how N-Queens solve latency grows with
// board size across backends. It is a demonstration, not a reusable harness.
package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/johngreibelarsen/ai-constraint-satisfaction/pkg/csp"
	"github.com/johngreibelarsen/ai-constraint-satisfaction/pkg/puzzles"
	"github.com/johngreibelarsen/ai-constraint-satisfaction/pkg/sat"
)

const outputPath = "nqueens_benchmark.csv"

var boardSizes = []int{4, 6, 8, 10, 12, 16, 20, 24}

var backends = map[string]sat.SATSolver{
	"gini":      sat.NewGiniSolver(),
	"gophersat": sat.NewGophersatSolver(),
}

func main() {
	file, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("cannot create output file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Write([]string{"n", "backend", "encode_ms", "solve_ms", "outcome"})

	for _, n := range boardSizes {
		for name, backend := range backends {
			encodeStart := time.Now()
			registry, constraints, err := puzzles.NQueens(n)
			if err != nil {
				log.Fatalf("cannot encode %d-queens: %v", n, err)
			}
			encodeElapsed := time.Since(encodeStart)

			solveStart := time.Now()
			model, err := csp.NewAdapter(registry, constraints, backend).Solve()
			solveElapsed := time.Since(solveStart)

			outcome := "solved"
			if err != nil {
				outcome = "error"
			} else if model == nil {
				outcome = "unsatisfiable"
			}

			writer.Write([]string{
				fmt.Sprintf("%d", n),
				name,
				fmt.Sprintf("%d", encodeElapsed.Milliseconds()),
				fmt.Sprintf("%d", solveElapsed.Milliseconds()),
				outcome,
			})
			log.Printf("n=%d backend=%v encode=%v solve=%v outcome=%v", n, name, encodeElapsed, solveElapsed, outcome)
		}
	}
}
