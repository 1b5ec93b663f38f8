package puzzles

import (
	"fmt"

	"github.com/johngreibelarsen/ai-constraint-satisfaction/pkg/csp"
)

// NQueens places n queens on an n×n board: one variable per column holding
// the occupied row, all rows distinct, and for every pair of columns the row
// distance must differ from the column distance.
func NQueens(n int) (*csp.Registry, *csp.ConstraintSet, error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("board size must be positive, got %d", n)
	}

	registry := csp.NewRegistry()
	constraints := csp.NewConstraintSet()

	queens := make([]string, n)
	for column := 0; column < n; column++ {
		queens[column] = queenName(column)
		if _, err := registry.Declare(queens[column], 0, n-1); err != nil {
			return nil, nil, err
		}
	}

	constraints.AllDifferent(queens...)

	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			constraints.Add(csp.AbsDifferenceNotEqual{A: queens[i], B: queens[j], Distance: j - i})
		}
	}

	return registry, constraints, nil
}

func queenName(column int) string {
	return fmt.Sprintf("queen%d", column)
}

// QueensRows reads the row of each column's queen out of a model.
func QueensRows(model csp.Model, n int) []int {
	rows := make([]int, n)
	for column := 0; column < n; column++ {
		rows[column] = model[queenName(column)]
	}
	return rows
}
