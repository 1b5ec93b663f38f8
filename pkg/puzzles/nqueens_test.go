package puzzles

import (
	"testing"

	"github.com/johngreibelarsen/ai-constraint-satisfaction/pkg/csp"
	"github.com/johngreibelarsen/ai-constraint-satisfaction/pkg/sat"
	"github.com/stretchr/testify/assert"
)

func TestEightQueens(t *testing.T) {
	backends := map[string]sat.SATSolver{
		"gini":      sat.NewGiniSolver(),
		"gophersat": sat.NewGophersatSolver(),
	}

	for name, backend := range backends {
		t.Run(name, func(t *testing.T) {
			registry, constraints, err := NQueens(8)
			assert.Nil(t, err)

			model, err := csp.NewAdapter(registry, constraints, backend).Solve()
			assert.Nil(t, err)
			assert.NotNil(t, model)

			rows := QueensRows(model, 8)

			// Rows form a permutation of 0..7
			seen := map[int]bool{}
			for _, row := range rows {
				assert.GreaterOrEqual(t, row, 0)
				assert.Less(t, row, 8)
				assert.False(t, seen[row], "row %d occupied twice", row)
				seen[row] = true
			}

			// No two queens share a diagonal
			for i := 0; i < 7; i++ {
				for j := i + 1; j < 8; j++ {
					distance := rows[i] - rows[j]
					if distance < 0 {
						distance = -distance
					}
					assert.NotEqual(t, j-i, distance, "queens %d and %d share a diagonal", i, j)
				}
			}
		})
	}
}

func TestSmallBoards(t *testing.T) {
	t.Run("one queen", func(t *testing.T) {
		registry, constraints, err := NQueens(1)
		assert.Nil(t, err)

		model, err := csp.NewAdapter(registry, constraints, sat.NewGiniSolver()).Solve()
		assert.Nil(t, err)
		assert.Equal(t, csp.Model{"queen0": 0}, model)
	})

	t.Run("three queens is unsatisfiable", func(t *testing.T) {
		registry, constraints, err := NQueens(3)
		assert.Nil(t, err)

		model, err := csp.NewAdapter(registry, constraints, sat.NewGiniSolver()).Solve()
		assert.Nil(t, err)
		assert.Nil(t, model)
	})

	t.Run("invalid size", func(t *testing.T) {
		_, _, err := NQueens(0)
		assert.NotNil(t, err)
	})
}
