package puzzles

import (
	"fmt"

	"github.com/johngreibelarsen/ai-constraint-satisfaction/pkg/csp"
)

// SudokuBlank is the clue-grid sentinel for an unassigned cell.
const SudokuBlank = 0

// Sudoku encodes a 9×9 grid: one variable per cell over 1–9, all-different
// per row, column and 3×3 block, and an equality constraint per non-blank
// clue.
func Sudoku(clues [9][9]int) (*csp.Registry, *csp.ConstraintSet, error) {
	registry := csp.NewRegistry()
	constraints := csp.NewConstraintSet()

	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if _, err := registry.Declare(cellName(row, col), 1, 9); err != nil {
				return nil, nil, err
			}
		}
	}

	for row := 0; row < 9; row++ {
		group := make([]string, 9)
		for col := 0; col < 9; col++ {
			group[col] = cellName(row, col)
		}
		constraints.AllDifferent(group...)
	}

	for col := 0; col < 9; col++ {
		group := make([]string, 9)
		for row := 0; row < 9; row++ {
			group[row] = cellName(row, col)
		}
		constraints.AllDifferent(group...)
	}

	// Blocks are rooted at row/col multiples of 3.
	for blockRow := 0; blockRow < 9; blockRow += 3 {
		for blockCol := 0; blockCol < 9; blockCol += 3 {
			group := make([]string, 0, 9)
			for row := blockRow; row < blockRow+3; row++ {
				for col := blockCol; col < blockCol+3; col++ {
					group = append(group, cellName(row, col))
				}
			}
			constraints.AllDifferent(group...)
		}
	}

	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			clue := clues[row][col]
			if clue == SudokuBlank {
				continue
			}
			if clue < 1 || clue > 9 {
				return nil, nil, fmt.Errorf("clue %d at row %d column %d is outside 1-9", clue, row, col)
			}
			constraints.Add(csp.Equals(cellName(row, col), clue))
		}
	}

	return registry, constraints, nil
}

func cellName(row, col int) string {
	return fmt.Sprintf("r%dc%d", row, col)
}

// SudokuGrid reads the solved grid out of a model.
func SudokuGrid(model csp.Model) [9][9]int {
	var grid [9][9]int
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			grid[row][col] = model[cellName(row, col)]
		}
	}
	return grid
}
