// Package render turns solved puzzle assignments into printable text for the
// CLI.
package render

import (
	"fmt"
	"strings"

	"github.com/johngreibelarsen/ai-constraint-satisfaction/pkg/csp"
	"github.com/johngreibelarsen/ai-constraint-satisfaction/pkg/puzzles"
)

func QueensBoard(rows []int) string {
	var builder strings.Builder
	n := len(rows)
	for row := 0; row < n; row++ {
		for column := 0; column < n; column++ {
			if rows[column] == row {
				builder.WriteString(" Q")
			} else {
				builder.WriteString(" .")
			}
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

func SudokuGrid(grid [9][9]int) string {
	var builder strings.Builder
	for row := 0; row < 9; row++ {
		if row > 0 && row%3 == 0 {
			builder.WriteString("------+-------+------\n")
		}
		for col := 0; col < 9; col++ {
			if col > 0 && col%3 == 0 {
				builder.WriteString("| ")
			}
			fmt.Fprintf(&builder, "%d ", grid[row][col])
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

func ColorAssignment(regions []string, model csp.Model) string {
	var builder strings.Builder
	for _, region := range regions {
		fmt.Fprintf(&builder, "%v: color %d\n", region, model[region])
	}
	return builder.String()
}

func Substitution(operands []string, result string, model csp.Model) string {
	values := make([]string, len(operands))
	for i, word := range operands {
		values[i] = fmt.Sprintf("%d", puzzles.WordValue(model, word))
	}
	return fmt.Sprintf("%v = %d", strings.Join(values, " + "), puzzles.WordValue(model, result))
}
