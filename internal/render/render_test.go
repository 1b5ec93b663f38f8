package render

import (
	"testing"

	"github.com/johngreibelarsen/ai-constraint-satisfaction/pkg/csp"
	"github.com/stretchr/testify/assert"
)

func TestQueensBoard(t *testing.T) {
	board := QueensBoard([]int{1, 3, 0, 2})
	assert.Equal(t, " . . Q .\n Q . . .\n . . . Q\n . Q . .\n", board)
}

func TestSubstitution(t *testing.T) {
	model := csp.Model{"S": 9, "E": 5, "N": 6, "D": 7, "M": 1, "O": 0, "R": 8, "Y": 2}
	line := Substitution([]string{"SEND", "MORE"}, "MONEY", model)
	assert.Equal(t, "9567 + 1085 = 10652", line)
}
