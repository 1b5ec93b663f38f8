package puzzles

import (
	"testing"

	"github.com/johngreibelarsen/ai-constraint-satisfaction/pkg/csp"
	"github.com/johngreibelarsen/ai-constraint-satisfaction/pkg/sat"
	"github.com/stretchr/testify/assert"
)

func TestTwoPlusTwoEqualsFour(t *testing.T) {
	strategies := map[string]CryptarithmeticStrategy{
		"positional sum": PositionalSum,
		"column carries": ColumnCarries,
	}

	for name, strategy := range strategies {
		t.Run(name, func(t *testing.T) {
			registry, constraints, err := Cryptarithmetic([]string{"TWO", "TWO"}, "FOUR", strategy)
			assert.Nil(t, err)

			model, err := csp.NewAdapter(registry, constraints, sat.NewGiniSolver()).Solve()
			assert.Nil(t, err)
			assert.NotNil(t, model)

			// Leading digits are nonzero
			assert.NotEqual(t, 0, model["T"])
			assert.NotEqual(t, 0, model["F"])

			// All six letters carry distinct digits
			letters := []string{"T", "W", "O", "F", "U", "R"}
			digits := map[int]bool{}
			for _, letter := range letters {
				digit := model[letter]
				assert.GreaterOrEqual(t, digit, 0)
				assert.LessOrEqual(t, digit, 9)
				assert.False(t, digits[digit], "digit %d assigned twice", digit)
				digits[digit] = true
			}

			// The decimal arithmetic holds exactly
			assert.Equal(t, WordValue(model, "FOUR"), 2*WordValue(model, "TWO"))
		})
	}
}

func TestSendMoreMoney(t *testing.T) {
	registry, constraints, err := Cryptarithmetic([]string{"SEND", "MORE"}, "MONEY", ColumnCarries)
	assert.Nil(t, err)

	model, err := csp.NewAdapter(registry, constraints, sat.NewGophersatSolver()).Solve()
	assert.Nil(t, err)
	assert.NotNil(t, model)

	// The classic puzzle has a unique witness.
	assert.Equal(t, 9567, WordValue(model, "SEND"))
	assert.Equal(t, 1085, WordValue(model, "MORE"))
	assert.Equal(t, 10652, WordValue(model, "MONEY"))
}

func TestCryptarithmeticStrategiesAgree(t *testing.T) {
	for _, strategy := range []CryptarithmeticStrategy{PositionalSum, ColumnCarries} {
		registry, constraints, err := Cryptarithmetic([]string{"A", "A"}, "B", strategy)
		assert.Nil(t, err)

		model, err := csp.NewAdapter(registry, constraints, sat.NewGiniSolver()).Solve()
		assert.Nil(t, err)
		assert.NotNil(t, model)
		assert.Equal(t, model["B"], 2*model["A"])
	}
}

func TestCryptarithmeticRejectsTooManyLetters(t *testing.T) {
	_, _, err := Cryptarithmetic([]string{"ABCDEFG", "HIJK"}, "LMNOP", PositionalSum)
	assert.NotNil(t, err)
}

func TestCryptarithmeticRejectsNonASCII(t *testing.T) {
	for _, strategy := range []CryptarithmeticStrategy{PositionalSum, ColumnCarries} {
		_, _, err := Cryptarithmetic([]string{"ÄB", "BA"}, "ABÄ", strategy)
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "non-ASCII")
	}
}

func TestCryptarithmeticUnsatisfiable(t *testing.T) {
	// AB + AB = AB cannot hold for any two-digit number.
	registry, constraints, err := Cryptarithmetic([]string{"AB", "AB"}, "AB", ColumnCarries)
	assert.Nil(t, err)

	model, err := csp.NewAdapter(registry, constraints, sat.NewGiniSolver()).Solve()
	assert.Nil(t, err)
	assert.Nil(t, model)
}
