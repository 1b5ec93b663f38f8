// Package puzzles contains four independent, state-free encoders translating
// classic puzzle inputs into a variable registry and constraint set for the
// csp backend adapter.
package puzzles

import (
	"fmt"
	"unicode"

	"github.com/johngreibelarsen/ai-constraint-satisfaction/pkg/csp"
)

// CryptarithmeticStrategy picks how the arithmetic relation is expressed. Both
// encodings are equivalent; neither supersedes the other.
type CryptarithmeticStrategy int

const (
	// PositionalSum states the whole equation as one linear constraint over
	// per-letter positional coefficients.
	PositionalSum CryptarithmeticStrategy = iota
	// ColumnCarries decomposes the equation into one constraint per decimal
	// column, threading explicit carry variables between columns.
	ColumnCarries
)

// Cryptarithmetic encodes sum(operands) = result where every letter stands
// for a distinct decimal digit and leading letters are nonzero.
func Cryptarithmetic(operands []string, result string, strategy CryptarithmeticStrategy) (*csp.Registry, *csp.ConstraintSet, error) {
	if len(operands) == 0 {
		return nil, nil, fmt.Errorf("cryptarithmetic puzzle needs at least one operand")
	}
	words := append(append([]string{}, operands...), result)

	letters := []string{}
	seen := map[string]bool{}
	for _, word := range words {
		if word == "" {
			return nil, nil, fmt.Errorf("cryptarithmetic words must be non-empty")
		}
		for _, letter := range word {
			// Column positions index bytes, so only ASCII letters are valid.
			if letter > unicode.MaxASCII {
				return nil, nil, fmt.Errorf("word %q contains non-ASCII letter %q", word, letter)
			}
			name := string(letter)
			if !seen[name] {
				seen[name] = true
				letters = append(letters, name)
			}
		}
	}
	if len(letters) > 10 {
		return nil, nil, fmt.Errorf("puzzle uses %d distinct letters, more than the 10 decimal digits", len(letters))
	}

	registry := csp.NewRegistry()
	constraints := csp.NewConstraintSet()

	for _, letter := range letters {
		if _, err := registry.Declare(letter, 0, 9); err != nil {
			return nil, nil, err
		}
	}

	// Leading letters of multi-digit words cannot be zero.
	for _, word := range words {
		if len(word) > 1 {
			constraints.Add(csp.Range{Var: string(word[0]), Lower: 1, Upper: 9})
		}
	}

	constraints.AllDifferent(letters...)

	switch strategy {
	case PositionalSum:
		encodePositionalSum(constraints, operands, result)
	case ColumnCarries:
		if err := encodeColumnCarries(registry, constraints, operands, result); err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, fmt.Errorf("unknown cryptarithmetic strategy %v", strategy)
	}

	return registry, constraints, nil
}

func encodePositionalSum(constraints *csp.ConstraintSet, operands []string, result string) {
	terms := []csp.Term{}
	for _, word := range operands {
		terms = append(terms, positionalTerms(word, 1)...)
	}
	terms = append(terms, positionalTerms(result, -1)...)
	constraints.Add(csp.LinearEq{Terms: terms, Sum: 0})
}

// positionalTerms yields sign*10^p per letter, p counted from the right.
func positionalTerms(word string, sign int) []csp.Term {
	terms := make([]csp.Term, 0, len(word))
	weight := 1
	for i := len(word) - 1; i >= 0; i-- {
		terms = append(terms, csp.Term{Coeff: sign * weight, Var: string(word[i])})
		weight *= 10
	}
	return terms
}

// encodeColumnCarries emits, for decimal column j:
//
//	sum(operand digits at j) + carry_j = result digit at j + 10*carry_{j+1}
//
// with carry_0 fixed at zero and the carry past the last column forced to
// zero. Every carry variable is bounded 0–9.
func encodeColumnCarries(registry *csp.Registry, constraints *csp.ConstraintSet, operands []string, result string) error {
	columns := len(result)
	for _, word := range operands {
		if len(word) > columns {
			columns = len(word)
		}
	}

	for j := 1; j <= columns; j++ {
		if _, err := registry.Declare(carryName(j), 0, 9); err != nil {
			return err
		}
	}

	for j := 0; j < columns; j++ {
		terms := []csp.Term{}
		for _, word := range operands {
			if letter, ok := letterAt(word, j); ok {
				terms = append(terms, csp.Term{Coeff: 1, Var: letter})
			}
		}
		if j > 0 {
			terms = append(terms, csp.Term{Coeff: 1, Var: carryName(j)})
		}
		if letter, ok := letterAt(result, j); ok {
			terms = append(terms, csp.Term{Coeff: -1, Var: letter})
		}
		terms = append(terms, csp.Term{Coeff: -10, Var: carryName(j + 1)})
		constraints.Add(csp.LinearEq{Terms: terms, Sum: 0})
	}

	constraints.Add(csp.Equals(carryName(columns), 0))
	return nil
}

func carryName(column int) string {
	return fmt.Sprintf("carry%d", column)
}

// letterAt returns the letter of word in decimal column j (counted from the
// right), if the word is long enough.
func letterAt(word string, j int) (string, bool) {
	if j >= len(word) {
		return "", false
	}
	return string(word[len(word)-1-j]), true
}

// WordValue reads the decimal number a word denotes under a model.
func WordValue(model csp.Model, word string) int {
	value := 0
	for _, letter := range word {
		value = value*10 + model[string(letter)]
	}
	return value
}
