package sat

import (
	"fmt"
	"strings"
)

// SATSolution is the list of literals assigned by a satisfying model: the
// literal i+1 appears positively if the i-th variable is true, negated otherwise.
type SATSolution []int64

// AtMost states that at most K of Lits may be true. Only backends whose
// Capabilities report Cardinality receive these; for every other backend the
// encoder expands them into plain clauses beforehand.
type AtMost struct {
	Lits []int64
	K    int
}

// PseudoBoolean states that the weighted sum of the true literals among Lits
// is at least AtLeast. Weights must be parallel to Lits and non-negative.
type PseudoBoolean struct {
	Lits    []int64
	Weights []int
	AtLeast int
}

type SAT struct {
	Variables     uint64
	Clauses       [][]int64
	AtMost        []AtMost
	PseudoBoolean []PseudoBoolean
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}
