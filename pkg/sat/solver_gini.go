package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// giniSolver runs the gini SAT engine in-process: no executable, no DIMACS
// round-trip, which makes it the default backend.
type giniSolver struct{}

func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(instance SAT) (SATSolution, error) {
	if err := requirePlainCNF(instance); err != nil {
		return nil, err
	}

	g := gini.New()
	for _, clause := range instance.Clauses {
		for _, literal := range clause {
			g.Add(giniLit(literal))
		}
		g.Add(0) // Terminate clause
	}

	switch g.Solve() {
	case 1:
		solution := make(SATSolution, 0, instance.Variables)
		for variable := int64(1); variable <= int64(instance.Variables); variable++ {
			if g.Value(z.Var(uint32(variable)).Pos()) {
				solution = append(solution, variable)
			} else {
				solution = append(solution, -variable)
			}
		}
		return solution, nil
	case -1:
		return nil, nil
	default:
		return nil, fmt.Errorf("gini returned an indeterminate verdict")
	}
}

func giniLit(literal int64) z.Lit {
	if literal < 0 {
		return z.Var(uint32(-literal)).Pos().Not()
	}
	return z.Var(uint32(literal)).Pos()
}
