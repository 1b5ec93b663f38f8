package sat

import (
	"fmt"

	"github.com/crillab/gophersat/solver"
	"github.com/samber/lo"
)

// gophersatSolver runs the gophersat engine in-process. Unlike the plain-CNF
// backends it understands cardinality and weighted pseudo-boolean constraints
// natively, so the encoder hands those over unexpanded.
type gophersatSolver struct{}

func NewGophersatSolver() SATSolver {
	return &gophersatSolver{}
}

func (gophersatSolver) Capabilities() Capabilities {
	return Capabilities{Cardinality: true, PseudoBoolean: true}
}

func (s *gophersatSolver) Solve(instance SAT) (SATSolution, error) {
	var problem *solver.Problem
	if len(instance.AtMost) == 0 && len(instance.PseudoBoolean) == 0 {
		clauses := lo.Map(instance.Clauses, func(clause []int64, _ int) []int {
			return lo.Map(clause, func(literal int64, _ int) int { return int(literal) })
		})
		problem = solver.ParseSlice(clauses)
	} else {
		problem = solver.ParsePBConstrs(s.pbConstraints(instance))
	}

	engine := solver.New(problem)
	switch engine.Solve() {
	case solver.Sat:
		model := engine.Model()
		solution := make(SATSolution, 0, instance.Variables)
		for variable := int64(1); variable <= int64(instance.Variables); variable++ {
			if int(variable) <= len(model) && model[variable-1] {
				solution = append(solution, variable)
			} else {
				solution = append(solution, -variable)
			}
		}
		return solution, nil
	case solver.Unsat:
		return nil, nil
	default:
		return nil, fmt.Errorf("gophersat returned an indeterminate verdict")
	}
}

// pbConstraints lowers the whole instance into gophersat's pseudo-boolean
// form: a clause is an at-least-1 over unit weights, and an at-most-K is an
// at-least-(n-K) over the negated literals.
func (s *gophersatSolver) pbConstraints(instance SAT) []solver.PBConstr {
	constrs := make([]solver.PBConstr, 0, len(instance.Clauses)+len(instance.AtMost)+len(instance.PseudoBoolean))

	for _, clause := range instance.Clauses {
		lits := lo.Map(clause, func(literal int64, _ int) int { return int(literal) })
		constrs = append(constrs, solver.PBConstr{Lits: lits, Weights: unitWeights(len(lits)), AtLeast: 1})
	}
	for _, atMost := range instance.AtMost {
		negated := lo.Map(atMost.Lits, func(literal int64, _ int) int { return int(-literal) })
		constrs = append(constrs, solver.PBConstr{Lits: negated, Weights: unitWeights(len(negated)), AtLeast: len(negated) - atMost.K})
	}
	for _, pb := range instance.PseudoBoolean {
		lits := lo.Map(pb.Lits, func(literal int64, _ int) int { return int(literal) })
		constrs = append(constrs, solver.PBConstr{Lits: lits, Weights: pb.Weights, AtLeast: pb.AtLeast})
	}

	return constrs
}

func unitWeights(n int) []int {
	weights := make([]int, n)
	for i := range weights {
		weights[i] = 1
	}
	return weights
}
