package csp

import "github.com/samber/lo"

type Kind int

const (
	KindRange Kind = iota
	KindNotEqual
	KindAllDifferent
	KindLinearEq
	KindAbsDifferenceNotEqual
	KindCardinalityEq
)

// Constraint is a closed, typed expression over declared variables. The tagged
// variants below are everything a backend translation needs to understand, so
// backends can be swapped without touching the puzzle encoders.
type Constraint interface {
	Kind() Kind
	Variables() []string
}

// Range restricts a variable to the inclusive interval [Lower, Upper] on top
// of its declared domain.
type Range struct {
	Var          string
	Lower, Upper int
}

func (Range) Kind() Kind            { return KindRange }
func (c Range) Variables() []string { return []string{c.Var} }

// NotEqual is a pairwise inequality between two variables.
type NotEqual struct {
	A, B string
}

func (NotEqual) Kind() Kind            { return KindNotEqual }
func (c NotEqual) Variables() []string { return []string{c.A, c.B} }

// AllDifferent requires every listed variable to take a distinct value. It is
// lowered either to a native set-distinctness form or to the O(n²) pairwise
// expansion, depending on backend capability; the two are equivalent.
type AllDifferent struct {
	Vars []string
}

func (AllDifferent) Kind() Kind            { return KindAllDifferent }
func (c AllDifferent) Variables() []string { return c.Vars }

// Pairwise returns the explicit pairwise-inequality expansion of an
// all-different group.
func (c AllDifferent) Pairwise() []Constraint {
	pairs := make([]Constraint, 0, len(c.Vars)*(len(c.Vars)-1)/2)
	for i := 0; i < len(c.Vars)-1; i++ {
		for j := i + 1; j < len(c.Vars); j++ {
			pairs = append(pairs, NotEqual{A: c.Vars[i], B: c.Vars[j]})
		}
	}
	return pairs
}

// Term is one addend of a linear equation: Coeff times the variable's value.
type Term struct {
	Coeff int
	Var   string
}

// LinearEq requires the sum of its terms to equal Sum exactly. All
// coefficients are integers; a variable may appear in several terms, which are
// merged before encoding.
type LinearEq struct {
	Terms []Term
	Sum   int
}

func (LinearEq) Kind() Kind { return KindLinearEq }
func (c LinearEq) Variables() []string {
	return lo.Map(c.Terms, func(term Term, _ int) string { return term.Var })
}

// Equals pins a variable to a constant, as a one-term linear equation.
func Equals(name string, value int) LinearEq {
	return LinearEq{Terms: []Term{{Coeff: 1, Var: name}}, Sum: value}
}

// AbsDifferenceNotEqual forbids |A - B| from equaling Distance.
type AbsDifferenceNotEqual struct {
	A, B     string
	Distance int
}

func (AbsDifferenceNotEqual) Kind() Kind            { return KindAbsDifferenceNotEqual }
func (c AbsDifferenceNotEqual) Variables() []string { return []string{c.A, c.B} }

// BoolTerm is a boolean-valued indicator usable inside a cardinality
// constraint.
type BoolTerm interface {
	Variables() []string
	boolTerm()
}

// VarEqualsConst indicates that a variable holds a specific value.
type VarEqualsConst struct {
	Var   string
	Value int
}

func (VarEqualsConst) boolTerm()             {}
func (t VarEqualsConst) Variables() []string { return []string{t.Var} }

// VarsEqual indicates that two variables hold the same value.
type VarsEqual struct {
	A, B string
}

func (VarsEqual) boolTerm()             {}
func (t VarsEqual) Variables() []string { return []string{t.A, t.B} }

type WeightedTerm struct {
	Weight int
	Term   BoolTerm
}

// CardinalityEq is a pseudo-boolean equality: the weighted sum of the true
// indicator terms must equal Sum. Weights must be non-negative.
type CardinalityEq struct {
	Terms []WeightedTerm
	Sum   int
}

func (CardinalityEq) Kind() Kind { return KindCardinalityEq }
func (c CardinalityEq) Variables() []string {
	return lo.FlatMap(c.Terms, func(term WeightedTerm, _ int) []string { return term.Term.Variables() })
}

// ConstraintSet is an append-only accumulation of constraints; a solve
// operates over the full set.
type ConstraintSet struct {
	constraints []Constraint
}

func NewConstraintSet() *ConstraintSet {
	return &ConstraintSet{}
}

func (s *ConstraintSet) Add(constraints ...Constraint) {
	s.constraints = append(s.constraints, constraints...)
}

// AllDifferent is a convenience for adding a distinctness group.
func (s *ConstraintSet) AllDifferent(names ...string) {
	s.Add(AllDifferent{Vars: names})
}

func (s *ConstraintSet) All() []Constraint {
	return s.constraints
}

func (s *ConstraintSet) Size() int {
	return len(s.constraints)
}
