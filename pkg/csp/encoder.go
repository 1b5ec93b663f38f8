package csp

import (
	"fmt"
	"slices"

	"github.com/johngreibelarsen/ai-constraint-satisfaction/pkg/sat"
)

// Above this domain width the pairwise at-most-one expansion is replaced by
// the sequential encoding; auxiliary sum chains can span thousands of values.
const pairwiseAtMostOneLimit = 16

// encoder lowers a Registry + ConstraintSet into a SAT instance through the
// direct encoding: one boolean per (variable, value) pair, with an exactly-one
// group per variable.
type encoder struct {
	registry     *Registry
	capabilities sat.Capabilities

	variables uint64
	clauses   [][]int64
	atMost    []sat.AtMost
	pseudo    []sat.PseudoBoolean

	columns map[string]column
}

// column holds the value booleans of one finite-domain variable.
type column struct {
	values []int
	lits   map[int]int64
}

func (c column) lit(value int) (int64, bool) {
	literal, ok := c.lits[value]
	return literal, ok
}

func newEncoder(registry *Registry, capabilities sat.Capabilities) *encoder {
	e := &encoder{
		registry:     registry,
		capabilities: capabilities,
		columns:      make(map[string]column, registry.Size()),
	}
	for _, variable := range registry.Variables() {
		e.columns[variable.Name] = e.newColumn(variable.Domain.Enumerate())
	}
	return e
}

func (e *encoder) encode(constraints *ConstraintSet) (sat.SAT, error) {
	for _, constraint := range constraints.All() {
		var err error
		switch c := constraint.(type) {
		case Range:
			e.encodeRange(c)
		case NotEqual:
			e.encodeNotEqual(c)
		case AllDifferent:
			e.encodeAllDifferent(c)
		case LinearEq:
			err = e.encodeLinearEq(c)
		case AbsDifferenceNotEqual:
			e.encodeAbsDifference(c)
		case CardinalityEq:
			err = e.encodeCardinality(c)
		default:
			err = fmt.Errorf("unsupported constraint kind %v", constraint.Kind())
		}
		if err != nil {
			return sat.SAT{}, err
		}
	}

	return sat.SAT{
		Variables:     e.variables,
		Clauses:       e.clauses,
		AtMost:        e.atMost,
		PseudoBoolean: e.pseudo,
	}, nil
}

// decode reads the value of every registry variable out of a solver witness.
func (e *encoder) decode(solution sat.SATSolution) (Model, error) {
	positive := make(map[int64]bool, len(solution))
	for _, literal := range solution {
		if literal > 0 {
			positive[literal] = true
		}
	}

	model := make(Model, e.registry.Size())
	for _, variable := range e.registry.Variables() {
		col := e.columns[variable.Name]
		assigned := false
		for _, value := range col.values {
			if positive[col.lits[value]] {
				model[variable.Name] = value
				assigned = true
				break
			}
		}
		if !assigned {
			return nil, fmt.Errorf("backend witness assigns no value to variable %q", variable.Name)
		}
	}
	return model, nil
}

func (e *encoder) newBool() int64 {
	e.variables++
	return int64(e.variables)
}

func (e *encoder) addClause(literals ...int64) {
	e.clauses = append(e.clauses, literals)
}

// markInfeasible injects a trivially contradictory pair of unit clauses,
// turning a statically impossible constraint into an unsatisfiable instance.
func (e *encoder) markInfeasible() {
	contradiction := e.newBool()
	e.addClause(contradiction)
	e.addClause(-contradiction)
}

func (e *encoder) newColumn(values []int) column {
	col := column{values: values, lits: make(map[int]int64, len(values))}
	for _, value := range values {
		col.lits[value] = e.newBool()
	}
	literals := make([]int64, len(values))
	for i, value := range values {
		literals[i] = col.lits[value]
	}
	e.addClause(literals...) // At least one value holds
	e.atMostOne(literals)
	return col
}

func (e *encoder) atMostOne(literals []int64) {
	if len(literals) < 2 {
		return
	}
	if e.capabilities.Cardinality {
		e.atMost = append(e.atMost, sat.AtMost{Lits: slices.Clone(literals), K: 1})
		return
	}
	if len(literals) <= pairwiseAtMostOneLimit {
		for i := 0; i < len(literals)-1; i++ {
			for j := i + 1; j < len(literals); j++ {
				e.addClause(-literals[i], -literals[j])
			}
		}
		return
	}
	e.sequentialAtMostOne(literals)
}

// sequentialAtMostOne is the linear-size ladder encoding: seen[i] tracks
// whether any literal up to index i is already true.
func (e *encoder) sequentialAtMostOne(literals []int64) {
	seen := e.newBool()
	e.addClause(-literals[0], seen)
	for i := 1; i < len(literals); i++ {
		e.addClause(-seen, -literals[i])
		if i == len(literals)-1 {
			break
		}
		next := e.newBool()
		e.addClause(-literals[i], next)
		e.addClause(-seen, next)
		seen = next
	}
}

func (e *encoder) encodeRange(c Range) {
	col := e.columns[c.Var]
	for _, value := range col.values {
		if value < c.Lower || value > c.Upper {
			e.addClause(-col.lits[value])
		}
	}
}

func (e *encoder) encodeNotEqual(c NotEqual) {
	colA, colB := e.columns[c.A], e.columns[c.B]
	for _, value := range colA.values {
		if litB, ok := colB.lit(value); ok {
			e.addClause(-colA.lits[value], -litB)
		}
	}
}

func (e *encoder) encodeAllDifferent(c AllDifferent) {
	if !e.capabilities.Cardinality {
		for _, pair := range c.Pairwise() {
			e.encodeNotEqual(pair.(NotEqual))
		}
		return
	}

	// Set-distinctness form: every shared value is taken at most once.
	valueLits := make(map[int][]int64)
	valueOrder := []int{}
	for _, name := range c.Vars {
		col := e.columns[name]
		for _, value := range col.values {
			if _, ok := valueLits[value]; !ok {
				valueOrder = append(valueOrder, value)
			}
			valueLits[value] = append(valueLits[value], col.lits[value])
		}
	}
	slices.Sort(valueOrder)
	for _, value := range valueOrder {
		if literals := valueLits[value]; len(literals) > 1 {
			e.atMost = append(e.atMost, sat.AtMost{Lits: literals, K: 1})
		}
	}
}

func (e *encoder) encodeAbsDifference(c AbsDifferenceNotEqual) {
	colA, colB := e.columns[c.A], e.columns[c.B]
	for _, valueA := range colA.values {
		for _, valueB := range colB.values {
			if absValue(valueA-valueB) == c.Distance {
				e.addClause(-colA.lits[valueA], -colB.lits[valueB])
			}
		}
	}
}

// absValue is the two-way branch form of absolute value: the value itself when
// non-negative, else its negation. Backends are not assumed to have a native
// operator for it.
func absValue(value int) int {
	if value >= 0 {
		return value
	}
	return -value
}

// encodeLinearEq lowers sum(coeff_i * var_i) = k through a chain of auxiliary
// partial-sum columns: after each term the set of reachable sums is
// materialized as a fresh exactly-one column, pruned to sums from which k is
// still attainable given the remaining terms.
func (e *encoder) encodeLinearEq(c LinearEq) error {
	terms := mergeTerms(c.Terms)

	if len(terms) == 0 {
		if c.Sum != 0 {
			e.markInfeasible()
		}
		return nil
	}

	if len(terms) == 1 {
		// Single term: a direct value pin.
		term := terms[0]
		col := e.columns[term.Var]
		matched := false
		for _, value := range col.values {
			if term.Coeff*value == c.Sum {
				e.addClause(col.lits[value])
				matched = true
			} else {
				e.addClause(-col.lits[value])
			}
		}
		if !matched {
			e.markInfeasible()
		}
		return nil
	}

	suffixMin, suffixMax := suffixBounds(e, terms)

	// prev maps each reachable partial sum to the literal asserting it.
	prev := map[int]int64{0: 0}
	for i, term := range terms {
		col := e.columns[term.Var]
		reachable := map[int][][2]int64{} // next sum -> supporting (prevLit, valueLit) pairs
		for sum, prevLit := range prev {
			for _, value := range col.values {
				next := sum + term.Coeff*value
				remaining := c.Sum - next
				if remaining < suffixMin[i+1] || remaining > suffixMax[i+1] {
					// k is unreachable from here: rule the pair out
					// instead of just dropping it, or a witness could
					// escape the tracked sums.
					e.forbidSupport([2]int64{prevLit, col.lits[value]})
					continue
				}
				reachable[next] = append(reachable[next], [2]int64{prevLit, col.lits[value]})
			}
		}
		if len(reachable) == 0 {
			e.markInfeasible()
			return nil
		}

		sums := make([]int, 0, len(reachable))
		for sum := range reachable {
			sums = append(sums, sum)
		}
		slices.Sort(sums)

		if i == len(terms)-1 {
			// The final partial sum must be exactly k: forbid every
			// support pair leading elsewhere.
			for _, sum := range sums {
				if sum == c.Sum {
					continue
				}
				for _, support := range reachable[sum] {
					e.forbidSupport(support)
				}
			}
			if _, ok := reachable[c.Sum]; !ok {
				e.markInfeasible()
			}
			return nil
		}

		cur := e.newColumn(sums)
		for _, sum := range sums {
			for _, support := range reachable[sum] {
				e.implySupport(support, cur.lits[sum])
			}
		}
		prev = cur.lits
	}
	return nil
}

func (e *encoder) implySupport(support [2]int64, target int64) {
	if support[0] == 0 { // First term of the chain has no predecessor column
		e.addClause(-support[1], target)
		return
	}
	e.addClause(-support[0], -support[1], target)
}

func (e *encoder) forbidSupport(support [2]int64) {
	if support[0] == 0 {
		e.addClause(-support[1])
		return
	}
	e.addClause(-support[0], -support[1])
}

// mergeTerms folds duplicate variables into single coefficients and drops
// zero coefficients, preserving first-appearance order.
func mergeTerms(terms []Term) []Term {
	coeffs := make(map[string]int, len(terms))
	order := make([]string, 0, len(terms))
	for _, term := range terms {
		if _, ok := coeffs[term.Var]; !ok {
			order = append(order, term.Var)
		}
		coeffs[term.Var] += term.Coeff
	}
	merged := make([]Term, 0, len(order))
	for _, name := range order {
		if coeffs[name] != 0 {
			merged = append(merged, Term{Coeff: coeffs[name], Var: name})
		}
	}
	return merged
}

// suffixBounds computes, for every suffix of the term list, the least and
// greatest sum it can still contribute.
func suffixBounds(e *encoder, terms []Term) (suffixMin, suffixMax []int) {
	suffixMin = make([]int, len(terms)+1)
	suffixMax = make([]int, len(terms)+1)
	for i := len(terms) - 1; i >= 0; i-- {
		values := e.columns[terms[i].Var].values
		low, high := terms[i].Coeff*values[0], terms[i].Coeff*values[len(values)-1]
		if low > high {
			low, high = high, low
		}
		suffixMin[i] = suffixMin[i+1] + low
		suffixMax[i] = suffixMax[i+1] + high
	}
	return suffixMin, suffixMax
}

// encodeCardinality lowers a weighted cardinality equality. On a
// pseudo-boolean-capable backend it becomes a pair of native inequalities;
// elsewhere it becomes a chain of reachable weighted counts, like the linear
// equation encoding but over boolean indicator terms.
func (e *encoder) encodeCardinality(c CardinalityEq) error {
	if len(c.Terms) == 0 {
		if c.Sum != 0 {
			e.markInfeasible()
		}
		return nil
	}

	literals := make([]int64, len(c.Terms))
	weights := make([]int, len(c.Terms))
	total := 0
	for i, term := range c.Terms {
		if term.Weight < 0 {
			return fmt.Errorf("cardinality constraint carries negative weight %d", term.Weight)
		}
		literals[i] = e.indicator(term.Term)
		weights[i] = term.Weight
		total += term.Weight
	}

	if c.Sum < 0 || c.Sum > total {
		e.markInfeasible()
		return nil
	}

	if e.capabilities.PseudoBoolean {
		if c.Sum > 0 {
			e.pseudo = append(e.pseudo, sat.PseudoBoolean{Lits: slices.Clone(literals), Weights: slices.Clone(weights), AtLeast: c.Sum})
		}
		if total-c.Sum > 0 {
			negated := make([]int64, len(literals))
			for i, literal := range literals {
				negated[i] = -literal
			}
			// sum(w * x) <= k  <=>  sum(w * !x) >= total - k
			e.pseudo = append(e.pseudo, sat.PseudoBoolean{Lits: negated, Weights: slices.Clone(weights), AtLeast: total - c.Sum})
		}
		return nil
	}

	if c.Sum == 0 {
		// The common zero-count form needs no counting at all.
		for i, literal := range literals {
			if weights[i] > 0 {
				e.addClause(-literal)
			}
		}
		return nil
	}

	suffixTotals := make([]int, len(weights)+1)
	for i := len(weights) - 1; i >= 0; i-- {
		suffixTotals[i] = suffixTotals[i+1] + weights[i]
	}

	prev := map[int]int64{0: 0}
	for i := range literals {
		reachable := map[int][][2]int64{} // next count -> (prevLit, ±indicator) supports
		for count, prevLit := range prev {
			for _, taken := range []bool{false, true} {
				next := count
				indicator := -literals[i]
				if taken {
					next += weights[i]
					indicator = literals[i]
				}
				if c.Sum-next < 0 || c.Sum-next > suffixTotals[i+1] {
					e.forbidSupport([2]int64{prevLit, indicator})
					continue
				}
				reachable[next] = append(reachable[next], [2]int64{prevLit, indicator})
			}
		}
		if len(reachable) == 0 {
			e.markInfeasible()
			return nil
		}

		counts := make([]int, 0, len(reachable))
		for count := range reachable {
			counts = append(counts, count)
		}
		slices.Sort(counts)

		if i == len(literals)-1 {
			for _, count := range counts {
				if count == c.Sum {
					continue
				}
				for _, support := range reachable[count] {
					e.forbidSupport(support)
				}
			}
			if _, ok := reachable[c.Sum]; !ok {
				e.markInfeasible()
			}
			return nil
		}

		cur := e.newColumn(counts)
		for _, count := range counts {
			for _, support := range reachable[count] {
				e.implySupport(support, cur.lits[count])
			}
		}
		prev = cur.lits
	}
	return nil
}

// indicator returns a literal equivalent to the given boolean term.
func (e *encoder) indicator(term BoolTerm) int64 {
	switch t := term.(type) {
	case VarEqualsConst:
		col := e.columns[t.Var]
		if literal, ok := col.lit(t.Value); ok {
			return literal
		}
		falsehood := e.newBool()
		e.addClause(-falsehood)
		return falsehood
	case VarsEqual:
		colA, colB := e.columns[t.A], e.columns[t.B]
		equal := e.newBool()
		shared := false
		for _, value := range colA.values {
			litA := colA.lits[value]
			if litB, ok := colB.lit(value); ok {
				shared = true
				e.addClause(-litA, -litB, equal) // both hold value -> equal
				e.addClause(-equal, -litA, litB) // equal and A holds value -> so does B
			} else {
				e.addClause(-equal, -litA)
			}
		}
		if !shared {
			e.addClause(-equal)
		}
		return equal
	default:
		panic(fmt.Sprintf("unsupported boolean term %T", term))
	}
}
