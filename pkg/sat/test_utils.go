package sat

import "math/rand"

// GenerateSATInstance builds a random plain-CNF instance. Every variable joins
// each clause with probability one half under a random sign; a clause that
// comes out empty gets one random literal so the instance stays well-formed.
func GenerateSATInstance(variables uint64, clauses int) SAT {
	instance := SAT{
		Variables: variables,
		Clauses:   make([][]int64, clauses),
	}

	for i := 0; i < clauses; i++ {
		clause := make([]int64, 0, variables)
		for variable := int64(1); variable <= int64(variables); variable++ {
			if rand.Float32() < 0.5 {
				clause = append(clause, randomSign()*variable)
			}
		}
		if len(clause) == 0 {
			clause = append(clause, randomSign()*(1+rand.Int63n(int64(variables))))
		}
		instance.Clauses[i] = clause
	}

	return instance
}

// GenerateCardinalitySATInstance layers random at-most-K constraints on top of
// a random plain-CNF instance, so backends reporting the cardinality
// capability get exercised beyond bare clauses.
func GenerateCardinalitySATInstance(variables uint64, clauses, cardinalities int) SAT {
	instance := GenerateSATInstance(variables, clauses)

	for i := 0; i < cardinalities; i++ {
		width := rand.Intn(int(variables)) + 1
		lits := make([]int64, 0, width)
		for variable := int64(1); variable <= int64(width); variable++ {
			lits = append(lits, randomSign()*variable)
		}
		instance.AtMost = append(instance.AtMost, AtMost{Lits: lits, K: rand.Intn(width) + 1})
	}

	return instance
}

func randomSign() int64 {
	if rand.Float32() < 0.5 {
		return -1
	}
	return 1
}

// AssertSATSolution reports whether the solution is a consistent assignment
// satisfying every clause, at-most-K and pseudo-boolean constraint of the
// instance.
func AssertSATSolution(instance SAT, solution SATSolution) bool {
	// Make sure there are no duplicates nor contradictions
	assigned := make(map[int64]bool)
	for _, literal := range solution {
		if assigned[literal] || assigned[-literal] {
			return false
		}
		assigned[literal] = true
	}

	for _, clause := range instance.Clauses {
		satisfied := false
		for _, literal := range clause {
			if assigned[literal] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	for _, atMost := range instance.AtMost {
		held := 0
		for _, literal := range atMost.Lits {
			if assigned[literal] {
				held++
			}
		}
		if held > atMost.K {
			return false
		}
	}

	for _, pb := range instance.PseudoBoolean {
		total := 0
		for i, literal := range pb.Lits {
			if assigned[literal] {
				total += pb.Weights[i]
			}
		}
		if total < pb.AtLeast {
			return false
		}
	}

	return true
}
