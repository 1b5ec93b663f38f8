package sat

import (
	"errors"
	"fmt"
)

// ErrTimeout is returned by solvers configured with a wall-clock limit when the
// limit expires before a verdict. It is a distinct outcome: neither a model nor
// an unsatisfiability report accompanies it.
var ErrTimeout = errors.New("solver timed out")

type SATSolver interface {
	Solve(SAT) (SATSolution, error) // Returns a solution of the SAT instance if satisfiable, else returns nil (these are valid outputs where error shall be nil)
}

// Capabilities describes the constraint forms a backend accepts natively
// beyond plain CNF clauses.
type Capabilities struct {
	Cardinality   bool
	PseudoBoolean bool
}

// CapabilityReporter is implemented by solvers accepting more than plain CNF.
type CapabilityReporter interface {
	Capabilities() Capabilities
}

// SolverCapabilities reports the capabilities of any SATSolver; solvers that do
// not report are plain-CNF solvers.
func SolverCapabilities(solver SATSolver) Capabilities {
	if reporter, ok := solver.(CapabilityReporter); ok {
		return reporter.Capabilities()
	}
	return Capabilities{}
}

func requirePlainCNF(instance SAT) error {
	if len(instance.AtMost) > 0 || len(instance.PseudoBoolean) > 0 {
		return fmt.Errorf("instance carries %d cardinality and %d pseudo-boolean constraints the backend cannot express", len(instance.AtMost), len(instance.PseudoBoolean))
	}
	return nil
}
