package csp

import (
	"errors"

	"github.com/johngreibelarsen/ai-constraint-satisfaction/pkg/sat"
)

// Adapter owns one backend session and translates the accumulated variables
// and constraints into the backend's native form. A Solve is exactly one
// backend invocation: no retries, no repair.
type Adapter struct {
	registry    *Registry
	constraints *ConstraintSet
	solver      sat.SATSolver
}

func NewAdapter(registry *Registry, constraints *ConstraintSet, solver sat.SATSolver) *Adapter {
	return &Adapter{
		registry:    registry,
		constraints: constraints,
		solver:      solver,
	}
}

// Solve checks satisfiability and decodes the witness. A nil model with a nil
// error means the constraints admit no assignment, which is an expected
// outcome. ErrTimeout passes through unchanged; every other backend failure
// is wrapped in BackendError.
func (a *Adapter) Solve() (Model, error) {
	if err := a.checkReferences(); err != nil {
		return nil, err
	}

	encoder := newEncoder(a.registry, sat.SolverCapabilities(a.solver))
	instance, err := encoder.encode(a.constraints)
	if err != nil {
		return nil, err
	}

	solution, err := a.solver.Solve(instance)
	if err != nil {
		if errors.Is(err, sat.ErrTimeout) {
			return nil, err
		}
		return nil, &BackendError{Err: err}
	}
	if solution == nil {
		return nil, nil
	}

	model, err := encoder.decode(solution)
	if err != nil {
		return nil, &BackendError{Err: err}
	}
	return model, nil
}

// checkReferences verifies that every constraint only mentions declared
// variables. A violation is a programming error in the caller's encoding and
// fails the solve before any backend work.
func (a *Adapter) checkReferences() error {
	for _, constraint := range a.constraints.All() {
		for _, name := range constraint.Variables() {
			if _, err := a.registry.Lookup(name); err != nil {
				return err
			}
		}
	}
	return nil
}
