package csp

import (
	"fmt"
	"slices"
)

// Domain is the set of values a variable may take: either the inclusive
// integer range [Lower, Upper], or the explicit finite set Values (which wins
// when non-nil).
type Domain struct {
	Lower, Upper int
	Values       []int
}

// Enumerate returns the domain values in ascending order, without duplicates.
func (d Domain) Enumerate() []int {
	if d.Values != nil {
		values := slices.Clone(d.Values)
		slices.Sort(values)
		return slices.Compact(values)
	}
	values := make([]int, 0, d.Upper-d.Lower+1)
	for value := d.Lower; value <= d.Upper; value++ {
		values = append(values, value)
	}
	return values
}

func (d Domain) Contains(value int) bool {
	if d.Values != nil {
		return slices.Contains(d.Values, value)
	}
	return value >= d.Lower && value <= d.Upper
}

// Variable is a handle to a declared variable. Immutable once declared.
type Variable struct {
	Name   string
	Domain Domain
}

// Registry maps symbolic names to bounded integer domains. It grows
// monotonically: there is no removal operation.
type Registry struct {
	inorder []Variable
	byName  map[string]Variable
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Variable)}
}

// Declare registers a variable over the inclusive range [lower, upper].
func (r *Registry) Declare(name string, lower, upper int) (Variable, error) {
	if lower > upper {
		return Variable{}, fmt.Errorf("variable %q has empty domain [%d, %d]", name, lower, upper)
	}
	return r.register(Variable{Name: name, Domain: Domain{Lower: lower, Upper: upper}})
}

// DeclareSet registers a variable over an explicit finite value set.
func (r *Registry) DeclareSet(name string, values []int) (Variable, error) {
	if len(values) == 0 {
		return Variable{}, fmt.Errorf("variable %q has empty domain", name)
	}
	return r.register(Variable{Name: name, Domain: Domain{Values: slices.Clone(values)}})
}

func (r *Registry) register(variable Variable) (Variable, error) {
	if _, ok := r.byName[variable.Name]; ok {
		return Variable{}, DuplicateNameError(variable.Name)
	}
	r.byName[variable.Name] = variable
	r.inorder = append(r.inorder, variable)
	return variable, nil
}

func (r *Registry) Lookup(name string) (Variable, error) {
	variable, ok := r.byName[name]
	if !ok {
		return Variable{}, UnknownVariableError(name)
	}
	return variable, nil
}

// Variables returns the declared variables in declaration order.
func (r *Registry) Variables() []Variable {
	return r.inorder
}

func (r *Registry) Size() int {
	return len(r.inorder)
}
