package csp

// Model is a satisfying assignment: variable name to concrete value. It is
// produced once per solve and consumed read-only.
type Model map[string]int

// Value returns the assigned value of a variable and whether it is present.
func (m Model) Value(name string) (int, bool) {
	value, ok := m[name]
	return value, ok
}
