package sat

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGiniSatisfiable(t *testing.T) {
	runRandomInstances(t, NewGiniSolver())
}

func TestGophersatSatisfiable(t *testing.T) {
	runRandomInstances(t, NewGophersatSolver())
}

func runRandomInstances(t *testing.T, solver SATSolver) {
	unsatisfiableCount := 0

	for i := 0; i < 10; i++ {
		literals := uint64(rand.Intn(100) + 1)
		clauses := rand.Intn(200) + 1
		instance := GenerateSATInstance(literals, clauses)

		solution, err := solver.Solve(instance)
		if err != nil {
			t.Errorf("an error occurred while solving a SAT instance: %v", err)
		}

		if solution == nil {
			unsatisfiableCount++
			continue
		}

		if !AssertSATSolution(instance, solution) {
			t.Error("Wrong answer")
		}
	}

	log.Printf("Unsatisfiable instances: %v", unsatisfiableCount)
}

func TestSolversAgree(t *testing.T) {
	gini := NewGiniSolver()
	gophersat := NewGophersatSolver()

	for i := 0; i < 20; i++ {
		literals := uint64(rand.Intn(20) + 1)
		clauses := rand.Intn(80) + 1
		instance := GenerateSATInstance(literals, clauses)

		giniSolution, err := gini.Solve(instance)
		assert.Nil(t, err)
		gophersatSolution, err := gophersat.Solve(instance)
		assert.Nil(t, err)

		assert.Equal(t, giniSolution == nil, gophersatSolution == nil, "backends disagree on satisfiability")
	}
}

func TestGophersatCardinalityInstances(t *testing.T) {
	solver := NewGophersatSolver()

	for i := 0; i < 10; i++ {
		variables := uint64(rand.Intn(20) + 1)
		instance := GenerateCardinalitySATInstance(variables, rand.Intn(60)+1, rand.Intn(3)+1)

		solution, err := solver.Solve(instance)
		assert.Nil(t, err)
		if solution == nil {
			continue
		}
		assert.True(t, AssertSATSolution(instance, solution), "solution violates a constraint of the instance")
	}
}

func TestGophersatAtMost(t *testing.T) {
	// Three variables, each forced true unless the cardinality constraint
	// intervenes: at most one of them may hold.
	instance := SAT{
		Variables: 3,
		Clauses:   [][]int64{{1, 2, 3}},
		AtMost:    []AtMost{{Lits: []int64{1, 2, 3}, K: 1}},
	}

	solution, err := NewGophersatSolver().Solve(instance)
	assert.Nil(t, err)
	assert.NotNil(t, solution)

	positive := 0
	for _, literal := range solution {
		if literal > 0 {
			positive++
		}
	}
	assert.LessOrEqual(t, positive, 1)
}

func TestGophersatPseudoBoolean(t *testing.T) {
	// 3a + 5b + 7c >= 8 with c forbidden forces both a and b.
	instance := SAT{
		Variables: 3,
		Clauses:   [][]int64{{-3}},
		PseudoBoolean: []PseudoBoolean{
			{Lits: []int64{1, 2, 3}, Weights: []int{3, 5, 7}, AtLeast: 8},
		},
	}

	solution, err := NewGophersatSolver().Solve(instance)
	assert.Nil(t, err)
	assert.Equal(t, SATSolution{1, 2, -3}, solution)
}

func TestPlainCNFBackendRejectsCardinality(t *testing.T) {
	instance := SAT{
		Variables: 2,
		Clauses:   [][]int64{{1, 2}},
		AtMost:    []AtMost{{Lits: []int64{1, 2}, K: 1}},
	}

	_, err := NewGiniSolver().Solve(instance)
	assert.NotNil(t, err)
}

// stubSolverConfig points the named config entry at a script that sleeps far
// longer than any test deadline, and restores ConfigPath afterwards.
func stubSolverConfig(t *testing.T, entry string) {
	dir := t.TempDir()
	stub := filepath.Join(dir, "slow-solver")
	err := os.WriteFile(stub, []byte("#!/bin/sh\nsleep 5\n"), 0o755)
	assert.Nil(t, err)

	config := filepath.Join(dir, "config.json")
	err = os.WriteFile(config, []byte(fmt.Sprintf("{%q: %q}", entry, stub)), 0o644)
	assert.Nil(t, err)

	previous := ConfigPath
	ConfigPath = config
	t.Cleanup(func() { ConfigPath = previous })
}

func TestKissatTimeout(t *testing.T) {
	stubSolverConfig(t, "kissatPath")

	solution, err := NewKissatSolverTimeout(100 * time.Millisecond).Solve(GenerateSATInstance(3, 2))
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Nil(t, solution)
}

func TestMinisatTimeout(t *testing.T) {
	stubSolverConfig(t, "minisatPath")

	solution, err := NewMinisatSolverTimeout(100 * time.Millisecond).Solve(GenerateSATInstance(3, 2))
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Nil(t, solution)
}

func TestKissatSatisfiable(t *testing.T) {
	if _, err := exec.LookPath("kissat"); err != nil {
		t.Skip("kissat executable not available")
	}
	runRandomInstances(t, NewKissatSolver())
}

func TestCadicalSatisfiable(t *testing.T) {
	if _, err := exec.LookPath("cadical"); err != nil {
		t.Skip("cadical executable not available")
	}
	runRandomInstances(t, NewCadicalSolver())
}
