package sat

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

type cadicalSolver struct {
	timeout time.Duration
}

func NewCadicalSolver() SATSolver {
	return &cadicalSolver{}
}

func NewCadicalSolverTimeout(timeout time.Duration) SATSolver {
	return &cadicalSolver{timeout: timeout}
}

func (solver *cadicalSolver) Solve(instance SAT) (SATSolution, error) {
	if err := requirePlainCNF(instance); err != nil {
		return nil, err
	}
	dimacs := instance.ToDIMACS() // Transform SAT into DIMACS-CNF string format

	ctx, cancel := solverContext(solver.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, getExecutablePath("cadicalPath"), "-q")
	cmd.Stdin = strings.NewReader(dimacs) // Feed dimacs into cadical's standard input

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return nil, ErrTimeout
	}
	// Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
	if err != nil && (cmd.ProcessState == nil || (cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20)) {
		return nil, fmt.Errorf("an error occurred during cadical execution: %v : %v", err.Error(), stderr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		return nil, nil
	}

	return parseSolution(stdOut.String()), nil
}
