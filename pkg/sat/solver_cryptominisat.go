package sat

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

type cryptominisatSolver struct {
	timeout time.Duration
}

func NewCryptominisatSolver() SATSolver {
	return &cryptominisatSolver{}
}

func NewCryptominisatSolverTimeout(timeout time.Duration) SATSolver {
	return &cryptominisatSolver{timeout: timeout}
}

func (solver *cryptominisatSolver) Solve(instance SAT) (SATSolution, error) {
	if err := requirePlainCNF(instance); err != nil {
		return nil, err
	}
	dimacs := instance.ToDIMACS() // Transform SAT into DIMACS-CNF string format

	ctx, cancel := solverContext(solver.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, getExecutablePath("cryptominisatPath"), "--verb", "0")
	cmd.Stdin = strings.NewReader(dimacs) // Feed dimacs into cryptominisat's standard input

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
		return nil, fmt.Errorf("an error occurred during cryptominisat execution: %v : %v", err.Error(), stderr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		return nil, nil
	}

	return parseSolution(stdOut.String()), nil
}
