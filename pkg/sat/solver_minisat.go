package sat

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

type minisatSolver struct {
	timeout time.Duration
}

func NewMinisatSolver() SATSolver {
	return &minisatSolver{}
}

func NewMinisatSolverTimeout(timeout time.Duration) SATSolver {
	return &minisatSolver{timeout: timeout}
}

// minisat takes no DIMACS on stdin: input and output travel through files.
func (solver *minisatSolver) Solve(instance SAT) (SATSolution, error) {
	if err := requirePlainCNF(instance); err != nil {
		return nil, err
	}
	dimacs := instance.ToDIMACS() // Transform SAT into DIMACS-CNF string format

	// Create a temporary file to hold the DIMACS content
	inputTempFile, err := os.CreateTemp("", "dimacs-*.cnf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(inputTempFile.Name()) // Ensure the file is removed after execution

	outputTempFile, err := os.CreateTemp("", "minisat_output-*.cnf")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(outputTempFile.Name()) // Ensure the file is removed after execution

	// Write the DIMACS content to the temporary file
	if _, err := inputTempFile.WriteString(dimacs); err != nil {
		return nil, fmt.Errorf("failed to write DIMACS to temporary file: %v", err)
	}
	if err := inputTempFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary file: %v", err)
	}

	ctx, cancel := solverContext(solver.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, getExecutablePath("minisatPath"), "-verb=0")
	cmd.Args = append(cmd.Args, inputTempFile.Name(), outputTempFile.Name())

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return nil, ErrTimeout
	}
	// Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
	if err != nil && (cmd.ProcessState == nil || (cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20)) {
		return nil, fmt.Errorf("an error occurred during minisat execution: %v : %v", err.Error(), stderr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		return nil, nil
	}

	output, err := io.ReadAll(outputTempFile) // Read the output file
	if err != nil {
		return nil, fmt.Errorf("failed to read output file: %v", err)
	}
	return solver.parseSolution(string(output)), nil
}

func (solver *minisatSolver) parseSolution(solverOutput string) SATSolution {
	lines := strings.Split(solverOutput, "\n")
	if len(lines) < 2 {
		log.Panicf("minisat reported satisfiable but emitted no solution line")
	}
	solution := lo.Map(strings.Fields(lines[1]), func(valueStr string, _ int) int64 { // The first line is the header, we only need the second line
		value, err := strconv.ParseInt(valueStr, 10, 64)
		if err != nil && valueStr != "" {
			log.Panicf("invalid literal in solver output: %v", err)
		}
		return value
	})
	if len(solution) == 0 {
		log.Panicf("minisat reported satisfiable but emitted no literals")
	}
	return solution[:len(solution)-1] // Drop the terminating 0
}
