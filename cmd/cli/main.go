package main

import (
	"flag"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/johngreibelarsen/ai-constraint-satisfaction/internal/render"
	"github.com/johngreibelarsen/ai-constraint-satisfaction/pkg/csp"
	"github.com/johngreibelarsen/ai-constraint-satisfaction/pkg/puzzles"
	"github.com/johngreibelarsen/ai-constraint-satisfaction/pkg/sat"
)

var (
	australiaRegions   = []string{"WA", "NT", "SA", "Q", "NSW", "V", "T"}
	australiaAdjacency = [][2]string{
		{"WA", "NT"}, {"WA", "SA"}, {"NT", "SA"}, {"NT", "Q"},
		{"SA", "Q"}, {"SA", "NSW"}, {"SA", "V"}, {"Q", "NSW"}, {"NSW", "V"},
	}

	sudokuClues = [9][9]int{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}

	validPuzzles = []string{"cryptarithmetic", "mapcoloring", "nqueens", "sudoku"}
	validSolvers = []string{"gini", "gophersat", "kissat", "cadical", "cryptominisat", "minisat"}
	solvers      = map[string]func(timeout time.Duration) sat.SATSolver{
		"gini":          func(time.Duration) sat.SATSolver { return sat.NewGiniSolver() },
		"gophersat":     func(time.Duration) sat.SATSolver { return sat.NewGophersatSolver() },
		"kissat":        sat.NewKissatSolverTimeout,
		"cadical":       sat.NewCadicalSolverTimeout,
		"cryptominisat": sat.NewCryptominisatSolverTimeout,
		"minisat":       sat.NewMinisatSolverTimeout,
	}
)

func main() {
	// Define arguments
	puzzlePtr := flag.String("puzzle", "nqueens", "Puzzle to solve. Allowed values are: \"cryptarithmetic\", \"mapcoloring\", \"nqueens\", \"sudoku\", where \"nqueens\" is the default")
	solverPtr := flag.String("solver", "gini", "SAT-Solver to use. Allowed values are: \"gini\", \"gophersat\", \"kissat\", \"cadical\", \"cryptominisat\", \"minisat\", where \"gini\" is the default")
	strategyPtr := flag.String("strategy", "", `Alternative encoding where the puzzle has one. Allowed values are:
- "positional" or "columns" for cryptarithmetic,
- "pairwise" or "cardinality" for mapcoloring`)
	equationPtr := flag.String("equation", "SEND+MORE=MONEY", "Cryptarithmetic equation of the form A+B+...=C")
	sizePtr := flag.Int("n", 8, "Board size for nqueens")
	colorsPtr := flag.Int("colors", 3, "Number of colors for mapcoloring")
	timeoutPtr := flag.Duration("timeout", 0, "Wall-clock limit for external solver processes; 0 disables it")
	configPtr := flag.String("config", "config.json", "Path to the solver-paths config file")
	flag.Parse()
	puzzle := strings.ToLower(*puzzlePtr)
	solverStr := strings.ToLower(*solverPtr)

	// Validate arguments
	if !slices.Contains(validPuzzles, puzzle) {
		log.Fatalf("%v is not a valid puzzle", puzzle)
	} else if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	}

	sat.ConfigPath = *configPtr
	solver := solvers[solverStr](*timeoutPtr)

	var err error
	switch puzzle {
	case "cryptarithmetic":
		err = runCryptarithmetic(solver, *equationPtr, *strategyPtr)
	case "mapcoloring":
		err = runMapColoring(solver, *colorsPtr, *strategyPtr)
	case "nqueens":
		err = runNQueens(solver, *sizePtr)
	case "sudoku":
		err = runSudoku(solver)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func solve(registry *csp.Registry, constraints *csp.ConstraintSet, solver sat.SATSolver) (csp.Model, error) {
	started := time.Now()
	model, err := csp.NewAdapter(registry, constraints, solver).Solve()
	if err != nil {
		return nil, err
	}
	fmt.Printf("Solved in %v\n", time.Since(started))
	return model, nil
}

func runCryptarithmetic(solver sat.SATSolver, equation, strategy string) error {
	operands, result, err := parseEquation(equation)
	if err != nil {
		return err
	}

	encoding := puzzles.ColumnCarries
	if strategy == "positional" {
		encoding = puzzles.PositionalSum
	} else if strategy != "" && strategy != "columns" {
		return fmt.Errorf("%v is not a valid cryptarithmetic strategy", strategy)
	}

	registry, constraints, err := puzzles.Cryptarithmetic(operands, result, encoding)
	if err != nil {
		return err
	}
	model, err := solve(registry, constraints, solver)
	if err != nil {
		return err
	} else if model == nil {
		fmt.Println("Not satisfiable")
		return nil
	}

	fmt.Println(render.Substitution(operands, result, model))
	return nil
}

func parseEquation(equation string) (operands []string, result string, err error) {
	sides := strings.Split(equation, "=")
	if len(sides) != 2 {
		return nil, "", fmt.Errorf("equation must contain exactly one '=': %v", equation)
	}
	return strings.Split(sides[0], "+"), sides[1], nil
}

func runMapColoring(solver sat.SATSolver, colors int, strategy string) error {
	encoding := puzzles.PairwiseNotEqual
	if strategy == "cardinality" {
		encoding = puzzles.ZeroCardinality
	} else if strategy != "" && strategy != "pairwise" {
		return fmt.Errorf("%v is not a valid map-coloring strategy", strategy)
	}

	registry, constraints, err := puzzles.MapColoring(australiaRegions, australiaAdjacency, colors, encoding)
	if err != nil {
		return err
	}
	model, err := solve(registry, constraints, solver)
	if err != nil {
		return err
	} else if model == nil {
		fmt.Println("Not satisfiable")
		return nil
	}

	fmt.Print(render.ColorAssignment(australiaRegions, model))
	return nil
}

func runNQueens(solver sat.SATSolver, n int) error {
	registry, constraints, err := puzzles.NQueens(n)
	if err != nil {
		return err
	}
	model, err := solve(registry, constraints, solver)
	if err != nil {
		return err
	} else if model == nil {
		fmt.Println("Not satisfiable")
		return nil
	}

	fmt.Print(render.QueensBoard(puzzles.QueensRows(model, n)))
	return nil
}

func runSudoku(solver sat.SATSolver) error {
	registry, constraints, err := puzzles.Sudoku(sudokuClues)
	if err != nil {
		return err
	}
	model, err := solve(registry, constraints, solver)
	if err != nil {
		return err
	} else if model == nil {
		fmt.Println("Not satisfiable")
		return nil
	}

	fmt.Print(render.SudokuGrid(puzzles.SudokuGrid(model)))
	return nil
}
