package sat

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

var ConfigPath = "config.json"

func parseSolution(solverOutput string) SATSolution {
	values := lo.Map(
		lo.Reduce(
			lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
				return len(line) > 0 && line[0] == 'v'
			}),
			func(values []string, line string, _ int) []string {
				return append(values, strings.Split(line[2:], " ")...)
			},
			[]string{},
		),
		func(valueStr string, _ int) int64 {
			value, err := strconv.ParseInt(valueStr, 10, 64)
			if err != nil && valueStr != "" {
				log.Panicf("invalid literal in solver output: %v", err)
			}
			return value
		},
	)
	if len(values) == 0 {
		log.Panicf("solver reported satisfiable but emitted no solution lines")
	}
	return values[:len(values)-1] // Drop the terminating 0
}

func getExecutablePath(solver string) string {
	bytes, err := os.ReadFile(ConfigPath)
	if err != nil {
		return strings.TrimSuffix(solver, "Path") // No config file: rely on PATH lookup
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		log.Panicf("cannot read %v file: %v", ConfigPath, err)
	}

	var config map[string]string
	mapstructure.Decode(inputJson, &config)

	path, ok := config[solver]
	if !ok {
		return strings.TrimSuffix(solver, "Path")
	}
	return path
}

func solverContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}
