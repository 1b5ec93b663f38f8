package puzzles

import (
	"fmt"

	"github.com/johngreibelarsen/ai-constraint-satisfaction/pkg/csp"
	"github.com/samber/lo"
)

// MapColoringStrategy picks how adjacency is expressed. The two encodings are
// interchangeable.
type MapColoringStrategy int

const (
	// PairwiseNotEqual adds one inequality per border.
	PairwiseNotEqual MapColoringStrategy = iota
	// ZeroCardinality states, per region, that zero of its equals-neighbor
	// indicators may hold.
	ZeroCardinality
)

// MapColoring assigns one of colors (indices 0..colors-1) to every region so
// that no two adjacent regions share a color.
func MapColoring(regions []string, adjacency [][2]string, colors int, strategy MapColoringStrategy) (*csp.Registry, *csp.ConstraintSet, error) {
	if colors < 1 {
		return nil, nil, fmt.Errorf("at least one color is required")
	}
	if len(regions) == 0 {
		return nil, nil, fmt.Errorf("at least one region is required")
	}

	registry := csp.NewRegistry()
	constraints := csp.NewConstraintSet()

	for _, region := range regions {
		if _, err := registry.Declare(region, 0, colors-1); err != nil {
			return nil, nil, err
		}
	}

	switch strategy {
	case PairwiseNotEqual:
		for _, border := range adjacency {
			constraints.Add(csp.NotEqual{A: border[0], B: border[1]})
		}
	case ZeroCardinality:
		neighbors := map[string][]string{}
		for _, border := range adjacency {
			neighbors[border[0]] = append(neighbors[border[0]], border[1])
			neighbors[border[1]] = append(neighbors[border[1]], border[0])
		}
		for _, region := range regions {
			if len(neighbors[region]) == 0 {
				continue // Isolated regions constrain nothing
			}
			terms := lo.Map(neighbors[region], func(neighbor string, _ int) csp.WeightedTerm {
				return csp.WeightedTerm{Weight: 1, Term: csp.VarsEqual{A: region, B: neighbor}}
			})
			constraints.Add(csp.CardinalityEq{Terms: terms, Sum: 0})
		}
	default:
		return nil, nil, fmt.Errorf("unknown map-coloring strategy %v", strategy)
	}

	return registry, constraints, nil
}
