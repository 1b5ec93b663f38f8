package puzzles

import (
	"testing"

	"github.com/johngreibelarsen/ai-constraint-satisfaction/pkg/csp"
	"github.com/johngreibelarsen/ai-constraint-satisfaction/pkg/sat"
	"github.com/onsi/gomega"
)

var (
	australiaRegions   = []string{"WA", "NT", "SA", "Q", "NSW", "V", "T"}
	australiaAdjacency = [][2]string{
		{"WA", "NT"}, {"WA", "SA"}, {"NT", "SA"}, {"NT", "Q"},
		{"SA", "Q"}, {"SA", "NSW"}, {"SA", "V"}, {"Q", "NSW"}, {"NSW", "V"},
	}
)

func TestAustraliaThreeColors(t *testing.T) {
	strategies := map[string]MapColoringStrategy{
		"pairwise":    PairwiseNotEqual,
		"cardinality": ZeroCardinality,
	}
	backends := map[string]sat.SATSolver{
		"gini":      sat.NewGiniSolver(),
		"gophersat": sat.NewGophersatSolver(),
	}

	for strategyName, strategy := range strategies {
		for backendName, backend := range backends {
			t.Run(strategyName+"/"+backendName, func(t *testing.T) {
				g := gomega.NewWithT(t)

				registry, constraints, err := MapColoring(australiaRegions, australiaAdjacency, 3, strategy)
				g.Expect(err).NotTo(gomega.HaveOccurred())

				model, err := csp.NewAdapter(registry, constraints, backend).Solve()
				g.Expect(err).NotTo(gomega.HaveOccurred())
				g.Expect(model).NotTo(gomega.BeNil())

				for _, border := range australiaAdjacency {
					g.Expect(model[border[0]]).NotTo(gomega.Equal(model[border[1]]),
						"%v and %v share a color", border[0], border[1])
				}

				// Tasmania borders nothing and may take any valid color.
				g.Expect(model["T"]).To(gomega.BeNumerically(">=", 0))
				g.Expect(model["T"]).To(gomega.BeNumerically("<=", 2))
			})
		}
	}
}

func TestTriangleNeedsThreeColors(t *testing.T) {
	g := gomega.NewWithT(t)
	triangle := [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}}

	for _, strategy := range []MapColoringStrategy{PairwiseNotEqual, ZeroCardinality} {
		registry, constraints, err := MapColoring([]string{"a", "b", "c"}, triangle, 2, strategy)
		g.Expect(err).NotTo(gomega.HaveOccurred())

		model, err := csp.NewAdapter(registry, constraints, sat.NewGophersatSolver()).Solve()
		g.Expect(err).NotTo(gomega.HaveOccurred())
		g.Expect(model).To(gomega.BeNil())
	}
}

func TestMapColoringRejectsInvalidInput(t *testing.T) {
	g := gomega.NewWithT(t)

	_, _, err := MapColoring(australiaRegions, australiaAdjacency, 0, PairwiseNotEqual)
	g.Expect(err).To(gomega.HaveOccurred())

	_, _, err = MapColoring(nil, nil, 3, PairwiseNotEqual)
	g.Expect(err).To(gomega.HaveOccurred())
}
