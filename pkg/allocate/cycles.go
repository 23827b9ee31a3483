package allocate

import (
	"github.com/avikara/costflow/pkg/costgraph"
)

// Cycle is a sequence of node names forming a directed cycle.
type Cycle []string

// DetectCycles finds directed cycles among cost-flow edges using DFS
// with three-color marking:
//   - WHITE (0): unvisited
//   - GRAY (1): currently on the DFS stack
//   - BLACK (2): fully explored
//
// Hitting a GRAY node means a back edge, hence a cycle. Cycles are never
// fatal for an allocation run; this is a diagnostic for explaining
// unreached nodes after propagation.
func DetectCycles(g *costgraph.Graph) []Cycle {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make([]int, g.Len())
	stack := make([]costgraph.NodeID, 0)
	cycles := make([]Cycle, 0)

	var visit func(id costgraph.NodeID)
	visit = func(id costgraph.NodeID) {
		color[id] = gray
		stack = append(stack, id)

		node := g.MustNode(id)
		for _, e := range append(append([]costgraph.Edge{}, node.ChildrenCC...), node.ChildrenSvc...) {
			switch color[e.Target] {
			case white:
				visit(e.Target)
			case gray:
				// Back edge: the cycle is the stack suffix from the
				// target onward.
				cycle := make(Cycle, 0)
				for i := len(stack) - 1; i >= 0; i-- {
					cycle = append(Cycle{g.MustNode(stack[i]).Name}, cycle...)
					if stack[i] == e.Target {
						break
					}
				}
				cycles = append(cycles, cycle)
			}
		}

		stack = stack[:len(stack)-1]
		color[id] = black
	}

	for _, id := range g.NodeIDs() {
		if color[id] == white {
			visit(id)
		}
	}

	return cycles
}
