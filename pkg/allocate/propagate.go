package allocate

import (
	"github.com/avikara/costflow/pkg/costgraph"
	"github.com/avikara/costflow/pkg/logging"
)

// PropagationResult records what one propagation pass did.
type PropagationResult struct {
	// Order lists node names in the order they were settled.
	Order []string
	// Processed is the number of settled nodes.
	Processed int
	// Unreached lists nodes whose parent set never emptied. They keep
	// only their primary-attributed cost; a non-empty list implies a
	// cycle or dangling reference in the driver configuration.
	Unreached []string
	// Ambiguous lists cost centers holding both edge kinds; their
	// cost-center edges took precedence.
	Ambiguous []string
}

// Propagator pushes settled cost downstream in dependency order using
// Kahn's traversal. In-degrees are tracked as sets of distinct parent
// ids, so a parent contributing several edges to one child is removed
// exactly once.
type Propagator struct {
	log logging.Logger
}

// NewPropagator creates a Propagator.
func NewPropagator(log logging.Logger) *Propagator {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Propagator{log: log.With(logging.Component("propagate"))}
}

// Run executes one propagation pass over the graph. It always
// terminates: nodes inside a cycle are never dequeued and end up in
// Unreached rather than looping.
func (p *Propagator) Run(g *costgraph.Graph) *PropagationResult {
	parents := make([]map[costgraph.NodeID]struct{}, g.Len())
	for i := range parents {
		parents[i] = make(map[costgraph.NodeID]struct{})
	}

	for _, id := range g.NodeIDs() {
		node := g.MustNode(id)
		if node.Kind != costgraph.KindCostCenter {
			continue
		}
		for _, e := range node.ChildrenCC {
			parents[e.Target][id] = struct{}{}
		}
		for _, e := range node.ChildrenSvc {
			parents[e.Target][id] = struct{}{}
		}
	}

	queue := make([]costgraph.NodeID, 0, g.Len())
	for _, id := range g.NodeIDs() {
		if len(parents[id]) == 0 {
			queue = append(queue, id)
		}
	}

	result := &PropagationResult{Order: make([]string, 0, g.Len())}
	settled := make([]bool, g.Len())

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		node := g.MustNode(current)
		result.Order = append(result.Order, node.Name)
		result.Processed++
		settled[current] = true

		if node.Kind != costgraph.KindCostCenter {
			continue
		}

		if len(node.ChildrenCC) > 0 && len(node.ChildrenSvc) > 0 {
			p.log.Warn("cost center has both cost-center and service children; propagating over cost-center edges",
				logging.CostCenter(node.Name), logging.String("flag", "structural_ambiguity"))
			result.Ambiguous = append(result.Ambiguous, node.Name)
		}

		var edges []costgraph.Edge
		switch {
		case len(node.ChildrenCC) > 0:
			edges = node.ChildrenCC
		case len(node.ChildrenSvc) > 0:
			edges = node.ChildrenSvc
		default:
			continue // terminal node
		}

		for _, e := range edges {
			child := g.MustNode(e.Target)

			// Remove exactly once per unique parent, and enqueue only
			// on the transition to an empty set.
			if _, ok := parents[e.Target][current]; ok {
				delete(parents[e.Target], current)
				if len(parents[e.Target]) == 0 {
					queue = append(queue, e.Target)
				}
			}

			child.Cost.AddScaled(e.Weight, node.Cost)
		}
	}

	for _, id := range g.NodeIDs() {
		if !settled[id] {
			result.Unreached = append(result.Unreached, g.MustNode(id).Name)
		}
	}
	if len(result.Unreached) > 0 {
		p.log.Warn("nodes retained only primary cost; their parent set never emptied",
			logging.Int("unreached", len(result.Unreached)))
	}

	p.log.Info("propagation complete",
		logging.Int("processed", result.Processed),
		logging.Int("unreached", len(result.Unreached)))

	return result
}
