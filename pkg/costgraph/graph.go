package costgraph

import (
	"fmt"
)

// NodeID indexes a node inside a Graph's arena. Edges refer to their
// target by index rather than pointer, so the graph owns every node and
// in-degree bookkeeping during propagation needs no shared references.
type NodeID int

// Kind discriminates the two node payloads.
type Kind uint8

const (
	KindCostCenter Kind = iota
	KindService
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindCostCenter:
		return "cost_center"
	case KindService:
		return "service"
	default:
		return "unknown"
	}
}

// Edge is a weighted pointer to a child node. Weight is the child's
// normalized share of the parent's driver total, in [0, 1].
type Edge struct {
	Target NodeID
	Weight float64
}

// DefaultServiceClass tags services with no explicit classification.
const DefaultServiceClass = "acute"

// Node is one vertex of the cost-flow graph. Cost centers carry outgoing
// edge lists; services carry a workload weight. Revenue is reserved for
// external reporting and never touched by the engine.
type Node struct {
	Name     string
	Kind     Kind
	Metadata map[string]string
	Cost     CostVector
	Revenue  CostVector

	// Cost-center payload. At most one of the two lists should be
	// populated in a given run; both non-empty is a configuration
	// problem the propagator flags but tolerates.
	ChildrenCC  []Edge
	ChildrenSvc []Edge

	// Service payload.
	Workload     float64
	ServiceClass string
}

// Graph is the per-run node arena plus a name index. It is built fresh
// for every allocation run and discarded with the run's output.
type Graph struct {
	nodes []*Node
	index map[string]NodeID
}

// Statistics summarizes a graph's shape.
type Statistics struct {
	CostCenters  int
	Services     int
	CCEdges      int
	ServiceEdges int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make([]*Node, 0),
		index: make(map[string]NodeID),
	}
}

// AddCostCenter creates a cost-center node, or returns the existing node's
// id when the name is already present (first occurrence wins).
func (g *Graph) AddCostCenter(name string) NodeID {
	if id, ok := g.index[name]; ok {
		return id
	}
	return g.add(&Node{
		Name:     name,
		Kind:     KindCostCenter,
		Metadata: make(map[string]string),
		Cost:     make(CostVector),
		Revenue:  make(CostVector),
	})
}

// AddService creates a service node with the given workload, or returns
// the existing node's id when the name is already present.
func (g *Graph) AddService(name string, workload float64) NodeID {
	if id, ok := g.index[name]; ok {
		return id
	}
	return g.add(&Node{
		Name:         name,
		Kind:         KindService,
		Metadata:     make(map[string]string),
		Cost:         make(CostVector),
		Revenue:      make(CostVector),
		Workload:     workload,
		ServiceClass: DefaultServiceClass,
	})
}

func (g *Graph) add(n *Node) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, n)
	g.index[n.Name] = id
	return id
}

// Lookup returns the node id for a name.
func (g *Graph) Lookup(name string) (NodeID, bool) {
	id, ok := g.index[name]
	return id, ok
}

// Node returns the node for an id.
func (g *Graph) Node(id NodeID) (*Node, error) {
	if id < 0 || int(id) >= len(g.nodes) {
		return nil, fmt.Errorf("node id %d out of range", id)
	}
	return g.nodes[id], nil
}

// MustNode returns the node for an id known to be valid.
func (g *Graph) MustNode(id NodeID) *Node {
	return g.nodes[id]
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// NodeIDs returns every node id in creation order.
func (g *Graph) NodeIDs() []NodeID {
	ids := make([]NodeID, len(g.nodes))
	for i := range g.nodes {
		ids[i] = NodeID(i)
	}
	return ids
}

// AmbiguousCostCenters returns the names of cost centers that carry both
// cost-center and service children. Propagation still runs for these
// (cost-center edges take precedence) but they indicate bad driver
// configuration and are surfaced distinctly.
func (g *Graph) AmbiguousCostCenters() []string {
	names := make([]string, 0)
	for _, n := range g.nodes {
		if n.Kind == KindCostCenter && len(n.ChildrenCC) > 0 && len(n.ChildrenSvc) > 0 {
			names = append(names, n.Name)
		}
	}
	return names
}

// GetStatistics counts nodes and edges by kind.
func (g *Graph) GetStatistics() Statistics {
	var stats Statistics
	for _, n := range g.nodes {
		switch n.Kind {
		case KindCostCenter:
			stats.CostCenters++
		case KindService:
			stats.Services++
		}
		stats.CCEdges += len(n.ChildrenCC)
		stats.ServiceEdges += len(n.ChildrenSvc)
	}
	return stats
}
