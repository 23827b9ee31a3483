package costgraph

import (
	"testing"
)

func TestAddCostCenterFirstWins(t *testing.T) {
	g := New()

	first := g.AddCostCenter("ICU")
	second := g.AddCostCenter("ICU")

	if first != second {
		t.Errorf("duplicate cost center created a second node: %d vs %d", first, second)
	}
	if g.Len() != 1 {
		t.Errorf("graph has %d nodes, want 1", g.Len())
	}
}

func TestAddServiceDefaults(t *testing.T) {
	g := New()

	id := g.AddService("CBC", 30)
	node := g.MustNode(id)

	if node.Kind != KindService {
		t.Errorf("Kind = %v, want service", node.Kind)
	}
	if node.Workload != 30 {
		t.Errorf("Workload = %v, want 30", node.Workload)
	}
	if node.ServiceClass != DefaultServiceClass {
		t.Errorf("ServiceClass = %q, want %q", node.ServiceClass, DefaultServiceClass)
	}
}

func TestLookup(t *testing.T) {
	g := New()
	g.AddCostCenter("LAB")

	if _, ok := g.Lookup("LAB"); !ok {
		t.Error("Lookup(LAB) = false, want true")
	}
	if _, ok := g.Lookup("MISSING"); ok {
		t.Error("Lookup(MISSING) = true, want false")
	}
}

func TestNodeOutOfRange(t *testing.T) {
	g := New()
	if _, err := g.Node(0); err == nil {
		t.Error("expected error for out-of-range node id")
	}
	if _, err := g.Node(-1); err == nil {
		t.Error("expected error for negative node id")
	}
}

func TestAmbiguousCostCenters(t *testing.T) {
	g := New()
	cc := g.AddCostCenter("ADMIN")
	child := g.AddCostCenter("ICU")
	svc := g.AddService("CBC", 10)

	node := g.MustNode(cc)
	node.ChildrenCC = append(node.ChildrenCC, Edge{Target: child, Weight: 1})
	node.ChildrenSvc = append(node.ChildrenSvc, Edge{Target: svc, Weight: 1})

	ambiguous := g.AmbiguousCostCenters()
	if len(ambiguous) != 1 || ambiguous[0] != "ADMIN" {
		t.Errorf("AmbiguousCostCenters() = %v, want [ADMIN]", ambiguous)
	}
}

func TestGetStatistics(t *testing.T) {
	g := New()
	cc := g.AddCostCenter("LAB")
	svc := g.AddService("CBC", 10)
	g.MustNode(cc).ChildrenSvc = append(g.MustNode(cc).ChildrenSvc, Edge{Target: svc, Weight: 1})

	stats := g.GetStatistics()
	if stats.CostCenters != 1 || stats.Services != 1 {
		t.Errorf("node counts = %+v, want 1 cost center and 1 service", stats)
	}
	if stats.ServiceEdges != 1 || stats.CCEdges != 0 {
		t.Errorf("edge counts = %+v, want 1 service edge", stats)
	}
}

func TestCostVectorAdd(t *testing.T) {
	cv := make(CostVector)
	cv.Add(Materials, 100)
	cv.Add(Materials, 50)

	if got := cv.Get(Materials); got != 150 {
		t.Errorf("Get(Materials) = %v, want 150", got)
	}
	if got := cv.Get(Labor); got != 0 {
		t.Errorf("Get(Labor) = %v, want 0", got)
	}
}

func TestCostVectorAddScaled(t *testing.T) {
	parent := CostVector{Materials: 1000, Expense: 500}
	child := make(CostVector)

	child.AddScaled(0.3, parent)

	if got := child.Get(Materials); got != 300 {
		t.Errorf("Materials = %v, want 300", got)
	}
	if got := child.Get(Expense); got != 150 {
		t.Errorf("Expense = %v, want 150", got)
	}
}

func TestCostVectorCategoriesSorted(t *testing.T) {
	cv := CostVector{Utilities: 1, Expense: 2, Materials: 3, Labor: 4}
	got := cv.Categories()

	want := []Category{Expense, Labor, Materials, Utilities}
	if len(got) != len(want) {
		t.Fatalf("Categories() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCostVectorTotal(t *testing.T) {
	cv := CostVector{Materials: 10, Labor: 20}
	if got := cv.Total(); got != 30 {
		t.Errorf("Total() = %v, want 30", got)
	}
}
