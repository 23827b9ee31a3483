package distribute

import (
	"math"
	"testing"

	"github.com/avikara/costflow/pkg/costgraph"
	"github.com/avikara/costflow/pkg/rowset"
)

func serviceGraph(t *testing.T, name string, cost costgraph.CostVector) *costgraph.Graph {
	t.Helper()
	g := costgraph.New()
	id := g.AddService(name, 0)
	for c, v := range cost {
		g.MustNode(id).Cost.Add(c, v)
	}
	return g
}

func TestDistributeShares(t *testing.T) {
	g := serviceGraph(t, "CBC", costgraph.CostVector{costgraph.Materials: 1000})

	sr := rowset.NewTable(rowset.DatasetServiceRegister)
	sr.Append(
		rowset.Row{"service_name": "CBC", "service_tat": 30.0, "quantity": 1.0, "bill_no": "B1"},
		rowset.Row{"service_name": "CBC", "service_tat": 70.0, "quantity": 1.0, "bill_no": "B2"},
	)

	rows := New(nil).Distribute(g, sr)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	if got := rows[0].Float("materials"); math.Abs(got-300) > 1e-9 {
		t.Errorf("B1 materials = %v, want 300", got)
	}
	if got := rows[1].Float("materials"); math.Abs(got-700) > 1e-9 {
		t.Errorf("B2 materials = %v, want 700", got)
	}
}

func TestDistributeQuantityWeighting(t *testing.T) {
	g := serviceGraph(t, "XRAY", costgraph.CostVector{costgraph.Expense: 100})

	sr := rowset.NewTable(rowset.DatasetServiceRegister)
	sr.Append(
		rowset.Row{"service_name": "XRAY", "service_tat": 10.0, "quantity": 3.0, "bill_no": "B1"},
		rowset.Row{"service_name": "XRAY", "service_tat": 10.0, "quantity": 1.0, "bill_no": "B2"},
	)

	rows := New(nil).Distribute(g, sr)

	if got := rows[0].Float("expense"); math.Abs(got-75) > 1e-9 {
		t.Errorf("B1 expense = %v, want 75", got)
	}
	if got := rows[1].Float("expense"); math.Abs(got-25) > 1e-9 {
		t.Errorf("B2 expense = %v, want 25", got)
	}
}

func TestDistributeZeroWorkloadGroupSkipped(t *testing.T) {
	g := serviceGraph(t, "ECG", costgraph.CostVector{costgraph.Expense: 100})

	sr := rowset.NewTable(rowset.DatasetServiceRegister)
	sr.Append(rowset.Row{"service_name": "ECG", "service_tat": 0.0, "quantity": 5.0, "bill_no": "B1"})

	if rows := New(nil).Distribute(g, sr); len(rows) != 0 {
		t.Errorf("zero-workload group produced %d rows, want 0", len(rows))
	}
}

func TestDistributeNegativeWorkloadGroupSkipped(t *testing.T) {
	g := serviceGraph(t, "ECG", costgraph.CostVector{costgraph.Expense: 100})

	sr := rowset.NewTable(rowset.DatasetServiceRegister)
	sr.Append(rowset.Row{"service_name": "ECG", "service_tat": -10.0, "quantity": 1.0, "bill_no": "B1"})

	if rows := New(nil).Distribute(g, sr); len(rows) != 0 {
		t.Errorf("negative-workload group produced %d rows, want 0", len(rows))
	}
}

func TestDistributeUnknownServiceKeepsRows(t *testing.T) {
	// Rows for a service with no node still emit, carrying no allocated cost
	g := costgraph.New()

	sr := rowset.NewTable(rowset.DatasetServiceRegister)
	sr.Append(rowset.Row{"service_name": "MRI", "service_tat": 10.0, "quantity": 1.0, "bill_no": "B1"})

	rows := New(nil).Distribute(g, sr)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Has("materials") {
		t.Error("row for unknown service should carry no allocated categories")
	}
}

func TestJoinVariableCosts(t *testing.T) {
	rows := []rowset.Row{
		{"bill_no": "B1", "ipd_number": "IP1", "service_name": "CBC", "materials": 300.0},
		{"bill_no": "B9", "ipd_number": "IP9", "service_name": "CBC", "materials": 700.0},
	}

	vc := rowset.NewTable(rowset.DatasetVariableCostBill)
	vc.Append(rowset.Row{
		"bill_no": "B1", "ipd_number": "IP1", "service_name": "CBC",
		"pharmacy_charged_to_patient": 50.0,
	})

	joined := New(nil).JoinVariableCosts(rows, vc)

	if got := joined[0].Float("pharmacy_charged_to_patient"); got != 50 {
		t.Errorf("matched row pharmacy = %v, want 50", got)
	}
	// Unmatched rows keep only allocated columns; no zero-filling
	if joined[1].Has("pharmacy_charged_to_patient") {
		t.Error("unmatched row must not gain variable-cost columns")
	}
}

func TestProjectColumnsAndDoctorFallback(t *testing.T) {
	rows := []rowset.Row{{
		"bill_no":                "B1",
		"ipd_number":             "IP1",
		"service_name":           "CBC",
		"materials":              300.0,
		"performing_doctor_name": "Dr. Rao",
		"service_tat":            30.0, // working column, must not survive projection
	}}

	records := New(nil).Project(rows)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	r := records[0]
	if got := r.String("doctor_name"); got != "Dr. Rao" {
		t.Errorf("doctor_name = %q, want fallback to performing doctor", got)
	}
	if r.Has("service_tat") {
		t.Error("projection leaked a working column")
	}
	if r.Has("labor") {
		t.Error("absent categories must be omitted, not zero-filled")
	}
}
