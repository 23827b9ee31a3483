package distribute

import (
	"github.com/avikara/costflow/pkg/costgraph"
	"github.com/avikara/costflow/pkg/logging"
	"github.com/avikara/costflow/pkg/rowset"
)

// VariableCostColumns are the bill-level direct cost components merged
// from the variable-cost ledger.
var VariableCostColumns = []string{
	"pharmacy_charged_to_patient",
	"medical_surgical_consumables_charged_to_patient",
	"implants_and_prosthetics_charged_to_patient",
	"non_medical_consumables_charged_to_patient",
	"fee_for_service",
	"incentives_to_consultants_treating_doctors",
	"patient_food_beverages_outsource_service",
	"laboratory_test_outsource_service",
	"any_other_patient_related_outsourced_services_1",
	"any_other_patient_related_outsourced_services_2",
	"any_other_patient_related_outsourced_services_3",
	"brokerage_commission",
	"provision_for_deduction_bad_debts",
}

// OutputColumns is the documented projection of the final record set.
// Columns absent from a working row are omitted, never zero-filled.
var OutputColumns = func() []string {
	cols := []string{
		rowset.ColIPDNumber,
		rowset.ColServiceName,
		string(costgraph.Materials),
		string(costgraph.Expense),
		string(costgraph.Labor),
		string(costgraph.Utilities),
		rowset.ColBillNo,
	}
	cols = append(cols, VariableCostColumns...)
	return append(cols, rowset.ColDoctorName)
}()

// Distributor converts settled service-level cost into per-bill
// records and merges bill-level direct costs.
type Distributor struct {
	log logging.Logger
}

// New creates a Distributor.
func New(log logging.Logger) *Distributor {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Distributor{log: log.With(logging.Component("distribute"))}
}

// Distribute spreads each service node's cost across the service-log
// rows referencing it, proportional to row workload (turnaround time
// times quantity). Groups with zero total workload are skipped with a
// diagnostic; negative totals are flagged as data-quality anomalies and
// skipped without raising.
func (d *Distributor) Distribute(g *costgraph.Graph, serviceRegister *rowset.Table) []rowset.Row {
	out := make([]rowset.Row, 0, serviceRegister.Len())

	for _, group := range serviceRegister.GroupBy(rowset.ColServiceName) {
		contributions := make([]float64, len(group.Rows))
		var total float64
		for i, row := range group.Rows {
			contributions[i] = row.Float(rowset.ColServiceTAT) * row.Float(rowset.ColQuantity)
			total += contributions[i]
		}

		if total < 0 {
			d.log.Warn("service group has negative total workload, skipping",
				logging.Service(group.Key), logging.Float64("total", total),
				logging.String("flag", "data_quality"))
			continue
		}
		if total == 0 {
			d.log.Warn("service group has zero total workload, cannot apportion",
				logging.Service(group.Key))
			continue
		}

		var cost costgraph.CostVector
		if id, ok := g.Lookup(group.Key); ok {
			cost = g.MustNode(id).Cost
		}

		for i, row := range group.Rows {
			share := contributions[i] / total
			record := row.Clone()
			for c, amount := range cost {
				record[string(c)] = amount * share
			}
			out = append(out, record)
		}
	}

	return out
}

// JoinVariableCosts left-joins the working rows against the direct-cost
// ledger on (bill number, patient id, service name). Unmatched rows keep
// only their allocated categories; matched rows gain the ledger's
// columns as-is.
func (d *Distributor) JoinVariableCosts(rows []rowset.Row, variableCosts *rowset.Table) []rowset.Row {
	if variableCosts.Empty() {
		return rows
	}

	type key struct{ bill, ipd, service string }
	index := make(map[key]rowset.Row, variableCosts.Len())
	for _, vc := range variableCosts.Rows {
		k := key{
			bill:    vc.String(rowset.ColBillNo),
			ipd:     vc.String(rowset.ColIPDNumber),
			service: vc.String(rowset.ColServiceName),
		}
		if _, ok := index[k]; !ok {
			index[k] = vc
		}
	}

	for _, row := range rows {
		k := key{
			bill:    row.String(rowset.ColBillNo),
			ipd:     row.String(rowset.ColIPDNumber),
			service: row.String(rowset.ColServiceName),
		}
		vc, ok := index[k]
		if !ok {
			continue
		}
		for col, v := range vc {
			switch col {
			case rowset.ColBillNo, rowset.ColIPDNumber, rowset.ColServiceName:
				continue
			}
			if _, exists := row[col]; !exists {
				row[col] = v
			}
		}
	}

	return rows
}

// Project reduces each working row to the documented output column set.
// The doctor name falls back to the performing doctor when no explicit
// doctor_name column exists; columns absent from the working row are
// simply omitted.
func (d *Distributor) Project(rows []rowset.Row) []rowset.Row {
	out := make([]rowset.Row, 0, len(rows))
	for _, row := range rows {
		if !row.Has(rowset.ColDoctorName) && row.Has(rowset.ColPerformingDoctorName) {
			row[rowset.ColDoctorName] = row[rowset.ColPerformingDoctorName]
		}
		record := make(rowset.Row, len(OutputColumns))
		for _, col := range OutputColumns {
			if v, ok := row[col]; ok {
				record[col] = v
			}
		}
		out = append(out, record)
	}
	return out
}
