package rowset

// Canonical dataset names the engine consumes.
const (
	DatasetCostCenter          = "cost_center"
	DatasetSecondaryCostDriver = "secondary_cost_driver"
	DatasetServiceRegister     = "service_register"
	DatasetConsumption         = "consumption_data"
	DatasetExpenseWise         = "expense_wise"
	DatasetHR                  = "hr_data"
	DatasetTrialBalance        = "trial_balance"
	DatasetConnectedLoad       = "connected_load"
	DatasetVariableCostBill    = "variable_cost_bill_wise"

	// Recognized but optional registers carried by the wider system.
	DatasetOccupancyRegister  = "occupancy_register"
	DatasetOTRegister         = "ot_register"
	DatasetTATData            = "tat_data"
	DatasetFixedAssetRegister = "fixed_asset_register"
)

// AllDatasets lists every dataset the engine will try to fetch, in a
// stable order.
func AllDatasets() []string {
	return []string{
		DatasetCostCenter,
		DatasetSecondaryCostDriver,
		DatasetServiceRegister,
		DatasetConsumption,
		DatasetExpenseWise,
		DatasetHR,
		DatasetTrialBalance,
		DatasetConnectedLoad,
		DatasetVariableCostBill,
		DatasetOccupancyRegister,
		DatasetOTRegister,
		DatasetTATData,
		DatasetFixedAssetRegister,
	}
}

// requiredDatasets are those without which a run cannot produce output.
// Every other dataset degrades gracefully to an empty contribution.
var requiredDatasets = map[string]bool{
	DatasetCostCenter:      true,
	DatasetServiceRegister: true,
}

// Required reports whether a dataset is mandatory for an allocation run.
func Required(name string) bool {
	return requiredDatasets[name]
}

// Common column names shared across datasets.
const (
	ColSubCostCentre        = "sub_cost_centre"
	ColCostDriver           = "cost_driver"
	ColServiceName          = "service_name"
	ColServiceTAT           = "service_tat"
	ColQuantity             = "quantity"
	ColBillNo               = "bill_no"
	ColIPDNumber            = "ipd_number"
	ColTransactionValue     = "transaction_value_excluding_tax"
	ColAmount               = "amount"
	ColNetSalary            = "net_salary"
	ColPrimaryCostDriver    = "primary_cost_driver"
	ColTotalLoadKg          = "total_load_kg"
	ColDoctorName           = "doctor_name"
	ColPerformingDoctorName = "performing_doctor_name"
)

// PowerMarker is the trial-balance tag identifying metered power
// expenditure rows.
const PowerMarker = "CN"
