package builder

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DriverMap translates the raw driver labels found on the cost-center
// register into canonical column names of the secondary-cost-driver
// table. It is static configuration, versioned and passed in explicitly
// rather than held as process state.
type DriverMap struct {
	Version string            `yaml:"version"`
	Drivers map[string]string `yaml:"drivers"`
}

// LoadDriverMap reads a driver map from a YAML file.
func LoadDriverMap(path string) (*DriverMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading driver map: %w", err)
	}
	var dm DriverMap
	if err := yaml.Unmarshal(data, &dm); err != nil {
		return nil, fmt.Errorf("parsing driver map: %w", err)
	}
	if len(dm.Drivers) == 0 {
		return nil, fmt.Errorf("driver map %s has no driver entries", path)
	}
	return &dm, nil
}

// Canonical resolves a raw driver label. Labels already in canonical
// form resolve to themselves.
func (dm *DriverMap) Canonical(label string) (string, bool) {
	if col, ok := dm.Drivers[label]; ok {
		return col, true
	}
	for _, col := range dm.Drivers {
		if col == label {
			return col, true
		}
	}
	return "", false
}

// DefaultDriverMap returns the built-in mapping covering the standard
// hospital driver labels.
func DefaultDriverMap() *DriverMap {
	return &DriverMap{
		Version: "1",
		Drivers: map[string]string{
			"Area in sq. meter":                     "area_in_sq_meter",
			"Connected Load":                        "connected_load",
			"Total Load (Kg)":                       "total_load_kg",
			"No. of Headcount":                      "no_of_headcount",
			"No. of Doctors":                        "no_of_doctors",
			"No. of Nursing Staff":                  "no_of_nursing_staff",
			"No. of Ward Boy":                       "no_of_ward_boy",
			"No. of Housekeeping Staff":             "no_of_housekeeping_staff",
			"No. of Security Staff Deployed/ No. of Exits.": "no_of_security_staff_deployed_no_of_exits",
			"No. of IT Users":                       "no_of_it_users",
			"No. of Patient (OP+IP)":                "no_of_patient_op_ip",
			"No. of IP Patients":                    "no_of_ip_patients",
			"No. of Laboratory Test":                "no_of_laboratory_test",
			"No. of Radiology Test":                 "no_of_radiology_test",
			"No. of CSSD Set Issued":                "no_of_cssd_set_issued",
			"No. of Diet Served":                    "no_of_diet_served",
			"No. of  Trips (Km)":                    "no_of_trips_km",
			"Volume of Cloth Load":                  "volume_of_cloth_load",
			"Surgical Store Issue Ratio":            "surgical_store_issue_ratio",
			"Central Store Issue Ratio":             "central_store_issue_ratio",
			"Non Surgical Store Issue Ratio":        "non_surgical_store_issue_ratio",
			"Stationery/Housekeeping Issue Ratio":   "stationery_housekeeping_issue_ratio",
			"OT Time (Hours)":                       "ot_time_hours",
			"Efforts of Supply Chain Department":    "efforts_of_supply_chain_department",
			"No. of Transaction in Finance & Billing Cost Centre": "no_of_transaction_in_finance_billing_cost_centre",
		},
	}
}
