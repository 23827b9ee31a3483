package rowset

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGProvider loads datasets from PostgreSQL. Each dataset maps to one
// table of the same name; rows are scoped to a hospital when a hospital
// id is configured.
type PGProvider struct {
	pool     *pgxpool.Pool
	hospital string
}

// NewPGProvider creates a PostgreSQL-backed provider.
func NewPGProvider(ctx context.Context, databaseURL, hospitalID string) (*PGProvider, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	// Connection pooling configuration
	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return &PGProvider{pool: pool, hospital: hospitalID}, nil
}

// Ping checks database connectivity.
func (p *PGProvider) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close closes the connection pool.
func (p *PGProvider) Close() error {
	p.pool.Close()
	return nil
}

// datasetTables whitelists the relations a provider may read. Dataset
// names come from configuration, never from request input, but the
// whitelist keeps query construction closed.
var datasetTables = map[string]string{
	DatasetCostCenter:          "cost_center",
	DatasetSecondaryCostDriver: "secondary_cost_driver",
	DatasetServiceRegister:     "service_register",
	DatasetConsumption:         "consumption_data",
	DatasetExpenseWise:         "expense_wise",
	DatasetHR:                  "hr_data",
	DatasetTrialBalance:        "trial_balance",
	DatasetConnectedLoad:       "connected_load",
	DatasetVariableCostBill:    "variable_cost_bill_wise",
	DatasetOccupancyRegister:   "occupancy_register",
	DatasetOTRegister:          "ot_register",
	DatasetTATData:             "tat_data",
	DatasetFixedAssetRegister:  "fixed_asset_register",
}

// buildQuery returns the SQL and args for one dataset fetch.
func (p *PGProvider) buildQuery(name string) (string, []any, error) {
	table, ok := datasetTables[name]
	if !ok {
		return "", nil, fmt.Errorf("%w: %s", ErrUnknownDataset, name)
	}
	if p.hospital != "" {
		return fmt.Sprintf("SELECT * FROM %s WHERE hospital_id = $1", table), []any{p.hospital}, nil
	}
	return fmt.Sprintf("SELECT * FROM %s", table), nil, nil
}

// Fetch loads one dataset. Numeric coercion happens lazily in Row
// accessors; this method only shapes rows into the Table form.
func (p *PGProvider) Fetch(ctx context.Context, name string) (*Table, error) {
	sql, args, err := p.buildQuery(name)
	if err != nil {
		return nil, err
	}

	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching dataset %s: %w", name, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, fd := range fields {
		columns[i] = string(fd.Name)
	}

	table := NewTable(name, columns...)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("reading dataset %s: %w", name, err)
		}
		row := make(Row, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		table.Append(row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dataset %s: %w", name, err)
	}

	return table, nil
}
