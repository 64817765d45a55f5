package client

import (
	"context"

	"github.com/datascribe/datascribe-go/filter"
	"github.com/datascribe/datascribe-go/rest"
	m "github.com/datascribe/datascribe-go/rest/models"
	"github.com/datascribe/datascribe-go/types"
)

// RowOptions holds the optional parameters of row-returning and count operations. Zero values are not sent,
// so the service defaults apply.
type RowOptions struct {
	StartingRow *int
	NumRows     *int
	Filters     filter.Filters
}

// Page returns options starting at startingRow and limited to numRows rows
func Page(startingRow, numRows int) RowOptions {
	return RowOptions{StartingRow: &startingRow, NumRows: &numRows}
}

func (o RowOptions) WithFilters(filters ...filter.Filter) RowOptions {
	o.Filters = append(append(filter.Filters(nil), o.Filters...), filters...)
	return o
}

func (o RowOptions) apply(params types.Params, paginated bool) {
	if paginated && o.StartingRow != nil {
		params[rest.ParamStartingRow] = *o.StartingRow
	}
	if paginated && o.NumRows != nil {
		params[rest.ParamNumRows] = *o.NumRows
	}
	if len(o.Filters) > 0 {
		params[rest.ParamFilters] = o.Filters
	}
}

func (c *Client) GetDataTables(ctx context.Context) (m.DataTables, error) {
	result, err := c.Invoke(ctx, "get_data_tables", types.Params{})
	if err != nil {
		return nil, err
	}
	return *result.(*m.DataTables), nil
}

func (c *Client) GetDataTablesForUser(ctx context.Context) (m.DataTables, error) {
	result, err := c.Invoke(ctx, "get_data_tables_for_user", types.Params{})
	if err != nil {
		return nil, err
	}
	return *result.(*m.DataTables), nil
}

func (c *Client) GetDataTable(ctx context.Context, tableName string, opts RowOptions) (m.DataTableRows, error) {
	params := types.Params{rest.ParamTableName: tableName}
	opts.apply(params, true)
	result, err := c.Invoke(ctx, "get_data_table", params)
	if err != nil {
		return nil, err
	}
	return *result.(*m.DataTableRows), nil
}

// GetDataTableRows returns the rows of tableName restricted to columns. An empty column list is rejected
// before any request is made.
func (c *Client) GetDataTableRows(
	ctx context.Context,
	tableName string,
	columns []string,
	opts RowOptions,
) (m.DataTableRows, error) {
	params := types.Params{rest.ParamTableName: tableName, rest.ParamColumns: columns}
	opts.apply(params, true)
	result, err := c.Invoke(ctx, "get_data_table_rows", params)
	if err != nil {
		return nil, err
	}
	return *result.(*m.DataTableRows), nil
}

func (c *Client) GetDataTableColumns(ctx context.Context, tableName string) (m.DataTableColumns, error) {
	result, err := c.Invoke(ctx, "get_data_table_columns", types.Params{rest.ParamTableName: tableName})
	if err != nil {
		return m.DataTableColumns{}, err
	}
	return *result.(*m.DataTableColumns), nil
}

func (c *Client) GetDataTableMetadata(ctx context.Context, tableName string) (m.DataTableMetadata, error) {
	result, err := c.Invoke(ctx, "get_data_table_metadata", types.Params{rest.ParamTableName: tableName})
	if err != nil {
		return m.DataTableMetadata{}, err
	}
	return *result.(*m.DataTableMetadata), nil
}

// GetDataTableRowsCount counts the rows of tableName matching the filters of opts
func (c *Client) GetDataTableRowsCount(
	ctx context.Context,
	tableName string,
	opts RowOptions,
) (m.DataTableRowsCount, error) {
	params := types.Params{rest.ParamTableName: tableName}
	opts.apply(params, false)
	result, err := c.Invoke(ctx, "get_data_table_rows_count", params)
	if err != nil {
		return m.DataTableRowsCount{}, err
	}
	return *result.(*m.DataTableRowsCount), nil
}
