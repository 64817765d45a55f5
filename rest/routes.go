package rest

import (
	"sort"

	m "github.com/datascribe/datascribe-go/rest/models"
	"github.com/datascribe/datascribe-go/types"
)

// Well-known parameter names
const (
	ParamTableName   = "tableName"
	ParamColumns     = "columns"
	ParamStartingRow = "startingRow"
	ParamNumRows     = "numRows"
	ParamFilters     = "filters"
)

// Paths of the materials API, served by fixed-signature client methods
const (
	MaterialByIDPath   = "/materials"
	MaterialSearchPath = "/materials/search"
)

// Operation names served outside the route table
const (
	OpGetMaterialByID = "get_material_by_id"
	OpSearchMaterials = "search_materials"
)

var routes = map[string]types.Route{}

func init() {
	for _, route := range []types.Route{
		{
			Name:        "get_data_tables",
			Path:        "/data/data-tables",
			Shape:       types.List,
			Model:       "DataTables",
			New:         func() interface{} { return &m.DataTables{} },
			Privileged:  true,
			Description: "Retrieve all data tables available in the DataScribe API.",
		},
		{
			Name:        "get_data_table",
			Path:        "/data/data-table",
			Shape:       types.List,
			Model:       "DataTableRows",
			Required:    []string{ParamTableName},
			New:         func() interface{} { return &m.DataTableRows{} },
			Paginated:   true,
			Filterable:  true,
			Description: "Retrieve the rows of a specific data table.",
		},
		{
			Name:        "get_data_tables_for_user",
			Path:        "/data/data-tables-for-user",
			Shape:       types.List,
			Model:       "DataTables",
			New:         func() interface{} { return &m.DataTables{} },
			Description: "Retrieve all data tables that the authenticated user has access to.",
		},
		{
			Name:        "get_data_table_rows",
			Path:        "/data/data-table-rows",
			Shape:       types.List,
			Model:       "DataTableRows",
			Required:    []string{ParamTableName, ParamColumns},
			New:         func() interface{} { return &m.DataTableRows{} },
			Paginated:   true,
			Filterable:  true,
			Description: "Retrieve rows from a data table, restricted to the given columns.",
		},
		{
			Name:        "get_data_table_columns",
			Path:        "/data/data-table-columns",
			Shape:       types.Scalar,
			Model:       "DataTableColumns",
			Required:    []string{ParamTableName},
			New:         func() interface{} { return &m.DataTableColumns{} },
			Description: "Retrieve the columns of a data table.",
		},
		{
			Name:        "get_data_table_metadata",
			Path:        "/data/data-table-metadata",
			Shape:       types.Scalar,
			Model:       "DataTableMetadata",
			Required:    []string{ParamTableName},
			New:         func() interface{} { return &m.DataTableMetadata{} },
			Description: "Retrieve the metadata of a data table.",
		},
		{
			Name:        "get_data_table_rows_count",
			Path:        "/data/data-table-rows-count",
			Shape:       types.Scalar,
			Model:       "DataTableRowsCount",
			Required:    []string{ParamTableName},
			New:         func() interface{} { return &m.DataTableRowsCount{} },
			Filterable:  true,
			Description: "Retrieve the number of rows in a data table.",
		},
	} {
		routes[route.Name] = route
	}
}

// Lookup returns the route registered under name
func Lookup(name string) (types.Route, bool) {
	route, ok := routes[name]
	if ok {
		route.Required = append([]string(nil), route.Required...)
	}
	return route, ok
}

// Names returns the sorted names of all routes
func Names() []string {
	names := make([]string, 0, len(routes))
	for name := range routes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Routes returns a copy of the route table sorted by name
func Routes() []types.Route {
	result := make([]types.Route, 0, len(routes))
	for _, name := range Names() {
		route, _ := Lookup(name)
		result = append(result, route)
	}
	return result
}
