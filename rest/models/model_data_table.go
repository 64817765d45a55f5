package models

// DataTable describes a table visible to the caller
type DataTable struct {
	TableName      string `json:"table_name" mapstructure:"table_name"`
	DisplayName    string `json:"display_name" mapstructure:"display_name"`
	UserID         string `json:"user_id" mapstructure:"user_id"`
	CreatedOn      string `json:"created_on" mapstructure:"created_on"`
	LastUpdated    string `json:"last_updated" mapstructure:"last_updated"`
	TableType      string `json:"table_type" mapstructure:"table_type"`
	Visibility     string `json:"visibility" mapstructure:"visibility"`
	DatabaseSchema string `json:"database_schema" mapstructure:"database_schema"`
}

// DataTables is an ordered list of tables
type DataTables []DataTable

func (t DataTables) Len() int      { return len(t) }
func (t DataTables) IsEmpty() bool { return len(t) == 0 }

// Names returns the table names in order
func (t DataTables) Names() []string {
	names := make([]string, len(t))
	for i, table := range t {
		names[i] = table.TableName
	}
	return names
}

// DataTableMetadata holds the descriptive metadata of a single table
type DataTableMetadata struct {
	TableName      string `json:"table_name" mapstructure:"table_name"`
	DisplayName    string `json:"display_name" mapstructure:"display_name"`
	UserID         string `json:"user_id" mapstructure:"user_id"`
	CreatedOn      string `json:"created_on" mapstructure:"created_on"`
	LastUpdated    string `json:"last_updated" mapstructure:"last_updated"`
	TableType      string `json:"table_type" mapstructure:"table_type"`
	Visibility     string `json:"visibility" mapstructure:"visibility"`
	DatabaseSchema string `json:"database_schema" mapstructure:"database_schema"`
}

// DataTableRowsCount wraps the number of rows matching a request
type DataTableRowsCount struct {
	TotalRows int `json:"total_rows" mapstructure:"total_rows"`
}
