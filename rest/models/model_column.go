package models

// DataTableColumn describes one column of a table
type DataTableColumn struct {
	ColumnName string `json:"column_name" mapstructure:"column_name"`
	DataType   string `json:"data_type" mapstructure:"data_type"`
	IsNullable string `json:"is_nullable" mapstructure:"is_nullable"`
}

// DataTableColumns is the ordered column list of a table
type DataTableColumns struct {
	TableName   string            `json:"table_name" mapstructure:"table_name"`
	DisplayName string            `json:"display_name" mapstructure:"display_name"`
	Columns     []DataTableColumn `json:"columns" mapstructure:"columns"`
}

func (c DataTableColumns) Len() int      { return len(c.Columns) }
func (c DataTableColumns) IsEmpty() bool { return len(c.Columns) == 0 }

// ToList returns the column names in order
func (c DataTableColumns) ToList() []string {
	names := make([]string, len(c.Columns))
	for i, column := range c.Columns {
		names[i] = column.ColumnName
	}
	return names
}
