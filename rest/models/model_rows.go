package models

import (
	"encoding/json"
)

// Reserved columns injected by the service in every row
const (
	UserColumn       = "_datascribe_user"
	InsertTimeColumn = "_datascribe_insert_time"
	MetadataColumn   = "_datascribe_metadata"
)

// DataTableRow is one table row: the reserved columns plus the requested user columns
type DataTableRow struct {
	User       string                 `json:"_datascribe_user" mapstructure:"_datascribe_user"`
	InsertTime string                 `json:"_datascribe_insert_time" mapstructure:"_datascribe_insert_time"`
	Metadata   interface{}            `json:"_datascribe_metadata" mapstructure:"_datascribe_metadata"`
	Columns    map[string]interface{} `json:"-" mapstructure:",remain"`
}

// Get returns the value of a user column
func (r DataTableRow) Get(column string) (interface{}, bool) {
	value, ok := r.Columns[column]
	return value, ok
}

// MarshalJSON flattens the user columns next to the reserved ones
func (r DataTableRow) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, len(r.Columns)+3)
	for k, v := range r.Columns {
		flat[k] = v
	}
	flat[UserColumn] = r.User
	flat[InsertTimeColumn] = r.InsertTime
	flat[MetadataColumn] = r.Metadata
	return json.Marshal(flat)
}

// DataTableRows is an ordered list of rows
type DataTableRows []DataTableRow

func (r DataTableRows) Len() int      { return len(r) }
func (r DataTableRows) IsEmpty() bool { return len(r) == 0 }
