package rest

// Tables known to the fake server
var Tables = []map[string]interface{}{
	{
		"table_name":      "table1",
		"display_name":    "Table One",
		"user_id":         "user1",
		"created_on":      "2024-01-01T00:00:00Z",
		"last_updated":    "2024-01-02T00:00:00Z",
		"table_type":      "user",
		"visibility":      "private",
		"database_schema": "public",
	},
	{
		"table_name":      "table2",
		"display_name":    "Table Two",
		"user_id":         "user2",
		"created_on":      "2024-02-01T00:00:00Z",
		"last_updated":    "2024-02-02T00:00:00Z",
		"table_type":      "user",
		"visibility":      "public",
		"database_schema": "public",
	},
}

var Columns = map[string][]map[string]interface{}{
	"table1": {
		{"column_name": "id", "data_type": "integer", "is_nullable": "NO"},
		{"column_name": "name", "data_type": "text", "is_nullable": "YES"},
	},
	"table2": {
		{"column_name": "score", "data_type": "double precision", "is_nullable": "YES"},
	},
}

var Rows = map[string][]map[string]interface{}{
	"table1": {
		{
			"_datascribe_user":        "user1",
			"_datascribe_insert_time": "2024-01-01T10:00:00Z",
			"_datascribe_metadata":    map[string]interface{}{"source": "upload"},
			"id":                      1,
			"name":                    "alpha",
		},
		{
			"_datascribe_user":        "user1",
			"_datascribe_insert_time": "2024-01-01T11:00:00Z",
			"_datascribe_metadata":    map[string]interface{}{"source": "upload"},
			"id":                      2,
			"name":                    "beta",
		},
	},
	"table2": {},
}

// Materials per provider
var Materials = map[string][]map[string]interface{}{
	"mp": {
		{"id": "mp-149", "formula": "Si", "data": map[string]interface{}{"band_gap": 0.61}},
		{"id": "mp-7000", "formula": "SiO2", "data": map[string]interface{}{"band_gap": 5.69}},
	},
	"aflow": {
		{"id": "aflow:0132ab6b9cddd429", "formula": "SiO2", "data": map[string]interface{}{"Egap": 5.6}},
	},
	"oqmd": {
		{"id": "oqmd-1215", "formula": "SiO2", "data": map[string]interface{}{"delta_e": -3.0}},
	},
}
