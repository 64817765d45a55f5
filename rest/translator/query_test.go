package translator

import (
	"fmt"
	"net/url"
	"reflect"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datascribe/datascribe-go/filter"
	"github.com/datascribe/datascribe-go/rest"
	e "github.com/datascribe/datascribe-go/rest/errors"
	m "github.com/datascribe/datascribe-go/rest/models"
	"github.com/datascribe/datascribe-go/types"
)

func route(t *testing.T, name string) types.Route {
	r, ok := rest.Lookup(name)
	require.True(t, ok, name)
	return r
}

func TestToQuery(t *testing.T) {
	tests := []struct {
		name    string
		route   string
		params  types.Params
		want    string
		wantErr bool
	}{
		{
			name:   "Happy Path",
			route:  "get_data_table_rows",
			params: types.Params{"tableName": "t", "columns": []string{"a", "b"}, "startingRow": 0, "numRows": 100},
			want:   "columns=a%2Cb&numRows=100&startingRow=0&tableName=t",
		}, {
			name:   "Columns as string",
			route:  "get_data_table_rows",
			params: types.Params{"tableName": "t", "columns": "a,b"},
			want:   "columns=a%2Cb&tableName=t",
		}, {
			name:   "No required params",
			route:  "get_data_tables_for_user",
			params: nil,
			want:   "",
		}, {
			name:   "Nil values dropped",
			route:  "get_data_table",
			params: types.Params{"tableName": "t", "startingRow": nil, "filters": nil},
			want:   "tableName=t",
		}, {
			name:   "Single filter",
			route:  "get_data_table_rows_count",
			params: types.Params{"tableName": "t", "filters": filter.Column("age").Gt(18)},
			want:   "filters=%7B%22column%22%3A%22age%22%2C%22operator%22%3A%22%3E%22%2C%22value%22%3A18%7D&tableName=t",
		}, {
			name:    "Missing tableName",
			route:   "get_data_table",
			params:  types.Params{},
			wantErr: true,
		}, {
			name:    "Nil tableName",
			route:   "get_data_table_metadata",
			params:  types.Params{"tableName": nil},
			wantErr: true,
		}, {
			name:    "Empty tableName",
			route:   "get_data_table_columns",
			params:  types.Params{"tableName": ""},
			wantErr: true,
		}, {
			name:    "Empty columns",
			route:   "get_data_table_rows",
			params:  types.Params{"tableName": "t", "columns": []string{}},
			wantErr: true,
		}, {
			name:    "Invalid filters",
			route:   "get_data_table",
			params:  types.Params{"tableName": "t", "filters": 123},
			wantErr: true,
		}, {
			name:    "Unsupported value",
			route:   "get_data_table",
			params:  types.Params{"tableName": "t", "other": struct{}{}},
			wantErr: true,
		},
	}
	dmp := diffmatchpatch.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := QueryTranslator{Route: route(t, tt.route)}
			query, err := a.ToQuery(tt.params)
			if (err != nil) != tt.wantErr {
				t.Errorf("ToQuery() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}

			got := query.Encode()
			if tt.want != got {
				diffs := dmp.DiffMain(tt.want, got, false)
				fmt.Println(dmp.DiffPrettyText(diffs))
				t.Errorf("ToQuery() got = '%v', want '%v'", got, tt.want)
			}
		})
	}
}

func TestToQueryErrorKinds(t *testing.T) {
	a := QueryTranslator{Route: route(t, "get_data_table_rows")}

	_, err := a.ToQuery(types.Params{"columns": []string{"a"}})
	require.Error(t, err)
	assert.True(t, e.IsValue(err))
	assert.Equal(t, "Missing required parameter: tableName", err.Error())

	_, err = a.ToQuery(types.Params{"tableName": "t", "columns": []string{}})
	require.Error(t, err)
	assert.True(t, e.IsValue(err))
	assert.Equal(t, "Missing required parameter: columns", err.Error())

	_, err = a.ToQuery(types.Params{"tableName": "", "columns": []string{"a"}})
	require.Error(t, err)
	assert.Equal(t, "Missing required parameter: tableName", err.Error())

	_, err = a.ToQuery(types.Params{"tableName": "t", "columns": []string{"a"}, "filters": 123})
	require.Error(t, err)
	assert.True(t, e.IsType(err))
}

func TestToQueryFilterList(t *testing.T) {
	a := QueryTranslator{Route: route(t, "get_data_table_rows")}
	query, err := a.ToQuery(types.Params{
		"tableName": "t",
		"columns":   []string{"a"},
		"filters":   filter.Filters{filter.Column("a").IsNotNull(), filter.Column("b").In("x", "y")},
	})
	require.NoError(t, err)
	assert.Equal(t,
		`[{"column":"a","operator":"is not null","value":null},{"column":"b","operator":"in","value":["x","y"]}]`,
		query.Get("filters"))

	// An empty filter list means no filtering at all
	query, err = a.ToQuery(types.Params{"tableName": "t", "columns": []string{"a"}, "filters": filter.Filters{}})
	require.NoError(t, err)
	_, ok := query["filters"]
	assert.False(t, ok)
}

func TestToMaterialSearch(t *testing.T) {
	q := m.MaterialQuery{
		Formula:   "SiO2",
		Elements:  []string{"Si", "O"},
		Props:     []string{"band_gap"},
		Providers: []string{"mp"},
		Page:      1,
		Size:      2,
	}
	got, err := ToMaterialSearch(q, "mp")
	require.NoError(t, err)
	want := url.Values{
		"formula":  {"SiO2"},
		"elements": {"Si,O"},
		"props":    {"band_gap"},
		"provider": {"mp"},
		"page":     {"1"},
		"size":     {"2"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToMaterialSearch() got = %v, want %v", got, want)
	}

	tests := []struct {
		name  string
		query m.MaterialQuery
	}{
		{"no providers", m.MaterialQuery{Page: 1, Size: 10}},
		{"unknown provider", m.MaterialQuery{Providers: []string{"icsd"}, Page: 1, Size: 10}},
		{"page zero", m.MaterialQuery{Providers: []string{"mp"}, Page: 0, Size: 10}},
		{"size too large", m.MaterialQuery{Providers: []string{"mp"}, Page: 1, Size: 5000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToMaterialSearch(tt.query, "mp")
			require.Error(t, err)
			assert.True(t, e.IsValue(err))
		})
	}
}

func TestToMaterialLookup(t *testing.T) {
	got, err := ToMaterialLookup(m.MaterialLookup{ID: "mp-149", Providers: []string{"mp"}}, "mp")
	require.NoError(t, err)
	assert.Equal(t, "id=mp-149&provider=mp", got.Encode())

	_, err = ToMaterialLookup(m.MaterialLookup{Providers: []string{"mp"}}, "mp")
	require.Error(t, err)
	assert.Equal(t, "ID is a required field", err.Error())
}
