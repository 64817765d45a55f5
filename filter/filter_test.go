package filter

import (
	"testing"

	e "github.com/datascribe/datascribe-go/rest/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparisonBuilders(t *testing.T) {
	items := []struct {
		filter   Filter
		operator string
		value    interface{}
	}{
		{Column("age").Eq(30), "=", 30},
		{Column("age").Ne(25), "!=", 25},
		{Column("score").Gt(80), ">", 80},
		{Column("score").Ge(90), ">=", 90},
		{Column("score").Lt(50), "<", 50},
		{Column("score").Le(60), "<=", 60},
		{Column("name").Like("%John%"), "like", "%John%"},
		{Column("name").ILike("%john%"), "ilike", "%john%"},
	}

	for _, item := range items {
		assert.Equal(t, map[string]interface{}{
			"column":   item.filter.Column(),
			"operator": item.operator,
			"value":    item.value,
		}, item.filter.Map())
		assert.NoError(t, item.filter.Validate())
	}
}

func TestListBuilders(t *testing.T) {
	f := Column("status").In("active", "pending")
	assert.Equal(t, map[string]interface{}{
		"column":   "status",
		"operator": "in",
		"value":    []interface{}{"active", "pending"},
	}, f.Map())

	f = Column("status").NotIn(Strings([]string{"inactive", "banned"})...)
	assert.Equal(t, map[string]interface{}{
		"column":   "status",
		"operator": "not in",
		"value":    []interface{}{"inactive", "banned"},
	}, f.Map())
}

func TestListBuildersRejectEmpty(t *testing.T) {
	err := Column("status").In().Validate()
	assert.Error(t, err)
	assert.True(t, e.IsValue(err))

	_, err = Serialize(Column("status").NotIn())
	assert.Error(t, err)
}

func TestNullBuilders(t *testing.T) {
	assert.Equal(t, map[string]interface{}{
		"column":   "deleted_at",
		"operator": "is null",
		"value":    nil,
	}, Column("deleted_at").IsNull().Map())
	assert.Equal(t, map[string]interface{}{
		"column":   "deleted_at",
		"operator": "is not null",
		"value":    nil,
	}, Column("deleted_at").IsNotNull().Map())
}

func TestOperatorIsValid(t *testing.T) {
	for _, op := range Operators() {
		assert.True(t, op.IsValid(), string(op))
	}
	assert.False(t, Operator("==").IsValid())
	assert.False(t, Operator("between").IsValid())
}

func TestSerializeNone(t *testing.T) {
	result, err := Serialize(nil)
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestSerializeMap(t *testing.T) {
	d := map[string]interface{}{"column": "age", "operator": ">", "value": 18}
	result, err := Serialize(d)
	assert.NoError(t, err)
	assert.Equal(t, d, result)
}

func TestSerializeSingleFilter(t *testing.T) {
	result, err := Serialize(Column("age").Gt(18))
	assert.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"column": "age", "operator": ">", "value": 18}, result)

	f := Column("age").Gt(18)
	result, err = Serialize(&f)
	assert.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"column": "age", "operator": ">", "value": 18}, result)
}

func TestSerializeListOfFilters(t *testing.T) {
	expected := []map[string]interface{}{
		{"column": "age", "operator": ">", "value": 18},
		{"column": "name", "operator": "=", "value": "Alice"},
	}

	result, err := Serialize([]Filter{Column("age").Gt(18), Column("name").Eq("Alice")})
	assert.NoError(t, err)
	assert.Equal(t, expected, result)

	result, err = Serialize(Filters{Column("age").Gt(18), Column("name").Eq("Alice")})
	assert.NoError(t, err)
	assert.Equal(t, expected, result)

	result, err = Serialize([]interface{}{
		Column("age").Gt(18),
		map[string]interface{}{"column": "name", "operator": "=", "value": "Alice"},
	})
	assert.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestSerializeInvalidType(t *testing.T) {
	items := []interface{}{
		123,
		"age > 18",
		map[string]interface{}{"col": "age"},
		map[string]interface{}{"column": "age", "operator": "between"},
		[]interface{}{Column("age").Gt(18), 42},
	}

	for _, item := range items {
		result, err := Serialize(item)
		require.Error(t, err, "%v", item)
		assert.True(t, e.IsType(err), "%v", item)
		assert.Nil(t, result)
	}
}

func TestSerializeValidatesPredicateMaps(t *testing.T) {
	items := []interface{}{
		map[string]interface{}{"column": "s", "operator": "in", "value": []interface{}{}},
		map[string]interface{}{"column": "s", "operator": "not in", "value": "a"},
		map[string]interface{}{"column": "s", "operator": "is null", "value": 5},
		[]interface{}{map[string]interface{}{"column": "s", "operator": "in", "value": []interface{}{}}},
		[]interface{}{
			Column("age").Gt(18),
			map[string]interface{}{"column": "deleted", "operator": "is null", "value": 5},
		},
		[]map[string]interface{}{{"column": "s", "operator": "not in", "value": []string{}}},
	}

	for _, item := range items {
		result, err := Serialize(item)
		require.Error(t, err, "%v", item)
		assert.True(t, e.IsValue(err), "%v", item)
		assert.Nil(t, result)
	}

	in := map[string]interface{}{"column": "s", "operator": "in", "value": []string{"a", "b"}}
	result, err := Serialize([]interface{}{in})
	assert.NoError(t, err)
	assert.Equal(t, []map[string]interface{}{in}, result)
}
