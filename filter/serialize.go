package filter

import (
	"reflect"

	e "github.com/datascribe/datascribe-go/rest/errors"
)

// Serialize converts the accepted filter forms into their wire representation:
//
//	nil                             -> nil
//	map[string]interface{}          -> the same map, when it has the predicate shape
//	Filter, *Filter                 -> a single predicate map
//	Filters, []Filter, []*Filter,
//	[]map[string]interface{},
//	[]interface{}                   -> a list of predicate maps, in input order (AND)
//
// Any other value fails with a TypeError.
func Serialize(filters interface{}) (interface{}, error) {
	switch v := filters.(type) {
	case nil:
		return nil, nil
	case map[string]interface{}:
		if err := validateMap(v); err != nil {
			return nil, err
		}
		return v, nil
	case Filter:
		return serializeOne(v)
	case *Filter:
		if v == nil {
			return nil, nil
		}
		return serializeOne(*v)
	case Filters:
		return serializeList(len(v), func(i int) interface{} { return v[i] })
	case []Filter:
		return serializeList(len(v), func(i int) interface{} { return v[i] })
	case []*Filter:
		return serializeList(len(v), func(i int) interface{} { return v[i] })
	case []map[string]interface{}:
		return serializeList(len(v), func(i int) interface{} { return v[i] })
	case []interface{}:
		return serializeList(len(v), func(i int) interface{} { return v[i] })
	default:
		return nil, e.NewInvalidFilterError(filters)
	}
}

func serializeOne(f Filter) (map[string]interface{}, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f.Map(), nil
}

func serializeList(n int, at func(int) interface{}) ([]map[string]interface{}, error) {
	result := make([]map[string]interface{}, 0, n)
	for i := 0; i < n; i++ {
		item := at(i)
		switch v := item.(type) {
		case Filter:
			m, err := serializeOne(v)
			if err != nil {
				return nil, err
			}
			result = append(result, m)
		case *Filter:
			if v == nil {
				return nil, e.NewInvalidFilterError(item)
			}
			m, err := serializeOne(*v)
			if err != nil {
				return nil, err
			}
			result = append(result, m)
		case map[string]interface{}:
			if err := validateMap(v); err != nil {
				return nil, err
			}
			result = append(result, v)
		default:
			return nil, e.NewInvalidFilterError(item)
		}
	}
	return result, nil
}

func isPredicateMap(m map[string]interface{}) bool {
	column, ok := m["column"].(string)
	if !ok || column == "" {
		return false
	}
	operator, ok := m["operator"].(string)
	if !ok || !Operator(operator).IsValid() {
		return false
	}
	return true
}

// validateMap checks a prebuilt predicate map against the same rules as a built Filter. The map itself is
// sent unchanged.
func validateMap(m map[string]interface{}) error {
	if !isPredicateMap(m) {
		return e.NewInvalidFilterError(m)
	}
	f := Filter{
		column:   m["column"].(string),
		operator: Operator(m["operator"].(string)),
		value:    m["value"],
	}
	if f.operator.isList() {
		f.value = toList(f.value)
	}
	return f.Validate()
}

// toList returns the elements of any slice or array value, or nil for anything else
func toList(value interface{}) []interface{} {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	values := make([]interface{}, rv.Len())
	for i := range values {
		values[i] = rv.Index(i).Interface()
	}
	return values
}
