// Package filter builds the row predicates sent to the DataScribe service.
//
// Predicates combine only by juxtaposition: a sequence of filters is an implicit AND,
// there is no OR and no grouping. All evaluation happens server side.
package filter

import (
	"fmt"

	e "github.com/datascribe/datascribe-go/rest/errors"
)

// Operator is a predicate operator as it appears on the wire
type Operator string

const (
	Eq        Operator = "="
	Ne        Operator = "!="
	Gt        Operator = ">"
	Ge        Operator = ">="
	Lt        Operator = "<"
	Le        Operator = "<="
	In        Operator = "in"
	NotIn     Operator = "not in"
	Like      Operator = "like"
	ILike     Operator = "ilike"
	IsNull    Operator = "is null"
	IsNotNull Operator = "is not null"
)

// Operators returns all valid operators
func Operators() []Operator {
	return []Operator{Eq, Ne, Gt, Ge, Lt, Le, In, NotIn, Like, ILike, IsNull, IsNotNull}
}

// IsValid checks if the operator is valid.
func (op Operator) IsValid() bool {
	switch op {
	case Eq, Ne, Gt, Ge, Lt, Le, In, NotIn, Like, ILike, IsNull, IsNotNull:
		return true
	}
	return false
}

func (op Operator) isList() bool {
	return op == In || op == NotIn
}

func (op Operator) isNull() bool {
	return op == IsNull || op == IsNotNull
}

// Filter is a single column predicate. The zero value is not a valid filter, use Column to build one.
type Filter struct {
	column   string
	operator Operator
	value    interface{}
}

// Filters is a sequence of predicates combined with AND
type Filters []Filter

func (f Filter) Column() string     { return f.column }
func (f Filter) Operator() Operator { return f.operator }
func (f Filter) Value() interface{} { return f.value }

// Validate checks the operator/value invariants of the predicate
func (f Filter) Validate() error {
	if f.column == "" {
		return e.NewValueError("filter column must be provided")
	}
	if !f.operator.IsValid() {
		return e.NewValueError(fmt.Sprintf("invalid filter operator %q", f.operator))
	}
	if f.operator.isList() {
		values, _ := f.value.([]interface{})
		if len(values) == 0 {
			return e.NewValueError(fmt.Sprintf("operator %q requires at least one value", f.operator))
		}
	}
	if f.operator.isNull() && f.value != nil {
		return e.NewValueError(fmt.Sprintf("operator %q does not take a value", f.operator))
	}
	return nil
}

// Map returns the normalized wire form of the predicate
func (f Filter) Map() map[string]interface{} {
	return map[string]interface{}{
		"column":   f.column,
		"operator": string(f.operator),
		"value":    f.value,
	}
}

func (f Filter) String() string {
	switch {
	case f.operator.isNull():
		return fmt.Sprintf("%s %s", f.column, f.operator)
	default:
		return fmt.Sprintf("%s %s %v", f.column, f.operator, f.value)
	}
}

// Column starts a predicate on the named column
type Column string

func (c Column) Eq(value interface{}) Filter { return c.compare(Eq, value) }
func (c Column) Ne(value interface{}) Filter { return c.compare(Ne, value) }
func (c Column) Gt(value interface{}) Filter { return c.compare(Gt, value) }
func (c Column) Ge(value interface{}) Filter { return c.compare(Ge, value) }
func (c Column) Lt(value interface{}) Filter { return c.compare(Lt, value) }
func (c Column) Le(value interface{}) Filter { return c.compare(Le, value) }

// In matches rows whose column value is one of values. At least one value is required.
func (c Column) In(values ...interface{}) Filter { return c.list(In, values) }

// NotIn matches rows whose column value is none of values. At least one value is required.
func (c Column) NotIn(values ...interface{}) Filter { return c.list(NotIn, values) }

func (c Column) Like(pattern string) Filter  { return c.compare(Like, pattern) }
func (c Column) ILike(pattern string) Filter { return c.compare(ILike, pattern) }

func (c Column) IsNull() Filter    { return Filter{column: string(c), operator: IsNull} }
func (c Column) IsNotNull() Filter { return Filter{column: string(c), operator: IsNotNull} }

func (c Column) compare(op Operator, value interface{}) Filter {
	return Filter{column: string(c), operator: op, value: value}
}

func (c Column) list(op Operator, values []interface{}) Filter {
	copied := make([]interface{}, len(values))
	copy(copied, values)
	return Filter{column: string(c), operator: op, value: copied}
}

// Strings converts a string slice for use with In and NotIn
func Strings(values []string) []interface{} {
	result := make([]interface{}, len(values))
	for i, v := range values {
		result[i] = v
	}
	return result
}
