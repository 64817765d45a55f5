package filter

import (
	"regexp"
	"strings"

	e "github.com/datascribe/datascribe-go/rest/errors"
)

type keywordRule struct {
	re       *regexp.Regexp
	operator Operator
}

// Checked in order: the longer keyword phrases must win over their prefixes ("not in" before "in").
// Columns are single tokens so that a keyword inside a value ("title like %in the%") is not an operator.
var keywordRules = []keywordRule{
	{regexp.MustCompile(`(?i)^(\S+)\s+is\s+not\s+null$`), IsNotNull},
	{regexp.MustCompile(`(?i)^(\S+)\s+is\s+null$`), IsNull},
	{regexp.MustCompile(`(?i)^(\S+)\s+not\s+in\s+(.+)$`), NotIn},
	{regexp.MustCompile(`(?i)^(\S+)\s+in\s+(.+)$`), In},
	{regexp.MustCompile(`(?i)^(\S+)\s+like\s+(.+)$`), Like},
	{regexp.MustCompile(`(?i)^(\S+)\s+ilike\s+(.+)$`), ILike},
}

type symbolRule struct {
	token    string
	operator Operator
}

// operatorChars may not appear in a column name of a symbolic predicate
const operatorChars = "<>=!"

// Two character tokens come first so that ">=" is never split as ">" followed by "=".
var symbolRules = []symbolRule{
	{">=", Ge},
	{"<=", Le},
	{"!=", Ne},
	{"==", Eq},
	{">", Gt},
	{"<", Lt},
}

// Parse reads a predicate written as "column OP value", e.g. "age >= 18", "name like %ann%",
// "status in active,pending" or "deleted_at is null". Values are kept as strings.
func Parse(text string) (Filter, error) {
	trimmed := strings.TrimSpace(text)

	for _, rule := range keywordRules {
		match := rule.re.FindStringSubmatch(trimmed)
		if match == nil {
			continue
		}
		column := Column(strings.TrimSpace(match[1]))
		if column == "" {
			return Filter{}, e.NewSyntaxError(text)
		}
		switch rule.operator {
		case IsNull:
			return column.IsNull(), nil
		case IsNotNull:
			return column.IsNotNull(), nil
		case In, NotIn:
			values := splitList(match[2])
			if len(values) == 0 {
				return Filter{}, e.NewSyntaxError(text)
			}
			return column.list(rule.operator, Strings(values)), nil
		default:
			value := strings.TrimSpace(match[2])
			if value == "" {
				return Filter{}, e.NewSyntaxError(text)
			}
			return column.compare(rule.operator, value), nil
		}
	}

	for _, rule := range symbolRules {
		idx := strings.Index(trimmed, rule.token)
		if idx < 0 {
			continue
		}
		column := strings.TrimSpace(trimmed[:idx])
		value := strings.TrimSpace(trimmed[idx+len(rule.token):])
		if column == "" || value == "" || strings.ContainsAny(column, operatorChars) {
			return Filter{}, e.NewSyntaxError(text)
		}
		return Column(column).compare(rule.operator, value), nil
	}

	return Filter{}, e.NewSyntaxError(text)
}

// ParseAll parses every text and returns the predicates in order
func ParseAll(texts []string) (Filters, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	filters := make(Filters, 0, len(texts))
	for _, text := range texts {
		f, err := Parse(text)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}

func splitList(text string) []string {
	parts := strings.Split(text, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}
