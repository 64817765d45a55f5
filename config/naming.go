package config

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// routePrefix is dropped from route names when deriving CLI command names
const routePrefix = "get_"

type NamingConvention interface {
	// ToCommand converts a route name into a CLI command name, i.e. "get_data_table_rows" -> "data-table-rows"
	ToCommand(route string) string
	ToRoute(command string) string

	// ToFlag converts a request parameter into a CLI flag name, i.e. "tableName" -> "table-name"
	ToFlag(param string) string
	ToParam(flag string) string
}

type defaultNaming struct {
}

func NewDefaultNaming() NamingConvention {
	return &defaultNaming{}
}

func (n *defaultNaming) ToCommand(route string) string {
	return strcase.ToKebab(strings.TrimPrefix(route, routePrefix))
}

func (n *defaultNaming) ToRoute(command string) string {
	return routePrefix + strcase.ToSnake(command)
}

func (n *defaultNaming) ToFlag(param string) string {
	return strcase.ToKebab(param)
}

func (n *defaultNaming) ToParam(flag string) string {
	return strcase.ToLowerCamel(flag)
}
