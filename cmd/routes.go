package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/datascribe/datascribe-go/client"
	"github.com/datascribe/datascribe-go/filter"
	"github.com/datascribe/datascribe-go/rest"
	"github.com/datascribe/datascribe-go/types"
)

const (
	defaultStartingRow = 0
	defaultNumRows     = 100
)

type flagSpec struct {
	shorthand string
	usage     string
}

var paramFlags = map[string]flagSpec{
	rest.ParamTableName:   {"t", "name of the data table"},
	rest.ParamColumns:     {"c", "comma separated list of columns to retrieve"},
	rest.ParamStartingRow: {"s", "index of the first row to return"},
	rest.ParamNumRows:     {"n", "maximum number of rows to return"},
}

// routeCommands returns one command per route of the route table
func (c *cli) routeCommands() []*cobra.Command {
	routes := rest.Routes()
	commands := make([]*cobra.Command, 0, len(routes))
	for _, route := range routes {
		commands = append(commands, c.routeCommand(route))
	}
	return commands
}

func (c *cli) routeCommand(route types.Route) *cobra.Command {
	cmd := &cobra.Command{
		Use:   c.naming.ToCommand(route.Name),
		Short: route.Description,
		Args:  cobra.NoArgs,
	}

	flags := cmd.Flags()
	for _, param := range route.Required {
		def := paramFlags[param]
		name := c.naming.ToFlag(param)
		if param == rest.ParamColumns {
			flags.StringSliceP(name, def.shorthand, nil, def.usage)
		} else {
			flags.StringP(name, def.shorthand, "", def.usage)
		}
		_ = cmd.MarkFlagRequired(name)
	}
	if route.Paginated {
		def := paramFlags[rest.ParamStartingRow]
		flags.IntP(c.naming.ToFlag(rest.ParamStartingRow), def.shorthand, defaultStartingRow, def.usage)
		def = paramFlags[rest.ParamNumRows]
		flags.IntP(c.naming.ToFlag(rest.ParamNumRows), def.shorthand, defaultNumRows, def.usage)
	}
	if route.Filterable {
		flags.StringArray("filter", nil, `row filter such as "age > 30" or "name in a,b" (repeatable)`)
	}
	flags.Bool("json", false, "print records as JSON")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		params, err := c.routeParams(cmd, route)
		if err != nil {
			return err
		}
		asJSON, _ := cmd.Flags().GetBool("json")

		return c.withClient(route.Privileged, func(ctx context.Context, dc *client.Client) error {
			result, err := dc.Invoke(ctx, route.Name, params)
			if err != nil {
				return err
			}
			return c.print(route.Model, result, asJSON)
		})
	}
	return cmd
}

// routeParams collects the operation parameters from the command's flags. Filter expressions are parsed
// here so that a malformed one is reported as a usage error.
func (c *cli) routeParams(cmd *cobra.Command, route types.Route) (types.Params, error) {
	flags := cmd.Flags()
	params := types.Params{}

	for _, param := range route.Required {
		name := c.naming.ToFlag(param)
		if param == rest.ParamColumns {
			columns, err := flags.GetStringSlice(name)
			if err != nil {
				return nil, err
			}
			params[param] = columns
			continue
		}
		value, err := flags.GetString(name)
		if err != nil {
			return nil, err
		}
		params[param] = value
	}

	if route.Paginated {
		for _, param := range []string{rest.ParamStartingRow, rest.ParamNumRows} {
			value, err := flags.GetInt(c.naming.ToFlag(param))
			if err != nil {
				return nil, err
			}
			params[param] = value
		}
	}

	if route.Filterable {
		expressions, err := flags.GetStringArray("filter")
		if err != nil {
			return nil, err
		}
		filters, err := filter.ParseAll(expressions)
		if err != nil {
			return nil, err
		}
		if len(filters) > 0 {
			params[rest.ParamFilters] = filters
		}
	}

	return params, nil
}
