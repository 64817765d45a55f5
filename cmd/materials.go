package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/datascribe/datascribe-go/client"
	"github.com/datascribe/datascribe-go/config"
	m "github.com/datascribe/datascribe-go/rest/models"
)

const (
	materialByIDModel   = "MaterialByIdResults"
	materialSearchModel = "MaterialSearchResults"
)

func (c *cli) materialByIDCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   c.naming.ToCommand("get_material_by_id"),
		Short: "Retrieve a material by its provider identifier.",
		Args:  cobra.NoArgs,
	}

	flags := cmd.Flags()
	flags.StringP("id", "i", "", "material identifier, e.g. mp-149")
	_ = cmd.MarkFlagRequired("id")
	addProviderFlags(flags)
	flags.Bool("json", false, "print records as JSON")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("id")
		providers := selectedProviders(cmd.Flags())
		asJSON, _ := cmd.Flags().GetBool("json")

		return c.withClient(false, func(ctx context.Context, dc *client.Client) error {
			results, err := dc.GetMaterialByID(ctx, id, providers)
			if err != nil {
				return err
			}
			return c.print(materialByIDModel, results, asJSON)
		})
	}
	return cmd
}

func (c *cli) searchMaterialsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   c.naming.ToCommand("search_materials"),
		Short: "Search materials by formula, elements and properties.",
		Args:  cobra.NoArgs,
	}

	flags := cmd.Flags()
	flags.StringP("formula", "f", "", "chemical formula, e.g. SiO2")
	flags.StringSliceP("elements", "e", nil, "comma separated elements the material must contain")
	flags.StringSliceP("exclude-elements", "x", nil, "comma separated elements the material must not contain")
	flags.StringP("spacegroup", "g", "", "space group symbol or number")
	flags.StringSliceP("props", "p", nil, "comma separated properties to return")
	flags.String("temperature", "", "temperature condition")
	flags.Int("page", client.DefaultMaterialPage, "page number, starting at 1")
	flags.Int("size", client.DefaultMaterialSize, "results per page")
	addProviderFlags(flags)
	flags.Bool("json", false, "print records as JSON")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		query := m.MaterialQuery{Providers: selectedProviders(flags).Names()}
		query.Formula, _ = flags.GetString("formula")
		query.Elements, _ = flags.GetStringSlice("elements")
		query.ExcludeElements, _ = flags.GetStringSlice("exclude-elements")
		query.Spacegroup, _ = flags.GetString("spacegroup")
		query.Props, _ = flags.GetStringSlice("props")
		query.Temperature, _ = flags.GetString("temperature")
		query.Page, _ = flags.GetInt("page")
		query.Size, _ = flags.GetInt("size")
		asJSON, _ := flags.GetBool("json")

		return c.withClient(false, func(ctx context.Context, dc *client.Client) error {
			results, err := dc.SearchMaterials(ctx, query)
			if err != nil {
				return err
			}
			return c.print(materialSearchModel, results, asJSON)
		})
	}
	return cmd
}

func addProviderFlags(flags *pflag.FlagSet) {
	flags.Bool("mp", false, "query the Materials Project (default)")
	flags.Bool("aflow", false, "query AFLOW")
	flags.Bool("oqmd", false, "query OQMD")
}

// selectedProviders returns the providers chosen by flag, the Materials Project when none is
func selectedProviders(flags *pflag.FlagSet) config.Providers {
	var providers config.Providers
	for _, entry := range []struct {
		flag     string
		provider config.Providers
	}{
		{"mp", config.MP},
		{"aflow", config.AFLOW},
		{"oqmd", config.OQMD},
	} {
		if selected, _ := flags.GetBool(entry.flag); selected {
			providers.Set(entry.provider)
		}
	}
	if providers.IsEmpty() {
		providers.Set(config.MP)
	}
	return providers
}
