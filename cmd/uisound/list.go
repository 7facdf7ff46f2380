package main

import (
	"strconv"

	"github.com/spf13/cobra"
	uisound "github.com/tphakala/go-uisound"
)

func newListCmd(opts *options) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available sounds",
		Long: `Display every sound in the catalog, or in the --recipes file.
With --yaml the recipes are printed in the recipe file format, which is a
good starting point for a custom file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			recipes, err := opts.recipes()
			if err != nil {
				return err
			}
			if asYAML {
				return uisound.WriteRecipes(cmd.OutOrStdout(), recipes)
			}
			listRecipes(cmd, opts, recipes)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print recipes as YAML")
	return cmd
}

func listRecipes(cmd *cobra.Command, opts *options, recipes []uisound.Recipe) {
	out := cmd.OutOrStdout()

	maxLen := 0
	for _, r := range recipes {
		maxLen = max(maxLen, len(r.Name))
	}

	for i, r := range recipes {
		number := ""
		if opts.recipesPath == "" {
			number = strconv.Itoa(i + 1)
		}
		printf(out, "  %2s  %-*s  %5.0f ms  %s\n", number, maxLen, r.Name, r.Duration(opts.rate)*1000, r.Description)
	}
}
