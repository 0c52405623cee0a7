package cmd

import (
	catalogapp "layerit/application/catalog"

	"github.com/spf13/cobra"
)

func newProductsCmd(opts *rootOptions) *cobra.Command {
	var q catalogapp.ListProductsQuery

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the product catalog",
		Example: `  layerit products
  layerit products --skin-type oily
  layerit products --ingredient retinol`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withCore(cmd.Context(), func(c *core) error {
				products, err := c.catalog.ListProducts(cmd.Context(), q)
				if err != nil {
					return err
				}
				return printProducts(cmd.OutOrStdout(), products)
			})
		},
	}

	cmd.Flags().StringVar(&q.SkinType, "skin-type", "", "only products suited to this skin type")
	cmd.Flags().StringVar(&q.Ingredient, "ingredient", "", "only products containing this ingredient")
	cmd.Flags().StringVar(&q.Brand, "brand", "", "only products of this brand")
	return cmd
}
