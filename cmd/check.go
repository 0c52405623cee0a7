package cmd

import (
	"context"
	"fmt"
	"strconv"

	catalogapp "layerit/application/catalog"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [idA idB]",
		Short: "Check whether two products can be layered",
		Long: `Compare the ingredients of two products against the conflict rules.
Without arguments both products are picked interactively.`,
		Example: `  layerit check 1 5
  layerit check`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 product ids, received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withCore(cmd.Context(), func(c *core) error {
				var req catalogapp.CompatibilityRequest
				var err error
				if len(args) == 2 {
					req, err = parsePair(args[0], args[1])
				} else {
					req, err = pickPair(cmd.Context(), c.catalog)
				}
				if err != nil {
					return err
				}

				res, err := c.catalog.CheckCompatibility(cmd.Context(), req)
				if err != nil {
					return err
				}
				return printCompatibility(cmd.OutOrStdout(), res)
			})
		},
	}
	return cmd
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid product id %q", s)
	}
	return id, nil
}

func parsePair(a, b string) (catalogapp.CompatibilityRequest, error) {
	var req catalogapp.CompatibilityRequest
	var err error
	if req.ProductA, err = parseID(a); err != nil {
		return req, err
	}
	if req.ProductB, err = parseID(b); err != nil {
		return req, err
	}
	return req, nil
}

// pickPair 交互式选择两个商品
func pickPair(ctx context.Context, svc *catalogapp.ApplicationService) (catalogapp.CompatibilityRequest, error) {
	var req catalogapp.CompatibilityRequest

	products, err := svc.ListProducts(ctx, catalogapp.ListProductsQuery{})
	if err != nil {
		return req, err
	}
	options := make([]huh.Option[int], len(products))
	for i, p := range products {
		options[i] = huh.NewOption(fmt.Sprintf("%s · %s", p.Name, p.Brand), p.ID)
	}

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("First product").
				Options(options...).
				Value(&req.ProductA),
			huh.NewSelect[int]().
				Title("Second product").
				Options(options...).
				Value(&req.ProductB),
		),
	).Run()
	return req, err
}
