package cmd

import (
	"github.com/spf13/cobra"
)

func newRoutineCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Manage your saved routine",
		Long:  `List, add or remove routine products. Every pair in the routine is checked for conflicts.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Show the routine and its compatibility report",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return opts.withCore(cmd.Context(), func(c *core) error {
					return printRoutine(cmd.OutOrStdout(), c.session.Routine(cmd.Context()))
				})
			},
		},
		&cobra.Command{
			Use:     "add <id>",
			Short:   "Add a product to the routine",
			Example: `  layerit routine add 3`,
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return opts.withCore(cmd.Context(), func(c *core) error {
					r, err := c.session.AddToRoutine(cmd.Context(), id)
					if err != nil {
						return err
					}
					return printRoutine(cmd.OutOrStdout(), r)
				})
			},
		},
		&cobra.Command{
			Use:     "remove <id>",
			Aliases: []string{"rm"},
			Short:   "Remove a product from the routine",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return opts.withCore(cmd.Context(), func(c *core) error {
					r, err := c.session.RemoveFromRoutine(cmd.Context(), id)
					if err != nil {
						return err
					}
					return printRoutine(cmd.OutOrStdout(), r)
				})
			},
		},
	)
	return cmd
}
