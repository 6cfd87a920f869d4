package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/valuekit/pkg/numfmt"
	"github.com/dmitrymomot/valuekit/pkg/strutil"
)

func groupCmd(a *app) *cobra.Command {
	var separator string
	cmd := &cobra.Command{
		Use:   "group <number>",
		Short: "Render a number with digit grouping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sep := numfmt.GroupingSeparator(separator)
			if n, ok := strutil.ToInt(args[0]).Get(); ok {
				fmt.Fprintln(cmd.OutOrStdout(), numfmt.GroupWith(a.numbers, n, sep))
				return nil
			}
			v, ok := strutil.ToFloat(args[0]).Get()
			if !ok {
				return fmt.Errorf("%w: number %q", ErrInvalidArgument, args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), numfmt.GroupWith(a.numbers, v, sep))
			return nil
		},
	}
	cmd.Flags().StringVar(&separator, "separator", numfmt.DefaultGroupingSeparator, "string placed between digit groups")
	return cmd
}
