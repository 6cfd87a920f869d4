package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/valuekit/pkg/numfmt"
	"github.com/dmitrymomot/valuekit/pkg/strutil"
)

func sizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "size <bytes>",
		Short: "Render a byte count in kb, mb or gb",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, ok := strutil.ToInt(args[0]).Get()
			if !ok {
				return fmt.Errorf("%w: byte count %q", ErrInvalidArgument, args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), numfmt.HumanReadableSize(int64(n)))
			return nil
		},
	}
	return cmd
}
