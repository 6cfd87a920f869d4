package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/valuekit/pkg/optional"
	"github.com/dmitrymomot/valuekit/pkg/strutil"
)

func substrCmd() *cobra.Command {
	var from, to int
	cmd := &cobra.Command{
		Use:   "substr <text>",
		Short: "Slice text by inclusive character offsets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := optional.Of(from, cmd.Flags().Changed("from"))
			end := optional.Of(to, cmd.Flags().Changed("to"))
			fmt.Fprintln(cmd.OutOrStdout(), strutil.Substring(args[0], start, end))
			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "first character offset (default start of text)")
	cmd.Flags().IntVar(&to, "to", 0, "last character offset, inclusive (default end of text)")
	return cmd
}
