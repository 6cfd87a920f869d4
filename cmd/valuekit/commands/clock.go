package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/valuekit/pkg/clock"
	"github.com/dmitrymomot/valuekit/pkg/strutil"
)

func clockCmd() *cobra.Command {
	var minutes bool
	cmd := &cobra.Command{
		Use:   "clock <seconds>",
		Short: "Render seconds as HH:MM:SS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, ok := strutil.ToInt(args[0]).Get()
			if !ok || n < 0 {
				return fmt.Errorf("%w: seconds %q", ErrInvalidArgument, args[0])
			}
			out := clock.SecondsToClock(int64(n))
			if minutes {
				out = clock.SecondsToMinutes(int64(n))
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&minutes, "minutes", false, "print MM:SS without the hours field")
	return cmd
}
