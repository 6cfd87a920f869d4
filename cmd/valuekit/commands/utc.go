package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func utcCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "utc <HH:MM>",
		Short: "Convert a local time of day to UTC",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, ok := a.clock.LocalTimeToUTC(args[0]).Get()
			if !ok {
				return fmt.Errorf("%w: time of day %q", ErrInvalidArgument, args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	return cmd
}
