package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/valuekit/pkg/validator"
)

func emailCmd() *cobra.Command {
	var domains []string
	cmd := &cobra.Command{
		Use:   "email <address>",
		Short: "Validate an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.Apply(validator.ValidEmail("email", args[0], domains...)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&domains, "domain", nil, "allowed domain suffix (repeatable)")
	return cmd
}
