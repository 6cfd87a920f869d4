package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/valuekit/pkg/objmap"
)

func toMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tomap",
		Short: "Read a JSON object on stdin and print it as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			m, err := objmap.Parse(data)
			if err != nil {
				return err
			}
			out, err := m.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	return cmd
}
