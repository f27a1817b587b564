package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcodamonte/constructs/internal/tour"
)

func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tour sections in run order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range tour.Sections() {
				if _, err := fmt.Fprintf(c.Out, "%-10s %s\n", s.Name, s.Title); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
