package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marcodamonte/constructs/internal/tour"
)

func (c *CLI) matchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "match <number>",
		Short: "Run the switch demo on a number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("match: %q is not an integer: %w", args[0], err)
			}
			_, err = fmt.Fprintln(c.Out, tour.MatchExample(n))
			return err
		},
	}
}
