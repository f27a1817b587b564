package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) runCommand() *cobra.Command {
	var (
		only    []string
		headers bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the tour, or only the named sections",
		Example: `  constructs run
  constructs run --only enum,match --headers`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			// Flags win over the config file when given.
			if cmd.Flags().Changed("only") {
				cfg.Only = only
			}
			if cmd.Flags().Changed("headers") {
				cfg.Headers = headers
			}
			if noColor {
				cfg.Color = false
			}
			return c.runTour(cmd, cfg)
		},
	}

	cmd.Flags().StringSliceVar(&only, "only", nil, "comma-separated section names to run")
	cmd.Flags().BoolVar(&headers, "headers", false, "print a header before each section")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored headers")

	return cmd
}
