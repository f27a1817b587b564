// Package cli implements the constructs command-line interface.
//
// Running the binary with no arguments prints the whole tour. Subcommands:
//   - run: run all or some sections, optionally with headers
//   - list: show section names and titles
//   - match: run the switch demo on a number given on the command line
//
// Logs go to stderr through charmbracelet/log; stdout carries only tour
// output.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/marcodamonte/constructs/internal/config"
	"github.com/marcodamonte/constructs/internal/tour"
)

const appName = "constructs"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer

	configPath string
}

// New creates a CLI that writes tour output to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Out: out,
		Logger: log.NewWithOptions(logw, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command. Without a subcommand it runs the
// full tour using the config file settings.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "A tour of language constructs, one section each",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			return c.runTour(cmd, cfg)
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a tour.toml file")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.matchCommand())

	return root
}

func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return cfg, err
	}
	if c.configPath != "" {
		c.Logger.Debug("loaded config", "path", c.configPath, "headers", cfg.Headers, "only", cfg.Only)
	}
	return cfg, nil
}

func (c *CLI) runTour(cmd *cobra.Command, cfg config.Config) error {
	if !cfg.Color {
		color.NoColor = true
	}
	return tour.Run(cmd.Context(), c.Out, tour.Options{
		Only:    cfg.Only,
		Headers: cfg.Headers,
		Logger:  c.Logger,
	})
}
