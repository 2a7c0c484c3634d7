// Package cli implements the polardemo command-line interface.
//
// polardemo loads a polar axes scenario from a TOML file and exercises it:
// projecting data points to display coordinates, replaying pan gestures,
// and listing ticks. It is a debugging aid for renderer and backend
// authors.
//
// # Commands
//
//   - project: print the display position of every data point
//   - pan: replay a pointer gesture and print the resulting limits
//   - ticks: print angular and radial ticks with their labels
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The CLI
// logger is also installed as the library logger, so limit changes and
// gesture transitions show up in verbose output.
package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/plot"
)

const appName = "polardemo"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "polardemo exercises polar axes transforms and gestures",
		Long:         `polardemo loads a polar axes scenario from a TOML file and prints projected coordinates, gesture results or ticks.`,
		Version:      plot.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			plot.SetLogger(slog.New(c.Logger))
			return nil
		},
	}

	root.AddCommand(c.projectCommand())
	root.AddCommand(c.panCommand())
	root.AddCommand(c.ticksCommand())

	return root
}
