// Package commands implements the graphmesh CLI commands.
package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/graphmesh"
	"github.com/gogpu/graphmesh/internal/app"
)

// Application is the behaviour the commands drive.
type Application interface {
	Stats(ctx context.Context, path string, opts app.Options) (*app.Report, error)
	Shapes() app.ShapeList
}

// CLI represents the graphmesh command line interface.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	verbose  bool
	parallel int
}

// New creates a new CLI driving a.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "graphmesh",
		Short:         "Inspect mesh template sharing for graph style documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       graphmesh.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if c.verbose {
				graphmesh.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Log template builds to stderr")

	rootCmd.AddCommand(c.newStatsCmd())
	rootCmd.AddCommand(c.newShapesCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	c.rootCmd = rootCmd
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
