// Package commands implements the CLI commands for runcache.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/runcache/internal/app"
	"go.trai.ch/runcache/internal/build"
	"go.trai.ch/runcache/internal/core/domain"
)

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, argv []string, opts app.RunOptions) (int, error)
}

// CLI represents the command line interface for runcache.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	exitCode int
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "runcache",
		Short:         "Run commands through a local content-addressed result cache",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// ExitCode returns the exit code of the executed process, if any.
func (c *CLI) ExitCode() int {
	return c.exitCode
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func parseScope(s string) (domain.CacheScope, error) {
	switch s {
	case "", string(domain.ScopeSuccessful):
		return domain.ScopeSuccessful, nil
	case string(domain.ScopeAlways):
		return domain.ScopeAlways, nil
	default:
		return "", fmt.Errorf("invalid scope %q: expected %q or %q", s, domain.ScopeSuccessful, domain.ScopeAlways)
	}
}
