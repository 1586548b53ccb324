package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/runcache/internal/app"
	"go.trai.ch/runcache/internal/core/domain"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [flags] -- command [args...]",
		Short: "Run a command, serving repeats from the local cache",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				return cmd.Help()
			}

			description, _ := cmd.Flags().GetString("description")
			workdir, _ := cmd.Flags().GetString("workdir")
			outputs, _ := cmd.Flags().GetStringArray("output")

			var scope domain.CacheScope
			if cmd.Flags().Changed("scope") {
				raw, _ := cmd.Flags().GetString("scope")
				parsed, err := parseScope(raw)
				if err != nil {
					return err
				}
				scope = parsed
			}

			exitCode, err := c.app.Run(cmd.Context(), args, app.RunOptions{
				Description: description,
				WorkingDir:  workdir,
				OutputPaths: outputs,
				Scope:       scope,
				Stdout:      cmd.OutOrStdout(),
				Stderr:      cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			c.exitCode = exitCode
			return nil
		},
	}
	cmd.Flags().StringP("description", "d", "", "Human-readable name for the command in logs")
	cmd.Flags().StringP("workdir", "w", "", "Working directory for the command")
	cmd.Flags().StringArrayP("output", "o", nil, "Output path to capture (repeatable)")
	cmd.Flags().String("scope", "", "Cache scope: successful or always")
	return cmd
}
