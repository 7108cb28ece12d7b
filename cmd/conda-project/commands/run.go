package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/conda-project/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [COMMAND]",
		Short: "Run a project command inside its environment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.RunOptions{
				Directory: directory(cmd),
				Stdin:     cmd.InOrStdin(),
				Stdout:    cmd.OutOrStdout(),
				Stderr:    cmd.ErrOrStderr(),
			}
			if len(args) > 0 {
				opts.Command = args[0]
			}
			return c.app.Run(cmd.Context(), opts)
		},
	}
}
