package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/conda-project/internal/app"
)

func (c *CLI) newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project with a default environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := app.CreateOptions{Directory: directory(cmd)}
			opts.Name, _ = cmd.Flags().GetString("name")
			opts.Dependencies, _ = cmd.Flags().GetStringArray("dependency")
			opts.Channels, _ = cmd.Flags().GetStringArray("channel")
			opts.Platforms, _ = cmd.Flags().GetStringArray("platform")
			opts.CondaConfigs, _ = cmd.Flags().GetStringArray("conda-config")
			noLock, _ := cmd.Flags().GetBool("no-lock")
			opts.Lock = !noLock
			opts.Prepare, _ = cmd.Flags().GetBool("prepare")

			_, err := c.app.Create(cmd.Context(), opts)
			return err
		},
	}
	cmd.Flags().StringP("name", "n", "", "Project name (defaults to the directory name)")
	cmd.Flags().StringArray("dependency", nil, "Package to add to the default environment (repeatable)")
	cmd.Flags().StringArrayP("channel", "c", nil, "Channel to install packages from (repeatable)")
	cmd.Flags().StringArray("platform", nil, "Platform to lock for (repeatable)")
	cmd.Flags().StringArray("conda-config", nil, "KEY=VALUE entry written to the project .condarc (repeatable)")
	cmd.Flags().Bool("no-lock", false, "Skip locking the default environment")
	cmd.Flags().Bool("prepare", false, "Prepare the default environment after creating the project")
	return cmd
}
