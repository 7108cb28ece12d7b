package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newLockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock [ENVIRONMENT]",
		Short: "Lock the dependencies of an environment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			return c.app.Lock(cmd.Context(), target(cmd, args), force)
		},
	}
	cmd.Flags().Bool("force", false, "Re-lock even when the lockfile is up-to-date")
	cmd.Flags().Bool("all", false, "Lock every environment of the project")
	return cmd
}

func (c *CLI) newPrepareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prepare [ENVIRONMENT]",
		Short: "Create an environment from its lockfile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			results, err := c.app.Prepare(cmd.Context(), target(cmd, args), force)
			if err != nil {
				return err
			}
			for _, res := range results {
				if !res.Status.IsConsistent() {
					continue
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), res.Prefix)
			}
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Recreate the environment even when it is up-to-date")
	cmd.Flags().Bool("all", false, "Prepare every environment of the project")
	return cmd
}

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [ENVIRONMENT]",
		Short: "Remove an environment prefix",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Clean(cmd.Context(), target(cmd, args))
		},
	}
	cmd.Flags().Bool("all", false, "Remove every environment of the project")
	return cmd
}
