// Package commands implements the CLI commands for conda-project.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/conda-project/internal/app"
	"go.trai.ch/conda-project/internal/build"
	"go.trai.ch/conda-project/internal/core/domain"
	"go.trai.ch/conda-project/internal/engine/orchestrator"
)

// Application represents the application logic interface.
type Application interface {
	Lock(ctx context.Context, target app.Target, force bool) error
	Prepare(ctx context.Context, target app.Target, force bool) ([]orchestrator.PrepareResult, error)
	Clean(ctx context.Context, target app.Target) error
	Check(ctx context.Context, dir string) (*app.CheckReport, error)
	Create(ctx context.Context, opts app.CreateOptions) (*domain.Project, error)
	Run(ctx context.Context, opts app.RunOptions) error
}

// CLI represents the command line interface for conda-project.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "conda-project",
		Short:         "Manage reproducible Conda environments for a project directory",
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

	rootCmd.PersistentFlags().StringP("directory", "d", ".", "Project directory")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newCreateCmd())
	rootCmd.AddCommand(c.newLockCmd())
	rootCmd.AddCommand(c.newPrepareCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newVersionCmd())

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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetInput sets the input stream handed to project commands.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}

func directory(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("directory")
	return dir
}

// target builds the environment selection shared by lock, prepare and clean.
func target(cmd *cobra.Command, args []string) app.Target {
	all, _ := cmd.Flags().GetBool("all")
	t := app.Target{Directory: directory(cmd), All: all}
	if len(args) > 0 {
		t.Environment = args[0]
	}
	return t
}
