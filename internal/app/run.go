package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/conda-project/internal/core/domain"
	"go.trai.ch/conda-project/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// RunOptions configures the execution of a project command.
type RunOptions struct {
	Directory string
	// Command names the command to run; empty selects the first declared one.
	Command string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run prepares the environment of a project command and executes it in the
// project directory.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	project, err := a.Open(opts.Directory)
	if err != nil {
		return err
	}

	var cmd domain.Command
	if opts.Command == "" {
		cmd, err = project.DefaultCommand()
	} else {
		cmd, err = project.Command(opts.Command)
	}
	if err != nil {
		return err
	}

	dotenv, err := a.loader.LoadDotEnv(project.Directory)
	if err != nil {
		return err
	}
	vars, err := ResolveVariables(cmd.Variables, dotenv, os.LookupEnv)
	if err != nil {
		return err
	}

	return a.orch.Run(ctx, cmd.Environment, orchestrator.RunRequest{
		Cmd:    cmd.Cmd,
		Dir:    cmd.Directory,
		Env:    vars,
		Stdin:  opts.Stdin,
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
	})
}

// ResolveVariables composes the variables of a command run. Every .env entry is
// passed through; a declared variable takes the process environment value, then
// the .env value, then its default. A declared variable with none of these is an error.
func ResolveVariables(
	declared *domain.OrderedMap[*string],
	dotenv map[string]string,
	lookup func(string) (string, bool),
) (map[string]string, error) {
	out := make(map[string]string, len(dotenv)+declared.Len())
	for k, v := range dotenv {
		out[k] = v
	}

	for _, name := range declared.Keys() {
		if v, ok := lookup(name); ok {
			out[name] = v
			continue
		}
		if _, ok := dotenv[name]; ok {
			continue
		}
		def, _ := declared.Get(name)
		if def == nil {
			return nil, zerr.With(domain.ErrMissingVariable, "variable", name)
		}
		out[name] = *def
	}
	return out, nil
}
