package orchestrator

import (
	"context"
	"io"

	"go.trai.ch/conda-project/internal/core/domain"
	"go.trai.ch/conda-project/internal/core/ports"
)

// Clean removes the prefix of env.
func (o *Orchestrator) Clean(ctx context.Context, env domain.Environment) (err error) {
	ctx, vertex := o.telemetry.Record(ctx, "clean "+env.Name)
	defer func() { vertex.Complete(err) }()

	return o.pm.Remove(ctx, env.Prefix, env.Condarc, vertex.Stdout())
}

// RunRequest describes a command execution inside a prepared environment.
type RunRequest struct {
	Cmd string
	Dir string
	Env map[string]string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run prepares env and executes cmd inside it with the given variables.
func (o *Orchestrator) Run(ctx context.Context, env domain.Environment, req RunRequest) (err error) {
	if _, err := o.Prepare(ctx, env, false); err != nil {
		return err
	}

	ctx, vertex := o.telemetry.Record(ctx, "run "+req.Cmd)
	defer func() { vertex.Complete(err) }()

	return o.pm.Run(ctx, ports.RunRequest{
		Prefix:  env.Prefix,
		Condarc: env.Condarc,
		Cmd:     req.Cmd,
		Dir:     req.Dir,
		Env:     req.Env,
		Stdin:   req.Stdin,
		Stdout:  req.Stdout,
		Stderr:  req.Stderr,
	})
}
