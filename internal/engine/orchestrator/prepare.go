package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/conda-project/internal/core/domain"
	"go.trai.ch/conda-project/internal/core/ports"
	"go.trai.ch/zerr"
)

// PrepareResult is the outcome of preparing an environment.
type PrepareResult struct {
	Prefix string
	Status domain.PrepareStatus
}

// Prepare converges the prefix of env to its lockfile, locking first when needed.
// An existing prefix that does not match the lockfile is reported as
// inconsistent and left untouched unless force is set.
func (o *Orchestrator) Prepare(ctx context.Context, env domain.Environment, force bool) (res PrepareResult, err error) {
	ctx, vertex := o.telemetry.Record(ctx, "prepare "+env.Name)
	defer func() { vertex.Complete(err) }()

	res.Prefix = env.Prefix

	locked, err := o.IsLocked(ctx, env)
	if err != nil {
		return res, err
	}
	if !locked {
		if o.store.Exists(env.Lockfile) {
			o.logger.Info(fmt.Sprintf("the lockfile %s is out-of-date, re-locking", filepath.Base(env.Lockfile)))
		}
		if err := o.Lock(ctx, env, false); err != nil {
			return res, err
		}
	}

	if !force {
		prepared, err := o.IsPrepared(ctx, env)
		if err != nil {
			return res, err
		}
		if prepared {
			o.logger.Info("environment already exists at " + env.Prefix)
			vertex.Cached()
			res.Status = domain.PrepareStatusUpToDate
			return res, nil
		}
		if markerExists(env) {
			o.logger.Warn(fmt.Sprintf(
				"the environment at %s does not match the locked dependencies\n"+
					"run 'conda-project prepare --force %s' to recreate it from the locked dependencies",
				env.Prefix, env.Name,
			))
			res.Status = domain.PrepareStatusInconsistent
			return res, nil
		}
	}

	if err := o.install(ctx, env, vertex, force); err != nil {
		return res, err
	}

	o.logger.Info("environment created at " + env.Prefix)
	res.Status = domain.PrepareStatusCreated
	return res, nil
}

func (o *Orchestrator) install(ctx context.Context, env domain.Environment, vertex ports.Vertex, force bool) error {
	lock, err := o.store.Read(env.Lockfile)
	if err != nil {
		return err
	}
	platform, err := o.pm.CurrentPlatform(ctx)
	if err != nil {
		return err
	}
	if !lock.HasPlatform(platform) {
		msg := fmt.Sprintf(
			"Your current platform, %s, is not in the supported locked platforms.\n"+
				"You may need to edit your environment source files and run 'conda-project lock' again.",
			platform,
		)
		return zerr.With(zerr.Wrap(domain.ErrUnsupportedPlatform, msg), "platform", platform)
	}

	explicit, err := writeExplicit(lock.RenderExplicit(platform))
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(explicit) }()

	err = o.pm.Create(ctx, ports.CreateRequest{
		Prefix:       env.Prefix,
		ExplicitFile: explicit,
		Condarc:      env.Condarc,
		Force:        force,
		Output:       vertex.Stdout(),
	})
	if err != nil {
		return err
	}

	gitignore := filepath.Join(env.Prefix, domain.GitIgnoreFileName)
	if err := os.WriteFile(gitignore, []byte("*"), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPrefixWriteFailed.Error()), "file", gitignore)
	}

	files, err := o.loadSources(env)
	if err != nil {
		return err
	}
	return o.pm.SetVariables(ctx, env.Prefix, env.Condarc, domain.MergeVariables(files))
}

func writeExplicit(lines []string) (string, error) {
	f, err := os.CreateTemp("", "conda-project-explicit-*.txt")
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrPrefixWriteFailed.Error())
	}
	name := f.Name()

	if _, err := f.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		_ = f.Close()
		_ = os.Remove(name)
		return "", zerr.Wrap(err, domain.ErrPrefixWriteFailed.Error())
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(name)
		return "", zerr.Wrap(err, domain.ErrPrefixWriteFailed.Error())
	}
	return name, nil
}
