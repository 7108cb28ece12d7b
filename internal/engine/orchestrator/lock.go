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

// Lock solves the sources of env into its lockfile. An up-to-date lockfile is
// left alone unless force is set. The new lockfile replaces the old one only
// once it is complete, so packages dropped from the sources never linger.
//
// The content hash stamped into the lockfile is computed by this tool, not by
// conda-lock. Lockfiles written by conda-lock or by other tools therefore never
// read as up to date and are solved again on the first Lock.
func (o *Orchestrator) Lock(ctx context.Context, env domain.Environment, force bool) (err error) {
	ctx, vertex := o.telemetry.Record(ctx, "lock "+env.Name)
	defer func() { vertex.Complete(err) }()

	spec, err := o.BuildSpec(ctx, env)
	if err != nil {
		return err
	}

	locked, err := o.isLockedFor(env, spec)
	if err != nil {
		return err
	}
	if locked && !force {
		o.logger.Info(fmt.Sprintf("the lockfile %s already exists and is up-to-date", filepath.Base(env.Lockfile)))
		vertex.Cached()
		return nil
	}

	tmpDir, err := os.MkdirTemp("", "conda-project-lock-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrLockfileWriteFailed.Error())
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	tmpLock := filepath.Join(tmpDir, filepath.Base(env.Lockfile))
	err = o.generator.Lock(ctx, ports.LockRequest{
		Sources:   env.Sources,
		Lockfile:  tmpLock,
		Channels:  spec.Channels,
		Platforms: spec.Platforms,
		Condarc:   env.Condarc,
		Output:    vertex.Stdout(),
	})
	if err != nil {
		return zerr.With(err, "environment", env.Name)
	}

	hashes := make(map[string]string, len(spec.Platforms))
	for _, p := range spec.Platforms {
		hashes[p] = o.hasher.ContentHash(spec, p)
	}
	if err := o.store.StampContentHash(tmpLock, hashes); err != nil {
		return err
	}
	if err := o.store.Install(tmpLock, env.Lockfile); err != nil {
		return err
	}

	lock, err := o.store.Read(env.Lockfile)
	if err != nil {
		return err
	}
	o.logger.Info(fmt.Sprintf("locked dependencies for %s platforms", strings.Join(lock.Metadata.Platforms, ", ")))
	return nil
}
