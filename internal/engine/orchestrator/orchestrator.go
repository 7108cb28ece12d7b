// Package orchestrator sequences locking, preparing and cleaning of project environments.
package orchestrator

import (
	"context"
	"os"
	"slices"

	"go.trai.ch/conda-project/internal/core/domain"
	"go.trai.ch/conda-project/internal/core/ports"
)

// Orchestrator evaluates and converges the state of environments.
type Orchestrator struct {
	loader    ports.ConfigLoader
	pm        ports.PackageManager
	generator ports.LockGenerator
	store     ports.LockfileStore
	hasher    ports.SpecHasher
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new Orchestrator.
func New(
	loader ports.ConfigLoader,
	pm ports.PackageManager,
	generator ports.LockGenerator,
	store ports.LockfileStore,
	hasher ports.SpecHasher,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Orchestrator {
	return &Orchestrator{
		loader:    loader,
		pm:        pm,
		generator: generator,
		store:     store,
		hasher:    hasher,
		logger:    logger,
		telemetry: telemetry,
	}
}

// IsLocked reports whether the lockfile of env was generated from its current sources
// for every requested platform.
func (o *Orchestrator) IsLocked(ctx context.Context, env domain.Environment) (bool, error) {
	spec, err := o.BuildSpec(ctx, env)
	if err != nil {
		return false, err
	}
	return o.isLockedFor(env, spec)
}

func (o *Orchestrator) isLockedFor(env domain.Environment, spec domain.LockSpec) (bool, error) {
	if !o.store.Exists(env.Lockfile) {
		return false, nil
	}

	lock, err := o.store.Read(env.Lockfile)
	if err != nil {
		return false, err
	}

	for _, p := range spec.Platforms {
		if !lock.HasPlatform(p) {
			return false, nil
		}
		if o.hasher.ContentHash(spec, p) != lock.Metadata.ContentHash[p] {
			return false, nil
		}
	}
	return true, nil
}

// IsPrepared reports whether the prefix of env exists and holds exactly the packages
// locked for the current platform. An environment that is not locked is never prepared.
func (o *Orchestrator) IsPrepared(ctx context.Context, env domain.Environment) (bool, error) {
	if !markerExists(env) {
		return false, nil
	}

	locked, err := o.IsLocked(ctx, env)
	if err != nil || !locked {
		return false, err
	}

	installed, err := o.pm.ListExplicit(ctx, env.Prefix, env.Condarc)
	if err != nil {
		return false, err
	}

	lock, err := o.store.Read(env.Lockfile)
	if err != nil {
		return false, err
	}
	platform, err := o.pm.CurrentPlatform(ctx)
	if err != nil {
		return false, err
	}

	want := domain.ExplicitEntries(lock.RenderExplicit(platform))
	return slices.Equal(domain.NormalizeExplicit(installed), want), nil
}

func markerExists(env domain.Environment) bool {
	_, err := os.Stat(env.MarkerPath())
	return err == nil
}
