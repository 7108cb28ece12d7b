package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/conda-project/internal/core/domain"
)

// BuildSpec merges the sources of env into the specification its lockfile is solved from.
// Channels fall back to defaults and platforms to the default platform set when no
// source declares any.
func (o *Orchestrator) BuildSpec(ctx context.Context, env domain.Environment) (domain.LockSpec, error) {
	files, err := o.loadSources(env)
	if err != nil {
		return domain.LockSpec{}, err
	}

	spec := domain.MergeSources(env.Sources, files)

	if len(spec.Channels) == 0 {
		names := make([]string, 0, len(env.Sources))
		for _, src := range env.Sources {
			names = append(names, filepath.Base(src))
		}
		o.logger.Warn(fmt.Sprintf("there are no 'channels:' key in %s assuming '%s'.", strings.Join(names, ","), domain.DefaultChannel))
		spec.ChannelOverrides = []string{domain.DefaultChannel}
		spec.Channels = spec.ChannelOverrides
	}

	if len(spec.Platforms) == 0 {
		current, err := o.pm.CurrentPlatform(ctx)
		if err != nil {
			return domain.LockSpec{}, err
		}
		spec.PlatformOverrides = domain.DefaultPlatforms(current)
		spec.Platforms = spec.PlatformOverrides
	}

	return spec, nil
}

func (o *Orchestrator) loadSources(env domain.Environment) ([]*domain.EnvironmentFile, error) {
	files := make([]*domain.EnvironmentFile, 0, len(env.Sources))
	for _, src := range env.Sources {
		f, err := o.loader.LoadEnvironment(src)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}
