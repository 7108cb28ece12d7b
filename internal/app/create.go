package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/conda-project/internal/core/domain"
	"go.trai.ch/zerr"
)

// CreateOptions configures a new project.
type CreateOptions struct {
	Directory    string
	Name         string
	Dependencies []string
	Channels     []string
	Platforms    []string
	// CondaConfigs are KEY=VALUE entries written to the project .condarc.
	CondaConfigs []string
	Lock         bool
	Prepare      bool
}

// Create initialises a project with a single default environment in opts.Directory.
// An existing project is returned as is.
func (a *App) Create(ctx context.Context, opts CreateOptions) (*domain.Project, error) {
	dir, err := filepath.Abs(opts.Directory)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrProjectCreateFailed.Error())
	}
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrProjectCreateFailed.Error()), "directory", dir)
	}

	if existing := existingProjectFile(dir); existing != "" {
		a.logger.Info("existing project file found at " + existing)
		return a.Open(dir)
	}

	condarc, err := parseCondaConfigs(opts.CondaConfigs)
	if err != nil {
		return nil, err
	}

	platforms := opts.Platforms
	if len(platforms) == 0 {
		current, err := a.pm.CurrentPlatform(ctx)
		if err != nil {
			return nil, err
		}
		platforms = domain.DefaultPlatforms(current)
	}
	channels := opts.Channels
	if len(channels) == 0 {
		channels = []string{domain.DefaultChannel}
	}

	envFile := &domain.EnvironmentFile{
		Channels:     channels,
		Dependencies: make([]domain.Dependency, 0, len(opts.Dependencies)),
		Platforms:    platforms,
	}
	for _, dep := range opts.Dependencies {
		envFile.Dependencies = append(envFile.Dependencies, domain.Dependency{Spec: dep})
	}
	if err := a.writer.WriteEnvironment(filepath.Join(dir, domain.EnvironmentFileName), envFile, true); err != nil {
		return nil, err
	}

	name := opts.Name
	if name == "" {
		name = filepath.Base(dir)
	}
	projectFile := &domain.ProjectFile{
		Name:         name,
		Environments: domain.NewOrderedMap[[]string](),
		Variables:    domain.NewOrderedMap[*string](),
		Commands:     domain.NewOrderedMap[domain.CommandSpec](),
	}
	projectFile.Environments.Set(domain.DefaultEnvironmentName, []string{domain.EnvironmentFileName})
	if err := a.writer.WriteProject(filepath.Join(dir, domain.ProjectFileName), projectFile); err != nil {
		return nil, err
	}

	if err := a.writer.WriteCondarc(domain.CondarcPath(dir), condarc); err != nil {
		return nil, err
	}

	project, err := a.Open(dir)
	if err != nil {
		return nil, err
	}

	env := project.DefaultEnvironment()
	if opts.Lock || opts.Prepare {
		if err := a.orch.Lock(ctx, env, false); err != nil {
			return project, err
		}
	}
	if opts.Prepare {
		if _, err := a.orch.Prepare(ctx, env, false); err != nil {
			return project, err
		}
	}

	a.logger.Info("project created at " + dir)
	return project, nil
}

func existingProjectFile(dir string) string {
	for _, name := range domain.ProjectFileNames() {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func parseCondaConfigs(entries []string) (*domain.OrderedMap[string], error) {
	out := domain.NewOrderedMap[string]()
	for _, entry := range entries {
		k, v, ok := strings.Cut(entry, "=")
		if !ok || k == "" {
			return nil, zerr.With(domain.ErrInvalidCondaConfig, "entry", entry)
		}
		out.Set(k, v)
	}
	return out, nil
}
