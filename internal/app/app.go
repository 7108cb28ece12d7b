// Package app implements the application layer for conda-project.
package app

import (
	"context"
	"fmt"
	"runtime"

	"go.trai.ch/conda-project/internal/core/domain"
	"go.trai.ch/conda-project/internal/core/ports"
	"go.trai.ch/conda-project/internal/engine/orchestrator"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	loader ports.ConfigLoader
	writer ports.ConfigWriter
	orch   *orchestrator.Orchestrator
	store  ports.LockfileStore
	pm     ports.PackageManager
	logger ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	writer ports.ConfigWriter,
	orch *orchestrator.Orchestrator,
	store ports.LockfileStore,
	pm ports.PackageManager,
	log ports.Logger,
) *App {
	return &App{
		loader: loader,
		writer: writer,
		orch:   orch,
		store:  store,
		pm:     pm,
		logger: log,
	}
}

// Target selects the environments of a project an operation applies to.
// An empty Environment with All unset selects the default environment.
type Target struct {
	Directory   string
	Environment string
	All         bool
}

// Open loads the project in dir.
func (a *App) Open(dir string) (*domain.Project, error) {
	project, err := a.loader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load project")
	}
	return project, nil
}

func (a *App) environments(target Target) ([]domain.Environment, error) {
	project, err := a.Open(target.Directory)
	if err != nil {
		return nil, err
	}

	switch {
	case target.All:
		return project.Environments(), nil
	case target.Environment != "":
		env, err := project.Environment(target.Environment)
		if err != nil {
			return nil, err
		}
		return []domain.Environment{env}, nil
	default:
		return []domain.Environment{project.DefaultEnvironment()}, nil
	}
}

// Lock writes the lockfiles of the targeted environments.
func (a *App) Lock(ctx context.Context, target Target, force bool) error {
	envs, err := a.environments(target)
	if err != nil {
		return err
	}
	for _, env := range envs {
		if err := a.orch.Lock(ctx, env, force); err != nil {
			return err
		}
	}
	return nil
}

// Prepare creates the targeted environments from their lockfiles.
func (a *App) Prepare(ctx context.Context, target Target, force bool) ([]orchestrator.PrepareResult, error) {
	envs, err := a.environments(target)
	if err != nil {
		return nil, err
	}

	results := make([]orchestrator.PrepareResult, 0, len(envs))
	for _, env := range envs {
		res, err := a.orch.Prepare(ctx, env, force)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Clean removes the targeted environments.
func (a *App) Clean(ctx context.Context, target Target) error {
	envs, err := a.environments(target)
	if err != nil {
		return err
	}
	for _, env := range envs {
		if err := a.orch.Clean(ctx, env); err != nil {
			return err
		}
	}
	return nil
}

// CheckResult is the verdict for one environment. Problem is empty when the
// lockfile is present and current.
type CheckResult struct {
	Environment string
	Problem     string
	Hint        string
}

// OK reports whether the environment passed.
func (r CheckResult) OK() bool {
	return r.Problem == ""
}

// CheckReport holds the results of a project check in declaration order.
type CheckReport struct {
	Results []CheckResult
}

// OK reports whether every environment passed.
func (r *CheckReport) OK() bool {
	for _, res := range r.Results {
		if !res.OK() {
			return false
		}
	}
	return true
}

// Check verifies that every environment of the project in dir has a current lockfile.
func (a *App) Check(ctx context.Context, dir string) (*CheckReport, error) {
	project, err := a.Open(dir)
	if err != nil {
		return nil, err
	}

	envs := project.Environments()
	results := make([]CheckResult, len(envs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, env := range envs {
		g.Go(func() error {
			res, err := a.checkEnvironment(ctx, env)
			if err != nil {
				return zerr.With(err, "environment", env.Name)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &CheckReport{Results: results}, nil
}

func (a *App) checkEnvironment(ctx context.Context, env domain.Environment) (CheckResult, error) {
	res := CheckResult{Environment: env.Name}

	if !a.store.Exists(env.Lockfile) {
		res.Problem = fmt.Sprintf("The environment %s is not locked.", env.Name)
		res.Hint = fmt.Sprintf("Run 'conda-project lock %s' to create.", env.Name)
		return res, nil
	}

	locked, err := a.orch.IsLocked(ctx, env)
	if err != nil {
		return res, err
	}
	if !locked {
		res.Problem = fmt.Sprintf("The lockfile for environment %s is out-of-date.", env.Name)
		res.Hint = fmt.Sprintf("Run 'conda-project lock %s' to fix.", env.Name)
	}
	return res, nil
}
