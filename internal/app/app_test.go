package app_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/conda-project/internal/adapters/telemetry"
	"go.trai.ch/conda-project/internal/app"
	"go.trai.ch/conda-project/internal/core/domain"
	"go.trai.ch/conda-project/internal/core/ports"
	"go.trai.ch/conda-project/internal/core/ports/mocks"
	"go.trai.ch/conda-project/internal/engine/orchestrator"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	dir    string
	loader *mocks.MockConfigLoader
	writer *mocks.MockConfigWriter
	pm     *mocks.MockPackageManager
	gen    *mocks.MockLockGenerator
	store  *mocks.MockLockfileStore
	app    *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		dir:    t.TempDir(),
		loader: mocks.NewMockConfigLoader(ctrl),
		writer: mocks.NewMockConfigWriter(ctrl),
		pm:     mocks.NewMockPackageManager(ctrl),
		gen:    mocks.NewMockLockGenerator(ctrl),
		store:  mocks.NewMockLockfileStore(ctrl),
	}

	hasher := mocks.NewMockSpecHasher(ctrl)
	hasher.EXPECT().ContentHash(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ domain.LockSpec, platform string) string { return "h-" + platform }).
		AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	f.pm.EXPECT().CurrentPlatform(gomock.Any()).Return("linux-64", nil).AnyTimes()

	orch := orchestrator.New(f.loader, f.pm, f.gen, f.store, hasher, log, telemetry.NewNoOp())
	f.app = app.New(f.loader, f.writer, orch, f.store, f.pm, log)
	return f
}

// project declares a default and a dev environment and a single serve command.
func (f *fixture) project(t *testing.T) *domain.Project {
	t.Helper()

	port := "8000"
	file := &domain.ProjectFile{
		Name:         "demo",
		Environments: domain.NewOrderedMap[[]string](),
		Variables:    domain.NewOrderedMap[*string](),
		Commands:     domain.NewOrderedMap[domain.CommandSpec](),
	}
	file.Environments.Set("default", []string{"environment.yml"})
	file.Environments.Set("dev", []string{"dev.yml"})
	file.Variables.Set("PORT", &port)
	file.Commands.Set("serve", domain.CommandSpec{Cmd: "python -m http.server"})

	project, err := domain.NewProject(f.dir, file)
	require.NoError(t, err)
	f.loader.EXPECT().Load(f.dir).Return(project, nil).AnyTimes()
	return project
}

func (f *fixture) withSource(env domain.Environment) {
	f.loader.EXPECT().LoadEnvironment(env.Sources[0]).Return(&domain.EnvironmentFile{
		Channels:     []string{"conda-forge"},
		Dependencies: []domain.Dependency{{Spec: "python"}},
		Platforms:    []string{"linux-64"},
	}, nil).AnyTimes()
}

func (f *fixture) withLockfile(env domain.Environment, hash string) {
	f.store.EXPECT().Exists(env.Lockfile).Return(true).AnyTimes()
	f.store.EXPECT().Read(env.Lockfile).Return(&domain.Lockfile{
		Version: 1,
		Metadata: domain.LockMetadata{
			ContentHash: map[string]string{"linux-64": hash},
			Platforms:   []string{"linux-64"},
		},
		Packages: []domain.LockedPackage{
			{Name: "python", Manager: domain.ManagerConda, Platform: "linux-64", URL: "https://x/linux-64/python.conda", Hash: domain.PackageHash{MD5: "aa"}},
		},
	}, nil).AnyTimes()
}

func (f *fixture) withoutLockfile(env domain.Environment) {
	f.store.EXPECT().Exists(env.Lockfile).Return(false).AnyTimes()
}

func writeMarker(t *testing.T, env domain.Environment) {
	t.Helper()
	marker := env.MarkerPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(marker), 0o750))
	require.NoError(t, os.WriteFile(marker, nil, 0o600))
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(f *fixture, def, dev domain.Environment)
		wantOK bool
		want   []app.CheckResult
	}{
		{
			name: "all current",
			setup: func(f *fixture, def, dev domain.Environment) {
				f.withLockfile(def, "h-linux-64")
				f.withLockfile(dev, "h-linux-64")
			},
			wantOK: true,
			want:   []app.CheckResult{{Environment: "default"}, {Environment: "dev"}},
		},
		{
			name: "not locked",
			setup: func(f *fixture, def, dev domain.Environment) {
				f.withLockfile(def, "h-linux-64")
				f.withoutLockfile(dev)
			},
			want: []app.CheckResult{
				{Environment: "default"},
				{
					Environment: "dev",
					Problem:     "The environment dev is not locked.",
					Hint:        "Run 'conda-project lock dev' to create.",
				},
			},
		},
		{
			name: "out of date",
			setup: func(f *fixture, def, dev domain.Environment) {
				f.withLockfile(def, "stale")
				f.withLockfile(dev, "h-linux-64")
			},
			want: []app.CheckResult{
				{
					Environment: "default",
					Problem:     "The lockfile for environment default is out-of-date.",
					Hint:        "Run 'conda-project lock default' to fix.",
				},
				{Environment: "dev"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			project := f.project(t)
			envs := project.Environments()
			for _, env := range envs {
				f.withSource(env)
			}
			tt.setup(f, envs[0], envs[1])

			report, err := f.app.Check(context.Background(), f.dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, report.Results)
			assert.Equal(t, tt.wantOK, report.OK())
		})
	}
}

func TestCheck_LoadError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(f.dir).Return(nil, domain.ErrEnvironmentFileNotFound)

	_, err := f.app.Check(context.Background(), f.dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load project")
	assert.Contains(t, err.Error(), domain.ErrEnvironmentFileNotFound.Error())
}

func TestLock_Targets(t *testing.T) {
	tests := []struct {
		name   string
		target func(dir string) app.Target
		locked []string
	}{
		{name: "default", target: func(dir string) app.Target { return app.Target{Directory: dir} }, locked: []string{"default"}},
		{name: "named", target: func(dir string) app.Target { return app.Target{Directory: dir, Environment: "dev"} }, locked: []string{"dev"}},
		{name: "all", target: func(dir string) app.Target { return app.Target{Directory: dir, All: true} }, locked: []string{"default", "dev"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			project := f.project(t)

			var generated []string
			for _, name := range tt.locked {
				env, err := project.Environment(name)
				require.NoError(t, err)
				f.withSource(env)
				f.withoutLockfile(env)
			}
			f.gen.EXPECT().Lock(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req ports.LockRequest) error {
					generated = append(generated, filepath.Base(req.Sources[0]))
					return nil
				}).Times(len(tt.locked))
			f.store.EXPECT().StampContentHash(gomock.Any(), gomock.Any()).Return(nil).Times(len(tt.locked))
			f.store.EXPECT().Install(gomock.Any(), gomock.Any()).Return(nil).Times(len(tt.locked))
			f.store.EXPECT().Read(gomock.Any()).Return(&domain.Lockfile{Version: 1}, nil).Times(len(tt.locked))

			require.NoError(t, f.app.Lock(context.Background(), tt.target(f.dir), false))

			want := make([]string, 0, len(tt.locked))
			for _, name := range tt.locked {
				env, _ := project.Environment(name)
				want = append(want, filepath.Base(env.Sources[0]))
			}
			assert.Equal(t, want, generated)
		})
	}
}

func TestLock_UnknownEnvironment(t *testing.T) {
	f := newFixture(t)
	f.project(t)

	err := f.app.Lock(context.Background(), app.Target{Directory: f.dir, Environment: "missing"}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrEnvironmentNotFound.Error())
}

func TestPrepare_UpToDate(t *testing.T) {
	f := newFixture(t)
	env := f.project(t).DefaultEnvironment()
	f.withSource(env)
	f.withLockfile(env, "h-linux-64")
	writeMarker(t, env)
	f.pm.EXPECT().ListExplicit(gomock.Any(), env.Prefix, env.Condarc).
		Return([]string{"@EXPLICIT", "https://x/linux-64/python.conda#aa"}, nil)

	results, err := f.app.Prepare(context.Background(), app.Target{Directory: f.dir}, false)
	require.NoError(t, err)
	assert.Equal(t, []orchestrator.PrepareResult{{Prefix: env.Prefix, Status: domain.PrepareStatusUpToDate}}, results)
}

func TestClean_All(t *testing.T) {
	f := newFixture(t)
	project := f.project(t)

	var removed []string
	f.pm.EXPECT().Remove(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prefix, _ string, _ io.Writer) error {
			removed = append(removed, prefix)
			return nil
		}).Times(2)

	require.NoError(t, f.app.Clean(context.Background(), app.Target{Directory: f.dir, All: true}))

	envs := project.Environments()
	assert.Equal(t, []string{envs[0].Prefix, envs[1].Prefix}, removed)
}
