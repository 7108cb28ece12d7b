package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/conda-project/cmd/conda-project/commands"
	"go.trai.ch/conda-project/internal/app"
	"go.trai.ch/conda-project/internal/build"
	"go.trai.ch/conda-project/internal/core/domain"
	"go.trai.ch/conda-project/internal/engine/orchestrator"
)

type mockApp struct {
	lockFunc    func(ctx context.Context, target app.Target, force bool) error
	prepareFunc func(ctx context.Context, target app.Target, force bool) ([]orchestrator.PrepareResult, error)
	cleanFunc   func(ctx context.Context, target app.Target) error
	checkFunc   func(ctx context.Context, dir string) (*app.CheckReport, error)
	createFunc  func(ctx context.Context, opts app.CreateOptions) (*domain.Project, error)
	runFunc     func(ctx context.Context, opts app.RunOptions) error
}

func (m *mockApp) Lock(ctx context.Context, target app.Target, force bool) error {
	if m.lockFunc != nil {
		return m.lockFunc(ctx, target, force)
	}
	return nil
}

func (m *mockApp) Prepare(ctx context.Context, target app.Target, force bool) ([]orchestrator.PrepareResult, error) {
	if m.prepareFunc != nil {
		return m.prepareFunc(ctx, target, force)
	}
	return nil, nil
}

func (m *mockApp) Clean(ctx context.Context, target app.Target) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, target)
	}
	return nil
}

func (m *mockApp) Check(ctx context.Context, dir string) (*app.CheckReport, error) {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, dir)
	}
	return &app.CheckReport{}, nil
}

func (m *mockApp) Create(ctx context.Context, opts app.CreateOptions) (*domain.Project, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockApp) Run(ctx context.Context, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return nil
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	cli := commands.New(m)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Target(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		want      app.Target
		wantForce bool
	}{
		{name: "default", args: []string{"lock"}, want: app.Target{Directory: "."}},
		{name: "named", args: []string{"lock", "dev"}, want: app.Target{Directory: ".", Environment: "dev"}},
		{name: "all", args: []string{"lock", "--all"}, want: app.Target{Directory: ".", All: true}},
		{
			name:      "directory and force",
			args:      []string{"lock", "-d", "/tmp/project", "--force"},
			want:      app.Target{Directory: "/tmp/project"},
			wantForce: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got app.Target
			var force bool
			m := &mockApp{lockFunc: func(_ context.Context, target app.Target, f bool) error {
				got, force = target, f
				return nil
			}}

			_, err := execute(t, m, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantForce, force)
		})
	}
}

func TestCommands_Lock_TooManyArgs(t *testing.T) {
	_, err := execute(t, &mockApp{}, "lock", "a", "b")
	require.Error(t, err)
}

func TestCommands_Prepare(t *testing.T) {
	var got app.Target
	var force bool
	m := &mockApp{prepareFunc: func(_ context.Context, target app.Target, f bool) ([]orchestrator.PrepareResult, error) {
		got, force = target, f
		return []orchestrator.PrepareResult{
			{Prefix: "/p/envs/default", Status: domain.PrepareStatusCreated},
			{Prefix: "/p/envs/dev", Status: domain.PrepareStatusInconsistent},
		}, nil
	}}

	out, err := execute(t, m, "prepare", "--all", "--force")
	require.NoError(t, err)
	assert.Equal(t, app.Target{Directory: ".", All: true}, got)
	assert.True(t, force)
	assert.Equal(t, "/p/envs/default\n", out)
}

func TestCommands_Clean(t *testing.T) {
	var got app.Target
	m := &mockApp{cleanFunc: func(_ context.Context, target app.Target) error {
		got = target
		return nil
	}}

	_, err := execute(t, m, "clean", "dev")
	require.NoError(t, err)
	assert.Equal(t, app.Target{Directory: ".", Environment: "dev"}, got)
}

func TestCommands_Check(t *testing.T) {
	t.Run("passes", func(t *testing.T) {
		m := &mockApp{checkFunc: func(_ context.Context, _ string) (*app.CheckReport, error) {
			return &app.CheckReport{Results: []app.CheckResult{{Environment: "default"}}}, nil
		}}

		out, err := execute(t, m, "check")
		require.NoError(t, err)
		assert.Equal(t, "✓ default\n", out)
	})

	t.Run("fails", func(t *testing.T) {
		m := &mockApp{checkFunc: func(_ context.Context, _ string) (*app.CheckReport, error) {
			return &app.CheckReport{Results: []app.CheckResult{
				{Environment: "default"},
				{
					Environment: "dev",
					Problem:     "The environment dev is not locked.",
					Hint:        "Run 'conda-project lock dev' to create.",
				},
			}}, nil
		}}

		out, err := execute(t, m, "check")
		require.ErrorIs(t, err, domain.ErrCheckFailed)
		assert.Equal(t, "✓ default\n✗ The environment dev is not locked.\n  → Run 'conda-project lock dev' to create.\n", out)
	})

	t.Run("error", func(t *testing.T) {
		m := &mockApp{checkFunc: func(_ context.Context, _ string) (*app.CheckReport, error) {
			return nil, errors.New("simulated error")
		}}

		_, err := execute(t, m, "check")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Create(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want app.CreateOptions
	}{
		{
			name: "defaults",
			args: []string{"create"},
			want: app.CreateOptions{
				Directory:    ".",
				Dependencies: []string{},
				Channels:     []string{},
				Platforms:    []string{},
				CondaConfigs: []string{},
				Lock:         true,
			},
		},
		{
			name: "all flags",
			args: []string{
				"create", "-d", "proj", "-n", "demo",
				"--dependency", "python=3.11", "--dependency", "pandas",
				"-c", "conda-forge", "--platform", "linux-64",
				"--conda-config", "channel_priority=strict",
				"--no-lock", "--prepare",
			},
			want: app.CreateOptions{
				Directory:    "proj",
				Name:         "demo",
				Dependencies: []string{"python=3.11", "pandas"},
				Channels:     []string{"conda-forge"},
				Platforms:    []string{"linux-64"},
				CondaConfigs: []string{"channel_priority=strict"},
				Prepare:      true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got app.CreateOptions
			m := &mockApp{createFunc: func(_ context.Context, opts app.CreateOptions) (*domain.Project, error) {
				got = opts
				return nil, nil
			}}

			_, err := execute(t, m, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires command and directory", func(t *testing.T) {
		var got app.RunOptions
		m := &mockApp{runFunc: func(_ context.Context, opts app.RunOptions) error {
			got = opts
			return nil
		}}

		_, err := execute(t, m, "run", "serve", "--directory", "proj")
		require.NoError(t, err)
		assert.Equal(t, "serve", got.Command)
		assert.Equal(t, "proj", got.Directory)
		assert.NotNil(t, got.Stdout)
		assert.NotNil(t, got.Stderr)
	})

	t.Run("default command", func(t *testing.T) {
		var got app.RunOptions
		m := &mockApp{runFunc: func(_ context.Context, opts app.RunOptions) error {
			got = opts
			return nil
		}}

		_, err := execute(t, m, "run")
		require.NoError(t, err)
		assert.Empty(t, got.Command)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		m := &mockApp{runFunc: func(_ context.Context, _ app.RunOptions) error {
			return errors.New("simulated error")
		}}

		_, err := execute(t, m, "run")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}

func TestCommands_VersionFlag(t *testing.T) {
	out, err := execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Equal(t, "conda-project version dev (commit: none, date: unknown)\n", out)
}
