package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/conda-project/internal/adapters/config"
	"go.trai.ch/conda-project/internal/core/domain"
	"go.trai.ch/conda-project/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func TestLoad_ProjectFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "conda-project.yml", `
name: demo
environments:
  default:
    - environment.yml
  dev:
    - environment.yml
    - dev-extras.yml
variables:
  FOO: bar
  TOKEN:
commands:
  serve: python app.py
  test:
    cmd: pytest
    environment: dev
`)

	p, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "demo", p.Name)
	envs := p.Environments()
	require.Len(t, envs, 2)
	assert.Equal(t, "default", envs[0].Name)
	assert.Equal(t, []string{filepath.Join(dir, "environment.yml"), filepath.Join(dir, "dev-extras.yml")}, envs[1].Sources)

	serve, err := p.Command("serve")
	require.NoError(t, err)
	assert.Equal(t, "default", serve.Environment.Name)

	test, err := p.Command("test")
	require.NoError(t, err)
	assert.Equal(t, "dev", test.Environment.Name)

	token, ok := p.Variables.Get("TOKEN")
	assert.True(t, ok)
	assert.Nil(t, token)
}

func TestLoad_AlternativeProjectName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "conda-project.yaml", "name: alt\nenvironments:\n  main: [environment.yml]\n")

	p, err := newLoader(t).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "alt", p.Name)
	assert.Equal(t, "main", p.DefaultEnvironment().Name)
}

func TestLoad_ImplicitProject(t *testing.T) {
	for _, name := range []string{"environment.yml", "environment.yaml"} {
		t.Run(name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "my-dir")
			writeFile(t, dir, name, "dependencies: [python]\n")

			p, err := newLoader(t).Load(dir)
			require.NoError(t, err)

			assert.Equal(t, "my-dir", p.Name)
			env := p.DefaultEnvironment()
			assert.Equal(t, "default", env.Name)
			assert.Equal(t, []string{filepath.Join(dir, name)}, env.Sources)
		})
	}
}

func TestLoad_NothingFound(t *testing.T) {
	_, err := newLoader(t).Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "environment.yml or environment.yaml")
}

func TestParseProject_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{"Empty", "", domain.ErrDescriptorEmpty.Error()},
		{"OnlyComments", "# nothing here\n", domain.ErrDescriptorEmpty.Error()},
		{"Null", "null\n", domain.ErrDescriptorEmpty.Error()},
		{"NotMapping", "- a\n- b\n", "expected a mapping"},
		{"MissingName", "environments:\n  default: [environment.yml]\n", `missing required key "name"`},
		{"MissingEnvironments", "name: x\n", `missing required key "environments"`},
		{"UnknownKey", "name: x\nenvironments: {default: [a.yml]}\nextra: 1\n", `unknown key "extra"`},
		{"DuplicateEnvironment", "name: x\nenvironments:\n  a: [a.yml]\n  a: [b.yml]\n", `duplicate key "a"`},
		{"SourcesNotList", "name: x\nenvironments:\n  a: a.yml\n", "must be a list"},
		{"NestedVariable", "name: x\nenvironments: {a: [a.yml]}\nvariables:\n  FOO: [1, 2]\n", domain.ErrInvalidVariable.Error()},
		{"CommandUnknownKey", "name: x\nenvironments: {a: [a.yml]}\ncommands:\n  c: {cmd: ls, shell: bash}\n", `unknown key "shell"`},
		{"CommandMissingCmd", "name: x\nenvironments: {a: [a.yml]}\ncommands:\n  c: {environment: a}\n", `missing required key "cmd"`},
		{"Malformed", "name: [unclosed\n", domain.ErrDescriptorInvalid.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.ParseProject([]byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoadProjectFile_ErrorNamesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "conda-project.yml", "")

	_, err := newLoader(t).LoadProjectFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "project file")
}

func TestParseEnvironment(t *testing.T) {
	file, err := config.ParseEnvironment([]byte(`
name: test
channels:
  - conda-forge
  - defaults
dependencies:
  - python=3.11
  - pip:
    - requests
variables:
  FOO: bar
  NUM: 1
platforms: [linux-64, osx-arm64]
`))
	require.NoError(t, err)

	name := "test"
	vars := domain.NewOrderedMap[string]()
	vars.Set("FOO", "bar")
	vars.Set("NUM", "1")
	want := &domain.EnvironmentFile{
		Name:     &name,
		Channels: []string{"conda-forge", "defaults"},
		Dependencies: []domain.Dependency{
			{Spec: "python=3.11"},
			{Pip: []string{"requests"}},
		},
		Variables: vars,
		Platforms: []string{"linux-64", "osx-arm64"},
	}

	if diff := cmp.Diff(want, file, cmp.AllowUnexported(domain.OrderedMap[string]{})); diff != "" {
		t.Errorf("ParseEnvironment() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEnvironment_AbsentKeys(t *testing.T) {
	file, err := config.ParseEnvironment([]byte("dependencies: [python]\n"))
	require.NoError(t, err)

	assert.Nil(t, file.Name)
	assert.Nil(t, file.Channels)
	assert.Nil(t, file.Platforms)
	require.NotNil(t, file.Variables)
	assert.Zero(t, file.Variables.Len())
	assert.Nil(t, file.Prefix)

	empty, err := config.ParseEnvironment([]byte("channels: []\n"))
	require.NoError(t, err)
	assert.NotNil(t, empty.Channels)
	assert.Empty(t, empty.Channels)
}

func TestParseEnvironment_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{"Empty", "   \n", domain.ErrDescriptorEmpty.Error()},
		{"UnknownKey", "dependencies: [python]\nbogus: true\n", `unknown key "bogus"`},
		{"CondaMapKey", "dependencies:\n  - conda: [python]\n", domain.ErrInvalidDependency.Error()},
		{"PipWithExtraKey", "dependencies:\n  - pip: [a]\n    npm: [b]\n", domain.ErrInvalidDependency.Error()},
		{"NestedVariable", "variables:\n  FOO: {a: b}\n", domain.ErrInvalidVariable.Error()},
		{"NullVariable", "variables:\n  FOO:\n", domain.ErrInvalidVariable.Error()},
		{"ChannelsNotList", "channels: conda-forge\n", "channels must be a list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.ParseEnvironment([]byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	l := newLoader(t)

	t.Run("Missing", func(t *testing.T) {
		vars, err := l.LoadDotEnv(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, vars)
	})

	t.Run("Present", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, ".env", "FOO=from-dotenv\n# comment\nBAR=\"quoted value\"\n")

		vars, err := l.LoadDotEnv(dir)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"FOO": "from-dotenv", "BAR": "quoted value"}, vars)
	})
}

func TestProjectRoundTrip(t *testing.T) {
	file, err := config.ParseProject([]byte(`name: my-project
environments:
  default:
    - environment.yml
    - ../dev.yaml
  another:
    - another-env.yml
`))
	require.NoError(t, err)

	out, err := config.MarshalProject(file)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "project_roundtrip", out)

	reparsed, err := config.ParseProject(out)
	require.NoError(t, err)
	again, err := config.MarshalProject(reparsed)
	require.NoError(t, err)
	assert.Equal(t, string(out), string(again))
}

func TestProjectRoundTrip_VariablesAndCommands(t *testing.T) {
	file, err := config.ParseProject([]byte(`name: p
environments:
  default: [environment.yml]
variables:
  SECRET:
  LEVEL: "3"
commands:
  short: echo hi
  long:
    cmd: pytest
`))
	require.NoError(t, err)

	out, err := config.MarshalProject(file)
	require.NoError(t, err)
	assert.Contains(t, string(out), "SECRET: null")
	assert.Contains(t, string(out), `LEVEL: "3"`)
	assert.Contains(t, string(out), "short: echo hi")
	assert.Contains(t, string(out), "environment: null")

	reparsed, err := config.ParseProject(out)
	require.NoError(t, err)
	opts := cmp.AllowUnexported(
		domain.OrderedMap[[]string]{},
		domain.OrderedMap[*string]{},
		domain.OrderedMap[domain.CommandSpec]{},
	)
	if diff := cmp.Diff(file, reparsed, opts); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvironmentRoundTrip(t *testing.T) {
	file, err := config.ParseEnvironment([]byte(`name: env
dependencies:
  - python
  - pip:
    - requests
`))
	require.NoError(t, err)

	out, err := config.MarshalEnvironment(file, false)
	require.NoError(t, err)
	assert.Contains(t, string(out), "channels: null")
	assert.Contains(t, string(out), "prefix: null")
	assert.Contains(t, string(out), "platforms: null")
	assert.Contains(t, string(out), "variables: {}")
	assert.NotContains(t, string(out), "variables: null")

	reparsed, err := config.ParseEnvironment(out)
	require.NoError(t, err)
	if diff := cmp.Diff(file, reparsed, cmp.AllowUnexported(domain.OrderedMap[string]{})); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	again, err := config.MarshalEnvironment(reparsed, false)
	require.NoError(t, err)
	assert.Equal(t, string(out), string(again))
}

func TestMarshalEnvironment_VariablesDefaultEmpty(t *testing.T) {
	out, err := config.MarshalEnvironment(&domain.EnvironmentFile{
		Dependencies: []domain.Dependency{{Spec: "python"}},
	}, false)
	require.NoError(t, err)
	assert.Contains(t, string(out), "\nvariables: {}\n")

	reparsed, err := config.ParseEnvironment(out)
	require.NoError(t, err)
	require.NotNil(t, reparsed.Variables)
	assert.Zero(t, reparsed.Variables.Len())
}

func TestMarshalEnvironment_DropEmpty(t *testing.T) {
	name := "fresh"
	out, err := config.MarshalEnvironment(&domain.EnvironmentFile{
		Name:         &name,
		Channels:     []string{"defaults"},
		Dependencies: []domain.Dependency{{Spec: "python"}},
	}, true)
	require.NoError(t, err)

	assert.Equal(t, "name: fresh\nchannels:\n  - defaults\ndependencies:\n  - python\n", string(out))
}

func TestWriter(t *testing.T) {
	dir := t.TempDir()
	w := config.NewWriter()

	settings := domain.NewOrderedMap[string]()
	settings.Set("channel_priority", "strict")
	settings.Set("always_yes", "true")
	condarc := filepath.Join(dir, ".condarc")
	require.NoError(t, w.WriteCondarc(condarc, settings))

	data, err := os.ReadFile(condarc)
	require.NoError(t, err)
	assert.Equal(t, "channel_priority: strict\nalways_yes: true\n", string(data))

	envPath := filepath.Join(dir, "sub", "environment.yml")
	require.NoError(t, w.WriteEnvironment(envPath, &domain.EnvironmentFile{
		Dependencies: []domain.Dependency{{Spec: "numpy"}},
	}, true))
	parsed, err := newLoader(t).LoadEnvironment(envPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"numpy"}, parsed.CondaSpecs())

	projectPath := filepath.Join(dir, "conda-project.yml")
	require.NoError(t, w.WriteProject(projectPath, config.ImplicitProject(dir, "environment.yml")))
	p, err := newLoader(t).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(dir), p.Name)
}
