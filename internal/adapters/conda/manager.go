// Package conda drives the conda executable.
package conda

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"runtime"
	"strings"
	"sync"

	"go.trai.ch/conda-project/internal/adapters/shell"
	"go.trai.ch/conda-project/internal/core/domain"
	"go.trai.ch/conda-project/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageManager = (*Manager)(nil)

// CommandRunner executes subprocess invocations.
type CommandRunner interface {
	Run(ctx context.Context, inv shell.Invocation) (*shell.Result, error)
}

// explicitHeaderLines is the number of comment lines conda prints before the package list.
const explicitHeaderLines = 3

// Manager implements ports.PackageManager on top of the conda command line.
type Manager struct {
	exe    string
	runner CommandRunner

	mu       sync.Mutex
	platform string
}

// NewManager creates a Manager invoking exe.
func NewManager(exe string, runner CommandRunner) *Manager {
	return &Manager{exe: exe, runner: runner}
}

type info struct {
	Platform string `json:"platform"`
}

// CurrentPlatform asks conda for its platform once and remembers the answer.
func (m *Manager) CurrentPlatform(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.platform != "" {
		return m.platform, nil
	}

	res, err := m.call(ctx, "", nil, "info", "--json")
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrPlatformDetectionFailed.Error())
	}

	var parsed info
	if err := json.Unmarshal(res.Stdout, &parsed); err != nil {
		return "", zerr.Wrap(zerr.Wrap(err, "failed to decode conda info"), domain.ErrPlatformDetectionFailed.Error())
	}
	if parsed.Platform == "" {
		return "", zerr.Wrap(domain.ErrPlatformDetectionFailed, "conda info did not report a platform")
	}

	m.platform = parsed.Platform
	return m.platform, nil
}

// ListExplicit returns the package entries of prefix without the listing header.
func (m *Manager) ListExplicit(ctx context.Context, prefix, condarc string) ([]string, error) {
	res, err := m.call(ctx, condarc, nil, "list", "-p", prefix, "--explicit")
	if err != nil {
		return nil, err
	}

	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(res.Stdout))
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to read conda list output")
	}

	if len(lines) <= explicitHeaderLines {
		return []string{}, nil
	}
	return lines[explicitHeaderLines:], nil
}

// Create installs the explicit package list into prefix.
func (m *Manager) Create(ctx context.Context, req ports.CreateRequest) error {
	args := []string{"create", "-y", "--file", req.ExplicitFile, "-p", req.Prefix}
	if req.Force {
		args = append(args, "--force")
	}
	_, err := m.call(ctx, req.Condarc, req.Output, args...)
	return err
}

// SetVariables stores vars in the prefix so activation exports them.
func (m *Manager) SetVariables(ctx context.Context, prefix, condarc string, vars *domain.OrderedMap[string]) error {
	if vars.Len() == 0 {
		return nil
	}

	args := []string{"env", "config", "vars", "set"}
	for _, k := range vars.Keys() {
		v, _ := vars.Get(k)
		args = append(args, k+"="+v)
	}
	args = append(args, "-p", prefix)

	_, err := m.call(ctx, condarc, nil, args...)
	return err
}

// Remove deletes the environment at prefix.
func (m *Manager) Remove(ctx context.Context, prefix, condarc string, output io.Writer) error {
	_, err := m.call(ctx, condarc, output, "env", "remove", "-p", prefix)
	return err
}

// Run executes req.Cmd through the platform shell with the prefix activated.
// The standard streams are attached directly to the subprocess.
func (m *Manager) Run(ctx context.Context, req ports.RunRequest) error {
	args := append([]string{"run", "-p", req.Prefix, "--no-capture-output"}, shellArgs(req.Cmd)...)

	env := make(map[string]string, len(req.Env)+1)
	for k, v := range req.Env {
		env[k] = v
	}
	env["CONDARC"] = req.Condarc

	_, err := m.runner.Run(ctx, shell.Invocation{
		Name:        m.exe,
		Args:        args,
		Env:         env,
		Dir:         req.Dir,
		Interactive: true,
		Stdin:       req.Stdin,
		Stdout:      req.Stdout,
		Stderr:      req.Stderr,
	})
	return err
}

func (m *Manager) call(ctx context.Context, condarc string, output io.Writer, args ...string) (*shell.Result, error) {
	inv := shell.Invocation{Name: m.exe, Args: args, Stdout: output}
	if condarc != "" {
		inv.Env = map[string]string{"CONDARC": condarc}
	}
	return m.runner.Run(ctx, inv)
}

func shellArgs(cmd string) []string {
	if runtime.GOOS == "windows" {
		return []string{"cmd", "/C", cmd}
	}
	return []string{"sh", "-c", cmd}
}
