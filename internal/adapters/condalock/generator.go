// Package condalock solves environments into lockfiles with the conda-lock executable.
package condalock

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.trai.ch/conda-project/internal/adapters/shell"
	"go.trai.ch/conda-project/internal/core/domain"
	"go.trai.ch/conda-project/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockGenerator = (*Generator)(nil)

// CommandRunner executes subprocess invocations.
type CommandRunner interface {
	Run(ctx context.Context, inv shell.Invocation) (*shell.Result, error)
}

// Generator implements ports.LockGenerator.
type Generator struct {
	exe      string
	condaExe string
	runner   CommandRunner
}

// NewGenerator creates a Generator invoking exe, which in turn solves with condaExe.
func NewGenerator(exe, condaExe string, runner CommandRunner) *Generator {
	return &Generator{exe: exe, condaExe: condaExe, runner: runner}
}

// Lock writes a lockfile for req.Sources to req.Lockfile.
func (g *Generator) Lock(ctx context.Context, req ports.LockRequest) error {
	args := []string{"lock", "--conda", g.condaExe, "--kind", "lock", "--lockfile", req.Lockfile}
	for _, src := range req.Sources {
		args = append(args, "--file", src)
	}
	for _, p := range req.Platforms {
		args = append(args, "--platform", p)
	}
	for _, ch := range req.Channels {
		args = append(args, "--channel", ch)
	}

	inv := shell.Invocation{Name: g.exe, Args: args, Stdout: req.Output}
	if req.Condarc != "" {
		inv.Env = map[string]string{"CONDARC": req.Condarc}
	}

	res, err := g.runner.Run(ctx, inv)
	if err == nil {
		return nil
	}

	var stderr []byte
	if res != nil {
		stderr = res.Stderr
	}
	msg := solverMessage(stderr)
	if msg == "" {
		return zerr.Wrap(err, domain.ErrLockFailed.Error())
	}
	msg = strings.ReplaceAll(msg, "target environment", fmt.Sprintf("supplied channels: %v", req.Channels))
	return zerr.With(zerr.Wrap(zerr.Wrap(err, msg), domain.ErrLockFailed.Error()), "lockfile", req.Lockfile)
}

const (
	lockFailedMarker = "Could not lock the environment"
	tracebackMarker  = "Traceback (most recent call last):"
)

// solverMessage extracts the failure reason from conda-lock's error output.
// A JSON report with a message field wins. Plain output is kept from the
// lock failure line onwards, without the Python traceback.
func solverMessage(stderr []byte) string {
	text := strings.TrimSpace(string(stderr))
	if text == "" {
		return ""
	}

	if start := strings.IndexByte(text, '{'); start >= 0 {
		var report struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal([]byte(text[start:]), &report); err == nil && report.Message != "" {
			return report.Message
		}
	}

	if i := strings.Index(text, lockFailedMarker); i >= 0 {
		text = text[i:]
	}
	if i := strings.Index(text, tracebackMarker); i > 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}
