// Package shell runs external tools as subprocesses.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"slices"
	"strings"

	"go.trai.ch/conda-project/internal/core/domain"
	"go.trai.ch/conda-project/internal/core/ports"
	"go.trai.ch/zerr"
)

// Invocation describes one subprocess call.
type Invocation struct {
	Name string
	Args []string
	// Env is overlaid onto a copy of the parent environment.
	Env map[string]string
	Dir string

	// Stdout and Stderr additionally receive the streams when set.
	Stdout io.Writer
	Stderr io.Writer

	// Interactive connects Stdin and the output writers directly to the
	// subprocess without capturing or logging.
	Interactive bool
	Stdin       io.Reader
}

// CommandLine renders the invocation as a single line for messages.
func (inv Invocation) CommandLine() string {
	return strings.Join(append([]string{inv.Name}, inv.Args...), " ")
}

// Result holds the captured streams of a finished subprocess.
type Result struct {
	Stdout []byte
	Stderr []byte
}

// Runner executes invocations with os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner. Subprocess output lines are logged at debug level.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes inv and waits for it to exit. A non-zero exit becomes an error
// carrying the command line and the captured standard error. The captured
// result is returned in both cases.
func (r *Runner) Run(ctx context.Context, inv Invocation) (*Result, error) {
	r.logger.Debug("running: " + inv.CommandLine())

	//nolint:gosec // executables come from settings, arguments from the project
	cmd := exec.CommandContext(ctx, inv.Name, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Env = MergeEnv(os.Environ(), inv.Env)

	var stdout, stderr bytes.Buffer
	if inv.Interactive {
		cmd.Stdin = inv.Stdin
		cmd.Stdout = inv.Stdout
		cmd.Stderr = inv.Stderr
	} else {
		outLog := &logWriter{logger: r.logger}
		errLog := &logWriter{logger: r.logger}
		defer func() {
			_ = outLog.Close()
			_ = errLog.Close()
		}()
		cmd.Stdout = tee(&stdout, outLog, inv.Stdout)
		cmd.Stderr = tee(&stderr, errLog, inv.Stderr)
	}

	err := cmd.Run()
	res := &Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return res, nil
	}

	failed := zerr.Wrap(err, domain.ErrCommandFailed.Error())
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		failed = zerr.With(failed, "exit_code", exitErr.ExitCode())
	}

	msg := "failed to run:\n  " + inv.CommandLine()
	if text := strings.TrimSpace(stderr.String()); text != "" {
		msg += "\n" + text
	}
	return res, zerr.With(zerr.Wrap(failed, msg), "command", inv.CommandLine())
}

func tee(writers ...io.Writer) io.Writer {
	return io.MultiWriter(slices.DeleteFunc(writers, func(w io.Writer) bool { return w == nil })...)
}

// MergeEnv overlays vars onto base, a list of KEY=VALUE entries.
// Overridden entries keep their position; new keys are appended in sorted order.
func MergeEnv(base []string, vars map[string]string) []string {
	out := make([]string, 0, len(base)+len(vars))
	applied := make(map[string]struct{}, len(vars))
	for _, entry := range base {
		k, _, ok := strings.Cut(entry, "=")
		if v, override := vars[k]; ok && override {
			out = append(out, k+"="+v)
			applied[k] = struct{}{}
			continue
		}
		out = append(out, entry)
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		if _, done := applied[k]; !done {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	for _, k := range keys {
		out = append(out, k+"="+vars[k])
	}
	return out
}

// logWriter forwards complete lines to the debug log.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	w.logger.Debug(strings.TrimSuffix(string(line), "\r"))
}
