// Package settings reads process configuration from the environment.
package settings

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
	"go.trai.ch/conda-project/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	keyCondaExe     = "conda_exe"
	keyCondaRoot    = "conda_root"
	keyCondaPrefix  = "conda_prefix"
	keyCondaLockExe = "conda_lock_exe"
	keyLogLevel     = "log_level"

	defaultCondaExe     = "conda"
	defaultCondaLockExe = "conda-lock"
	defaultLogLevel     = "WARNING"
)

var envBindings = map[string]string{
	keyCondaExe:     "CONDA_EXE",
	keyCondaRoot:    "CONDA_ROOT",
	keyCondaPrefix:  "CONDA_PREFIX",
	keyCondaLockExe: "CONDA_LOCK_EXE",
	keyLogLevel:     "CONDA_PROJECT_LOGLEVEL",
}

// Settings is the immutable process configuration.
type Settings struct {
	CondaExe     string
	CondaRoot    string
	CondaPrefix  string
	CondaLockExe string
	Level        string
}

// Load reads the settings from the process environment.
func Load() (*Settings, error) {
	v := viper.New()
	v.SetDefault(keyLogLevel, defaultLogLevel)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to bind environment variable"), "variable", env)
		}
	}

	return &Settings{
		CondaExe:     v.GetString(keyCondaExe),
		CondaRoot:    v.GetString(keyCondaRoot),
		CondaPrefix:  v.GetString(keyCondaPrefix),
		CondaLockExe: v.GetString(keyCondaLockExe),
		Level:        v.GetString(keyLogLevel),
	}, nil
}

// CondaExecutable returns the package manager executable.
// CONDA_EXE wins; otherwise the executable under CONDA_ROOT; otherwise conda from PATH.
func (s *Settings) CondaExecutable() string {
	if s.CondaExe != "" {
		return s.CondaExe
	}
	if s.CondaRoot != "" {
		if runtime.GOOS == "windows" {
			return filepath.Join(s.CondaRoot, "Scripts", "conda.exe")
		}
		return filepath.Join(s.CondaRoot, "bin", "conda")
	}
	return defaultCondaExe
}

// CondaLockExecutable returns the lock generator executable.
// CONDA_LOCK_EXE wins; otherwise conda-lock inside the active prefix when
// installed there; otherwise conda-lock from PATH.
func (s *Settings) CondaLockExecutable() string {
	if s.CondaLockExe != "" {
		return s.CondaLockExe
	}
	if s.CondaPrefix != "" {
		candidate := filepath.Join(s.CondaPrefix, "bin", defaultCondaLockExe)
		if runtime.GOOS == "windows" {
			candidate = filepath.Join(s.CondaPrefix, "Scripts", defaultCondaLockExe+".exe")
		}
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return defaultCondaLockExe
}

// LogLevel returns the configured log level.
func (s *Settings) LogLevel() domain.LogLevel {
	return domain.ParseLogLevel(s.Level)
}
