package ports

import (
	"context"
	"io"

	"go.trai.ch/conda-project/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks

// CreateRequest describes a prefix to build from an explicit package list.
type CreateRequest struct {
	Prefix       string
	ExplicitFile string
	Condarc      string
	Force        bool
	Output       io.Writer
}

// RunRequest describes a command to execute inside a prefix.
type RunRequest struct {
	Prefix  string
	Condarc string
	Cmd     string
	Dir     string
	Env     map[string]string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// PackageManager drives the conda executable.
// Every call runs with CONDARC pointing at the given project configuration.
type PackageManager interface {
	// CurrentPlatform returns the platform conda installs packages for, e.g. linux-64.
	CurrentPlatform(ctx context.Context) (string, error)
	// ListExplicit returns the explicit package listing of prefix, one line per entry.
	ListExplicit(ctx context.Context, prefix, condarc string) ([]string, error)
	// Create builds prefix from an explicit package list file.
	Create(ctx context.Context, req CreateRequest) error
	// SetVariables persists environment variables inside prefix.
	SetVariables(ctx context.Context, prefix, condarc string, vars *domain.OrderedMap[string]) error
	// Remove deletes the environment at prefix.
	Remove(ctx context.Context, prefix, condarc string, output io.Writer) error
	// Run executes a shell command with prefix activated.
	Run(ctx context.Context, req RunRequest) error
}
