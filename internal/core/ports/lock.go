package ports

import (
	"context"
	"io"

	"go.trai.ch/conda-project/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=lock.go -destination=mocks/mock_lock.go -package=mocks

// LockRequest describes one lock generator run.
type LockRequest struct {
	Sources   []string
	Lockfile  string
	Channels  []string
	Platforms []string
	Condarc   string
	Output    io.Writer
}

// LockGenerator solves environment sources into a lockfile.
type LockGenerator interface {
	Lock(ctx context.Context, req LockRequest) error
}

// LockfileStore reads and installs lockfiles.
type LockfileStore interface {
	// Exists reports whether a lockfile is present at path.
	Exists(path string) bool
	// Read parses the lockfile at path.
	Read(path string) (*domain.Lockfile, error)
	// StampContentHash records per-platform content hashes in the lockfile at path.
	StampContentHash(path string, hashes map[string]string) error
	// Install atomically replaces dst with the lockfile at src.
	Install(src, dst string) error
}

// SpecHasher computes the content hash of a lock specification for one platform.
type SpecHasher interface {
	ContentHash(spec domain.LockSpec, platform string) string
}
