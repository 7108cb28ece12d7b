package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the units of work performed against environments.
type Telemetry interface {
	// Record starts a new vertex named after the work it represents.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording session.
	Close() error
}

// Vertex is a single recorded unit of work.
type Vertex interface {
	// Stdout returns a writer capturing the standard output of the work.
	Stdout() io.Writer
	// Cached marks the work as skipped because the state was already current.
	Cached()
	// Complete marks the work as finished, failed when err is non-nil.
	Complete(err error)
}
