package progrock

import (
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/conda-project/internal/core/ports"
)

var _ ports.Vertex = (*Vertex)(nil)

// Vertex wraps a progrock vertex recorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns the vertex output stream.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Cached marks the vertex as already up to date.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}

// Complete finishes the vertex.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}
