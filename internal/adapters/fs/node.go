package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/conda-project/internal/core/ports"
)

// HasherNodeID is the unique identifier for the spec hasher Graft node.
const HasherNodeID graft.ID = "adapter.fs.hasher"

func init() {
	graft.Register(graft.Node[ports.SpecHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SpecHasher, error) {
			return NewHasher(), nil
		},
	})
}
