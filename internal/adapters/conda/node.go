package conda

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/conda-project/internal/adapters/settings"
	"go.trai.ch/conda-project/internal/adapters/shell"
	"go.trai.ch/conda-project/internal/core/ports"
)

// NodeID is the unique identifier for the conda package manager Graft node.
const NodeID graft.ID = "adapter.conda"

func init() {
	graft.Register(graft.Node[ports.PackageManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID, shell.NodeID},
		Run: func(ctx context.Context) (ports.PackageManager, error) {
			cfg, err := graft.Dep[*settings.Settings](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[*shell.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(cfg.CondaExecutable(), runner), nil
		},
	})
}
