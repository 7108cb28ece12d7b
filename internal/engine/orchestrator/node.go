package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/conda-project/internal/adapters/conda"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/conda-project/internal/adapters/condalock"          //nolint:depguard // Wired in engine wiring
	"go.trai.ch/conda-project/internal/adapters/config"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/conda-project/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/conda-project/internal/adapters/lockfile"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/conda-project/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/conda-project/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/conda-project/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			conda.NodeID,
			condalock.NodeID,
			lockfile.NodeID,
			fs.HasherNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			pm, err := graft.Dep[ports.PackageManager](ctx)
			if err != nil {
				return nil, err
			}

			generator, err := graft.Dep[ports.LockGenerator](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.LockfileStore](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.SpecHasher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, pm, generator, store, hasher, log, tel), nil
		},
	})
}
