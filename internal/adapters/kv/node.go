package kv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/runcache/internal/adapters/config"
	"go.trai.ch/runcache/internal/core/ports"
)

// NodeID is the unique identifier for the execution store Graft node.
const NodeID graft.ID = "adapter.execution_store"

func init() {
	graft.Register(graft.Node[ports.ExecutionStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.ExecutionStore, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.StoreDir)
		},
	})
}
