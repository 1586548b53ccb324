package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/runcache/internal/adapters/cas"
	"go.trai.ch/runcache/internal/adapters/logger"
	"go.trai.ch/runcache/internal/core/ports"
)

// NodeID is the unique identifier for the local runner Graft node.
const NodeID graft.ID = "adapter.local_runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cas.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Runner, error) {
			contentStore, err := graft.Dep[ports.ContentStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(contentStore, log), nil
		},
	})
}
