package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/runcache/internal/adapters/cas"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/runcache/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/runcache/internal/adapters/kv"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/runcache/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/runcache/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/runcache/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/runcache/internal/core/ports"
)

// NodeID is the unique identifier for the caching runner Graft node.
const NodeID graft.ID = "engine.cache_runner"

func init() {
	graft.Register(graft.Node[ports.Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			kv.NodeID,
			cas.NodeID,
			config.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			telemetry.MetricsNodeID,
		},
		Run: func(ctx context.Context) (ports.Runner, error) {
			underlying, err := graft.Dep[*shell.Runner](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.ExecutionStore](ctx)
			if err != nil {
				return nil, err
			}
			contentStore, err := graft.Dep[ports.ContentStore](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			metrics, err := graft.Dep[ports.Metrics](ctx)
			if err != nil {
				return nil, err
			}
			return New(underlying, store, contentStore, NewKeyer(), cfg.Metadata(), log, tracer, metrics), nil
		},
	})
}
