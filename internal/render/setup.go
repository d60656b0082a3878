package render

import (
	"raycaster/internal/config"
	"raycaster/internal/raycast"
	"raycaster/internal/threading/core"
	"raycaster/internal/world"
)

// NewBuilderFromConfig wires caster, shader and, when render.workers is not
// 1, a started worker pool. Close releases the pool.
func NewBuilderFromConfig(cfg *config.Config, m *world.Map, tiles *world.TileSet) *Builder {
	var pool *core.WorkerPool
	if cfg.Render.Workers != 1 {
		pool = core.NewWorkerPool(cfg.Render.Workers)
		pool.Start()
	}
	return NewBuilder(raycast.New(m), NewShader(m, tiles, cfg), cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, pool)
}

// Close stops the worker pool, if any
func (b *Builder) Close() {
	if b.pool != nil {
		b.pool.Stop()
	}
}
