package render

import (
	"time"

	"raycaster/internal/player"
	"raycaster/internal/raycast"
	"raycaster/internal/threading/core"
)

// Stats receives the duration of each render pass
type Stats interface {
	RecordRaycast(d time.Duration, columns int)
}

// Builder renders frames column by column. It owns the frame buffers; the
// Frame returned by Build stays valid until the next Reset or Build.
type Builder struct {
	caster *raycast.Caster
	shader *Shader
	width  int
	height int

	pool   *core.WorkerPool // nil renders serially
	shards []Frame          // Per-chunk output when rendering in parallel

	frame Frame
	stats Stats
}

// NewBuilder creates a frame builder for a screen of the given size. When
// pool is non-nil, columns are split into one contiguous chunk per worker.
func NewBuilder(caster *raycast.Caster, shader *Shader, width, height int, pool *core.WorkerPool) *Builder {
	b := &Builder{
		caster: caster,
		shader: shader,
		width:  width,
		height: height,
		pool:   pool,
		frame:  Frame{Width: width, Height: height},
	}
	if pool != nil {
		b.shards = make([]Frame, pool.GetNumWorkers())
	}
	return b
}

// SetStats installs a receiver for render pass timings
func (b *Builder) SetStats(stats Stats) {
	b.stats = stats
}

// Build renders one frame for the pose. The pose is taken by value, so later
// changes by the caller cannot reach columns still being rendered.
func (b *Builder) Build(pose player.Pose) *Frame {
	start := time.Now()
	b.Reset()

	if b.pool == nil {
		b.renderColumns(pose, 0, b.width, &b.frame)
	} else {
		b.pool.ParallelChunks(b.width, func(chunk, lo, hi int) {
			b.renderColumns(pose, lo, hi, &b.shards[chunk])
		})
		for i := range b.shards {
			b.frame.appendFrame(&b.shards[i])
		}
	}

	if b.stats != nil {
		b.stats.RecordRaycast(time.Since(start), b.width)
	}
	return &b.frame
}

// Reset clears the frame after it has been presented
func (b *Builder) Reset() {
	b.frame.Reset()
	for i := range b.shards {
		b.shards[i].Reset()
	}
}

// Frame returns the current frame without rendering
func (b *Builder) Frame() *Frame {
	return &b.frame
}

func (b *Builder) renderColumns(pose player.Pose, lo, hi int, out *Frame) {
	for x := lo; x < hi; x++ {
		col := b.shader.beginColumn(x, out)
		hit := b.caster.Cast(pose, x, b.width, func(s raycast.Sample) {
			b.shader.band(&col, s)
		})
		b.shader.wallSlice(&col, pose.Position, hit)
	}
}
