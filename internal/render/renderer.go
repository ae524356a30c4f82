// Package render implements the raycaster's four-pass frame renderer:
// skybox, walls, entities, and floor/ceiling, drawn in that order into a
// screen.Screen's pixel and depth buffers (§4.8 Render Orchestration).
package render

import (
	"raycastengine/internal/camera"
	"raycastengine/internal/rlog"
	"raycastengine/internal/scene"
	"raycastengine/internal/screen"
	"raycastengine/internal/workpool"
)

// logger is nil by default, matching §1/§5's expectation that the core
// packages are silent unless a host opts in via SetLogger. The floor/
// ceiling pass uses it to report the arithmetic degeneracies §7 calls out
// (a row's rowDist denominator landing on zero or producing +Inf).
var logger *rlog.Logger

// SetLogger installs the logger the render passes use for degenerate-
// geometry diagnostics. Passing nil (the default) silences it again.
func SetLogger(l *rlog.Logger) {
	logger = l
}

// Renderer draws a Scene from a Camera's viewpoint into a Screen. It owns a
// worker pool used to partition columns (walls, skybox) and rows
// (floor/ceiling) across goroutines — the seam §5 calls out as safe because
// passes never observe each other's writes and a pass's own pixels are
// disjoint across columns/rows.
type Renderer struct {
	pool *workpool.Pool
}

// New returns a Renderer that processes columns/rows sequentially on a
// single worker. This is the default used by tests: output is bit-identical
// to the sequential description in §4, satisfying the round-trip property
// in §8.
func New() *Renderer {
	return &Renderer{pool: workpool.New(1)}
}

// NewParallel returns a Renderer that partitions each pass's columns/rows
// across numWorkers goroutines. numWorkers <= 0 defaults to runtime.NumCPU().
// Output is pixel-identical to New()'s, just computed concurrently.
func NewParallel(numWorkers int) *Renderer {
	return &Renderer{pool: workpool.New(numWorkers)}
}

// Close shuts down the renderer's worker pool. A closed Renderer must not be
// used again.
func (rd *Renderer) Close() {
	rd.pool.Close()
}

// Render draws sc from cam's viewpoint into s. It validates preconditions
// before touching any buffer (§7: no partial output on a rejected call). The
// caller is responsible for calling s.Clear() between frames (§4.8).
func (rd *Renderer) Render(s *screen.Screen, sc *scene.Scene, cam *camera.Camera) error {
	if s == nil {
		return errNilScreen
	}
	if sc == nil {
		return errNilScene
	}
	if cam == nil {
		return errNilCamera
	}

	if sc.Skybox.Enabled {
		runSkybox(s, sc, cam, rd.pool)
	}
	if !sc.WorldMap.Empty() {
		runWalls(s, sc, cam, rd.pool)
	}
	if len(sc.Entities) > 0 {
		runSprites(s, sc, cam, rd.pool)
	}
	if sc.Floor.Enabled || sc.Ceiling.Enabled {
		runFloorCeiling(s, sc, cam, rd.pool)
	}

	return nil
}
