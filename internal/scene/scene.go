// Package scene implements the renderable world description (§3 Scene):
// the grid map, floor/ceiling planes, skybox, sprite entities and lighting.
package scene

import (
	"github.com/jinzhu/copier"

	"raycastengine/internal/vector"
)

// Plane describes a floor or ceiling surface.
type Plane struct {
	Enabled    bool
	Appearance Appearance
	CellWidth  float64
	CellHeight float64
}

// Ceiling is a Plane plus its vertical position in world units.
type Ceiling struct {
	Plane
	Height float64 // default 1: New substitutes 1 for a zero height
}

// Skybox is the background drawn behind everything else.
type Skybox struct {
	Enabled    bool
	Appearance Appearance
}

// EntityFlags modify how a sprite interacts with the depth buffer and
// lighting, supplementing §3's "optional tint/flags" beyond what the
// distilled spec details (grounded in the teacher's per-tile-type render
// dispatch, which special-cases some sprites' occlusion and shading).
type EntityFlags uint8

const (
	// NoDepthWrite: the sprite is drawn but never occludes anything behind
	// it (it still respects the existing depth buffer when drawing itself).
	NoDepthWrite EntityFlags = 1 << iota
	// FullBright: the lighting scalar is forced to (1,1,1) regardless of
	// scene/camera lighting.
	FullBright
)

// Has reports whether flag is set.
func (f EntityFlags) Has(flag EntityFlags) bool {
	return f&flag != 0
}

// Entity is a billboarded sprite placed in the world.
type Entity struct {
	Position   vector.Vector3
	Size       vector.Vector2
	Appearance Appearance
	Flags      EntityFlags
}

// Lighting holds the scene-wide lighting parameters §4.7 reads.
type Lighting struct {
	Ambient   float64
	SideShade float64
}

// Enabled is derived: lighting only applies when it would actually change
// anything (§3: "enabled is derived: true iff sideShade != 0 or ambient != 1").
func (l Lighting) Enabled() bool {
	return l.SideShade != 0 || l.Ambient != 1
}

// Scene is the complete renderable world for one frame.
type Scene struct {
	WorldMap *WorldMap
	Floor    Plane
	Ceiling  Ceiling
	Skybox   Skybox
	Entities []Entity
	Lighting Lighting
}

// New constructs a Scene. WorldMap must be non-nil (a Scene always has a
// grid, even an empty one per §8 S1) — passing nil is a configuration
// error. A zero ceiling height is replaced by the default of 1.
func New(worldMap *WorldMap, floor Plane, ceiling Ceiling, skybox Skybox, entities []Entity, lighting Lighting) (*Scene, error) {
	if worldMap == nil {
		return nil, errNilWorldMap
	}
	if ceiling.Height == 0 {
		ceiling.Height = 1
	}
	return &Scene{
		WorldMap: worldMap,
		Floor:    floor,
		Ceiling:  ceiling,
		Skybox:   skybox,
		Entities: entities,
		Lighting: lighting,
	}, nil
}

// Snapshot returns a deep copy suitable for a host to pass to
// Renderer.Render while it keeps mutating its live scene for the next frame
// (§5: the Scene is read-only during a render). The entity slice and the
// world map (its data and cellInfo) are copied; textures are shared, as they
// are immutable once loaded.
func (s *Scene) Snapshot() *Scene {
	clone := &Scene{}
	_ = copier.Copy(clone, s)
	clone.Entities = append([]Entity(nil), s.Entities...)
	if s.WorldMap != nil {
		wm := *s.WorldMap
		wm.Data = append([]int(nil), s.WorldMap.Data...)
		wm.CellInfo = make(map[int]CellInfo, len(s.WorldMap.CellInfo))
		for id, info := range s.WorldMap.CellInfo {
			wm.CellInfo[id] = info
		}
		clone.WorldMap = &wm
	}
	return clone
}
