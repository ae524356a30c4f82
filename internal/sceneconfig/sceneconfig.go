// Package sceneconfig is the external scene-authoring collaborator: it
// decodes a YAML document describing a world map, floor/ceiling, skybox,
// entities, and lighting, then converts it into a scene.Scene. Grounded on
// the teacher's internal/config package's load-then-unmarshal shape, scoped
// down to the sections a renderable scene actually needs.
package sceneconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"raycastengine/internal/color"
	"raycastengine/internal/scene"
	"raycastengine/internal/textureio"
	"raycastengine/internal/vector"
)

// Document is the root of a scene YAML file.
type Document struct {
	WorldMap WorldMapSection `yaml:"world_map"`
	Floor    PlaneSection    `yaml:"floor"`
	Ceiling  CeilingSection  `yaml:"ceiling"`
	Skybox   SkyboxSection   `yaml:"skybox"`
	Entities []EntitySection `yaml:"entities"`
	Lighting LightingSection `yaml:"lighting"`
}

// WorldMapSection describes the grid and the appearance/height of each
// non-zero cell id.
type WorldMapSection struct {
	Width    int                     `yaml:"width"`
	Height   int                     `yaml:"height"`
	Data     []int                   `yaml:"data"`
	CellInfo map[int]CellInfoSection `yaml:"cell_info"`
}

// CellInfoSection is one entry of world_map.cell_info.
type CellInfoSection struct {
	Height     float64           `yaml:"height"`
	Appearance AppearanceSection `yaml:"appearance"`
}

// AppearanceSection is a tagged union in YAML form: exactly one of color or
// texture should be set.
type AppearanceSection struct {
	Color   *ColorSection `yaml:"color"`
	Texture string        `yaml:"texture"`
}

// ColorSection is an 8-bit RGBA tuple. A is optional and defaults to opaque.
type ColorSection struct {
	R, G, B uint8
	A       *uint8
}

// PlaneSection describes a floor or ceiling surface.
type PlaneSection struct {
	Enabled    bool              `yaml:"enabled"`
	Appearance AppearanceSection `yaml:"appearance"`
	CellWidth  float64           `yaml:"cell_width"`
	CellHeight float64           `yaml:"cell_height"`
}

// CeilingSection is a PlaneSection plus its world-unit height.
type CeilingSection struct {
	PlaneSection `yaml:",inline"`
	Height       float64 `yaml:"height"`
}

// SkyboxSection describes the background drawn behind everything else.
type SkyboxSection struct {
	Enabled    bool              `yaml:"enabled"`
	Appearance AppearanceSection `yaml:"appearance"`
}

// EntitySection is one billboarded sprite placement.
type EntitySection struct {
	Position     [3]float64        `yaml:"position"`
	Size         [2]float64        `yaml:"size"`
	Appearance   AppearanceSection `yaml:"appearance"`
	NoDepthWrite bool              `yaml:"no_depth_write"`
	FullBright   bool              `yaml:"full_bright"`
}

// LightingSection carries the scene-wide lighting parameters.
type LightingSection struct {
	Ambient   float64 `yaml:"ambient"`
	SideShade float64 `yaml:"side_shade"`
}

// Load reads and unmarshals a scene YAML file from filename.
func Load(filename string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("sceneconfig: read %s: %w", filename, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("sceneconfig: parse %s: %w", filename, err)
	}
	return &doc, nil
}

// Build converts a Document into a scene.Scene, resolving any texture
// references through textures. A nil textures manager is valid only if no
// appearance in the document references a texture name.
func (d *Document) Build(textures *textureio.Manager) (*scene.Scene, error) {
	worldMap, err := scene.NewWorldMap(d.WorldMap.Width, d.WorldMap.Height, d.WorldMap.Data, buildCellInfo(d.WorldMap.CellInfo, textures))
	if err != nil {
		return nil, fmt.Errorf("sceneconfig: world_map: %w", err)
	}

	floor := scene.Plane{
		Enabled:    d.Floor.Enabled,
		Appearance: d.Floor.Appearance.build(textures),
		CellWidth:  d.Floor.CellWidth,
		CellHeight: d.Floor.CellHeight,
	}
	ceiling := scene.Ceiling{
		Plane: scene.Plane{
			Enabled:    d.Ceiling.Enabled,
			Appearance: d.Ceiling.Appearance.build(textures),
			CellWidth:  d.Ceiling.CellWidth,
			CellHeight: d.Ceiling.CellHeight,
		},
		Height: d.Ceiling.Height,
	}
	skybox := scene.Skybox{
		Enabled:    d.Skybox.Enabled,
		Appearance: d.Skybox.Appearance.build(textures),
	}

	entities := make([]scene.Entity, len(d.Entities))
	for i, e := range d.Entities {
		var flags scene.EntityFlags
		if e.NoDepthWrite {
			flags |= scene.NoDepthWrite
		}
		if e.FullBright {
			flags |= scene.FullBright
		}
		entities[i] = scene.Entity{
			Position:   vectorFromArray3(e.Position),
			Size:       vectorFromArray2(e.Size),
			Appearance: e.Appearance.build(textures),
			Flags:      flags,
		}
	}

	lighting := scene.Lighting{Ambient: d.Lighting.Ambient, SideShade: d.Lighting.SideShade}

	return scene.New(worldMap, floor, ceiling, skybox, entities, lighting)
}

func buildCellInfo(sections map[int]CellInfoSection, textures *textureio.Manager) map[int]scene.CellInfo {
	if sections == nil {
		return nil
	}
	out := make(map[int]scene.CellInfo, len(sections))
	for id, s := range sections {
		out[id] = scene.CellInfo{Height: s.Height, Appearance: s.Appearance.build(textures)}
	}
	return out
}

func (a AppearanceSection) build(textures *textureio.Manager) scene.Appearance {
	if a.Texture != "" && textures != nil {
		fallback := color.RGBA(128, 128, 128, 255)
		if a.Color != nil {
			fallback = a.Color.build()
		}
		return scene.Textured(textures.Get(a.Texture, fallback))
	}
	if a.Color != nil {
		return scene.Solid(a.Color.build())
	}
	return scene.Appearance{}
}

func (c ColorSection) build() color.Color {
	alpha := uint8(255)
	if c.A != nil {
		alpha = *c.A
	}
	return color.RGBA(int(c.R), int(c.G), int(c.B), int(alpha))
}

func vectorFromArray3(a [3]float64) vector.Vector3 {
	return vector.New3(a[0], a[1], a[2])
}

func vectorFromArray2(a [2]float64) vector.Vector2 {
	return vector.New2(a[0], a[1])
}
