package textureio

import (
	"fmt"

	"raycastengine/internal/color"
	"raycastengine/internal/texture"
)

// Manager caches textures by name, trying a configurable ordered list of
// directories the first time a name is requested and reusing the result
// afterward. Grounded on the teacher's sprite cache, which avoided
// repeated filesystem probing for sprites requested every frame.
type Manager struct {
	dirs  []string
	cache map[string]*texture.Texture
}

// NewManager creates a Manager that looks for "<dir>/<name>.png" in each of
// dirs, in order, the first time a given name is requested.
func NewManager(dirs []string) *Manager {
	return &Manager{
		dirs:  dirs,
		cache: make(map[string]*texture.Texture),
	}
}

// Get returns the texture for name, loading and caching it on first use. A
// name that cannot be found under any directory still returns a non-nil
// texture: a placeholder tinted with fallback.
func (m *Manager) Get(name string, fallback color.Color) *texture.Texture {
	if tex, ok := m.cache[name]; ok {
		return tex
	}

	paths := make([]string, len(m.dirs))
	for i, dir := range m.dirs {
		paths[i] = fmt.Sprintf("%s/%s.png", dir, name)
	}

	tex := LoadFromSearchPaths(paths, fallback)
	m.cache[name] = tex
	return tex
}

// Invalidate drops a cached entry, forcing the next Get to reload from disk.
func (m *Manager) Invalidate(name string) {
	delete(m.cache, name)
}
