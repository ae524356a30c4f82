package scene

import "fmt"

// CellInfo describes the appearance and height of a non-empty cell id.
type CellInfo struct {
	Height     float64 // > 0, in units of one grid cell
	Appearance Appearance
}

// WorldMap is the grid of cell ids a ray traverses (§3 worldMap).
type WorldMap struct {
	Width, Height int
	Data          []int // length Width*Height, 0 = empty
	CellInfo      map[int]CellInfo
}

// NewWorldMap validates and constructs a WorldMap. A non-positive width or
// height, a data slice of the wrong length, a negative cell id, or a
// cellInfo entry with a non-positive height or no appearance is a
// configuration error (§7) surfaced at construction rather than at
// traversal time.
func NewWorldMap(width, height int, data []int, cellInfo map[int]CellInfo) (*WorldMap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("scene: worldMap dimensions must be positive, got %dx%d", width, height)
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("scene: worldMap data length %d does not match %d*%d", len(data), width, height)
	}
	for i, v := range data {
		if v < 0 {
			return nil, fmt.Errorf("scene: worldMap cell %d has negative id %d", i, v)
		}
	}
	for id, info := range cellInfo {
		if info.Height <= 0 || info.Appearance.IsZero() {
			return nil, fmt.Errorf("scene: cellInfo[%d] needs a positive height and an appearance", id)
		}
	}
	if cellInfo == nil {
		cellInfo = map[int]CellInfo{}
	}
	return &WorldMap{Width: width, Height: height, Data: data, CellInfo: cellInfo}, nil
}

// Dimensions returns the grid's width and height, satisfying raycast.Grid.
func (m *WorldMap) Dimensions() (width, height int) {
	return m.Width, m.Height
}

// At returns the cell id at grid coordinate (x,y). The caller is expected to
// have bounds-checked first (the raycast package does, via Width/Height);
// At itself performs no bounds check so it can serve as the hot-path grid
// accessor raycast.Grid requires.
func (m *WorldMap) At(x, y int) int {
	return m.Data[x+y*m.Width]
}

// Cell looks up the descriptor for a non-zero cell id. ok is false both when
// id is 0 (empty) and when id is non-zero but undefined in CellInfo — the
// latter case is "empty-but-opaque" per §3: the ray stops producing a column
// here but the caller (the wall pass) must itself decide whether to keep
// stepping the ray through it.
func (m *WorldMap) Cell(id int) (CellInfo, bool) {
	if id == 0 {
		return CellInfo{}, false
	}
	info, ok := m.CellInfo[id]
	return info, ok
}

// Empty reports whether CellInfo has no entries or every cell id is 0, used
// by the renderer to decide whether to run the wall pass (§4.8).
func (m *WorldMap) Empty() bool {
	if len(m.CellInfo) == 0 {
		return true
	}
	for _, v := range m.Data {
		if v != 0 {
			return false
		}
	}
	return true
}
