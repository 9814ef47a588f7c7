package world

// World is a fixed-size finite grid of tiles. Out-of-bounds coordinates are
// reported as absent tiles, never mutated.
type World struct {
	width  int
	height int
	tiles  [][]Tile // indexed [x][y]
}

func New(width, height int) *World {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	tiles := make([][]Tile, width)
	for x := range tiles {
		tiles[x] = make([]Tile, height)
	}
	return &World{width: width, height: height, tiles: tiles}
}

func (w *World) Width() int  { return w.width }
func (w *World) Height() int { return w.height }

// PixelWidth and PixelHeight are the world bounds in continuous coordinates.
func (w *World) PixelWidth() float64  { return float64(w.width * TileSize) }
func (w *World) PixelHeight() float64 { return float64(w.height * TileSize) }

func (w *World) InBounds(x, y int) bool {
	return x >= 0 && x < w.width && y >= 0 && y < w.height
}

func (w *World) TileAt(x, y int) (Tile, bool) {
	if !w.InBounds(x, y) {
		return Tile{}, false
	}
	return w.tiles[x][y], true
}

// Harvest removes up to amount units of the tile's resource and returns the
// quantity actually taken (0 if out of bounds or the tile holds no resource).
// A depleted tile loses its resource marker, and Forest/Rock tiles revert to
// Grass; Sand and Water are untouched by depletion.
func (w *World) Harvest(x, y, amount int) int {
	if !w.InBounds(x, y) || amount <= 0 {
		return 0
	}
	t := &w.tiles[x][y]
	if t.Resource == ResourceNone {
		return 0
	}
	taken := amount
	if taken > t.ResourceAmount {
		taken = t.ResourceAmount
	}
	t.ResourceAmount -= taken
	if t.ResourceAmount <= 0 {
		t.ResourceAmount = 0
		t.Resource = ResourceNone
		if t.Kind == KindForest || t.Kind == KindRock {
			t.Kind = KindGrass
		}
	}
	return taken
}

// PlaceStructure fails when the coordinate is out of bounds or the tile
// already holds a structure.
func (w *World) PlaceStructure(x, y int, s StructureKind) bool {
	if !w.InBounds(x, y) || s == StructureNone {
		return false
	}
	t := &w.tiles[x][y]
	if t.Built != StructureNone {
		return false
	}
	t.Built = s
	return true
}

func (w *World) RemoveStructure(x, y int) bool {
	if !w.InBounds(x, y) {
		return false
	}
	t := &w.tiles[x][y]
	if t.Built == StructureNone {
		return false
	}
	t.Built = StructureNone
	return true
}
