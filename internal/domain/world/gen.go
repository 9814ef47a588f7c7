package world

const (
	DefaultWidth  = 80
	DefaultHeight = 60
	DefaultSeed   = 42
)

// Rand is the random source consumed by generation. *rand.Rand from
// math/rand/v2 satisfies it; tests may supply a scripted source.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Generate fills every cell from a single draw per cell against cumulative
// thresholds: water 5%, forest with a tree node 15%, rock with a stone node
// 8%, sand 7%, otherwise grass. A grass cell takes a second independent 3%
// roll for a berry bush. The same source therefore always yields the same
// layout, which is what makes seeded worlds reproducible.
func (w *World) Generate(rng Rand) {
	for x := 0; x < w.width; x++ {
		for y := 0; y < w.height; y++ {
			w.tiles[x][y] = genTile(rng)
		}
	}
}

// NewGenerated builds a world and fills it using the given source.
func NewGenerated(width, height int, rng Rand) *World {
	w := New(width, height)
	w.Generate(rng)
	return w
}

func genTile(rng Rand) Tile {
	r := rng.Float64()
	switch {
	case r < 0.05:
		return Tile{Kind: KindWater}
	case r < 0.20:
		return Tile{Kind: KindForest, Resource: ResourceTree, ResourceAmount: 3 + rng.IntN(6)}
	case r < 0.28:
		return Tile{Kind: KindRock, Resource: ResourceStone, ResourceAmount: 2 + rng.IntN(5)}
	case r < 0.35:
		return Tile{Kind: KindSand}
	default:
		if rng.Float64() < 0.03 {
			return Tile{Kind: KindGrass, Resource: ResourceBush, ResourceAmount: 1 + rng.IntN(4)}
		}
		return Tile{Kind: KindGrass}
	}
}
