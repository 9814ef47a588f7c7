package world

// TileSize is the edge length of one tile in world (pixel) units. Player and
// creature positions are continuous pixel coordinates; tile coordinates are
// pixel coordinates divided by TileSize.
const TileSize = 32

type TileKind uint8

const (
	KindGrass TileKind = iota
	KindWater
	KindForest
	KindRock
	KindSand
)

func (k TileKind) String() string {
	switch k {
	case KindGrass:
		return "grass"
	case KindWater:
		return "water"
	case KindForest:
		return "forest"
	case KindRock:
		return "rock"
	case KindSand:
		return "sand"
	default:
		return "unknown"
	}
}

func ParseTileKind(s string) (TileKind, bool) {
	switch s {
	case "grass":
		return KindGrass, true
	case "water":
		return KindWater, true
	case "forest":
		return KindForest, true
	case "rock":
		return KindRock, true
	case "sand":
		return KindSand, true
	default:
		return 0, false
	}
}

type ResourceKind uint8

const (
	ResourceNone ResourceKind = iota
	ResourceTree
	ResourceStone
	ResourceBush
)

func (r ResourceKind) String() string {
	switch r {
	case ResourceTree:
		return "tree"
	case ResourceStone:
		return "stone"
	case ResourceBush:
		return "bush"
	default:
		return ""
	}
}

func ParseResourceKind(s string) (ResourceKind, bool) {
	switch s {
	case "":
		return ResourceNone, true
	case "tree":
		return ResourceTree, true
	case "stone":
		return ResourceStone, true
	case "bush":
		return ResourceBush, true
	default:
		return 0, false
	}
}

type StructureKind uint8

const (
	StructureNone StructureKind = iota
	StructureCampfire
	StructureShack
)

func (s StructureKind) String() string {
	switch s {
	case StructureCampfire:
		return "campfire"
	case StructureShack:
		return "shack"
	default:
		return ""
	}
}

func ParseStructureKind(s string) (StructureKind, bool) {
	switch s {
	case "":
		return StructureNone, true
	case "campfire":
		return StructureCampfire, true
	case "shack":
		return StructureShack, true
	default:
		return 0, false
	}
}

// Tile is one cell of the world grid. Invariant: ResourceAmount > 0 exactly
// when Resource != ResourceNone.
type Tile struct {
	Kind           TileKind
	Resource       ResourceKind
	ResourceAmount int
	Built          StructureKind
}
