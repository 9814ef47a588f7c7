package world

import "fmt"

// TileRecord is the serialized form of one tile. Enum fields travel as their
// stable string tokens so saves stay readable and order-independent of the
// numeric enum values.
type TileRecord struct {
	Kind     string `json:"kind"`
	Resource string `json:"resource,omitempty"`
	Amount   int    `json:"amount"`
	Built    string `json:"built,omitempty"`
}

// Snapshot is the lossless serialized world: grid dimensions plus every tile
// in row-major order, x outer, y inner.
type Snapshot struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Tiles  []TileRecord `json:"tiles"`
}

func (w *World) Snapshot() Snapshot {
	out := Snapshot{
		Width:  w.width,
		Height: w.height,
		Tiles:  make([]TileRecord, 0, w.width*w.height),
	}
	for x := 0; x < w.width; x++ {
		for y := 0; y < w.height; y++ {
			t := w.tiles[x][y]
			out.Tiles = append(out.Tiles, TileRecord{
				Kind:     t.Kind.String(),
				Resource: t.Resource.String(),
				Amount:   t.ResourceAmount,
				Built:    t.Built.String(),
			})
		}
	}
	return out
}

// FromSnapshot reconstructs a world, validating dimensions and every token.
func FromSnapshot(s Snapshot) (*World, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("invalid world dimensions %dx%d", s.Width, s.Height)
	}
	if got, want := len(s.Tiles), s.Width*s.Height; got != want {
		return nil, fmt.Errorf("tile count mismatch: got %d want %d", got, want)
	}
	w := New(s.Width, s.Height)
	i := 0
	for x := 0; x < s.Width; x++ {
		for y := 0; y < s.Height; y++ {
			rec := s.Tiles[i]
			i++
			kind, ok := ParseTileKind(rec.Kind)
			if !ok {
				return nil, fmt.Errorf("tile (%d,%d): unknown kind %q", x, y, rec.Kind)
			}
			res, ok := ParseResourceKind(rec.Resource)
			if !ok {
				return nil, fmt.Errorf("tile (%d,%d): unknown resource %q", x, y, rec.Resource)
			}
			built, ok := ParseStructureKind(rec.Built)
			if !ok {
				return nil, fmt.Errorf("tile (%d,%d): unknown structure %q", x, y, rec.Built)
			}
			if rec.Amount < 0 {
				return nil, fmt.Errorf("tile (%d,%d): negative resource amount %d", x, y, rec.Amount)
			}
			w.tiles[x][y] = Tile{Kind: kind, Resource: res, ResourceAmount: rec.Amount, Built: built}
		}
	}
	return w, nil
}
