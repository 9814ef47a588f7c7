package sim

import (
	"survecho/internal/domain/survival"
)

// PlayerView is a read-only copy of the player for rendering clients.
type PlayerView struct {
	X        float64
	Y        float64
	Health   float64
	Hunger   float64
	Thirst   float64
	Stamina  float64
	Equipped string
	Items    []survival.Item
}

type CreatureView struct {
	X      float64
	Y      float64
	Health float64
	Radius float64
	State  string
}

// TileView is one tile addressed by its grid coordinates, enums as tokens.
type TileView struct {
	X        int
	Y        int
	Kind     string
	Resource string
	Amount   int
	Built    string
}

// StateView is the whole renderable state minus the tile grid, which
// clients fetch separately as a viewport rectangle.
type StateView struct {
	Player      PlayerView
	Creatures   []CreatureView
	TimeOfDay   float64
	DayFraction float64
	Raining     bool
	Paused      bool
	BuildMode   bool
	Selected    string
	WorldWidth  int
	WorldHeight int
}

// View copies the current state under the session lock.
func (s *Session) View() StateView {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := StateView{
		Player: PlayerView{
			X:        s.player.X,
			Y:        s.player.Y,
			Health:   s.player.Health,
			Hunger:   s.player.Hunger,
			Thirst:   s.player.Thirst,
			Stamina:  s.player.Stamina,
			Equipped: s.player.Equipped,
			Items:    s.player.Inventory.Items(),
		},
		Creatures:   make([]CreatureView, 0, len(s.creatures)),
		TimeOfDay:   s.timeOfDay,
		DayFraction: s.timeOfDay / DayLengthSeconds,
		Raining:     s.raining,
		Paused:      s.paused,
		BuildMode:   s.buildMode,
		Selected:    s.selected.String(),
		WorldWidth:  s.world.Width(),
		WorldHeight: s.world.Height(),
	}
	for _, c := range s.creatures {
		out.Creatures = append(out.Creatures, CreatureView{
			X:      c.X,
			Y:      c.Y,
			Health: c.Health,
			Radius: c.Radius,
			State:  c.State.String(),
		})
	}
	return out
}

// Viewport returns the tiles of the given rectangle. The rectangle is
// clipped to the world, so an out-of-range request yields the in-range part
// and an empty slice past the edge.
func (s *Session) Viewport(x, y, width, height int) []TileView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if width <= 0 || height <= 0 {
		return []TileView{}
	}
	out := make([]TileView, 0, width*height)
	for tx := x; tx < x+width; tx++ {
		for ty := y; ty < y+height; ty++ {
			tile, ok := s.world.TileAt(tx, ty)
			if !ok {
				continue
			}
			out = append(out, TileView{
				X:        tx,
				Y:        ty,
				Kind:     tile.Kind.String(),
				Resource: tile.Resource.String(),
				Amount:   tile.ResourceAmount,
				Built:    tile.Built.String(),
			})
		}
	}
	return out
}
