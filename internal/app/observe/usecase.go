package observe

import (
	"survecho/internal/app/sim"
	"survecho/internal/domain/world"
)

// GameView is the read surface the usecase needs from the session.
type GameView interface {
	View() sim.StateView
	Viewport(x, y, width, height int) []sim.TileView
}

// UseCase projects the live session into the wire representation renderer
// clients consume.
type UseCase struct {
	Game GameView
}

func (u UseCase) Execute(req Request) Response {
	state := u.Game.View()

	x, y, w, h := req.X, req.Y, req.Width, req.Height
	if w <= 0 || h <= 0 {
		x, y = 0, 0
		w, h = state.WorldWidth, state.WorldHeight
	}
	tiles := u.Game.Viewport(x, y, w, h)

	resp := Response{
		Player: PlayerDTO{
			X:        state.Player.X,
			Y:        state.Player.Y,
			Health:   state.Player.Health,
			Hunger:   state.Player.Hunger,
			Thirst:   state.Player.Thirst,
			Stamina:  state.Player.Stamina,
			Equipped: state.Player.Equipped,
			Items:    make([]ItemDTO, 0, len(state.Player.Items)),
		},
		Creatures:         make([]CreatureDTO, 0, len(state.Creatures)),
		TimeOfDay:         state.TimeOfDay,
		DayFraction:       state.DayFraction,
		Weather:           weatherToken(state.Raining),
		Paused:            state.Paused,
		BuildMode:         state.BuildMode,
		SelectedStructure: state.Selected,
		World: WorldMeta{
			Width:    state.WorldWidth,
			Height:   state.WorldHeight,
			TileSize: world.TileSize,
		},
		Tiles: make([]TileDTO, 0, len(tiles)),
	}
	for _, it := range state.Player.Items {
		resp.Player.Items = append(resp.Player.Items, ItemDTO{ID: it.ID, Name: it.Name, Amount: it.Amount})
	}
	for _, c := range state.Creatures {
		resp.Creatures = append(resp.Creatures, CreatureDTO{
			X:      c.X,
			Y:      c.Y,
			Health: c.Health,
			Radius: c.Radius,
			State:  c.State,
		})
	}
	for _, t := range tiles {
		resp.Tiles = append(resp.Tiles, TileDTO{
			X:        t.X,
			Y:        t.Y,
			Kind:     t.Kind,
			Resource: t.Resource,
			Amount:   t.Amount,
			Built:    t.Built,
		})
	}
	return resp
}

func weatherToken(raining bool) string {
	if raining {
		return "rain"
	}
	return ""
}
