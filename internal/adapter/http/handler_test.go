package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"survecho/internal/app/observe"
	"survecho/internal/app/ports"
	"survecho/internal/app/sim"
	"survecho/internal/domain/craft"
	"survecho/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type fakeGame struct {
	interactRes sim.InteractResult
	craftErr    error
	craftID     craft.RecipeID
	buildMode   bool
	selected    world.StructureKind
	placeErr    error
	placeX      int
	placeY      int
	equipErr    error
	equipped    string
	paused      bool
	saveErr     error
	loadErr     error
}

func (f *fakeGame) Interact() sim.InteractResult { return f.interactRes }

func (f *fakeGame) Craft(id craft.RecipeID) error {
	f.craftID = id
	return f.craftErr
}

func (f *fakeGame) ToggleBuildMode() bool {
	f.buildMode = !f.buildMode
	return f.buildMode
}

func (f *fakeGame) SelectStructure(kind world.StructureKind) { f.selected = kind }

func (f *fakeGame) PlaceStructure(x, y int) error {
	f.placeX, f.placeY = x, y
	return f.placeErr
}

func (f *fakeGame) Equip(itemID string) error {
	f.equipped = itemID
	return f.equipErr
}

func (f *fakeGame) TogglePause() bool {
	f.paused = !f.paused
	return f.paused
}

func (f *fakeGame) Save(context.Context) error { return f.saveErr }
func (f *fakeGame) Load(context.Context) error { return f.loadErr }

type fakeSink struct {
	in sim.Input
}

func (f *fakeSink) SetIntent(in sim.Input) { f.in = in }

var (
	_ GameControl = (*fakeGame)(nil)
	_ GameControl = (*sim.Session)(nil)
	_ IntentSink  = (*fakeSink)(nil)
	_ IntentSink  = (*sim.Runner)(nil)
)

func errorCode(t *testing.T, ctx *app.RequestContext) string {
	t.Helper()
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, ctx.Response.Body())
	}
	return body.Error.Code
}

func TestIntentRoute(t *testing.T) {
	sink := &fakeSink{}
	h := Handler{Intents: sink}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"move_x":1,"move_y":-1,"sprint":true}`))

	h.intent(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if sink.in != (sim.Input{MoveX: 1, MoveY: -1, Sprint: true}) {
		t.Fatalf("intent mismatch: %+v", sink.in)
	}
}

func TestCraftRouteUnknownRecipe(t *testing.T) {
	h := Handler{Game: &fakeGame{}}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"recipe":"golden_crown"}`))

	h.craftRecipe(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got, want := errorCode(t, ctx), "unknown_recipe"; got != want {
		t.Fatalf("code mismatch: got=%q want=%q", got, want)
	}
}

func TestCraftRouteMapsMissingMaterials(t *testing.T) {
	game := &fakeGame{craftErr: craft.ErrMissingMaterials}
	h := Handler{Game: game}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"recipe":"wooden_spear"}`))

	h.craftRecipe(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusConflict; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got, want := errorCode(t, ctx), "missing_materials"; got != want {
		t.Fatalf("code mismatch: got=%q want=%q", got, want)
	}
	if got, want := game.craftID, craft.RecipeWoodenSpear; got != want {
		t.Fatalf("recipe mismatch: got=%v want=%v", got, want)
	}
}

func TestInteractRoute(t *testing.T) {
	h := Handler{Game: &fakeGame{interactRes: sim.InteractResult{Harvested: "wood", Amount: 1}}}
	ctx := &app.RequestContext{}

	h.interact(context.Background(), ctx)
	var body struct {
		Harvested string `json:"harvested"`
		Amount    int    `json:"amount"`
		Warmed    bool   `json:"warmed"`
	}
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Harvested != "wood" || body.Amount != 1 || body.Warmed {
		t.Fatalf("body mismatch: %+v", body)
	}
}

func TestBuildPlaceRequiresBuildMode(t *testing.T) {
	h := Handler{Game: &fakeGame{placeErr: sim.ErrBuildModeOff}}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"x":3,"y":4}`))

	h.buildPlace(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusConflict; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got, want := errorCode(t, ctx), "build_mode_off"; got != want {
		t.Fatalf("code mismatch: got=%q want=%q", got, want)
	}
}

func TestBuildSelectRejectsUnknownStructure(t *testing.T) {
	h := Handler{Game: &fakeGame{}}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"structure":"castle"}`))

	h.buildSelect(context.Background(), ctx)
	if got, want := errorCode(t, ctx), "unknown_structure"; got != want {
		t.Fatalf("code mismatch: got=%q want=%q", got, want)
	}
}

func TestBuildSelectAcceptsKnownStructure(t *testing.T) {
	game := &fakeGame{}
	h := Handler{Game: game}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"structure":"shack"}`))

	h.buildSelect(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got, want := game.selected, world.StructureShack; got != want {
		t.Fatalf("selection mismatch: got=%v want=%v", got, want)
	}
}

func TestEquipRouteMapsNotCarried(t *testing.T) {
	h := Handler{Game: &fakeGame{equipErr: sim.ErrItemNotCarried}}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"item":"stone_axe"}`))

	h.equip(context.Background(), ctx)
	if got, want := errorCode(t, ctx), "item_not_carried"; got != want {
		t.Fatalf("code mismatch: got=%q want=%q", got, want)
	}
}

func TestSaveRouteNotConfigured(t *testing.T) {
	h := Handler{Game: &fakeGame{saveErr: sim.ErrNoStore}}
	ctx := &app.RequestContext{}

	h.save(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusNotFound; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got, want := errorCode(t, ctx), "not_configured"; got != want {
		t.Fatalf("code mismatch: got=%q want=%q", got, want)
	}
}

func TestLoadRouteMissingSnapshot(t *testing.T) {
	h := Handler{Game: &fakeGame{loadErr: ports.ErrNotFound}}
	ctx := &app.RequestContext{}

	h.load(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusNotFound; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got, want := errorCode(t, ctx), "not_found"; got != want {
		t.Fatalf("code mismatch: got=%q want=%q", got, want)
	}
}

type obsGame struct{}

func (obsGame) View() sim.StateView {
	return sim.StateView{
		Player:      sim.PlayerView{X: 7, Y: 9},
		WorldWidth:  4,
		WorldHeight: 4,
	}
}

func (obsGame) Viewport(x, y, w, h int) []sim.TileView {
	out := make([]sim.TileView, 0, w*h)
	for tx := x; tx < x+w; tx++ {
		for ty := y; ty < y+h; ty++ {
			out = append(out, sim.TileView{X: tx, Y: ty, Kind: "grass"})
		}
	}
	return out
}

func TestObserveRouteParsesViewport(t *testing.T) {
	h := Handler{ObserveUC: observe.UseCase{Game: obsGame{}}}
	ctx := &app.RequestContext{}
	ctx.Request.SetRequestURI("/api/game/observe?x=1&y=1&width=2&height=2")

	h.observe(context.Background(), ctx)
	var body observe.Response
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got, want := len(body.Tiles), 4; got != want {
		t.Fatalf("tile count mismatch: got=%d want=%d", got, want)
	}
	if body.Tiles[0].X != 1 || body.Tiles[0].Y != 1 {
		t.Fatalf("viewport origin mismatch: %+v", body.Tiles[0])
	}
	if got, want := body.Player.X, 7.0; got != want {
		t.Fatalf("player mismatch: got=%v want=%v", got, want)
	}
}

func TestKPIRouteNotConfigured(t *testing.T) {
	h := Handler{}
	ctx := &app.RequestContext{}

	h.kpi(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusNotFound; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
}

func TestWriteErrorDefaultsToInternal(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, errors.New("boom"))
	if got, want := ctx.Response.StatusCode(), consts.StatusInternalServerError; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got, want := errorCode(t, ctx), "internal_error"; got != want {
		t.Fatalf("code mismatch: got=%q want=%q", got, want)
	}
}
