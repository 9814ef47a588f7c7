package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"survecho/internal/app/observe"
	"survecho/internal/app/ports"
	"survecho/internal/app/sim"
	"survecho/internal/domain/craft"
	"survecho/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// GameControl is the discrete-action surface the handler needs from the
// session.
type GameControl interface {
	Interact() sim.InteractResult
	Craft(id craft.RecipeID) error
	ToggleBuildMode() bool
	SelectStructure(kind world.StructureKind)
	PlaceStructure(tileX, tileY int) error
	Equip(itemID string) error
	TogglePause() bool
	Save(ctx context.Context) error
	Load(ctx context.Context) error
}

// IntentSink receives the held movement intent from input collaborators.
type IntentSink interface {
	SetIntent(in sim.Input)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

type Handler struct {
	ObserveUC observe.UseCase
	Game      GameControl
	Intents   IntentSink
	KPI       kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	game := s.Group("/api/game")
	game.GET("/observe", h.observe)
	game.GET("/stream", h.stream)
	game.POST("/intent", h.intent)
	game.POST("/interact", h.interact)
	game.POST("/craft", h.craftRecipe)
	game.POST("/build/toggle", h.buildToggle)
	game.POST("/build/select", h.buildSelect)
	game.POST("/build/place", h.buildPlace)
	game.POST("/equip", h.equip)
	game.POST("/pause", h.pause)
	game.POST("/save", h.save)
	game.POST("/load", h.load)

	s.GET("/ops/kpi", h.kpi)
}

type intentRequest struct {
	MoveX  float64 `json:"move_x"`
	MoveY  float64 `json:"move_y"`
	Sprint bool    `json:"sprint"`
}

type craftRequest struct {
	Recipe string `json:"recipe"`
}

type buildSelectRequest struct {
	Structure string `json:"structure"`
}

type buildPlaceRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type equipRequest struct {
	Item string `json:"item"`
}

func (h Handler) observe(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.ObserveUC.Execute(viewportRequest(ctx)))
}

func viewportRequest(ctx *app.RequestContext) observe.Request {
	x, _ := strconv.Atoi(string(ctx.Query("x")))
	y, _ := strconv.Atoi(string(ctx.Query("y")))
	width, _ := strconv.Atoi(string(ctx.Query("width")))
	height, _ := strconv.Atoi(string(ctx.Query("height")))
	return observe.Request{X: x, Y: y, Width: width, Height: height}
}

func (h Handler) intent(_ context.Context, ctx *app.RequestContext) {
	var body intentRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	h.Intents.SetIntent(sim.Input{MoveX: body.MoveX, MoveY: body.MoveY, Sprint: body.Sprint})
	ctx.JSON(consts.StatusOK, map[string]bool{"ok": true})
}

func (h Handler) interact(_ context.Context, ctx *app.RequestContext) {
	res := h.Game.Interact()
	ctx.JSON(consts.StatusOK, map[string]any{
		"harvested": res.Harvested,
		"amount":    res.Amount,
		"warmed":    res.Warmed,
	})
}

func (h Handler) craftRecipe(_ context.Context, ctx *app.RequestContext) {
	var body craftRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	id, ok := craft.ParseRecipeID(body.Recipe)
	if !ok {
		writeError(ctx, craft.ErrUnknownRecipe)
		return
	}
	if err := h.Game.Craft(id); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]string{"crafted": body.Recipe})
}

func (h Handler) buildToggle(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]bool{"build_mode": h.Game.ToggleBuildMode()})
}

func (h Handler) buildSelect(_ context.Context, ctx *app.RequestContext) {
	var body buildSelectRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	kind, ok := world.ParseStructureKind(body.Structure)
	if !ok || kind == world.StructureNone {
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_structure", "unknown structure")
		return
	}
	h.Game.SelectStructure(kind)
	ctx.JSON(consts.StatusOK, map[string]string{"selected": body.Structure})
}

func (h Handler) buildPlace(_ context.Context, ctx *app.RequestContext) {
	var body buildPlaceRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if err := h.Game.PlaceStructure(body.X, body.Y); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]bool{"ok": true})
}

func (h Handler) equip(_ context.Context, ctx *app.RequestContext) {
	var body equipRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if err := h.Game.Equip(body.Item); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]string{"equipped": body.Item})
}

func (h Handler) pause(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]bool{"paused": h.Game.TogglePause()})
}

func (h Handler) save(c context.Context, ctx *app.RequestContext) {
	if err := h.Game.Save(c); err != nil {
		hlog.CtxErrorf(c, "save failed: %v", err)
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]bool{"ok": true})
}

// load replaces the running session with the stored snapshot. A failed load
// is reported to the client and logged; the session keeps running on its
// current state.
func (h Handler) load(c context.Context, ctx *app.RequestContext) {
	if err := h.Game.Load(c); err != nil {
		hlog.CtxWarnf(c, "load failed: %v", err)
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]bool{"ok": true})
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, craft.ErrUnknownRecipe):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_recipe", err.Error())
	case errors.Is(err, craft.ErrMissingMaterials):
		writeErrorBody(ctx, consts.StatusConflict, "missing_materials", err.Error())
	case errors.Is(err, craft.ErrPlacementBlocked):
		writeErrorBody(ctx, consts.StatusConflict, "placement_blocked", err.Error())
	case errors.Is(err, craft.ErrInventoryFull):
		writeErrorBody(ctx, consts.StatusConflict, "inventory_full", err.Error())
	case errors.Is(err, sim.ErrBuildModeOff):
		writeErrorBody(ctx, consts.StatusConflict, "build_mode_off", err.Error())
	case errors.Is(err, sim.ErrItemNotCarried):
		writeErrorBody(ctx, consts.StatusConflict, "item_not_carried", err.Error())
	case errors.Is(err, sim.ErrNoStore):
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
