package httpadapter

import (
	"context"
	"time"

	"survecho/internal/app/observe"
	"survecho/internal/app/sim"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/websocket"
)

// streamInterval is the push cadence of the renderer feed. 10 frames per
// second is enough for a tile renderer and keeps full-state frames cheap.
const streamInterval = 100 * time.Millisecond

var streamUpgrader = websocket.HertzUpgrader{
	CheckOrigin: func(_ *app.RequestContext) bool { return true },
}

// stream serves the live renderer feed: the server pushes observe frames at
// a fixed cadence, the client may send movement intents on the same
// connection. Either side closing ends both directions.
func (h Handler) stream(c context.Context, ctx *app.RequestContext) {
	err := streamUpgrader.Upgrade(ctx, func(conn *websocket.Conn) {
		done := make(chan struct{})
		go h.readIntents(conn, done)

		ticker := time.NewTicker(streamInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.WriteJSON(h.ObserveUC.Execute(observe.Request{})); err != nil {
					return
				}
			}
		}
	})
	if err != nil {
		hlog.CtxWarnf(c, "websocket upgrade failed: %v", err)
	}
}

func (h Handler) readIntents(conn *websocket.Conn, done chan struct{}) {
	defer close(done)
	for {
		var msg intentRequest
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		h.Intents.SetIntent(sim.Input{MoveX: msg.MoveX, MoveY: msg.MoveY, Sprint: msg.Sprint})
	}
}
