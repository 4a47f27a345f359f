package echoapi

import (
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/onesim/simcase/core"
	"github.com/onesim/simcase/services/realtime"
)

type realtimeAPI struct {
	hub      *realtime.Hub
	log      core.Logger
	upgrader websocket.Upgrader
}

func registerRealtimeAPI(app *echo.Echo, deps *ServerDeps) {
	api := &realtimeAPI{
		hub: deps.Hub,
		log: deps.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     newOriginChecker(deps.Conf.Server.AllowedOrigins),
		},
	}

	app.GET("/ws", api.connect)
}

// newOriginChecker allows requests without an Origin header (non-browser
// clients) and browser requests from an allowed origin.
func newOriginChecker(allowed []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}

func (api *realtimeAPI) connect(ctx echo.Context) error {
	conn, err := api.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		// Upgrade already replied to the client.
		api.log.Warn(fmt.Sprintf("websocket upgrade failed: %v", err), err)
		return nil
	}

	api.hub.Add(conn)
	return nil
}
