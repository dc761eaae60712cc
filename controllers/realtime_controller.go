package controllers

import (
	"net/http"
	"time"

	"github.com/brahimakil/OneLife-sub001/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	Users *services.UserService
	RT    *services.RealtimeHub
}

func NewRealtimeController(users *services.UserService, rt *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{Users: users, RT: rt}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// StatisticsWS streams statistic.updated frames to the caller's clients.
func (rc *RealtimeController) StatisticsWS(c *gin.Context) {
	user, ok := currentUser(c, rc.Users)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{OwnerUID: user.UID, Conn: conn}
	rc.RT.Register(cl)

	// ping keeps connections alive through some proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				rc.RT.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.RT.Unregister(cl)
			return
		}
	}
}
