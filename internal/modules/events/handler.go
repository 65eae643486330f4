package events

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/events", h.Subscribe)
}

// Subscribe upgrades the connection and keeps it registered until the
// client goes away. Incoming frames are drained and ignored; the stream
// is one-way.
func (h *Handler) Subscribe(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("events: websocket upgrade failed: %v", err)
		return
	}

	h.hub.Register(conn)

	go func() {
		defer h.hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// NotifyEntityChanged is the store listener wired up in main.
func (h *Hub) NotifyEntityChanged(entity string) {
	h.Broadcast(Event{Entity: entity, At: time.Now()})
}
