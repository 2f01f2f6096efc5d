// Package stream pushes change events to connected dashboards over
// websocket, so open admin tabs refetch collections without polling.
package stream

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/voyagehq/voyagecms"
)

const writeWait = 10 * time.Second

type Hub struct {
	upgrader websocket.Upgrader

	mutex sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		conns: map[*websocket.Conn]struct{}{},
	}
}

// Run broadcasts every event to all connected clients until ctx is
// cancelled or the event channel closes. A client that cannot be written
// to is dropped; it will reconnect and refetch.
func (h *Hub) Run(ctx context.Context, events <-chan voyagecms.ChangeEvent) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case event, ok := <-events:
			if !ok {
				h.closeAll()
				return
			}
			h.broadcast(event)
		}
	}
}

func (h *Hub) broadcast(event voyagecms.ChangeEvent) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for conn := range h.conns {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(event); err != nil {
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for conn := range h.conns {
		conn.Close()
		delete(h.conns, conn)
	}
}

// Handle upgrades the request and keeps the connection registered until
// the client goes away. Inbound messages are ignored.
func (h *Hub) Handle(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	h.mutex.Lock()
	h.conns[conn] = struct{}{}
	h.mutex.Unlock()

	go func() {
		defer func() {
			h.mutex.Lock()
			delete(h.conns, conn)
			h.mutex.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	return nil
}
