// internal/handlers/room_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/eurovote/internal/database"
	"github.com/jason-s-yu/eurovote/internal/live"
	"github.com/jason-s-yu/eurovote/internal/middleware"
)

// RoomWSHandler handles GET /rooms/ws/{room_id}: a notification stream for
// one room. The server only ever writes hint events; anything the client
// sends is ignored.
func RoomWSHandler(logger *logrus.Logger, hub *live.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := strings.TrimPrefix(r.URL.Path, "/rooms/ws/")
		roomID, err := uuid.Parse(idStr)
		if err != nil {
			http.Error(w, "invalid room_id", http.StatusBadRequest)
			return
		}

		// Resolve identity before the upgrade; cookies cannot be set after.
		userID, err := EnsureDeviceUser(w, r)
		if err != nil {
			http.Error(w, "failed to resolve device identity", http.StatusInternalServerError)
			return
		}

		room, err := database.GetRoom(r.Context(), roomID)
		if err != nil {
			logger.Warnf("room lookup failed for ws: %v", err)
			http.Error(w, "room lookup failed", http.StatusInternalServerError)
			return
		}
		if room == nil {
			http.Error(w, "room does not exist", http.StatusNotFound)
			return
		}

		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"eurovote"},
			OriginPatterns: []string{"*"}, // Adjust in production
		})
		if err != nil {
			logger.Warnf("websocket accept error: %v", err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "handler finished")

		if c.Subprotocol() != "eurovote" {
			c.Close(websocket.StatusPolicyViolation, "client must speak the eurovote subprotocol")
			return
		}

		middleware.LogWebSocketConnect(logger, r.RemoteAddr, r.URL.Path)

		conn := live.NewConn(userID)
		hub.Add(roomID, conn)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		go writePump(ctx, c, conn, logger)

		// Drain the read side until the client goes away; incoming frames
		// carry nothing we act on.
		var readErr error
		for {
			if _, _, readErr = c.Read(ctx); readErr != nil {
				break
			}
		}

		hub.Remove(roomID, conn)
		middleware.LogWebSocketDisconnect(logger, r.RemoteAddr, r.URL.Path, readErr)
		c.Close(websocket.StatusNormalClosure, "")
	}
}

// writePump forwards hub events to the websocket until the connection or
// context dies.
func writePump(ctx context.Context, c *websocket.Conn, conn *live.Conn, logger *logrus.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-conn.Out:
			if !ok {
				return
			}
			data, err := json.Marshal(msg)
			if err != nil {
				logger.Warnf("failed to marshal event: %v", err)
				continue
			}
			if err := c.Write(ctx, websocket.MessageText, data); err != nil {
				return
			}
		}
	}
}
