// Package live fans out change notifications to the websocket clients
// watching each room. Events are hints only: they carry no rating data, and
// clients re-query the HTTP API when one arrives, so every read still comes
// from durable storage.
package live

import (
	"sync"

	"github.com/google/uuid"
)

// Conn is one subscribed websocket client. Out is drained by the
// connection's write pump; broadcasts never block on a slow client.
type Conn struct {
	UserID uuid.UUID
	Out    chan map[string]interface{}

	closed bool
}

// NewConn builds a connection with the standard outbound buffer.
func NewConn(userID uuid.UUID) *Conn {
	return &Conn{
		UserID: userID,
		Out:    make(chan map[string]interface{}, 10),
	}
}

// Hub is the registry of room subscriptions.
type Hub struct {
	mu    sync.Mutex
	rooms map[uuid.UUID]map[*Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[uuid.UUID]map[*Conn]struct{})}
}

// Add subscribes a connection to a room.
func (h *Hub) Add(roomID uuid.UUID, c *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns, ok := h.rooms[roomID]
	if !ok {
		conns = make(map[*Conn]struct{})
		h.rooms[roomID] = conns
	}
	conns[c] = struct{}{}
}

// Remove unsubscribes a connection and closes its outbound channel. Safe to
// call more than once on the same connection.
func (h *Hub) Remove(roomID uuid.UUID, c *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.rooms[roomID]; ok {
		delete(conns, c)
		if len(conns) == 0 {
			delete(h.rooms, roomID)
		}
	}
	if !c.closed {
		c.closed = true
		close(c.Out)
	}
}

// broadcast delivers msg to every connection in the room, dropping it for
// clients whose buffers are full rather than blocking the mutation path.
func (h *Hub) broadcast(roomID uuid.UUID, msg map[string]interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.rooms[roomID] {
		if c.closed {
			continue
		}
		select {
		case c.Out <- msg:
		default:
		}
	}
}

// BroadcastRatingsUpdated tells a room's watchers that a contestant's
// ratings changed and should be re-fetched.
func (h *Hub) BroadcastRatingsUpdated(roomID uuid.UUID, contestantID string) {
	h.broadcast(roomID, map[string]interface{}{
		"type":          "ratings_updated",
		"room_id":       roomID.String(),
		"contestant_id": contestantID,
	})
}

// BroadcastMemberJoined tells a room's watchers that the member list changed.
func (h *Hub) BroadcastMemberJoined(roomID, userID uuid.UUID, nickname string) {
	h.broadcast(roomID, map[string]interface{}{
		"type":     "member_joined",
		"room_id":  roomID.String(),
		"user_id":  userID.String(),
		"nickname": nickname,
	})
}
