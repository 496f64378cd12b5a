package live

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastReachesRoomOnly(t *testing.T) {
	h := NewHub()
	roomA, roomB := uuid.New(), uuid.New()

	cA := NewConn(uuid.New())
	cB := NewConn(uuid.New())
	h.Add(roomA, cA)
	h.Add(roomB, cB)

	h.BroadcastRatingsUpdated(roomA, "esc2025_9")

	require.Len(t, cA.Out, 1)
	msg := <-cA.Out
	assert.Equal(t, "ratings_updated", msg["type"])
	assert.Equal(t, "esc2025_9", msg["contestant_id"])
	assert.Empty(t, cB.Out, "other rooms must not see the event")
}

func TestRemoveIsIdempotent(t *testing.T) {
	h := NewHub()
	roomID := uuid.New()
	c := NewConn(uuid.New())
	h.Add(roomID, c)

	h.Remove(roomID, c)
	h.Remove(roomID, c) // second call must not panic on the closed channel

	// Broadcasting to an emptied room is a no-op.
	h.BroadcastMemberJoined(roomID, uuid.New(), "latecomer")
}

func TestSlowClientDoesNotBlock(t *testing.T) {
	h := NewHub()
	roomID := uuid.New()
	c := NewConn(uuid.New())
	h.Add(roomID, c)

	// Overfill the buffer; extra events are dropped, not blocked on.
	for i := 0; i < cap(c.Out)+5; i++ {
		h.BroadcastRatingsUpdated(roomID, "esc2025_1")
	}
	assert.Len(t, c.Out, cap(c.Out))
}
