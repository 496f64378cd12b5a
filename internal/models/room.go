package models

import "github.com/google/uuid"

// Room is a named group context. Names are unique (case-sensitive) and act
// as the human-facing join key; rooms are created on first join and never
// deleted.
type Room struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// RoomMember is one user's entry in a room, in join order. A user appears
// at most once per room; rejoining with a new nickname overwrites the
// nickname in place.
type RoomMember struct {
	RoomID   uuid.UUID `json:"room_id"`
	UserID   uuid.UUID `json:"user_id"`
	Nickname string    `json:"nickname"`
}
