// internal/models/rating.go
package models

import "github.com/google/uuid"

// Score categories accepted by the rating store.
const (
	CategoryMusic       = "music"
	CategoryPerformance = "performance"
	CategoryVibes       = "vibes"
)

// Rating is one user's scorecard for a contestant within a room, identified
// by the triple (RoomID, ContestantID, UserID). Each category score is nil
// until the user submits that category; once set it is only ever
// overwritten, never cleared. Nil is the only representation of "not
// scored" — no sentinel values.
type Rating struct {
	RoomID       uuid.UUID `json:"room_id"`
	ContestantID string    `json:"contestant_id"`
	UserID       uuid.UUID `json:"user_id"`
	Nickname     string    `json:"nickname"`

	MusicScore       *int `json:"music_score"`
	PerformanceScore *int `json:"performance_score"`
	VibesScore       *int `json:"vibes_score"`
}
