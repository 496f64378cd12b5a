package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jason-s-yu/eurovote/internal/contestants"
	"github.com/jason-s-yu/eurovote/internal/database"
	"github.com/jason-s-yu/eurovote/internal/live"
	"github.com/jason-s-yu/eurovote/internal/session"
)

type submitRatingRequest struct {
	RoomID       uuid.UUID `json:"roomId"`
	ContestantID string    `json:"contestantId"`
	Category     string    `json:"category"`
	Score        int       `json:"score"`
}

// SubmitRatingHandler handles POST /ratings/submit. The caller's identity
// and nickname come from their session slot, never from the payload.
func SubmitRatingHandler(hub *live.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitRatingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid payload", http.StatusBadRequest)
			return
		}
		if _, ok := contestants.ByID(req.ContestantID); !ok {
			http.Error(w, "unknown contestant", http.StatusBadRequest)
			return
		}

		userID, err := EnsureDeviceUser(w, r)
		if err != nil {
			http.Error(w, "failed to resolve device identity", http.StatusInternalServerError)
			return
		}
		sc, err := session.Load(r.Context(), userID)
		if err != nil {
			http.Error(w, "failed to load session", http.StatusInternalServerError)
			return
		}
		if sc == nil {
			http.Error(w, "join a room before rating", http.StatusForbidden)
			return
		}

		err = database.SubmitRating(r.Context(), req.RoomID, req.ContestantID, userID, sc.Nickname, req.Category, req.Score)
		if errors.Is(err, database.ErrInvalidCategory) || errors.Is(err, database.ErrScoreRange) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			log.Errorf("submit rating failed: %v", err)
			http.Error(w, "failed to submit rating", http.StatusInternalServerError)
			return
		}

		hub.BroadcastRatingsUpdated(req.RoomID, req.ContestantID)
		w.WriteHeader(http.StatusNoContent)
	}
}

// RoomContestantRatingsHandler handles GET /ratings?room_id=&contestant_id=:
// every record for the pair, unordered.
func RoomContestantRatingsHandler(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(r.URL.Query().Get("room_id"))
	if err != nil {
		http.Error(w, "invalid room_id", http.StatusBadRequest)
		return
	}
	contestantID := r.URL.Query().Get("contestant_id")
	if contestantID == "" {
		http.Error(w, "contestant_id is required", http.StatusBadRequest)
		return
	}

	ratings, err := database.GetRatingsForRoomAndContestant(r.Context(), roomID, contestantID)
	if err != nil {
		log.Errorf("list ratings failed: %v", err)
		http.Error(w, "failed to list ratings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ratings)
}

// MyRatingHandler handles GET /ratings/mine?room_id=&contestant_id=: the
// caller's own record, 404 when they have never scored the contestant.
func MyRatingHandler(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(r.URL.Query().Get("room_id"))
	if err != nil {
		http.Error(w, "invalid room_id", http.StatusBadRequest)
		return
	}
	contestantID := r.URL.Query().Get("contestant_id")
	if contestantID == "" {
		http.Error(w, "contestant_id is required", http.StatusBadRequest)
		return
	}

	userID, err := EnsureDeviceUser(w, r)
	if err != nil {
		http.Error(w, "failed to resolve device identity", http.StatusInternalServerError)
		return
	}

	rating, err := database.GetUserRatingForContestant(r.Context(), roomID, contestantID, userID)
	if err != nil {
		log.Errorf("get own rating failed: %v", err)
		http.Error(w, "failed to load rating", http.StatusInternalServerError)
		return
	}
	if rating == nil {
		http.Error(w, "not rated yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rating)
}
