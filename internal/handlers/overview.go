package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jason-s-yu/eurovote/internal/database"
	"github.com/jason-s-yu/eurovote/internal/overview"
)

// RoomOverviewHandler handles GET /overview/room?room_id=[&contestant_id=].
// Without contestant_id it returns one summary per contestant that has at
// least one rating in the room; with it, a single room-scoped summary
// (emitted even when nobody has rated yet).
func RoomOverviewHandler(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(r.URL.Query().Get("room_id"))
	if err != nil {
		http.Error(w, "invalid room_id", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if contestantID := r.URL.Query().Get("contestant_id"); contestantID != "" {
		ratings, err := database.GetRatingsForRoomAndContestant(r.Context(), roomID, contestantID)
		if err != nil {
			log.Errorf("room contestant overview failed: %v", err)
			http.Error(w, "failed to compute overview", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(overview.Summarize(contestantID, ratings))
		return
	}

	ratings, err := database.GetRatingsForRoom(r.Context(), roomID)
	if err != nil {
		log.Errorf("room overview failed: %v", err)
		http.Error(w, "failed to compute overview", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(overview.GroupByContestant(ratings))
}

// GlobalContestantOverviewHandler handles GET /overview/contestant?contestant_id=:
// one contestant across all rooms. A contestant nobody rated still gets a
// summary, all averages nil, zero raters.
func GlobalContestantOverviewHandler(w http.ResponseWriter, r *http.Request) {
	contestantID := r.URL.Query().Get("contestant_id")
	if contestantID == "" {
		http.Error(w, "contestant_id is required", http.StatusBadRequest)
		return
	}

	ratings, err := database.GetRatingsForContestant(r.Context(), contestantID)
	if err != nil {
		log.Errorf("global contestant overview failed: %v", err)
		http.Error(w, "failed to compute overview", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(overview.Summarize(contestantID, ratings))
}

// GlobalOverviewHandler handles GET /overview/global: every contestant with
// at least one rating anywhere.
func GlobalOverviewHandler(w http.ResponseWriter, r *http.Request) {
	ratings, err := database.GetAllRatings(r.Context())
	if err != nil {
		log.Errorf("global overview failed: %v", err)
		http.Error(w, "failed to compute overview", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(overview.GroupByContestant(ratings))
}
