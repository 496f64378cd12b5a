package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jason-s-yu/eurovote/internal/contestants"
)

// ListContestantsHandler handles GET /contestants: the full lineup in
// running order.
func ListContestantsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(contestants.All())
}

type contestantResponse struct {
	contestants.Contestant
	Order  int    `json:"order"`
	Total  int    `json:"total"`
	NextID string `json:"next_id"`
	PrevID string `json:"prev_id"`
}

// GetContestantHandler handles GET /contestants/{id}, including the
// circular next/previous navigation ids.
func GetContestantHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/contestants/")
	c, ok := contestants.ByID(id)
	if !ok {
		http.Error(w, "unknown contestant", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(contestantResponse{
		Contestant: c,
		Order:      contestants.OrderIndex(id) + 1,
		Total:      contestants.Count(),
		NextID:     contestants.NextID(id),
		PrevID:     contestants.PrevID(id),
	})
}
