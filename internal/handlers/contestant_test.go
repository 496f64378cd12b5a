// internal/handlers/contestant_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jason-s-yu/eurovote/internal/contestants"
)

func TestListContestants(t *testing.T) {
	req := httptest.NewRequest("GET", "/contestants", nil)
	w := httptest.NewRecorder()

	ListContestantsHandler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	var list []contestants.Contestant
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode lineup: %v", err)
	}
	if len(list) != contestants.Count() {
		t.Fatalf("expected %d entries, got %d", contestants.Count(), len(list))
	}
	if list[0].ID != "esc2025_1" {
		t.Fatalf("lineup out of order, first entry %s", list[0].ID)
	}
}

func TestGetContestantNavigation(t *testing.T) {
	req := httptest.NewRequest("GET", "/contestants/esc2025_37", nil)
	w := httptest.NewRecorder()

	GetContestantHandler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	var resp contestantResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode contestant: %v", err)
	}
	if resp.Country != "United Kingdom" {
		t.Errorf("wrong contestant: %s", resp.Country)
	}
	if resp.NextID != "esc2025_1" {
		t.Errorf("navigation should wrap, got next %s", resp.NextID)
	}
	if resp.Order != 37 || resp.Total != 37 {
		t.Errorf("order %d of %d", resp.Order, resp.Total)
	}
}

func TestGetContestantUnknown(t *testing.T) {
	req := httptest.NewRequest("GET", "/contestants/esc1999_1", nil)
	w := httptest.NewRecorder()

	GetContestantHandler(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
