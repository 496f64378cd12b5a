// internal/handlers/rating_test.go
package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jason-s-yu/eurovote/internal/live"
	"github.com/jason-s-yu/eurovote/internal/session"
)

// The unknown-contestant check runs before any store access, so these tests
// need neither postgres nor redis.
func TestSubmitRatingRejectsUnknownContestant(t *testing.T) {
	session.Init()
	h := SubmitRatingHandler(live.NewHub())

	body := `{"roomId":"1b4e28ba-2fa1-11d2-883f-0016d3cca427","contestantId":"esc1999_1","category":"music","score":7}`
	req := httptest.NewRequest("POST", "/ratings/submit", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSubmitRatingRejectsMalformedPayload(t *testing.T) {
	session.Init()
	h := SubmitRatingHandler(live.NewHub())

	req := httptest.NewRequest("POST", "/ratings/submit", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestMyRatingRejectsBadRoomID(t *testing.T) {
	req := httptest.NewRequest("GET", "/ratings/mine?room_id=nope&contestant_id=esc2025_1", nil)
	w := httptest.NewRecorder()

	MyRatingHandler(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
