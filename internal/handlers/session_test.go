// internal/handlers/session_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jason-s-yu/eurovote/internal/session"
)

// TestEnsureDeviceUserMintsAndKeepsIdentity checks that a bare request gets
// a fresh identity plus cookie, and that presenting the cookie again yields
// the same identity.
func TestEnsureDeviceUserMintsAndKeepsIdentity(t *testing.T) {
	session.Init() // ephemeral keys, no DB needed

	req := httptest.NewRequest("GET", "/session", nil)
	w := httptest.NewRecorder()

	first, err := EnsureDeviceUser(w, req)
	if err != nil {
		t.Fatalf("failed to mint identity: %v", err)
	}
	if first == uuid.Nil {
		t.Fatal("minted identity is nil")
	}

	cookies := w.Result().Cookies()
	var token *http.Cookie
	for _, c := range cookies {
		if c.Name == session.CookieName {
			token = c
		}
	}
	if token == nil {
		t.Fatalf("no %s cookie was set", session.CookieName)
	}

	req2 := httptest.NewRequest("GET", "/session", nil)
	req2.AddCookie(token)
	w2 := httptest.NewRecorder()

	second, err := EnsureDeviceUser(w2, req2)
	if err != nil {
		t.Fatalf("failed to resolve identity: %v", err)
	}
	if second != first {
		t.Fatalf("identity changed across requests: %v vs %v", first, second)
	}
	if len(w2.Result().Cookies()) != 0 {
		t.Error("no new cookie should be set for a valid token")
	}
}

func TestEnsureDeviceUserReplacesInvalidToken(t *testing.T) {
	session.Init()

	req := httptest.NewRequest("GET", "/session", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "garbage"})
	w := httptest.NewRecorder()

	id, err := EnsureDeviceUser(w, req)
	if err != nil {
		t.Fatalf("failed to mint replacement identity: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("replacement identity is nil")
	}
	if len(w.Result().Cookies()) == 0 {
		t.Fatal("a replacement cookie should be set")
	}
}
