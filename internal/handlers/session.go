package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jason-s-yu/eurovote/internal/session"
)

// EnsureDeviceUser resolves the caller's device identity from the
// vote_token cookie, minting a fresh identity (and setting the cookie) when
// the request carries none or an invalid one. The same device keeps the
// same userID across sessions.
func EnsureDeviceUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, error) {
	if c, err := r.Cookie(session.CookieName); err == nil {
		if sub, verifyErr := session.VerifyDeviceToken(c.Value); verifyErr == nil {
			if id, parseErr := uuid.Parse(sub); parseErr == nil {
				return id, nil
			}
		}
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to generate user id: %w", err)
	}
	token, err := session.CreateDeviceToken(id.String())
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create device token: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		HttpOnly: true,
		Path:     "/",
		MaxAge:   session.TokenExpireTimeSec,
	})
	return id, nil
}

// SessionHandler returns the device's stored identity slot, so a returning
// client can land back in its room. 404 when the device never joined.
func SessionHandler(w http.ResponseWriter, r *http.Request) {
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
		http.Error(w, "no session", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sc)
}
