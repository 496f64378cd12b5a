package session

import (
	"testing"

	"github.com/google/uuid"
)

func TestDeviceTokenRoundTrip(t *testing.T) {
	Init() // ephemeral keys

	userID := uuid.New().String()
	token, err := CreateDeviceToken(userID)
	if err != nil {
		t.Fatalf("failed to create token: %v", err)
	}

	sub, err := VerifyDeviceToken(token)
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}
	if sub != userID {
		t.Fatalf("sub mismatch: expected %s got %s", userID, sub)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	Init()

	if _, err := VerifyDeviceToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
