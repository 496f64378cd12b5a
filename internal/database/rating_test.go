package database

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

// Validation runs before any query is issued, so no pool is needed here.
func TestSubmitRatingRejectsUnknownCategory(t *testing.T) {
	err := SubmitRating(context.Background(), uuid.New(), "esc2025_1", uuid.New(), "nick", "stage_presence", 7)
	if !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestSubmitRatingRejectsOutOfRangeScore(t *testing.T) {
	for _, score := range []int{0, -3, 13, 120} {
		err := SubmitRating(context.Background(), uuid.New(), "esc2025_1", uuid.New(), "nick", "music", score)
		if !errors.Is(err, ErrScoreRange) {
			t.Errorf("score %d: expected ErrScoreRange, got %v", score, err)
		}
	}
}
