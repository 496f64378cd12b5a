package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jason-s-yu/eurovote/internal/models"
)

var (
	// ErrInvalidCategory is returned for a category outside {music, performance, vibes}.
	ErrInvalidCategory = errors.New("unknown rating category")
	// ErrScoreRange is returned for a score outside [1, 12].
	ErrScoreRange = errors.New("score must be between 1 and 12")
)

// categoryColumns maps a category name to the column it owns. Having the
// store own this mapping keeps the upsert to a single statement that never
// touches the other two columns.
var categoryColumns = map[string]string{
	models.CategoryMusic:       "music_score",
	models.CategoryPerformance: "performance_score",
	models.CategoryVibes:       "vibes_score",
}

// SubmitRating upserts the caller's scorecard for one contestant. Only the
// submitted category column and the denormalized nickname are written; the
// other two categories keep whatever they held, including on the conflict
// path. The single INSERT .. ON CONFLICT statement means two concurrent
// submissions for different categories of the same (room, contestant, user)
// triple cannot clobber each other.
//
// Scores are validated here rather than trusting callers to clamp input.
func SubmitRating(ctx context.Context, roomID uuid.UUID, contestantID string, userID uuid.UUID, nickname, category string, score int) error {
	column, ok := categoryColumns[category]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	if score < 1 || score > 12 {
		return fmt.Errorf("%w: got %d", ErrScoreRange, score)
	}

	q := fmt.Sprintf(`
		INSERT INTO ratings (room_id, contestant_id, user_id, nickname, %[1]s)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (room_id, contestant_id, user_id)
		DO UPDATE SET %[1]s = EXCLUDED.%[1]s, nickname = EXCLUDED.nickname
	`, column)

	err := pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		_, execErr := tx.Exec(ctx, q, roomID, contestantID, userID, nickname, score)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("failed to submit rating: %w", err)
	}
	return nil
}

const ratingColumns = `room_id, contestant_id, user_id, nickname, music_score, performance_score, vibes_score`

func scanRatings(rows pgx.Rows) ([]models.Rating, error) {
	defer rows.Close()
	ratings := []models.Rating{}
	for rows.Next() {
		var r models.Rating
		if err := rows.Scan(&r.RoomID, &r.ContestantID, &r.UserID, &r.Nickname,
			&r.MusicScore, &r.PerformanceScore, &r.VibesScore); err != nil {
			return nil, err
		}
		ratings = append(ratings, r)
	}
	return ratings, rows.Err()
}

// GetRatingsForRoomAndContestant returns every rating for the pair,
// unordered.
func GetRatingsForRoomAndContestant(ctx context.Context, roomID uuid.UUID, contestantID string) ([]models.Rating, error) {
	rows, err := DB.Query(ctx, `
		SELECT `+ratingColumns+`
		FROM ratings
		WHERE room_id = $1 AND contestant_id = $2
	`, roomID, contestantID)
	if err != nil {
		return nil, err
	}
	return scanRatings(rows)
}

// GetUserRatingForContestant returns the caller's own record for the
// contestant in the room, or nil when they have never scored it. The
// primary key guarantees at most one match.
func GetUserRatingForContestant(ctx context.Context, roomID uuid.UUID, contestantID string, userID uuid.UUID) (*models.Rating, error) {
	var r models.Rating
	err := DB.QueryRow(ctx, `
		SELECT `+ratingColumns+`
		FROM ratings
		WHERE room_id = $1 AND contestant_id = $2 AND user_id = $3
	`, roomID, contestantID, userID).Scan(&r.RoomID, &r.ContestantID, &r.UserID, &r.Nickname,
		&r.MusicScore, &r.PerformanceScore, &r.VibesScore)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetRatingsForRoom returns every rating in a room across all contestants.
func GetRatingsForRoom(ctx context.Context, roomID uuid.UUID) ([]models.Rating, error) {
	rows, err := DB.Query(ctx, `
		SELECT `+ratingColumns+`
		FROM ratings
		WHERE room_id = $1
	`, roomID)
	if err != nil {
		return nil, err
	}
	return scanRatings(rows)
}

// GetRatingsForContestant returns a contestant's ratings across all rooms.
func GetRatingsForContestant(ctx context.Context, contestantID string) ([]models.Rating, error) {
	rows, err := DB.Query(ctx, `
		SELECT `+ratingColumns+`
		FROM ratings
		WHERE contestant_id = $1
	`, contestantID)
	if err != nil {
		return nil, err
	}
	return scanRatings(rows)
}

// GetAllRatings returns the full ratings table, for the global overview.
func GetAllRatings(ctx context.Context) ([]models.Rating, error) {
	rows, err := DB.Query(ctx, `SELECT `+ratingColumns+` FROM ratings`)
	if err != nil {
		return nil, err
	}
	return scanRatings(rows)
}
