package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jason-s-yu/eurovote/internal/models"
)

// JoinOrCreateRoom implements the join flow: the room named roomName is
// created on first use, and the caller is added to its member list. If the
// caller is already a member, only the nickname is overwritten in place.
// Room names are matched exactly, case-sensitively.
func JoinOrCreateRoom(ctx context.Context, roomName, nickname string, userID uuid.UUID) (uuid.UUID, bool, error) {
	var roomID uuid.UUID
	var isNew bool

	err := pgx.BeginTxFunc(ctx, DB, pgx.TxOptions{}, func(tx pgx.Tx) error {
		scanErr := tx.QueryRow(ctx, `SELECT id FROM rooms WHERE name = $1`, roomName).Scan(&roomID)
		switch scanErr {
		case nil:
		case pgx.ErrNoRows:
			id, genErr := uuid.NewRandom()
			if genErr != nil {
				return fmt.Errorf("failed to generate room id: %w", genErr)
			}
			roomID = id
			isNew = true
			if _, execErr := tx.Exec(ctx, `INSERT INTO rooms (id, name) VALUES ($1, $2)`, roomID, roomName); execErr != nil {
				return execErr
			}
		default:
			return scanErr
		}

		_, execErr := tx.Exec(ctx, `
			INSERT INTO room_members (room_id, user_id, nickname)
			VALUES ($1, $2, $3)
			ON CONFLICT (room_id, user_id) DO UPDATE SET nickname = EXCLUDED.nickname
		`, roomID, userID, nickname)
		return execErr
	})
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("failed to join room %q: %w", roomName, err)
	}
	return roomID, isNew, nil
}

// GetRoom fetches a room by ID. Returns nil when the room does not exist.
func GetRoom(ctx context.Context, roomID uuid.UUID) (*models.Room, error) {
	var room models.Room
	err := DB.QueryRow(ctx, `SELECT id, name FROM rooms WHERE id = $1`, roomID).Scan(&room.ID, &room.Name)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// GetRoomMembers returns the room's members in join order. An unknown room
// yields an empty slice, not an error.
func GetRoomMembers(ctx context.Context, roomID uuid.UUID) ([]models.RoomMember, error) {
	rows, err := DB.Query(ctx, `
		SELECT room_id, user_id, nickname
		FROM room_members
		WHERE room_id = $1
		ORDER BY joined_at
	`, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []models.RoomMember{}
	for rows.Next() {
		var m models.RoomMember
		if err := rows.Scan(&m.RoomID, &m.UserID, &m.Nickname); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// FindMemberByNickname resolves a (room name, nickname) pair to a member,
// for rejoining from a device that lost its local identity. Nicknames are
// not unique; the earliest joiner wins. Returns nil when there is no match.
func FindMemberByNickname(ctx context.Context, roomName, nickname string) (*models.RoomMember, error) {
	var m models.RoomMember
	err := DB.QueryRow(ctx, `
		SELECT m.room_id, m.user_id, m.nickname
		FROM room_members m
		JOIN rooms r ON r.id = m.room_id
		WHERE r.name = $1 AND m.nickname = $2
		ORDER BY m.joined_at
		LIMIT 1
	`, roomName, nickname).Scan(&m.RoomID, &m.UserID, &m.Nickname)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
