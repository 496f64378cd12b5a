package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jason-s-yu/eurovote/internal/database"
	"github.com/jason-s-yu/eurovote/internal/live"
	"github.com/jason-s-yu/eurovote/internal/session"
)

type joinRoomRequest struct {
	RoomName string `json:"roomName"`
	Nickname string `json:"nickname"`
}

type joinRoomResponse struct {
	RoomID    uuid.UUID `json:"roomId"`
	IsNewRoom bool      `json:"isNewRoom"`
	UserID    uuid.UUID `json:"userId"`
}

// JoinRoomHandler handles POST /room/join: join-or-create by room name,
// refresh the device token, persist the session slot, and tell the room.
func JoinRoomHandler(hub *live.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req joinRoomRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid payload", http.StatusBadRequest)
			return
		}
		req.RoomName = strings.TrimSpace(req.RoomName)
		req.Nickname = strings.TrimSpace(req.Nickname)
		if req.RoomName == "" || req.Nickname == "" {
			http.Error(w, "roomName and nickname are required", http.StatusBadRequest)
			return
		}

		userID, err := EnsureDeviceUser(w, r)
		if err != nil {
			http.Error(w, "failed to resolve device identity", http.StatusInternalServerError)
			return
		}

		roomID, isNew, err := database.JoinOrCreateRoom(r.Context(), req.RoomName, req.Nickname, userID)
		if err != nil {
			log.Errorf("join room failed: %v", err)
			http.Error(w, "failed to join room", http.StatusInternalServerError)
			return
		}

		// The join itself is already durable; a session-store hiccup only
		// costs the device its resume shortcut.
		sc := session.Context{UserID: userID, Nickname: req.Nickname, RoomID: roomID}
		if err := session.Save(r.Context(), sc); err != nil {
			log.Warnf("failed to persist session slot for %v: %v", userID, err)
		}

		hub.BroadcastMemberJoined(roomID, userID, req.Nickname)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(joinRoomResponse{RoomID: roomID, IsNewRoom: isNew, UserID: userID})
	}
}

// RoomMembersHandler handles GET /room/members?room_id=. Unknown rooms
// yield an empty list.
func RoomMembersHandler(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(r.URL.Query().Get("room_id"))
	if err != nil {
		http.Error(w, "invalid room_id", http.StatusBadRequest)
		return
	}

	members, err := database.GetRoomMembers(r.Context(), roomID)
	if err != nil {
		log.Errorf("list members failed: %v", err)
		http.Error(w, "failed to list members", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(members)
}

type findUserResponse struct {
	UserID uuid.UUID `json:"userId"`
	RoomID uuid.UUID `json:"roomId"`
}

// FindUserHandler handles GET /room/find-user?room_name=&nickname=, the
// recovery path for a device that lost its local identity.
func FindUserHandler(w http.ResponseWriter, r *http.Request) {
	roomName := r.URL.Query().Get("room_name")
	nickname := r.URL.Query().Get("nickname")
	if roomName == "" || nickname == "" {
		http.Error(w, "room_name and nickname are required", http.StatusBadRequest)
		return
	}

	member, err := database.FindMemberByNickname(r.Context(), roomName, nickname)
	if err != nil {
		log.Errorf("find user failed: %v", err)
		http.Error(w, "lookup failed", http.StatusInternalServerError)
		return
	}
	if member == nil {
		http.Error(w, "no matching member", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(findUserResponse{UserID: member.UserID, RoomID: member.RoomID})
}
