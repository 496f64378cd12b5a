// internal/session/store.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Context is one device's identity for a request: who they are, what they
// call themselves, and which room they last joined. Handlers resolve it
// once per request and pass it explicitly; nothing reads identity from
// ambient state.
type Context struct {
	UserID   uuid.UUID `json:"user_id"`
	Nickname string    `json:"nickname"`
	RoomID   uuid.UUID `json:"room_id"`
}

// Rdb is the global Redis client holding session slots. Connect it once at
// application startup.
var Rdb *redis.Client

// ConnectRedis initializes the global Redis client with environment variables:
//   - REDIS_ADDR (default "localhost:6379")
//   - REDIS_DB (optional, default 0)
func ConnectRedis() error {
	addr := getEnv("REDIS_ADDR", "localhost:6379")
	dbIdx := getEnvInt("REDIS_DB", 0)

	Rdb = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   dbIdx,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return nil
}

func sessionKey(userID uuid.UUID) string {
	return "session:" + userID.String()
}

// Save persists the device's identity slot. Called after a successful join
// so a returning device lands back in its room.
func Save(ctx context.Context, sc Context) error {
	data, err := json.Marshal(sc)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := Rdb.Set(ctx, sessionKey(sc.UserID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Load reads the device's identity slot. Returns nil when the device has
// never joined a room.
func Load(ctx context.Context, userID uuid.UUID) (*Context, error) {
	data, err := Rdb.Get(ctx, sessionKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var sc Context
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sc, nil
}

// getEnv is a helper to read an environment variable or return a default value.
func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// getEnvInt is a helper to parse an environment variable as integer, else a default value.
func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
