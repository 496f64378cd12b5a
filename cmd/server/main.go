// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/eurovote/internal/database"
	"github.com/jason-s-yu/eurovote/internal/handlers"
	"github.com/jason-s-yu/eurovote/internal/live"
	"github.com/jason-s-yu/eurovote/internal/middleware"
	"github.com/jason-s-yu/eurovote/internal/session"
)

func main() {
	session.Init()
	database.ConnectDB()
	if err := session.ConnectRedis(); err != nil {
		log.Fatalf("redis: %v", err)
	}

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	hub := live.NewHub()

	mux := http.NewServeMux()
	logged := middleware.LogMiddleware(logger)

	// room endpoints
	mux.Handle("/room/join", logged(handlers.JoinRoomHandler(hub)))
	mux.Handle("/room/members", logged(http.HandlerFunc(handlers.RoomMembersHandler)))
	mux.Handle("/room/find-user", logged(http.HandlerFunc(handlers.FindUserHandler)))

	// session endpoint
	mux.Handle("/session", logged(http.HandlerFunc(handlers.SessionHandler)))

	// rating endpoints
	mux.Handle("/ratings/submit", logged(handlers.SubmitRatingHandler(hub)))
	mux.Handle("/ratings/mine", logged(http.HandlerFunc(handlers.MyRatingHandler)))
	mux.Handle("/ratings", logged(http.HandlerFunc(handlers.RoomContestantRatingsHandler)))

	// overview endpoints
	mux.Handle("/overview/room", logged(http.HandlerFunc(handlers.RoomOverviewHandler)))
	mux.Handle("/overview/contestant", logged(http.HandlerFunc(handlers.GlobalContestantOverviewHandler)))
	mux.Handle("/overview/global", logged(http.HandlerFunc(handlers.GlobalOverviewHandler)))

	// contestant reference data
	mux.Handle("/contestants", logged(http.HandlerFunc(handlers.ListContestantsHandler)))
	mux.Handle("/contestants/", logged(http.HandlerFunc(handlers.GetContestantHandler)))

	// room notification stream
	mux.Handle("/rooms/ws/", logged(handlers.RoomWSHandler(logger, hub)))

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	logger.Infof("Running on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
