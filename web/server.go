// Package web exposes the read-only query surface: leaderboard and per-user
// stats over HTTP.
package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	log "github.com/sirupsen/logrus"

	"github.com/bililionairestory/casino-bot/service"
)

// Leaderboard rows returned when the request does not ask for a limit.
const defaultLeaderboardLimit = 20

type Server struct {
	statsService service.StatsService
	httpServer   *http.Server
}

func NewServer(addr string, statsService service.StatsService) *Server {
	s := &Server{
		statsService: statsService,
	}
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	return s
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(rr chi.Router) {
		rr.Get("/leaderboard", s.handleLeaderboard)
		rr.Get("/users/{userID}/stats", s.handleUserStats)
	})

	return r
}

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe() error {
	log.WithField("addr", s.httpServer.Addr).Info("Web server listening")
	return s.httpServer.ListenAndServe()
}

func (s *Server) Close() error {
	return s.httpServer.Close()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := defaultLeaderboardLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	writeJSON(w, http.StatusOK, s.statsService.Leaderboard(limit))
}

func (s *Server) handleUserStats(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	stats, err := s.statsService.UserStats(userID)
	if err != nil {
		if errors.Is(err, service.ErrUnknownUser) {
			writeError(w, http.StatusNotFound, "unknown user")
			return
		}
		log.Errorf("Error getting stats for %s: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
