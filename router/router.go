// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/engine"
	"github.com/danielhkuo/movie-night/handlers"
	"github.com/danielhkuo/movie-night/middleware"
)

func NewRouter(coord *engine.Coordinator, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	nightHandler := handlers.NewNightHandler(coord, cfg)
	proposalHandler := handlers.NewProposalHandler(coord, cfg)
	votingHandler := handlers.NewVotingHandler(coord, cfg)
	statsHandler := handlers.NewStatsHandler(coord, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Night lifecycle
	mux.HandleFunc("POST /nights", middleware.WithLogging(nightHandler.CreateNight))
	mux.HandleFunc("POST /nights/{token}/join", middleware.WithLogging(nightHandler.JoinNight))
	mux.HandleFunc("GET /nights/{token}", middleware.WithLogging(nightHandler.GetNight))
	mux.HandleFunc("GET /nights/{token}/users", middleware.WithLogging(nightHandler.GetUsers))

	// Proposals and voting
	mux.HandleFunc("POST /nights/{token}/propose", middleware.WithLogging(proposalHandler.ProposeMovie))
	mux.HandleFunc("POST /nights/{token}/vote/{movieId}", middleware.WithLogging(votingHandler.CastVote))

	// Stats
	mux.HandleFunc("GET /nights/{token}/stats", middleware.WithLogging(statsHandler.GetStats))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("movie-night API v1"))
	})

	return mux
}
