// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/engine"
	"github.com/danielhkuo/movie-night/middleware"
	"github.com/danielhkuo/movie-night/models"
)

type VotingHandler struct {
	coord *engine.Coordinator
	cfg   cliparse.Config
}

func NewVotingHandler(coord *engine.Coordinator, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{coord: coord, cfg: cfg}
}

// CastVote handles POST /nights/:token/vote/:movieId
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "token is required")
		return
	}

	movieID, err := strconv.ParseInt(r.PathValue("movieId"), 10, 64)
	if err != nil || movieID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "movieId must be a positive integer")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}

	night, movie, user, err := h.coord.CastVote(token, req.Username, movieID)
	if err != nil {
		engineErrorResponse(w, err)
		return
	}

	slog.Info("vote recorded",
		"token", token,
		"movie_id", movie.MovieID,
		"username", user.Username,
		"votes", movie.VoteCount(),
	)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Night: nightResponse(night, h.cfg.BaseURL),
		Movie: movieResponse(movie),
		User:  userResponse(night, user),
	})
}
