// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/engine"
	"github.com/danielhkuo/movie-night/middleware"
	"github.com/danielhkuo/movie-night/models"
)

type ProposalHandler struct {
	coord *engine.Coordinator
	cfg   cliparse.Config
}

func NewProposalHandler(coord *engine.Coordinator, cfg cliparse.Config) *ProposalHandler {
	return &ProposalHandler{coord: coord, cfg: cfg}
}

// ProposeMovie handles POST /nights/:token/propose
//
// A duplicate movie returns 409; the frontend turns that into a vote call.
// The server never merges the two operations itself.
func (h *ProposalHandler) ProposeMovie(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "token is required")
		return
	}

	var req models.ProposeMovieRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ProposedBy == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "proposedBy is required")
		return
	}

	night, movie, user, err := h.coord.ProposeMovie(token, req.ProposedBy, req.Movie)
	if err != nil {
		engineErrorResponse(w, err)
		return
	}

	slog.Info("movie proposed",
		"token", token,
		"movie_id", movie.MovieID,
		"title", movie.Title,
		"proposed_by", user.Username,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.ProposeMovieResponse{
		Night: nightResponse(night, h.cfg.BaseURL),
		Movie: movieResponse(movie),
		User:  userResponse(night, user),
	})
}
