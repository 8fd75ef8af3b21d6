// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/movie-night/cliparse"
	"github.com/danielhkuo/movie-night/engine"
	"github.com/danielhkuo/movie-night/middleware"
	"github.com/danielhkuo/movie-night/models"
)

type StatsHandler struct {
	coord *engine.Coordinator
	cfg   cliparse.Config
}

func NewStatsHandler(coord *engine.Coordinator, cfg cliparse.Config) *StatsHandler {
	return &StatsHandler{coord: coord, cfg: cfg}
}

// GetStats handles GET /nights/:token/stats
// Read-only projection over the current snapshot; never mutates.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "token is required")
		return
	}

	stats, err := h.coord.GetStats(token)
	if err != nil {
		engineErrorResponse(w, err)
		return
	}

	topMovies := make([]models.TopMovie, 0, len(stats.TopMovies))
	for _, m := range stats.TopMovies {
		topMovies = append(topMovies, models.TopMovie{
			Title:          m.Title,
			Votes:          m.Votes,
			PercentOfUsers: m.PercentOfUsers,
		})
	}

	endsInText := "already started"
	if stats.EndsIn > 0 {
		endsInText = humanize.Time(time.Now().Add(stats.EndsIn))
	}

	middleware.JSONResponse(w, http.StatusOK, models.StatsResponse{
		TotalUsers:          stats.TotalUsers,
		UsersVoted:          stats.UsersVoted,
		TotalVotes:          stats.TotalVotes,
		AverageVotesPerUser: fmt.Sprintf("%.2f", stats.AverageVotesPerUser),
		PercentUsersVoted:   stats.PercentUsersVoted,
		TopMovies:           topMovies,
		MaxVotesPerUser:     stats.MaxVotesPerUser,
		MovieNightEndsIn:    int64(stats.EndsIn / time.Second),
		EndsInText:          endsInText,
	})
}
