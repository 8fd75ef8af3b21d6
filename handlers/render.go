// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/movie-night/engine"
	"github.com/danielhkuo/movie-night/middleware"
	"github.com/danielhkuo/movie-night/models"
)

// inviteLink builds the shareable frontend URL for a night.
func inviteLink(baseURL, token string) string {
	return baseURL + "/night/" + token
}

// nightResponse renders the public view of a night. Proposals come out of
// the engine already in ranked order.
func nightResponse(night *models.Night, baseURL string) models.NightResponse {
	movies := make([]models.MovieResponse, 0, len(night.Proposals))
	for i := range night.Proposals {
		movies = append(movies, movieResponse(&night.Proposals[i]))
	}

	return models.NightResponse{
		Name:            night.Name,
		Token:           night.Token,
		Date:            night.ScheduledAt,
		MaxProposals:    night.MaxProposals,
		MaxVotesPerUser: night.MaxVotesPerUser,
		InviteLink:      inviteLink(baseURL, night.Token),
		Movies:          movies,
	}
}

func movieResponse(p *models.Proposal) models.MovieResponse {
	voters := p.Voters
	if voters == nil {
		voters = []string{}
	}
	return models.MovieResponse{
		ID:          p.MovieID,
		Title:       p.Title,
		PosterPath:  p.PosterPath,
		Overview:    p.Overview,
		ReleaseDate: p.ReleaseDate,
		Votes:       p.VoteCount(),
		ProposedBy:  p.ProposedBy,
		VotersList:  voters,
	}
}

func userResponse(night *models.Night, p *models.Participant) models.UserResponse {
	votedFor := p.VotedMovieIDs
	if votedFor == nil {
		votedFor = []int64{}
	}
	return models.UserResponse{
		Username:       p.Username,
		VotedFor:       votedFor,
		VotesRemaining: night.VotesRemaining(p),
	}
}

// engineErrorResponse maps engine errors to HTTP statuses. Duplicate and
// limit conditions are 409: the request was well-formed, the session state
// just doesn't allow it.
func engineErrorResponse(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrInvalidInput):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, engine.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, engine.ErrNotAMember):
		middleware.ErrorResponse(w, http.StatusForbidden, err.Error())
	case errors.Is(err, engine.ErrAlreadyProposed),
		errors.Is(err, engine.ErrAlreadyVoted),
		errors.Is(err, engine.ErrProposalLimitExceeded),
		errors.Is(err, engine.ErrVoteLimitExceeded):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	default:
		slog.Error("engine operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
