// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"fmt"
	"time"

	"github.com/danielhkuo/movie-night/models"
)

// propose adds a candidate movie to the night.
//
// A movie already on the board is rejected with ErrAlreadyProposed rather
// than converted into a vote; the caller decides whether to retry as a
// vote. The proposer is auto-voted onto their own proposal, subject to the
// same vote limit as an explicit vote: with no quota left the proposal is
// still created, it just starts at zero votes.
func propose(night *models.Night, username string, movie models.MovieInput) (*models.Proposal, error) {
	p, err := member(night, username)
	if err != nil {
		return nil, err
	}

	if movie.TmdbID <= 0 {
		return nil, fmt.Errorf("movie id is required: %w", ErrInvalidInput)
	}
	if movie.Title == "" {
		return nil, fmt.Errorf("movie title is required: %w", ErrInvalidInput)
	}

	if night.ProposalByMovieID(movie.TmdbID) != nil {
		return nil, fmt.Errorf("movie %d: %w", movie.TmdbID, ErrAlreadyProposed)
	}

	if night.MaxProposals != nil && night.ProposalCountBy(p.Username) >= *night.MaxProposals {
		return nil, fmt.Errorf("limit of %d proposals per user: %w", *night.MaxProposals, ErrProposalLimitExceeded)
	}

	proposal := models.Proposal{
		MovieID:     movie.TmdbID,
		Title:       movie.Title,
		PosterPath:  movie.PosterPath,
		Overview:    movie.Overview,
		ReleaseDate: movie.ReleaseDate,
		ProposedBy:  p.Username,
		Voters:      []string{},
		Seq:         night.NextSeq,
		ProposedAt:  time.Now().UTC(),
	}
	night.NextSeq++

	// Self-vote only if quota allows; skipping it is not an error.
	if night.MaxVotesPerUser == nil || len(p.VotedMovieIDs) < *night.MaxVotesPerUser {
		proposal.Voters = append(proposal.Voters, p.Username)
		p.VotedMovieIDs = append(p.VotedMovieIDs, movie.TmdbID)
	}

	night.Proposals = append(night.Proposals, proposal)
	rank(night)

	return night.ProposalByMovieID(movie.TmdbID), nil
}
