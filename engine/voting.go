// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"fmt"
	"sort"

	"github.com/danielhkuo/movie-night/models"
)

// vote records a vote by an existing member for an existing proposal.
// Votes are not retractable: voting twice for the same movie fails with
// ErrAlreadyVoted.
func vote(night *models.Night, username string, movieID int64) (*models.Proposal, error) {
	p, err := member(night, username)
	if err != nil {
		return nil, err
	}

	proposal := night.ProposalByMovieID(movieID)
	if proposal == nil {
		return nil, fmt.Errorf("movie %d: %w", movieID, ErrNotFound)
	}

	if proposal.HasVoter(p.Username) {
		return nil, fmt.Errorf("movie %d: %w", movieID, ErrAlreadyVoted)
	}

	if night.MaxVotesPerUser != nil && len(p.VotedMovieIDs) >= *night.MaxVotesPerUser {
		return nil, fmt.Errorf("limit of %d votes per user: %w", *night.MaxVotesPerUser, ErrVoteLimitExceeded)
	}

	proposal.Voters = append(proposal.Voters, p.Username)
	p.VotedMovieIDs = append(p.VotedMovieIDs, movieID)
	rank(night)

	return night.ProposalByMovieID(movieID), nil
}

// rank orders proposals by vote count descending, with the original
// proposal order (Seq) breaking ties. Every mutation re-ranks, so reads
// always see the board in ranked order.
func rank(night *models.Night) {
	sort.Slice(night.Proposals, func(i, j int) bool {
		a, b := &night.Proposals[i], &night.Proposals[j]
		if a.VoteCount() != b.VoteCount() {
			return a.VoteCount() > b.VoteCount()
		}
		return a.Seq < b.Seq
	})
}
