// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"fmt"
	"time"

	"github.com/danielhkuo/movie-night/models"
)

// Coordinator is the externally callable surface of the engine. Transports
// (HTTP today) call these six operations and render the results; nothing
// else mutates nights.
type Coordinator struct {
	store *Store
}

func NewCoordinator(store *Store) *Coordinator {
	return &Coordinator{store: store}
}

// CreateNight creates a session and, when hostUsername is non-empty, joins
// the host in the same step. The returned participant is nil for an
// anonymous create.
func (c *Coordinator) CreateNight(name string, scheduledAt time.Time, maxProposals, maxVotesPerUser *int, hostUsername string) (*models.Night, *models.Participant, error) {
	name = models.NormalizeUsername(name)
	if name == "" {
		return nil, nil, fmt.Errorf("name is required: %w", ErrInvalidInput)
	}
	if maxProposals != nil && *maxProposals <= 0 {
		return nil, nil, fmt.Errorf("maxProposals must be positive: %w", ErrInvalidInput)
	}
	if maxVotesPerUser != nil && *maxVotesPerUser <= 0 {
		return nil, nil, fmt.Errorf("maxVotesPerUser must be positive: %w", ErrInvalidInput)
	}

	night, err := c.store.Create(name, scheduledAt, maxProposals, maxVotesPerUser)
	if err != nil {
		return nil, nil, err
	}

	if models.NormalizeUsername(hostUsername) == "" {
		return night, nil, nil
	}

	night, err = c.store.Mutate(night.Token, func(n *models.Night) error {
		_, err := join(n, hostUsername)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return night, night.Member(models.NormalizeUsername(hostUsername)), nil
}

// JoinNight adds a participant, idempotently.
func (c *Coordinator) JoinNight(token, username string) (*models.Night, *models.Participant, error) {
	night, err := c.store.Mutate(token, func(n *models.Night) error {
		_, err := join(n, username)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return night, night.Member(models.NormalizeUsername(username)), nil
}

// ProposeMovie adds a candidate movie, auto-voting the proposer when their
// quota allows.
func (c *Coordinator) ProposeMovie(token, username string, movie models.MovieInput) (*models.Night, *models.Proposal, *models.Participant, error) {
	night, err := c.store.Mutate(token, func(n *models.Night) error {
		_, err := propose(n, username, movie)
		return err
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return night, night.ProposalByMovieID(movie.TmdbID), night.Member(models.NormalizeUsername(username)), nil
}

// CastVote records a vote for an existing proposal.
func (c *Coordinator) CastVote(token, username string, movieID int64) (*models.Night, *models.Proposal, *models.Participant, error) {
	night, err := c.store.Mutate(token, func(n *models.Night) error {
		_, err := vote(n, username, movieID)
		return err
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return night, night.ProposalByMovieID(movieID), night.Member(models.NormalizeUsername(username)), nil
}

// GetNight returns a read snapshot. The caller decides whether to expose
// per-user state from it; only the member matching an authenticated-ish
// username query should be surfaced.
func (c *Coordinator) GetNight(token string) (*models.Night, error) {
	return c.store.Get(token)
}

// GetStats computes participation stats over the current snapshot.
func (c *Coordinator) GetStats(token string) (*Stats, error) {
	night, err := c.store.Get(token)
	if err != nil {
		return nil, err
	}
	return computeStats(night, time.Now()), nil
}
