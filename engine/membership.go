// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"fmt"
	"time"

	"github.com/danielhkuo/movie-night/models"
)

// join adds a participant to the night, or returns the existing one.
// Joining again with the same username is idempotent, never an error: the
// frontend re-joins whenever a stored username is found in the browser.
func join(night *models.Night, username string) (*models.Participant, error) {
	username = models.NormalizeUsername(username)
	if username == "" {
		return nil, fmt.Errorf("username is required: %w", ErrInvalidInput)
	}

	if existing := night.Member(username); existing != nil {
		return existing, nil
	}

	night.Members = append(night.Members, models.Participant{
		Username:      username,
		VotedMovieIDs: []int64{},
		JoinedAt:      time.Now().UTC(),
	})
	return &night.Members[len(night.Members)-1], nil
}

// member resolves an existing participant or fails with ErrNotAMember.
// Mutating operations other than join require prior membership.
func member(night *models.Night, username string) (*models.Participant, error) {
	username = models.NormalizeUsername(username)
	if username == "" {
		return nil, fmt.Errorf("username is required: %w", ErrInvalidInput)
	}

	p := night.Member(username)
	if p == nil {
		return nil, fmt.Errorf("user %q: %w", username, ErrNotAMember)
	}
	return p, nil
}
