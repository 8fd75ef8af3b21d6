// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import "errors"

// Domain errors. Handlers map these to HTTP status codes with errors.Is;
// the engine itself knows nothing about transports. Limit and duplicate
// errors are routine outcomes, not failures of the engine.
var (
	ErrNotFound              = errors.New("not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotAMember            = errors.New("not a member of this movie night")
	ErrAlreadyProposed       = errors.New("movie already proposed")
	ErrAlreadyVoted          = errors.New("already voted for this movie")
	ErrProposalLimitExceeded = errors.New("proposal limit reached")
	ErrVoteLimitExceeded     = errors.New("vote limit reached")

	// ErrTokenCollision is internal: Create retries token generation and
	// never surfaces it unless retries are exhausted.
	ErrTokenCollision = errors.New("token already in use")
)
