// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Movie Night API.

# Handler Types

Each handler is a struct holding the engine coordinator and config:

  - NightHandler: create, join, get, and member listing
  - ProposalHandler: movie proposals
  - VotingHandler: vote casting
  - StatsHandler: participation stats

Handlers are created via constructor functions:

	nightHandler := handlers.NewNightHandler(coord, cfg)

# Session Flow

A night is identified by its 5-character token:

	POST /nights                         → CreateNight (returns token + invite link)
	POST /nights/{token}/join            → JoinNight (idempotent per username)
	GET  /nights/{token}[?username=...]  → GetNight
	POST /nights/{token}/propose         → ProposeMovie (auto-votes proposer)
	POST /nights/{token}/vote/{movieId}  → CastVote
	GET  /nights/{token}/users           → GetUsers
	GET  /nights/{token}/stats           → GetStats

# Error Mapping

Engine errors translate to statuses in engineErrorResponse:

	InvalidInput            → 400
	NotFound (token, movie) → 404
	NotAMember              → 403
	AlreadyProposed         → 409
	AlreadyVoted            → 409
	ProposalLimitExceeded   → 409
	VoteLimitExceeded       → 409

All handler logic is translation: parse, call the coordinator, render. The
session rules live in the engine package.
*/
package handlers
