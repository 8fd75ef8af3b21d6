// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateNightRequest: name, date, maxProposals, maxVotesPerUser, username
  - JoinNightRequest: username
  - ProposeMovieRequest: movie (MovieInput), proposedBy
  - VoteRequest: username

# Response Types

Types for JSON responses:

  - CreateNightResponse: night, user
  - JoinNightResponse: night, user
  - ProposeMovieResponse: night, movie, user
  - VoteResponse: night, movie, user
  - UsersResponse: users
  - StatsResponse: vote participation summary and top movies
  - ErrorResponse: error, message

Response field names (tmdbId as "id", posterPath, votersList, votedFor,
votesRemaining) match what the Next.js frontend expects.

# Domain Types

Internal data structures owned by the engine:

  - Night: one movie night, keyed by token
  - Participant: a joined user and the movie ids they voted for
  - Proposal: a candidate movie with its voter set

Vote counts and per-user proposal counts are always derived (len(Voters),
ProposalCountBy) and never stored, so they cannot drift.

Domain types carry JSON tags because the session store persists a night as
a single JSON document.
*/
package models
