// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package engine is the movie night coordination core: membership, proposals,
voting, and ranking for a session shared by many concurrent clients.

# Coordinator

All writes go through the Coordinator facade:

	store := engine.NewStore(engine.NewMemoryBackend())
	coord := engine.NewCoordinator(store)

	night, host, err := coord.CreateNight("Friday", at, nil, &two, "alice")
	night, user, err := coord.JoinNight(night.Token, "bob")
	night, movie, user, err := coord.ProposeMovie(night.Token, "bob", input)
	night, movie, user, err := coord.CastVote(night.Token, "alice", movieID)

Reads (GetNight, GetStats) bypass the managers and hit the store directly.

# Invariants

After every operation:

  - a movie id appears at most once per night
  - a user's vote count never exceeds the night's vote limit
  - a user's proposal count never exceeds the proposal limit
  - a proposal's vote count equals the size of its voter set
  - proposals are ordered by votes descending, earliest proposal first on
    ties

Proposing a movie auto-votes the proposer, but that self-vote is subject
to the same quota as an explicit vote; with no votes left the proposal is
created at zero votes.

Proposing an already-proposed movie fails with ErrAlreadyProposed instead
of quietly becoming a vote. The frontend does that merge; the engine keeps
the two operations distinct so the duplicate is visible.

# Concurrency

The Store serializes mutations per token with a keyed mutex: check-then-act
sequences (limit checks, duplicate checks) cannot interleave for the same
night, while different nights proceed in parallel. A mutation either
commits in full or leaves the night untouched. Reads return deep copies
and never observe a half-applied write.

# Persistence

The Store talks to a Backend (get/insert/put by token). MemoryBackend
lives here; db.Store provides the SQL-backed one.
*/
package engine
