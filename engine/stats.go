// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"time"

	"github.com/danielhkuo/movie-night/models"
)

// topMoviesLimit caps the ranked excerpt in stats.
const topMoviesLimit = 5

// Stats is a read-only projection over one night's snapshot.
type Stats struct {
	TotalUsers          int
	UsersVoted          int
	TotalVotes          int
	AverageVotesPerUser float64
	PercentUsersVoted   float64
	TopMovies           []TopMovie
	MaxVotesPerUser     *int
	EndsIn              time.Duration // zero once the night has started
	ScheduledAt         time.Time
}

type TopMovie struct {
	Title          string
	Votes          int
	PercentOfUsers float64
}

// computeStats derives participation figures from a snapshot. Proposals
// are already in ranked order, so the top movies are a prefix.
func computeStats(night *models.Night, now time.Time) *Stats {
	stats := &Stats{
		TotalUsers:      len(night.Members),
		MaxVotesPerUser: night.MaxVotesPerUser,
		ScheduledAt:     night.ScheduledAt,
	}

	for i := range night.Members {
		votes := len(night.Members[i].VotedMovieIDs)
		stats.TotalVotes += votes
		if votes > 0 {
			stats.UsersVoted++
		}
	}

	if stats.TotalUsers > 0 {
		stats.AverageVotesPerUser = float64(stats.TotalVotes) / float64(stats.TotalUsers)
		stats.PercentUsersVoted = float64(stats.UsersVoted) / float64(stats.TotalUsers) * 100
	}

	for i := range night.Proposals {
		if i >= topMoviesLimit {
			break
		}
		p := &night.Proposals[i]
		top := TopMovie{
			Title: p.Title,
			Votes: p.VoteCount(),
		}
		if stats.TotalUsers > 0 {
			top.PercentOfUsers = float64(p.VoteCount()) / float64(stats.TotalUsers) * 100
		}
		stats.TopMovies = append(stats.TopMovies, top)
	}

	if night.ScheduledAt.After(now) {
		stats.EndsIn = night.ScheduledAt.Sub(now)
	}

	return stats
}
