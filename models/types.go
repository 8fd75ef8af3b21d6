package models

import (
	"slices"
	"strings"
	"time"
)

// Request types

type CreateNightRequest struct {
	Name            string `json:"name"`
	Date            string `json:"date"` // RFC3339
	MaxProposals    *int   `json:"maxProposals,omitempty"`
	MaxVotesPerUser *int   `json:"maxVotesPerUser,omitempty"`
	Username        string `json:"username,omitempty"` // host auto-joins when set
}

type JoinNightRequest struct {
	Username string `json:"username"`
}

type ProposeMovieRequest struct {
	Movie      MovieInput `json:"movie"`
	ProposedBy string     `json:"proposedBy"`
}

// MovieInput carries catalog metadata as the client sends it. The field
// names follow the TMDB response shape the frontend passes through.
type MovieInput struct {
	TmdbID      int64  `json:"tmdbId"`
	Title       string `json:"title"`
	PosterPath  string `json:"poster_path"`
	Overview    string `json:"overview,omitempty"`
	ReleaseDate string `json:"release_date,omitempty"`
}

type VoteRequest struct {
	Username string `json:"username"`
}

// Response types

type CreateNightResponse struct {
	Night NightResponse `json:"night"`
	User  *UserResponse `json:"user,omitempty"`
}

type JoinNightResponse struct {
	Night NightResponse `json:"night"`
	User  UserResponse  `json:"user"`
}

type ProposeMovieResponse struct {
	Night NightResponse `json:"night"`
	Movie MovieResponse `json:"movie"`
	User  UserResponse  `json:"user"`
}

type VoteResponse struct {
	Night NightResponse `json:"night"`
	Movie MovieResponse `json:"movie"`
	User  UserResponse  `json:"user"`
}

type NightResponse struct {
	Name            string          `json:"name"`
	Token           string          `json:"token"`
	Date            time.Time       `json:"date"`
	MaxProposals    *int            `json:"maxProposals"`
	MaxVotesPerUser *int            `json:"maxVotesPerUser"`
	InviteLink      string          `json:"inviteLink"`
	Movies          []MovieResponse `json:"movies"`
}

type MovieResponse struct {
	ID          int64    `json:"id"` // TMDB id
	Title       string   `json:"title"`
	PosterPath  string   `json:"posterPath"`
	Overview    string   `json:"overview,omitempty"`
	ReleaseDate string   `json:"releaseDate,omitempty"`
	Votes       int      `json:"votes"`
	ProposedBy  string   `json:"proposedBy"`
	VotersList  []string `json:"votersList"`
}

type UserResponse struct {
	Username       string  `json:"username"`
	VotedFor       []int64 `json:"votedFor"`
	VotesRemaining *int    `json:"votesRemaining"` // null when unlimited
}

type UsersResponse struct {
	Users []UserResponse `json:"users"`
}

type TopMovie struct {
	Title          string  `json:"title"`
	Votes          int     `json:"votes"`
	PercentOfUsers float64 `json:"percentOfUsers"`
}

type StatsResponse struct {
	TotalUsers          int        `json:"totalUsers"`
	UsersVoted          int        `json:"usersVoted"`
	TotalVotes          int        `json:"totalVotes"`
	AverageVotesPerUser string     `json:"averageVotesPerUser"`
	PercentUsersVoted   float64    `json:"percentUsersVoted"`
	TopMovies           []TopMovie `json:"topMovies"`
	MaxVotesPerUser     *int       `json:"maxVotesPerUser"`
	MovieNightEndsIn    int64      `json:"movieNightEndsIn"` // seconds, floored at 0
	EndsInText          string     `json:"endsInText"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Domain types
//
// These are owned by the engine and serialized as the store payload, so
// every field must round-trip through JSON.

type Night struct {
	Token           string        `json:"token"`
	Name            string        `json:"name"`
	ScheduledAt     time.Time     `json:"scheduled_at"`
	MaxProposals    *int          `json:"max_proposals,omitempty"`
	MaxVotesPerUser *int          `json:"max_votes_per_user,omitempty"`
	Members         []Participant `json:"members"`
	Proposals       []Proposal    `json:"proposals"`
	NextSeq         int           `json:"next_seq"`
	CreatedAt       time.Time     `json:"created_at"`
}

type Participant struct {
	Username      string    `json:"username"`
	VotedMovieIDs []int64   `json:"voted_movie_ids"`
	JoinedAt      time.Time `json:"joined_at"`
}

type Proposal struct {
	MovieID     int64     `json:"movie_id"` // TMDB id, unique per night
	Title       string    `json:"title"`
	PosterPath  string    `json:"poster_path"`
	Overview    string    `json:"overview,omitempty"`
	ReleaseDate string    `json:"release_date,omitempty"`
	ProposedBy  string    `json:"proposed_by"`
	Voters      []string  `json:"voters"`
	Seq         int       `json:"seq"` // insertion order, tiebreak for ranking
	ProposedAt  time.Time `json:"proposed_at"`
}

// Member returns the participant with the given username, or nil.
func (n *Night) Member(username string) *Participant {
	for i := range n.Members {
		if n.Members[i].Username == username {
			return &n.Members[i]
		}
	}
	return nil
}

// ProposalByMovieID returns the proposal for a TMDB id, or nil.
func (n *Night) ProposalByMovieID(movieID int64) *Proposal {
	for i := range n.Proposals {
		if n.Proposals[i].MovieID == movieID {
			return &n.Proposals[i]
		}
	}
	return nil
}

// ProposalCountBy counts proposals authored by username. The count is
// always derived from Proposals, never stored.
func (n *Night) ProposalCountBy(username string) int {
	count := 0
	for i := range n.Proposals {
		if n.Proposals[i].ProposedBy == username {
			count++
		}
	}
	return count
}

// VotesRemaining returns how many votes the participant has left, or nil
// when the night has no vote limit.
func (n *Night) VotesRemaining(p *Participant) *int {
	if n.MaxVotesPerUser == nil {
		return nil
	}
	remaining := *n.MaxVotesPerUser - len(p.VotedMovieIDs)
	if remaining < 0 {
		remaining = 0
	}
	return &remaining
}

// Clone returns a deep copy. The store hands copies to callers so readers
// never alias engine-owned state.
func (n *Night) Clone() *Night {
	c := *n
	if n.MaxProposals != nil {
		v := *n.MaxProposals
		c.MaxProposals = &v
	}
	if n.MaxVotesPerUser != nil {
		v := *n.MaxVotesPerUser
		c.MaxVotesPerUser = &v
	}
	c.Members = make([]Participant, len(n.Members))
	for i, m := range n.Members {
		c.Members[i] = m
		c.Members[i].VotedMovieIDs = slices.Clone(m.VotedMovieIDs)
	}
	c.Proposals = make([]Proposal, len(n.Proposals))
	for i, p := range n.Proposals {
		c.Proposals[i] = p
		c.Proposals[i].Voters = slices.Clone(p.Voters)
	}
	return &c
}

// HasVoted reports whether the participant already voted for movieID.
func (p *Participant) HasVoted(movieID int64) bool {
	return slices.Contains(p.VotedMovieIDs, movieID)
}

// VoteCount is the number of votes on this proposal, always derived from
// the voter set.
func (p *Proposal) VoteCount() int {
	return len(p.Voters)
}

// HasVoter reports whether username is in the proposal's voter set.
func (p *Proposal) HasVoter(username string) bool {
	return slices.Contains(p.Voters, username)
}

// NormalizeUsername trims surrounding whitespace. Usernames are compared
// case-sensitively after trimming.
func NormalizeUsername(username string) string {
	return strings.TrimSpace(username)
}
