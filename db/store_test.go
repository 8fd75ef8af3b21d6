package db

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/movie-night/engine"
	"github.com/danielhkuo/movie-night/models"
)

// setupTestDB opens a throwaway SQLite database with the schema applied.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

func testNight(token string) *models.Night {
	return &models.Night{
		Token:       token,
		Name:        "Test Night",
		ScheduledAt: time.Now().Add(48 * time.Hour).UTC(),
		Members:     []models.Participant{},
		Proposals:   []models.Proposal{},
		CreatedAt:   time.Now().UTC(),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(setupTestDB(t))

	night := testNight("abc12")
	night.Members = append(night.Members, models.Participant{
		Username:      "alice",
		VotedMovieIDs: []int64{550},
		JoinedAt:      time.Now().UTC(),
	})
	night.Proposals = append(night.Proposals, models.Proposal{
		MovieID:    550,
		Title:      "Fight Club",
		ProposedBy: "alice",
		Voters:     []string{"alice"},
		ProposedAt: time.Now().UTC(),
	})

	if err := store.Insert(night); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := store.Get("abc12")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "Test Night" {
		t.Errorf("Expected name round-trip, got %q", got.Name)
	}
	if len(got.Members) != 1 || got.Members[0].Username != "alice" {
		t.Errorf("Members did not round-trip: %+v", got.Members)
	}
	if len(got.Proposals) != 1 || got.Proposals[0].MovieID != 550 {
		t.Errorf("Proposals did not round-trip: %+v", got.Proposals)
	}
	if got.Proposals[0].VoteCount() != 1 {
		t.Errorf("Voter set did not round-trip: %+v", got.Proposals[0])
	}
}

func TestStoreGetNotFound(t *testing.T) {
	store := NewStore(setupTestDB(t))

	_, err := store.Get("zzzzz")
	if !errors.Is(err, engine.ErrNotFound) {
		t.Errorf("Expected engine.ErrNotFound, got %v", err)
	}
}

func TestStoreInsertCollision(t *testing.T) {
	store := NewStore(setupTestDB(t))

	if err := store.Insert(testNight("dup11")); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}

	second := testNight("dup11")
	second.Name = "Impostor"
	if err := store.Insert(second); !errors.Is(err, engine.ErrTokenCollision) {
		t.Fatalf("Expected engine.ErrTokenCollision, got %v", err)
	}

	got, _ := store.Get("dup11")
	if got.Name != "Test Night" {
		t.Errorf("Rejected insert overwrote the original: %q", got.Name)
	}
}

func TestStorePutUpserts(t *testing.T) {
	store := NewStore(setupTestDB(t))

	night := testNight("put01")
	if err := store.Insert(night); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	night.Members = append(night.Members, models.Participant{Username: "bob", VotedMovieIDs: []int64{}})
	if err := store.Put(night); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, _ := store.Get("put01")
	if len(got.Members) != 1 || got.Members[0].Username != "bob" {
		t.Errorf("Put did not overwrite payload: %+v", got.Members)
	}

	// Put with an unknown token inserts rather than failing; the engine
	// only calls it for tokens it just read.
	fresh := testNight("put02")
	if err := store.Put(fresh); err != nil {
		t.Fatalf("Put of new token failed: %v", err)
	}
	if _, err := store.Get("put02"); err != nil {
		t.Errorf("Expected put02 to be stored, got %v", err)
	}
}

// The engine store composed with the SQL backend behaves the same as with
// the memory backend.
func TestEngineWithSQLBackend(t *testing.T) {
	store := engine.NewStore(NewStore(setupTestDB(t)))
	coord := engine.NewCoordinator(store)

	two := 2
	night, host, err := coord.CreateNight("Friday", time.Now().Add(24*time.Hour), nil, &two, "alice")
	if err != nil {
		t.Fatalf("CreateNight failed: %v", err)
	}
	if host == nil || host.Username != "alice" {
		t.Fatalf("Expected host alice, got %+v", host)
	}

	if _, _, _, err := coord.ProposeMovie(night.Token, "alice", models.MovieInput{TmdbID: 1, Title: "A"}); err != nil {
		t.Fatalf("ProposeMovie failed: %v", err)
	}

	snapshot, err := coord.GetNight(night.Token)
	if err != nil {
		t.Fatalf("GetNight failed: %v", err)
	}
	if len(snapshot.Proposals) != 1 || snapshot.Proposals[0].VoteCount() != 1 {
		t.Errorf("Expected persisted proposal with auto-vote, got %+v", snapshot.Proposals)
	}
}
