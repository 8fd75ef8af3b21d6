// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/danielhkuo/movie-night/models"
	"github.com/danielhkuo/movie-night/token"
)

// maxCreateAttempts bounds token regeneration on collision.
const maxCreateAttempts = 5

// Backend is the persistence contract the store needs: get-by-token,
// insert-if-absent, and upsert. A SQL table and an in-memory map both
// satisfy it. Implementations must return data that the caller may mutate
// freely (copies, or freshly decoded rows).
type Backend interface {
	// Get returns the night for a token, or ErrNotFound.
	Get(token string) (*models.Night, error)
	// Insert stores a new night, or returns ErrTokenCollision if the
	// token is already taken.
	Insert(night *models.Night) error
	// Put overwrites the night for its token.
	Put(night *models.Night) error
}

// Store owns concurrency control for nights. Mutations on the same token
// are serialized through a per-token mutex so check-then-act sequences in
// the managers are race-free; operations on different tokens proceed in
// parallel. Reads go straight to the backend and see either the pre- or
// post-mutation state, never a partial one.
type Store struct {
	backend Backend

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore(backend Backend) *Store {
	return &Store{
		backend: backend,
		locks:   make(map[string]*sync.Mutex),
	}
}

// lockFor returns the mutex guarding mutations for a token, creating it on
// first use. Locks are never removed; nights are short-lived and few.
func (s *Store) lockFor(tok string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[tok]
	if !ok {
		l = &sync.Mutex{}
		s.locks[tok] = l
	}
	return l
}

// Create generates a token, initializes an empty night, and persists it.
// On token collision it regenerates, up to maxCreateAttempts.
func (s *Store) Create(name string, scheduledAt time.Time, maxProposals, maxVotesPerUser *int) (*models.Night, error) {
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		tok, err := token.Generate()
		if err != nil {
			return nil, err
		}

		night := &models.Night{
			Token:           tok,
			Name:            name,
			ScheduledAt:     scheduledAt,
			MaxProposals:    maxProposals,
			MaxVotesPerUser: maxVotesPerUser,
			Members:         []models.Participant{},
			Proposals:       []models.Proposal{},
			CreatedAt:       time.Now().UTC(),
		}

		err = s.backend.Insert(night)
		if errors.Is(err, ErrTokenCollision) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return night, nil
	}

	return nil, fmt.Errorf("could not allocate a unique token after %d attempts: %w", maxCreateAttempts, ErrTokenCollision)
}

// Get returns a snapshot of the night. Callers own the returned value.
// Tokens that could never have been generated skip the backend entirely.
func (s *Store) Get(tok string) (*models.Night, error) {
	if !token.Valid(tok) {
		return nil, fmt.Errorf("night %q: %w", tok, ErrNotFound)
	}
	return s.backend.Get(tok)
}

// Mutate applies fn to the night under the token's exclusive lock and
// persists the result. If fn returns an error nothing is written and the
// stored night is unchanged. On success the committed snapshot is
// returned.
func (s *Store) Mutate(tok string, fn func(*models.Night) error) (*models.Night, error) {
	if !token.Valid(tok) {
		return nil, fmt.Errorf("night %q: %w", tok, ErrNotFound)
	}

	l := s.lockFor(tok)
	l.Lock()
	defer l.Unlock()

	night, err := s.backend.Get(tok)
	if err != nil {
		return nil, err
	}

	if err := fn(night); err != nil {
		return nil, err
	}

	if err := s.backend.Put(night); err != nil {
		return nil, err
	}

	return night, nil
}

// MemoryBackend keeps nights in a map. It satisfies the Backend contract
// on its own and is the default for development and tests.
type MemoryBackend struct {
	mu     sync.RWMutex
	nights map[string]*models.Night
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{nights: make(map[string]*models.Night)}
}

func (b *MemoryBackend) Get(tok string) (*models.Night, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	night, ok := b.nights[tok]
	if !ok {
		return nil, fmt.Errorf("night %q: %w", tok, ErrNotFound)
	}
	return night.Clone(), nil
}

func (b *MemoryBackend) Insert(night *models.Night) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.nights[night.Token]; ok {
		return ErrTokenCollision
	}
	b.nights[night.Token] = night.Clone()
	return nil
}

func (b *MemoryBackend) Put(night *models.Night) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nights[night.Token] = night.Clone()
	return nil
}
