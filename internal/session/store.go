// README: Session store backed by Redis, holds the itinerary document per session.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ldecaneva/NomadDay/internal/trip"
)

const keyPrefix = "session:%s"

var ErrNotFound = errors.New("session not found")

// State is everything a later chat turn needs to pick up where the
// generation left off.
type State struct {
	Document string    `json:"document"`
	Form     trip.Form `json:"form"`
	Created  time.Time `json:"created"`
}

type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStore(redis *redis.Client, ttl time.Duration) *Store {
	return &Store{redis: redis, ttl: ttl}
}

// Create stores a fresh session and returns its generated ID.
func (s *Store) Create(ctx context.Context, state State) (string, error) {
	id := uuid.NewString()
	if err := s.set(ctx, id, state); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Get(ctx context.Context, id string) (State, error) {
	val, err := s.redis.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return State{}, ErrNotFound
	}
	if err != nil {
		return State{}, err
	}
	var state State
	if err := json.Unmarshal([]byte(val), &state); err != nil {
		return State{}, err
	}
	return state, nil
}

// Replace overwrites an existing session's state and refreshes its TTL.
func (s *Store) Replace(ctx context.Context, id string, state State) error {
	return s.set(ctx, id, state)
}

func (s *Store) set(ctx context.Context, id string, state State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, sessionKey(id), payload, s.ttl).Err()
}

func sessionKey(id string) string {
	return fmt.Sprintf(keyPrefix, id)
}
