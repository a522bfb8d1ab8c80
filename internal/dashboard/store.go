package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	stateKeyPrefix = "dash:state:" // dash:state:{owner_uid}
	stateTTL       = 7 * 24 * time.Hour
)

// Store persists one dashboard State per owner in redis, so the
// reconciliation component stays the sole owner of selection and wizard
// state across requests.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client, ttl: stateTTL}
}

func stateKey(ownerUID string) string {
	return stateKeyPrefix + ownerUID
}

// Load returns the owner's saved state, or a fresh one when none exists.
func (s *Store) Load(ctx context.Context, ownerUID string) (*State, error) {
	data, err := s.client.Get(ctx, stateKey(ownerUID)).Result()
	if errors.Is(err, redis.Nil) {
		return NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load dashboard state: %w", err)
	}

	var st State
	if err := json.Unmarshal([]byte(data), &st); err != nil {
		// A corrupt blob should not wedge the dashboard.
		return NewState(), nil
	}
	return &st, nil
}

func (s *Store) Save(ctx context.Context, ownerUID string, st *State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal dashboard state: %w", err)
	}
	if err := s.client.Set(ctx, stateKey(ownerUID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save dashboard state: %w", err)
	}
	return nil
}
