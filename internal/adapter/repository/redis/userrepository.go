package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/artbay/backend/internal/domain"
	"github.com/artbay/backend/internal/port"
)

const userKeyPrefix = "users:"

// UserRepository reads user documents stored as JSON values under
// users:{id}. It is the document/key-value flavor of the user-record
// gateway.
type UserRepository struct {
	Client *redis.Client
}

func NewUserRepository(client *redis.Client) *UserRepository {
	return &UserRepository{Client: client}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.UserRecord, error) {
	raw, err := r.Client.Get(ctx, userKeyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var rec domain.UserRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("decode user document %s: %w", id, err)
	}
	if rec.ID == "" {
		rec.ID = id
	}
	return &rec, nil
}

// Compile-time interface check.
var _ port.UserRepository = (*UserRepository)(nil)
