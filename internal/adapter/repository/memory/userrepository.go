// Package memory provides an in-memory implementation of the
// user-record gateway for tests and local runs.
package memory

import (
	"context"
	"sync"

	"github.com/artbay/backend/internal/domain"
	"github.com/artbay/backend/internal/port"
)

type UserRepositoryStub struct {
	mu   sync.RWMutex
	data map[string]*domain.UserRecord
}

func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		data: make(map[string]*domain.UserRecord),
	}
}

// Put stores or replaces a user record.
func (r *UserRepositoryStub) Put(rec *domain.UserRecord) {
	if rec == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[rec.ID] = rec
}

func (r *UserRepositoryStub) FindByID(ctx context.Context, id string) (*domain.UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.data[id]
	if !ok {
		return nil, nil
	}
	out := *rec
	return &out, nil
}

var _ port.UserRepository = (*UserRepositoryStub)(nil)
