package port

import (
	"context"

	"github.com/artbay/backend/internal/domain"
)

// UserRepository defines read access to user records. FindByID returns
// (nil, nil) when no record exists; absence is not an error.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.UserRecord, error)
}
