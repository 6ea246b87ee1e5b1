package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artbay/backend/internal/domain"
	"github.com/artbay/backend/internal/port"
)

// UserRepository reads user records from Postgres.
type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: pool}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.UserRecord, error) {
	var rec domain.UserRecord
	var token *string
	err := r.DB.QueryRow(ctx, "SELECT id, fcm_token FROM users WHERE id = $1", id).Scan(&rec.ID, &token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if token != nil {
		rec.FCMToken = *token
	}
	return &rec, nil
}

// Compile-time interface check.
var _ port.UserRepository = (*UserRepository)(nil)
