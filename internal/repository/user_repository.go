package repository

import (
	"context"

	"fineart/internal/domain/entity"
)

type UserRepository interface {
	// GetByEmail retrieves a user by email. Returns (nil, nil) if not found.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
}
