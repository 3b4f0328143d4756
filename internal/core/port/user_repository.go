package port

import (
	"context"

	"github.com/spyojana/subsidy-portal/internal/core/domain"
)

// UserRepository exposes persistence behavior for admin accounts.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	UpdateEmail(ctx context.Context, id string, email string) error
}
