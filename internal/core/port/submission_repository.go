package port

import (
	"context"

	"github.com/spyojana/subsidy-portal/internal/core/domain"
)

// ApplicationRepository exposes persistence behavior for land-pump applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	List(ctx context.Context) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Application, error)
}

// PumpApplicationRepository exposes persistence behavior for submersible pump
// applications. The two submission types are independent aggregates, so the
// interfaces stay separate even though their shapes rhyme.
type PumpApplicationRepository interface {
	Create(ctx context.Context, app domain.PumpApplication) error
	GetByID(ctx context.Context, id string) (*domain.PumpApplication, error)
	List(ctx context.Context) ([]domain.PumpApplication, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.PumpApplication, error)
}
