package usecase

import (
	"context"
	"errors"
	"sort"

	"github.com/spyojana/subsidy-portal/internal/core/domain"
	"github.com/spyojana/subsidy-portal/internal/repository"
)

type stubUserRepo struct {
	users      map[string]domain.User
	updateErr  error
	lookupErr  error
	lastHash   string
	lastEmail  string
	updatedIDs []string
}

func newStubUserRepo(users ...domain.User) *stubUserRepo {
	repo := &stubUserRepo{users: make(map[string]domain.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *stubUserRepo) Create(_ context.Context, user domain.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	if user, ok := r.users[id]; ok {
		copy := user
		return &copy, nil
	}
	return nil, repository.ErrNotFound
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	for _, user := range r.users {
		if user.Email == email {
			copy := user
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id string, passwordHash string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	user, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	user.PasswordHash = passwordHash
	r.users[id] = user
	r.lastHash = passwordHash
	r.updatedIDs = append(r.updatedIDs, id)
	return nil
}

func (r *stubUserRepo) UpdateEmail(_ context.Context, id string, email string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	user, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	for otherID, other := range r.users {
		if otherID != id && other.Email == email {
			return repository.ErrDuplicateEmail
		}
	}
	user.Email = email
	r.users[id] = user
	r.lastEmail = email
	r.updatedIDs = append(r.updatedIDs, id)
	return nil
}

type stubApplicationRepo struct {
	apps      map[string]domain.Application
	createErr error
}

func newStubApplicationRepo() *stubApplicationRepo {
	return &stubApplicationRepo{apps: make(map[string]domain.Application)}
}

func (r *stubApplicationRepo) Create(_ context.Context, app domain.Application) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.apps[app.ID] = app
	return nil
}

func (r *stubApplicationRepo) GetByID(_ context.Context, id string) (*domain.Application, error) {
	if app, ok := r.apps[id]; ok {
		copy := app
		return &copy, nil
	}
	return nil, repository.ErrNotFound
}

func (r *stubApplicationRepo) List(_ context.Context) ([]domain.Application, error) {
	apps := make([]domain.Application, 0, len(r.apps))
	for _, app := range r.apps {
		apps = append(apps, app)
	}
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].CreatedAt.After(apps[j].CreatedAt)
	})
	return apps, nil
}

func (r *stubApplicationRepo) UpdateStatus(_ context.Context, id string, status domain.Status) (*domain.Application, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	app.Status = status
	r.apps[id] = app
	return &app, nil
}

type stubPumpRepo struct {
	apps      map[string]domain.PumpApplication
	createErr error
}

func newStubPumpRepo() *stubPumpRepo {
	return &stubPumpRepo{apps: make(map[string]domain.PumpApplication)}
}

func (r *stubPumpRepo) Create(_ context.Context, app domain.PumpApplication) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.apps[app.ID] = app
	return nil
}

func (r *stubPumpRepo) GetByID(_ context.Context, id string) (*domain.PumpApplication, error) {
	if app, ok := r.apps[id]; ok {
		copy := app
		return &copy, nil
	}
	return nil, repository.ErrNotFound
}

func (r *stubPumpRepo) List(_ context.Context) ([]domain.PumpApplication, error) {
	apps := make([]domain.PumpApplication, 0, len(r.apps))
	for _, app := range r.apps {
		apps = append(apps, app)
	}
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].CreatedAt.After(apps[j].CreatedAt)
	})
	return apps, nil
}

func (r *stubPumpRepo) UpdateStatus(_ context.Context, id string, status domain.Status) (*domain.PumpApplication, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	app.Status = status
	r.apps[id] = app
	return &app, nil
}

var errStorageDown = errors.New("storage unavailable")
