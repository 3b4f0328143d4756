package postgres

import (
	"context"
	"errors"
	"fmt"

	squirrel "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/spyojana/subsidy-portal/internal/core/domain"
	"github.com/spyojana/subsidy-portal/internal/core/port"
	"github.com/spyojana/subsidy-portal/internal/repository"
)

var applicationColumns = []string{
	"id",
	"full_name",
	"father_name",
	"village",
	"district",
	"state",
	"mobile",
	"aadhar_number",
	"status",
	"created_at",
}

// ApplicationRepository implements port.ApplicationRepository using PostgreSQL.
type ApplicationRepository struct {
	exec    pgExecutor
	builder squirrel.StatementBuilderType
}

// NewApplicationRepository constructs a repository backed by any executor that satisfies pgExecutor.
func NewApplicationRepository(exec pgExecutor) *ApplicationRepository {
	return &ApplicationRepository{
		exec:    exec,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new application row.
func (r *ApplicationRepository) Create(ctx context.Context, app domain.Application) error {
	stmt, args, err := r.builder.Insert("applications").
		Columns(applicationColumns...).
		Values(
			app.ID,
			app.FullName,
			app.FatherName,
			app.Village,
			app.District,
			app.State,
			app.Mobile,
			app.AadharNumber,
			app.Status,
			app.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert application sql: %w", err)
	}

	if _, err := r.exec.Exec(ctx, stmt, args...); err != nil {
		return fmt.Errorf("insert application: %w", err)
	}

	return nil
}

// GetByID retrieves an application by identifier.
func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	stmt, args, err := r.builder.
		Select(applicationColumns...).
		From("applications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select application sql: %w", err)
	}

	app, err := scanApplication(r.exec.QueryRow(ctx, stmt, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan application: %w", err)
	}

	return app, nil
}

// List returns all applications ordered by creation time descending.
func (r *ApplicationRepository) List(ctx context.Context) ([]domain.Application, error) {
	stmt, args, err := r.builder.
		Select(applicationColumns...).
		From("applications").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list applications sql: %w", err)
	}

	rows, err := r.exec.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}
	defer rows.Close()

	apps := make([]domain.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, *app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applications: %w", err)
	}

	return apps, nil
}

// UpdateStatus overwrites the status field and returns the updated row.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Application, error) {
	stmt, args, err := r.builder.Update("applications").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(applicationColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update application status sql: %w", err)
	}

	app, err := scanApplication(r.exec.QueryRow(ctx, stmt, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan updated application: %w", err)
	}

	return app, nil
}

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var app domain.Application
	if err := row.Scan(
		&app.ID,
		&app.FullName,
		&app.FatherName,
		&app.Village,
		&app.District,
		&app.State,
		&app.Mobile,
		&app.AadharNumber,
		&app.Status,
		&app.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &app, nil
}

var _ port.ApplicationRepository = (*ApplicationRepository)(nil)
