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

var pumpApplicationColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"address",
	"city",
	"pin",
	"pump_power",
	"status",
	"created_at",
}

// PumpApplicationRepository implements port.PumpApplicationRepository using PostgreSQL.
type PumpApplicationRepository struct {
	exec    pgExecutor
	builder squirrel.StatementBuilderType
}

// NewPumpApplicationRepository constructs a repository backed by any executor that satisfies pgExecutor.
func NewPumpApplicationRepository(exec pgExecutor) *PumpApplicationRepository {
	return &PumpApplicationRepository{
		exec:    exec,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new pump application row.
func (r *PumpApplicationRepository) Create(ctx context.Context, app domain.PumpApplication) error {
	stmt, args, err := r.builder.Insert("pump_applications").
		Columns(pumpApplicationColumns...).
		Values(
			app.ID,
			app.Name,
			app.Email,
			app.Phone,
			app.Address,
			app.City,
			app.Pin,
			app.PumpPower,
			app.Status,
			app.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert pump application sql: %w", err)
	}

	if _, err := r.exec.Exec(ctx, stmt, args...); err != nil {
		return fmt.Errorf("insert pump application: %w", err)
	}

	return nil
}

// GetByID retrieves a pump application by identifier.
func (r *PumpApplicationRepository) GetByID(ctx context.Context, id string) (*domain.PumpApplication, error) {
	stmt, args, err := r.builder.
		Select(pumpApplicationColumns...).
		From("pump_applications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select pump application sql: %w", err)
	}

	app, err := scanPumpApplication(r.exec.QueryRow(ctx, stmt, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan pump application: %w", err)
	}

	return app, nil
}

// List returns all pump applications ordered by creation time descending.
func (r *PumpApplicationRepository) List(ctx context.Context) ([]domain.PumpApplication, error) {
	stmt, args, err := r.builder.
		Select(pumpApplicationColumns...).
		From("pump_applications").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list pump applications sql: %w", err)
	}

	rows, err := r.exec.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query pump applications: %w", err)
	}
	defer rows.Close()

	apps := make([]domain.PumpApplication, 0)
	for rows.Next() {
		app, err := scanPumpApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pump application: %w", err)
		}
		apps = append(apps, *app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pump applications: %w", err)
	}

	return apps, nil
}

// UpdateStatus overwrites the status field and returns the updated row.
func (r *PumpApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.PumpApplication, error) {
	stmt, args, err := r.builder.Update("pump_applications").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(pumpApplicationColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update pump application status sql: %w", err)
	}

	app, err := scanPumpApplication(r.exec.QueryRow(ctx, stmt, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan updated pump application: %w", err)
	}

	return app, nil
}

func scanPumpApplication(row pgx.Row) (*domain.PumpApplication, error) {
	var app domain.PumpApplication
	if err := row.Scan(
		&app.ID,
		&app.Name,
		&app.Email,
		&app.Phone,
		&app.Address,
		&app.City,
		&app.Pin,
		&app.PumpPower,
		&app.Status,
		&app.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &app, nil
}

var _ port.PumpApplicationRepository = (*PumpApplicationRepository)(nil)
