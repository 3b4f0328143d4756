package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	uuid "github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spyojana/subsidy-portal/internal/core/domain"
	"github.com/spyojana/subsidy-portal/internal/core/port"
)

var (
	// ErrInvalidStatus indicates a status write outside the four-value enum.
	ErrInvalidStatus = errors.New("invalid status")
)

// ValidationError reports the first failing input constraint of a submission.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationError(message string) error {
	return &ValidationError{Message: message}
}

// ApplicationInput carries the public land-pump submission fields.
type ApplicationInput struct {
	FullName     string
	FatherName   string
	Village      string
	District     string
	State        string
	Mobile       string
	AadharNumber string
}

// PumpApplicationInput carries the public submersible pump submission fields.
type PumpApplicationInput struct {
	Name      string
	Email     string
	Phone     string
	Address   string
	City      string
	Pin       string
	PumpPower string
}

// SubmissionService covers both reviewable submission types: public create,
// admin listing, and status overwrite. Validation and status rules are shared;
// the storage schemas stay distinct.
type SubmissionService struct {
	applications port.ApplicationRepository
	pumps        port.PumpApplicationRepository
	log          *zap.Logger
}

// NewSubmissionService constructs a SubmissionService instance.
func NewSubmissionService(applications port.ApplicationRepository, pumps port.PumpApplicationRepository, log *zap.Logger) (*SubmissionService, error) {
	if applications == nil {
		return nil, fmt.Errorf("application repository is required")
	}
	if pumps == nil {
		return nil, fmt.Errorf("pump application repository is required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SubmissionService{applications: applications, pumps: pumps, log: log}, nil
}

// SubmitApplication validates and persists a land-pump application. Status is
// forced to PENDING regardless of anything the client supplied.
func (s *SubmissionService) SubmitApplication(ctx context.Context, input ApplicationInput) (*domain.Application, error) {
	app := domain.Application{
		FullName:     strings.TrimSpace(input.FullName),
		FatherName:   strings.TrimSpace(input.FatherName),
		Village:      strings.TrimSpace(input.Village),
		District:     strings.TrimSpace(input.District),
		State:        strings.TrimSpace(input.State),
		Mobile:       strings.TrimSpace(input.Mobile),
		AadharNumber: strings.TrimSpace(input.AadharNumber),
	}

	if app.FullName == "" || app.FatherName == "" || app.Village == "" ||
		app.District == "" || app.State == "" || app.Mobile == "" || app.AadharNumber == "" {
		return nil, validationError("All fields are required")
	}
	if !domain.ValidMobile(app.Mobile) {
		return nil, validationError("Invalid mobile number format")
	}
	if !domain.ValidAadhar(app.AadharNumber) {
		return nil, validationError("Invalid Aadhar number format")
	}

	app.ID = uuid.NewString()
	app.Status = domain.StatusPending
	app.CreatedAt = time.Now().UTC()

	if err := s.applications.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	s.log.Info("application submitted",
		zap.String("id", app.ID),
		zap.String("district", app.District),
		zap.String("state", app.State),
	)

	return &app, nil
}

// SubmitPumpApplication validates and persists a submersible pump application.
func (s *SubmissionService) SubmitPumpApplication(ctx context.Context, input PumpApplicationInput) (*domain.PumpApplication, error) {
	app := domain.PumpApplication{
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Address:   strings.TrimSpace(input.Address),
		City:      strings.TrimSpace(input.City),
		Pin:       strings.TrimSpace(input.Pin),
		PumpPower: strings.TrimSpace(input.PumpPower),
	}

	if app.Name == "" || app.Email == "" || app.Phone == "" ||
		app.Address == "" || app.City == "" || app.Pin == "" || app.PumpPower == "" {
		return nil, validationError("All fields are required")
	}
	if !domain.ValidEmail(app.Email) {
		return nil, validationError("Invalid email format")
	}
	if !domain.ValidMobile(app.Phone) {
		return nil, validationError("Invalid phone number format")
	}
	if !domain.ValidPin(app.Pin) {
		return nil, validationError("Invalid PIN code format")
	}

	app.ID = uuid.NewString()
	app.Status = domain.StatusPending
	app.CreatedAt = time.Now().UTC()

	if err := s.pumps.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("create pump application: %w", err)
	}

	s.log.Info("pump application submitted",
		zap.String("id", app.ID),
		zap.String("city", app.City),
		zap.String("pump_power", app.PumpPower),
	)

	return &app, nil
}

// ListApplications returns every land-pump application, newest first.
func (s *SubmissionService) ListApplications(ctx context.Context) ([]domain.Application, error) {
	apps, err := s.applications.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

// GetApplication returns a single land-pump application by id.
func (s *SubmissionService) GetApplication(ctx context.Context, id string) (*domain.Application, error) {
	app, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return app, nil
}

// UpdateApplicationStatus overwrites the status of a land-pump application.
// Any of the four states may replace any other; there is no transition guard.
func (s *SubmissionService) UpdateApplicationStatus(ctx context.Context, id string, status domain.Status) (*domain.Application, error) {
	if !domain.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	app, err := s.applications.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.log.Info("application status updated",
		zap.String("id", id),
		zap.String("status", string(status)),
	)

	return app, nil
}

// ListPumpApplications returns every pump application, newest first.
func (s *SubmissionService) ListPumpApplications(ctx context.Context) ([]domain.PumpApplication, error) {
	apps, err := s.pumps.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pump applications: %w", err)
	}
	return apps, nil
}

// GetPumpApplication returns a single pump application by id.
func (s *SubmissionService) GetPumpApplication(ctx context.Context, id string) (*domain.PumpApplication, error) {
	app, err := s.pumps.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return app, nil
}

// UpdatePumpApplicationStatus overwrites the status of a pump application.
func (s *SubmissionService) UpdatePumpApplicationStatus(ctx context.Context, id string, status domain.Status) (*domain.PumpApplication, error) {
	if !domain.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	app, err := s.pumps.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.log.Info("pump application status updated",
		zap.String("id", id),
		zap.String("status", string(status)),
	)

	return app, nil
}
