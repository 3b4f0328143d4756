package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spyojana/subsidy-portal/internal/core/domain"
	"github.com/spyojana/subsidy-portal/internal/core/port"
	"github.com/spyojana/subsidy-portal/internal/infra/logger"
	"github.com/spyojana/subsidy-portal/internal/infra/security"
	"github.com/spyojana/subsidy-portal/internal/repository"
)

const minPasswordLength = 6

var (
	// ErrCurrentPasswordInvalid indicates the supplied current password does not match the stored hash.
	ErrCurrentPasswordInvalid = errors.New("current password is incorrect")
	// ErrPasswordTooShort indicates the replacement password fails the length policy.
	ErrPasswordTooShort = fmt.Errorf("new password must be at least %d characters", minPasswordLength)
	// ErrInvalidEmail indicates the replacement email fails the format check.
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrEmailTaken indicates the replacement email already belongs to another account.
	ErrEmailTaken = errors.New("email already in use")
)

// SettingsService handles admin self-service credential changes. Both
// operations act only on the authenticated caller's own account and re-verify
// the current password before any write.
type SettingsService struct {
	users port.UserRepository
	log   *zap.Logger
}

// NewSettingsService constructs a SettingsService instance.
func NewSettingsService(users port.UserRepository, log *zap.Logger) (*SettingsService, error) {
	if users == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SettingsService{users: users, log: log}, nil
}

// ChangePassword re-hashes and overwrites the caller's password. Previously
// issued tokens stay valid until their natural expiry.
func (s *SettingsService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return &ValidationError{Message: "Current password and new password are required"}
	}
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.ErrNotFound
		}
		return fmt.Errorf("lookup user: %w", err)
	}

	if !security.VerifyPassword(currentPassword, user.PasswordHash) {
		return ErrCurrentPasswordInvalid
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash new password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	s.log.Info("admin password changed", zap.String("user_id", userID))

	return nil
}

// ChangeEmail overwrites the caller's email after re-verifying the password.
// The email claim inside previously issued tokens goes stale; the tokens
// themselves remain valid until expiry.
func (s *SettingsService) ChangeEmail(ctx context.Context, userID, password, newEmail string) error {
	newEmail = strings.TrimSpace(newEmail)
	if password == "" || newEmail == "" {
		return &ValidationError{Message: "Password and new email are required"}
	}
	if !domain.ValidEmail(newEmail) {
		return ErrInvalidEmail
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.ErrNotFound
		}
		return fmt.Errorf("lookup user: %w", err)
	}

	if !security.VerifyPassword(password, user.PasswordHash) {
		return ErrCurrentPasswordInvalid
	}

	existing, err := s.users.GetByEmail(ctx, newEmail)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("lookup email: %w", err)
	}
	if existing != nil && existing.ID != userID {
		return ErrEmailTaken
	}

	if err := s.users.UpdateEmail(ctx, userID, newEmail); err != nil {
		// The unique index closes the race between the lookup and the write.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return fmt.Errorf("update email: %w", err)
	}

	s.log.Info("admin email changed",
		zap.String("user_id", userID),
		zap.String("email", logger.MaskEmail(newEmail)),
	)

	return nil
}
