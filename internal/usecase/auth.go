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

var (
	// ErrMissingCredentials indicates the login payload lacked email or password.
	ErrMissingCredentials = errors.New("email and password are required")
	// ErrInvalidCredentials indicates the email or password is incorrect. The
	// same sentinel covers both unknown email and wrong password so responses
	// cannot be used for account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidAccessToken indicates the provided token is malformed or its signature failed.
	ErrInvalidAccessToken = errors.New("invalid access token")
	// ErrExpiredAccessToken indicates the provided token has expired.
	ErrExpiredAccessToken = errors.New("access token expired")
)

// LoginResult bundles the signed token with the sanitized account.
type LoginResult struct {
	Token     string
	User      domain.User
	ExpiresIn int
}

// AuthService coordinates admin authentication.
type AuthService struct {
	users  port.UserRepository
	tokens *security.TokenManager
	log    *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(users port.UserRepository, tokens *security.TokenManager, log *zap.Logger) (*AuthService, error) {
	if users == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if tokens == nil {
		return nil, fmt.Errorf("token manager is required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{users: users, tokens: tokens, log: log}, nil
}

// Login validates credentials and issues a bearer token embedding the admin identity.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !security.VerifyPassword(password, user.PasswordHash) {
		s.log.Warn("login rejected", zap.String("email", logger.MaskEmail(email)))
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(*user)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	sanitized := *user
	sanitized.PasswordHash = ""

	s.log.Info("admin logged in", zap.String("user_id", user.ID))

	return &LoginResult{
		Token:     token,
		User:      sanitized,
		ExpiresIn: int(s.tokens.TokenTTL().Seconds()),
	}, nil
}

// ParseAccessToken validates a bearer token and returns its embedded claims.
func (s *AuthService) ParseAccessToken(token string) (*security.AccessTokenClaims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		switch {
		case errors.Is(err, security.ErrExpiredToken):
			return nil, ErrExpiredAccessToken
		default:
			return nil, ErrInvalidAccessToken
		}
	}
	return claims, nil
}
