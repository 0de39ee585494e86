package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/bankpanel-backend/internal/config"
	"github.com/heartmarshall/bankpanel-backend/internal/domain"
)

// userRepo defines the identity store operations needed by auth service.
type userRepo interface {
	CreateUser(ctx context.Context, u *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetRoleByName(ctx context.Context, name string) (*domain.Role, error)
	AddUserToRole(ctx context.Context, userID, roleID uuid.UUID) error
	CountUsersInRole(ctx context.Context, name string) (int, error)
}

// passwordHasher hashes and checks passwords.
type passwordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) (bool, error)
}

// jwtManager issues and validates access tokens.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, email string, roles []string, ttl time.Duration) (string, time.Time, error)
	ValidateAccessToken(token string) (uuid.UUID, []string, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements registration, login and role management.
type Service struct {
	log    *slog.Logger
	users  userRepo
	hasher passwordHasher
	jwt    jwtManager
	tx     txManager
	cfg    config.AuthConfig
	now    func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	hasher passwordHasher,
	jwt jwtManager,
	tx txManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		hasher: hasher,
		jwt:    jwt,
		tx:     tx,
		cfg:    cfg,
		now:    time.Now,
	}
}

// issueToken signs an access token for user valid for ttl.
func (s *Service) issueToken(user *domain.User, ttl time.Duration) (*AuthResult, error) {
	token, expiresAt, err := s.jwt.GenerateAccessToken(user.ID, user.Email, user.Roles, ttl)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	return &AuthResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

// ValidateToken checks an access token and returns the user ID and roles it carries.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, []string, error) {
	userID, roles, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", slog.String("error", err.Error()))
		return uuid.Nil, nil, fmt.Errorf("auth.ValidateToken: %w", domain.ErrUnauthorized)
	}
	return userID, roles, nil
}
