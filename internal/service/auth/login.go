package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/bankpanel-backend/internal/domain"
)

// Login authenticates a user with email and password.
// Returns ErrUnauthorized if the email is not found or the password is wrong,
// and ErrForbidden while the account is locked out.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "invalid login attempt", slog.String("email", input.Email))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if user.IsLockedOut(s.now()) {
		s.log.WarnContext(ctx, "user account locked out", slog.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("auth.Login: account locked out: %w", domain.ErrForbidden)
	}

	ok, err := s.hasher.Verify(user.PasswordHash, input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Login verify: %w", err)
	}
	if !ok {
		s.log.WarnContext(ctx, "invalid login attempt", slog.String("email", input.Email))
		return nil, domain.ErrUnauthorized
	}

	ttl := s.cfg.AccessTokenTTL
	if input.RememberMe {
		ttl = s.cfg.RememberMeTTL
	}

	result, err := s.issueToken(user, ttl)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
		slog.Bool("remember_me", input.RememberMe))

	return result, nil
}
