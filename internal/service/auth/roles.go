package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/bankpanel-backend/internal/domain"
)

// AssignRole grants an existing role to the user with the given email and
// returns a confirmation message.
func (s *Service) AssignRole(ctx context.Context, input AssignRoleInput) (string, error) {
	input.Email = strings.TrimSpace(input.Email)
	input.Role = strings.TrimSpace(input.Role)

	if err := input.Validate(); err != nil {
		return "", err
	}

	user, err := s.users.GetUserByEmail(ctx, input.Email)
	if err != nil {
		return "", fmt.Errorf("auth.AssignRole get user: %w", err)
	}

	role, err := s.users.GetRoleByName(ctx, input.Role)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.NewValidationError("role", fmt.Sprintf("Role %s does not exist.", input.Role))
		}
		return "", fmt.Errorf("auth.AssignRole get role: %w", err)
	}

	if user.HasRole(role.Name) {
		return "", alreadyInRole(input.Role)
	}

	if err := s.users.AddUserToRole(ctx, user.ID, role.ID); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return "", alreadyInRole(input.Role)
		}
		return "", fmt.Errorf("auth.AssignRole: %w", err)
	}

	s.log.InfoContext(ctx, "role assigned",
		slog.String("user_id", user.ID.String()),
		slog.String("role", role.Name))

	return fmt.Sprintf("User %s assigned to role %s successfully.", input.Email, input.Role), nil
}

func alreadyInRole(role string) *domain.AlreadyExistsError {
	return domain.NewAlreadyExistsError("role", fmt.Sprintf("User is already in role %s.", role))
}

// SeedAdmin makes sure the Admin role has at least one member. When it has
// none, the user with email is created (or reused) and granted Admin.
// Safe to call on every start.
func (s *Service) SeedAdmin(ctx context.Context, email, password string) error {
	admins, err := s.users.CountUsersInRole(ctx, domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("auth.SeedAdmin count admins: %w", err)
	}
	if admins > 0 {
		s.log.DebugContext(ctx, "admin already present, skipping seed")
		return nil
	}

	role, err := s.users.GetRoleByName(ctx, domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("auth.SeedAdmin get role: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.GetUserByEmail(txCtx, email)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			in := RegisterInput{Email: email, Password: password}
			if err := in.Validate(); err != nil {
				return err
			}
			hash, err := s.hasher.Hash(password)
			if err != nil {
				return err
			}
			user = &domain.User{ID: uuid.New(), Email: email, UserName: email, PasswordHash: hash}
			if err := s.users.CreateUser(txCtx, user); err != nil {
				return fmt.Errorf("create user: %w", err)
			}
		case err != nil:
			return fmt.Errorf("get user: %w", err)
		case user.HasRole(role.Name):
			return nil
		}

		if err := s.users.AddUserToRole(txCtx, user.ID, role.ID); err != nil {
			return fmt.Errorf("add role: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("auth.SeedAdmin: %w", err)
	}

	s.log.InfoContext(ctx, "admin user seeded", slog.String("email", email))
	return nil
}
