package auth

import (
	"time"

	"github.com/heartmarshall/bankpanel-backend/internal/domain"
	"github.com/heartmarshall/bankpanel-backend/internal/validation"
)

// bcrypt ignores input past 72 bytes.
const maxPasswordBytes = 72

// RegisterInput holds parameters for password registration.
type RegisterInput struct {
	Email    string `field:"email"    validate:"required,email,max=256"`
	Password string `field:"password" validate:"required,min=8"`
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	if err := validation.Struct(i); err != nil {
		return err
	}
	if len(i.Password) > maxPasswordBytes {
		return domain.NewValidationError("password", "too long (max 72 bytes)")
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email      string `field:"email"    validate:"required,email"`
	Password   string `field:"password" validate:"required"`
	RememberMe bool   `field:"rememberMe"`
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	return validation.Struct(i)
}

// AssignRoleInput holds parameters for granting a role to a user.
type AssignRoleInput struct {
	Email string `field:"email" validate:"required,email"`
	Role  string `field:"role"  validate:"required,max=256"`
}

// Validate validates the assign-role input.
func (i AssignRoleInput) Validate() error {
	return validation.Struct(i)
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
}
