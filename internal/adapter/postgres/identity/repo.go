// Package identity implements user and role persistence using PostgreSQL.
package identity

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/bankpanel-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bankpanel-backend/internal/domain"
)

// Repo provides user and role persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new identity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// CreateUser inserts u. A duplicate email or user name yields domain.ErrAlreadyExists.
func (r *Repo) CreateUser(ctx context.Context, u *domain.User) error {
	query, args, err := postgres.Builder.
		Insert("users").
		Columns("id", "email", "user_name", "password_hash").
		Values(u.ID, u.Email, u.UserName, u.PasswordHash).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert user: %w", err)
	}

	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&u.CreatedAt); err != nil {
		return postgres.MapError(err, "user", u.ID)
	}
	return nil
}

// GetUserByEmail returns the user with email (case-insensitive) and its role names.
func (r *Repo) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Select(
			"u.id", "u.email", "u.user_name", "u.password_hash", "u.lockout_end", "u.created_at",
			"COALESCE(array_agg(r.name ORDER BY r.name) FILTER (WHERE r.name IS NOT NULL), '{}') AS roles",
		).
		From("users u").
		LeftJoin("user_roles ur ON ur.user_id = u.id").
		LeftJoin("roles r ON r.id = ur.role_id").
		Where("lower(u.email) = lower(?)", email).
		GroupBy("u.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "user", email)
	}

	return &domain.User{
		ID:           row.ID,
		Email:        row.Email,
		UserName:     row.UserName,
		PasswordHash: row.PasswordHash,
		LockoutEnd:   row.LockoutEnd,
		Roles:        row.Roles,
		CreatedAt:    row.CreatedAt,
	}, nil
}

// GetRoleByName returns the role whose name matches (case-insensitive).
func (r *Repo) GetRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	query, args, err := postgres.Builder.
		Select("id", "name").
		From("roles").
		Where("lower(name) = lower(?)", name).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get role: %w", err)
	}

	var role domain.Role
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&role.ID, &role.Name); err != nil {
		return nil, postgres.MapError(err, "role", name)
	}
	return &role, nil
}

// AddUserToRole links userID to roleID. An existing link yields domain.ErrAlreadyExists.
func (r *Repo) AddUserToRole(ctx context.Context, userID, roleID uuid.UUID) error {
	query, args, err := postgres.Builder.
		Insert("user_roles").
		Columns("user_id", "role_id").
		Values(userID, roleID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert user role: %w", err)
	}

	if _, err := r.q(ctx).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "user_role", userID)
	}
	return nil
}

// CountUsersInRole returns how many users hold the named role.
func (r *Repo) CountUsersInRole(ctx context.Context, name string) (int, error) {
	query, args, err := postgres.Builder.
		Select("count(*)").
		From("user_roles ur").
		Join("roles r ON r.id = ur.role_id").
		Where(sq.Eq{"r.name": name}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count role users: %w", err)
	}

	var n int
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "role", name)
	}
	return n, nil
}

type userRow struct {
	ID           uuid.UUID  `db:"id"`
	Email        string     `db:"email"`
	UserName     string     `db:"user_name"`
	PasswordHash string     `db:"password_hash"`
	LockoutEnd   *time.Time `db:"lockout_end"`
	CreatedAt    time.Time  `db:"created_at"`
	Roles        []string   `db:"roles"`
}
