// Package client implements the client aggregate repository (clients,
// addresses and accounts) using PostgreSQL.
package client

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/bankpanel-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bankpanel-backend/internal/domain"
)

// Unique index names from migrations/00001_clients.sql.
const (
	uxEmail        = "ux_clients_email"
	uxMobileNumber = "ux_clients_mobile_number"
	uxPersonalID   = "ux_clients_personal_id"
)

var clientColumns = []string{
	"c.id", "c.email", "c.first_name", "c.last_name", "c.mobile_number",
	"c.personal_id", "c.sex", "c.address_id", "c.profile_photo",
	"a.country", "a.city", "a.street", "a.zip_code",
}

var sortColumns = map[domain.ClientSort]string{
	domain.ClientSortEmail:     "c.email",
	domain.ClientSortFirstName: "c.first_name",
	domain.ClientSortLastName:  "c.last_name",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repo provides client aggregate persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new client repository. db is normally the *pgxpool.Pool;
// a transaction in the context takes precedence over it.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// ---------------------------------------------------------------------------
// Uniqueness
// ---------------------------------------------------------------------------

// EmailTaken reports whether a client other than excludeID uses email.
// Pass excludeID = 0 to check against every client.
func (r *Repo) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	return r.taken(ctx, "email", email, excludeID)
}

// MobileNumberTaken reports whether a client other than excludeID uses number.
func (r *Repo) MobileNumberTaken(ctx context.Context, number string, excludeID int64) (bool, error) {
	return r.taken(ctx, "mobile_number", number, excludeID)
}

// PersonalIDTaken reports whether a client other than excludeID uses personalID.
func (r *Repo) PersonalIDTaken(ctx context.Context, personalID string, excludeID int64) (bool, error) {
	return r.taken(ctx, "personal_id", personalID, excludeID)
}

func (r *Repo) taken(ctx context.Context, column, value string, excludeID int64) (bool, error) {
	sub := postgres.Builder.Select("1").From("clients").Where(sq.Eq{column: value})
	if excludeID > 0 {
		sub = sub.Where(sq.NotEq{"id": excludeID})
	}

	query, args, err := sub.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("build %s uniqueness query: %w", column, err)
	}

	var exists bool
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "client."+column, nil)
	}
	return exists, nil
}

// ---------------------------------------------------------------------------
// Address
// ---------------------------------------------------------------------------

// CreateAddress inserts a and returns its generated ID.
func (r *Repo) CreateAddress(ctx context.Context, a domain.Address) (int64, error) {
	query, args, err := postgres.Builder.
		Insert("addresses").
		Columns("country", "city", "street", "zip_code").
		Values(a.Country, a.City, a.Street, a.ZipCode).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert address: %w", err)
	}

	var id int64
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "address", nil)
	}
	return id, nil
}

// UpdateAddress overwrites the address with a.ID in place.
// Returns domain.ErrNotFound if no such address exists.
func (r *Repo) UpdateAddress(ctx context.Context, a domain.Address) error {
	query, args, err := postgres.Builder.
		Update("addresses").
		Set("country", a.Country).
		Set("city", a.City).
		Set("street", a.Street).
		Set("zip_code", a.ZipCode).
		Where(sq.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update address: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "address", a.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("address %d: %w", a.ID, domain.ErrNotFound)
	}
	return nil
}

// DeleteAddress removes the address with id. A missing row is not an error.
func (r *Repo) DeleteAddress(ctx context.Context, id int64) error {
	query, args, err := postgres.Builder.Delete("addresses").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete address: %w", err)
	}

	if _, err := r.q(ctx).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "address", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Client
// ---------------------------------------------------------------------------

// Create inserts the client row (c.AddressID must already exist) and returns
// the generated ID. A unique index violation is reported as the matching
// *domain.AlreadyExistsError.
func (r *Repo) Create(ctx context.Context, c *domain.Client) (int64, error) {
	query, args, err := postgres.Builder.
		Insert("clients").
		Columns("email", "first_name", "last_name", "mobile_number", "personal_id", "sex", "address_id", "profile_photo").
		Values(c.Email, c.FirstName, c.LastName, c.MobileNumber, c.PersonalID, int16(c.Sex), c.AddressID, c.ProfilePhoto).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert client: %w", err)
	}

	var id int64
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, mapClientError(err, c)
	}
	return id, nil
}

// Update overwrites the scalar fields of client c.ID.
// Returns domain.ErrConflict when the row vanished concurrently.
func (r *Repo) Update(ctx context.Context, c *domain.Client) error {
	query, args, err := postgres.Builder.
		Update("clients").
		Set("email", c.Email).
		Set("first_name", c.FirstName).
		Set("last_name", c.LastName).
		Set("mobile_number", c.MobileNumber).
		Set("personal_id", c.PersonalID).
		Set("sex", int16(c.Sex)).
		Set("address_id", c.AddressID).
		Set("profile_photo", c.ProfilePhoto).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update client: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return mapClientError(err, c)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("client %d: %w", c.ID, domain.ErrConflict)
	}
	return nil
}

// Delete removes client id and returns the ID of its address so the caller
// can remove it in the same transaction. Accounts go with the client (FK cascade).
func (r *Repo) Delete(ctx context.Context, id int64) (int64, error) {
	query, args, err := postgres.Builder.
		Delete("clients").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING address_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete client: %w", err)
	}

	var addressID int64
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&addressID); err != nil {
		return 0, postgres.MapError(err, "client", id)
	}
	return addressID, nil
}

// GetByID returns the client with its address and accounts.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	query, args, err := selectClients().Where(sq.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get client: %w", err)
	}

	var row clientRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("client %d: %w", id, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "client", id)
	}

	accounts, err := r.ListAccounts(ctx, id)
	if err != nil {
		return nil, err
	}

	c := row.toDomain()
	c.Accounts = accounts
	return &c, nil
}

// List returns one page of clients with their addresses (accounts are not loaded).
func (r *Repo) List(ctx context.Context, f domain.ClientFilter) ([]domain.Client, error) {
	b := selectClients()

	if f.Search != "" {
		pattern := "%" + likeEscaper.Replace(f.Search) + "%"
		b = b.Where(sq.Or{
			sq.ILike{"c.email": pattern},
			sq.ILike{"c.first_name": pattern},
			sq.ILike{"c.last_name": pattern},
		})
	}

	if col, ok := sortColumns[f.Sort]; ok {
		b = b.OrderBy(col+" ASC", "c.id ASC")
	} else {
		b = b.OrderBy("c.id ASC")
	}

	if f.PageSize > 0 {
		b = b.Limit(uint64(f.PageSize)).Offset(uint64(f.Offset()))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list clients: %w", err)
	}

	var rows []clientRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "client", nil)
	}

	clients := make([]domain.Client, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, row.toDomain())
	}
	return clients, nil
}

func selectClients() sq.SelectBuilder {
	return postgres.Builder.
		Select(clientColumns...).
		From("clients c").
		Join("addresses a ON a.id = c.address_id")
}

func mapClientError(err error, c *domain.Client) error {
	switch postgres.ConstraintName(err) {
	case uxEmail:
		return fmt.Errorf("client: %w", domain.NewClientConflict(domain.FieldEmail, c.Email))
	case uxMobileNumber:
		return fmt.Errorf("client: %w", domain.NewClientConflict(domain.FieldMobileNumber, c.MobileNumber))
	case uxPersonalID:
		return fmt.Errorf("client: %w", domain.NewClientConflict(domain.FieldPersonalID, c.PersonalID))
	}

	var id any
	if c.ID != 0 {
		id = c.ID
	}
	return postgres.MapError(err, "client", id)
}

// ---------------------------------------------------------------------------
// Accounts
// ---------------------------------------------------------------------------

// ListAccounts returns the client's accounts ordered by ID.
func (r *Repo) ListAccounts(ctx context.Context, clientID int64) ([]domain.Account, error) {
	query, args, err := postgres.Builder.
		Select("id", "account_number", "currency", "client_id").
		From("accounts").
		Where(sq.Eq{"client_id": clientID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list accounts: %w", err)
	}

	var rows []accountRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "accounts of client", clientID)
	}

	accounts := make([]domain.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, row.toDomain())
	}
	return accounts, nil
}

// CreateAccount inserts a for a.ClientID and returns the generated ID.
func (r *Repo) CreateAccount(ctx context.Context, a domain.Account) (int64, error) {
	query, args, err := postgres.Builder.
		Insert("accounts").
		Columns("account_number", "currency", "client_id").
		Values(a.AccountNumber, a.Currency, a.ClientID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert account: %w", err)
	}

	var id int64
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "account", nil)
	}
	return id, nil
}

// UpdateAccount overwrites the number and currency of account a.ID owned by
// a.ClientID. Returns domain.ErrConflict when the row vanished concurrently.
func (r *Repo) UpdateAccount(ctx context.Context, a domain.Account) error {
	query, args, err := postgres.Builder.
		Update("accounts").
		Set("account_number", a.AccountNumber).
		Set("currency", a.Currency).
		Where(sq.Eq{"id": a.ID, "client_id": a.ClientID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update account: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "account", a.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %d: %w", a.ID, domain.ErrConflict)
	}
	return nil
}

// DeleteAccounts removes the listed accounts of clientID.
func (r *Repo) DeleteAccounts(ctx context.Context, clientID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := postgres.Builder.
		Delete("accounts").
		Where(sq.Eq{"client_id": clientID}).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete accounts: %w", err)
	}

	if _, err := r.q(ctx).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "accounts of client", clientID)
	}
	return nil
}
