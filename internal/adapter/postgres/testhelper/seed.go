package testhelper

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/bankpanel-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueMobile returns a syntactically valid Saudi mobile number that is
// unlikely to collide with other seeded rows.
func UniqueMobile() string {
	return fmt.Sprintf("+9665%08d", rand.IntN(100_000_000))
}

// UniquePersonalID returns an 11-digit personal ID.
func UniquePersonalID() string {
	return fmt.Sprintf("%011d", rand.Int64N(100_000_000_000))
}

// SeedClient inserts a client with an address and the given number of accounts.
func SeedClient(t *testing.T, pool *pgxpool.Pool, accounts int) domain.Client {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	addr := domain.Address{Country: "Saudi Arabia", City: "Riyadh", Street: "King Fahd Rd " + suffix, ZipCode: "12211"}

	err := pool.QueryRow(ctx,
		`INSERT INTO addresses (country, city, street, zip_code) VALUES ($1, $2, $3, $4) RETURNING id`,
		addr.Country, addr.City, addr.Street, addr.ZipCode,
	).Scan(&addr.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedClient insert address: %v", err)
	}

	c := domain.Client{
		Email:        "client-" + suffix + "@example.com",
		FirstName:    "First" + suffix,
		LastName:     "Last" + suffix,
		MobileNumber: UniqueMobile(),
		PersonalID:   UniquePersonalID(),
		Sex:          domain.SexFemale,
		AddressID:    addr.ID,
		Address:      &addr,
		ProfilePhoto: "defaultProfilePhotoUrl",
	}

	err = pool.QueryRow(ctx,
		`INSERT INTO clients (email, first_name, last_name, mobile_number, personal_id, sex, address_id, profile_photo)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		c.Email, c.FirstName, c.LastName, c.MobileNumber, c.PersonalID, int16(c.Sex), c.AddressID, c.ProfilePhoto,
	).Scan(&c.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedClient insert client: %v", err)
	}

	for i := range accounts {
		a := domain.Account{
			AccountNumber: fmt.Sprintf("SA%s%04d", suffix, i),
			Currency:      "SAR",
			ClientID:      c.ID,
		}
		err = pool.QueryRow(ctx,
			`INSERT INTO accounts (account_number, currency, client_id) VALUES ($1, $2, $3) RETURNING id`,
			a.AccountNumber, a.Currency, a.ClientID,
		).Scan(&a.ID)
		if err != nil {
			t.Fatalf("testhelper: SeedClient insert account: %v", err)
		}
		c.Accounts = append(c.Accounts, a)
	}

	return c
}

// SeedUser inserts a user with the given password hash and roles.
func SeedUser(t *testing.T, pool *pgxpool.Pool, passwordHash string, roles ...string) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	u := domain.User{
		ID:           uuid.New(),
		Email:        "user-" + suffix + "@example.com",
		PasswordHash: passwordHash,
		Roles:        roles,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
	u.UserName = u.Email

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, user_name, password_hash, created_at) VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Email, u.UserName, u.PasswordHash, u.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	for _, role := range roles {
		_, err = pool.Exec(ctx,
			`INSERT INTO user_roles (user_id, role_id) SELECT $1, id FROM roles WHERE name = $2`,
			u.ID, role,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedUser assign role %s: %v", role, err)
		}
	}

	return u
}
