package client

import (
	"github.com/heartmarshall/bankpanel-backend/internal/domain"
	"github.com/heartmarshall/bankpanel-backend/internal/validation"
)

// ClientInput is the payload for creating or updating a client.
type ClientInput struct {
	Email        string         `field:"email"        validate:"required,email"`
	FirstName    string         `field:"firstName"    validate:"required,max=60"`
	LastName     string         `field:"lastName"     validate:"required,max=60"`
	MobileNumber string         `field:"mobileNumber" validate:"required"`
	PersonalID   string         `field:"personalId"   validate:"required,len=11"`
	Sex          *int           `field:"sex"          validate:"required,sex"`
	Address      *AddressInput  `field:"address"      validate:"required"`
	Accounts     []AccountInput `field:"accounts"     validate:"omitempty,dive"`
	ProfilePhoto *string        `field:"profilePhoto"`
}

// AddressInput is the client's address.
type AddressInput struct {
	Country string `field:"country" validate:"required,max=100"`
	City    string `field:"city"    validate:"required,max=100"`
	Street  string `field:"street"  validate:"required,max=200"`
	ZipCode string `field:"zipCode" validate:"required,max=20"`
}

// AccountInput is one account of the client. ID is 0 for a new account.
type AccountInput struct {
	ID            int64  `field:"id"`
	AccountNumber string `field:"accountNumber" validate:"required"`
	Currency      string `field:"currency"      validate:"required"`
}

// Validate checks all fields and collects all errors.
func (i ClientInput) Validate() error {
	return validation.Struct(i)
}

// toDomain builds the client the input describes. IDs are left zero.
func (i ClientInput) toDomain(defaultPhoto string) *domain.Client {
	c := &domain.Client{
		Email:        i.Email,
		FirstName:    i.FirstName,
		LastName:     i.LastName,
		MobileNumber: i.MobileNumber,
		PersonalID:   i.PersonalID,
		ProfilePhoto: defaultPhoto,
	}
	if i.Sex != nil {
		c.Sex = domain.Sex(*i.Sex)
	}
	if i.ProfilePhoto != nil {
		c.ProfilePhoto = *i.ProfilePhoto
	}
	if i.Address != nil {
		c.Address = &domain.Address{
			Country: i.Address.Country,
			City:    i.Address.City,
			Street:  i.Address.Street,
			ZipCode: i.Address.ZipCode,
		}
	}
	c.Accounts = make([]domain.Account, 0, len(i.Accounts))
	for _, a := range i.Accounts {
		c.Accounts = append(c.Accounts, domain.Account{
			ID:            a.ID,
			AccountNumber: a.AccountNumber,
			Currency:      a.Currency,
		})
	}
	return c
}

// ClientQuery holds the raw listing parameters as received.
type ClientQuery struct {
	Search   string
	Sort     string
	Page     int
	PageSize int
}
