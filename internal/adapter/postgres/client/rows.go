package client

import "github.com/heartmarshall/bankpanel-backend/internal/domain"

type clientRow struct {
	ID           int64  `db:"id"`
	Email        string `db:"email"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	MobileNumber string `db:"mobile_number"`
	PersonalID   string `db:"personal_id"`
	Sex          int16  `db:"sex"`
	AddressID    int64  `db:"address_id"`
	ProfilePhoto string `db:"profile_photo"`
	Country      string `db:"country"`
	City         string `db:"city"`
	Street       string `db:"street"`
	ZipCode      string `db:"zip_code"`
}

func (r clientRow) toDomain() domain.Client {
	return domain.Client{
		ID:           r.ID,
		Email:        r.Email,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		MobileNumber: r.MobileNumber,
		PersonalID:   r.PersonalID,
		Sex:          domain.Sex(r.Sex),
		AddressID:    r.AddressID,
		ProfilePhoto: r.ProfilePhoto,
		Address: &domain.Address{
			ID:      r.AddressID,
			Country: r.Country,
			City:    r.City,
			Street:  r.Street,
			ZipCode: r.ZipCode,
		},
		Accounts: []domain.Account{},
	}
}

type accountRow struct {
	ID            int64  `db:"id"`
	AccountNumber string `db:"account_number"`
	Currency      string `db:"currency"`
	ClientID      int64  `db:"client_id"`
}

func (r accountRow) toDomain() domain.Account {
	return domain.Account{
		ID:            r.ID,
		AccountNumber: r.AccountNumber,
		Currency:      r.Currency,
		ClientID:      r.ClientID,
	}
}
