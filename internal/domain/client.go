package domain

import "fmt"

// Client is a bank client together with its owned address and accounts.
type Client struct {
	ID           int64
	Email        string
	FirstName    string
	LastName     string
	MobileNumber string
	PersonalID   string
	Sex          Sex
	AddressID    int64
	Address      *Address
	Accounts     []Account
	ProfilePhoto string
}

// Address is owned 1:1 by a client.
type Address struct {
	ID      int64
	Country string
	City    string
	Street  string
	ZipCode string
}

// Account is a bank account owned by a client.
type Account struct {
	ID            int64
	AccountNumber string
	Currency      string
	ClientID      int64
}

// AccountIDs returns the IDs of the client's accounts in order.
func (c *Client) AccountIDs() []int64 {
	ids := make([]int64, 0, len(c.Accounts))
	for _, a := range c.Accounts {
		ids = append(ids, a.ID)
	}
	return ids
}

// Client fields that must be unique, named as they appear in API payloads.
const (
	FieldEmail        = "email"
	FieldMobileNumber = "mobileNumber"
	FieldPersonalID   = "personalId"
)

var uniqueFieldLabels = map[string]string{
	FieldEmail:        "email",
	FieldMobileNumber: "mobile number",
	FieldPersonalID:   "personal ID",
}

// NewClientConflict reports that another client already uses value for field.
func NewClientConflict(field, value string) *AlreadyExistsError {
	label, ok := uniqueFieldLabels[field]
	if !ok {
		label = field
	}
	return NewAlreadyExistsError(field, fmt.Sprintf("A client with the %s %s already exists.", label, value))
}
