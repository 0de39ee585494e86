package client

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// phoneValidator checks mobile numbers against a default region. Numbers
// given in international form (+CC...) are checked against their own region.
type phoneValidator struct {
	region string
}

func newPhoneValidator(region string) phoneValidator {
	return phoneValidator{region: strings.ToUpper(strings.TrimSpace(region))}
}

// Valid reports whether number parses and is a valid number.
func (p phoneValidator) Valid(number string) bool {
	parsed, err := phonenumbers.Parse(number, p.region)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(parsed)
}
