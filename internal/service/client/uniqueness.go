package client

import (
	"context"
	"fmt"

	"github.com/heartmarshall/bankpanel-backend/internal/domain"
)

// checkUnique reports the first unique field of in already used by a client
// other than excludeID. Order: email, mobile number, personal ID.
func (s *Service) checkUnique(ctx context.Context, in ClientInput, excludeID int64) error {
	checks := []struct {
		field string
		value string
		taken func(context.Context, string, int64) (bool, error)
	}{
		{domain.FieldEmail, in.Email, s.clients.EmailTaken},
		{domain.FieldMobileNumber, in.MobileNumber, s.clients.MobileNumberTaken},
		{domain.FieldPersonalID, in.PersonalID, s.clients.PersonalIDTaken},
	}

	for _, c := range checks {
		taken, err := c.taken(ctx, c.value, excludeID)
		if err != nil {
			return fmt.Errorf("check %s: %w", c.field, err)
		}
		if taken {
			return domain.NewClientConflict(c.field, c.value)
		}
	}
	return nil
}

func (s *Service) checkPhone(number string) error {
	if !s.phones.Valid(number) {
		return domain.NewValidationError(domain.FieldMobileNumber, "invalid mobile number format")
	}
	return nil
}
