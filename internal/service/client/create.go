package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bankpanel-backend/internal/domain"
)

// CreateClient persists a new client with its address and accounts in one
// transaction and returns it with every generated ID filled in.
func (s *Service) CreateClient(ctx context.Context, input ClientInput) (*domain.Client, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, input, 0); err != nil {
		return nil, fmt.Errorf("client.CreateClient: %w", err)
	}
	if err := s.checkPhone(input.MobileNumber); err != nil {
		return nil, err
	}

	c := input.toDomain(s.cfg.DefaultProfilePhoto)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		addressID, err := s.clients.CreateAddress(txCtx, *c.Address)
		if err != nil {
			return fmt.Errorf("create address: %w", err)
		}
		c.AddressID = addressID
		c.Address.ID = addressID

		clientID, err := s.clients.Create(txCtx, c)
		if err != nil {
			return fmt.Errorf("create client: %w", err)
		}
		c.ID = clientID

		for i := range c.Accounts {
			c.Accounts[i].ID = 0
			c.Accounts[i].ClientID = clientID
			accountID, err := s.clients.CreateAccount(txCtx, c.Accounts[i])
			if err != nil {
				return fmt.Errorf("create account: %w", err)
			}
			c.Accounts[i].ID = accountID
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("client.CreateClient: %w", err)
	}

	s.log.InfoContext(ctx, "client created",
		slog.Int64("client_id", c.ID),
		slog.Any("account_ids", c.AccountIDs()),
	)

	return c, nil
}
