package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/bankpanel-backend/internal/domain"
)

// UpdateClient overwrites client id with input: scalar fields and address in
// place, accounts reconciled by ID. Runs in one transaction.
func (s *Service) UpdateClient(ctx context.Context, id int64, input ClientInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	if err := s.checkPhone(input.MobileNumber); err != nil {
		return err
	}

	existing, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("client.UpdateClient: %w", err)
	}

	if err := s.checkUnique(ctx, input, id); err != nil {
		return fmt.Errorf("client.UpdateClient: %w", err)
	}

	next := input.toDomain(s.cfg.DefaultProfilePhoto)
	next.ID = id
	next.AddressID = existing.AddressID

	plan := reconcileAccounts(existing.Accounts, next.Accounts)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		addressID, err := s.saveAddress(txCtx, existing, *next.Address)
		if err != nil {
			return err
		}
		next.AddressID = addressID

		if err := s.clients.Update(txCtx, next); err != nil {
			return fmt.Errorf("update client: %w", err)
		}

		if err := s.clients.DeleteAccounts(txCtx, id, plan.remove); err != nil {
			return fmt.Errorf("delete accounts: %w", err)
		}
		for _, a := range plan.update {
			a.ClientID = id
			if err := s.clients.UpdateAccount(txCtx, a); err != nil {
				return fmt.Errorf("update account %d: %w", a.ID, err)
			}
		}
		for _, a := range plan.add {
			a.ID = 0
			a.ClientID = id
			if _, err := s.clients.CreateAccount(txCtx, a); err != nil {
				return fmt.Errorf("create account: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("client.UpdateClient: %w", err)
	}

	s.log.InfoContext(ctx, "client updated",
		slog.Int64("client_id", id),
		slog.Int("accounts_added", len(plan.add)),
		slog.Int("accounts_updated", len(plan.update)),
		slog.Int("accounts_removed", len(plan.remove)),
	)
	return nil
}

// saveAddress overwrites the client's address, or inserts a new one when the
// client has none, and returns the address ID to link.
func (s *Service) saveAddress(ctx context.Context, existing *domain.Client, addr domain.Address) (int64, error) {
	if existing.Address != nil && existing.AddressID != 0 {
		addr.ID = existing.AddressID
		err := s.clients.UpdateAddress(ctx, addr)
		if err == nil {
			return addr.ID, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return 0, fmt.Errorf("update address: %w", err)
		}
	}

	addr.ID = 0
	id, err := s.clients.CreateAddress(ctx, addr)
	if err != nil {
		return 0, fmt.Errorf("create address: %w", err)
	}
	return id, nil
}

type accountPlan struct {
	remove []int64
	update []domain.Account
	add    []domain.Account
}

// reconcileAccounts diffs the stored accounts against the requested ones by ID.
// A requested account whose ID is not stored (including 0) is new. When the
// same stored ID is requested more than once, the first occurrence wins.
func reconcileAccounts(current, requested []domain.Account) accountPlan {
	stored := make(map[int64]bool, len(current))
	for _, a := range current {
		stored[a.ID] = true
	}

	var plan accountPlan
	kept := make(map[int64]bool, len(requested))
	for _, a := range requested {
		switch {
		case !stored[a.ID]:
			plan.add = append(plan.add, a)
		case !kept[a.ID]:
			kept[a.ID] = true
			plan.update = append(plan.update, a)
		}
	}

	for _, a := range current {
		if !kept[a.ID] {
			plan.remove = append(plan.remove, a.ID)
		}
	}
	return plan
}
