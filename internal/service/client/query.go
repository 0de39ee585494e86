package client

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/heartmarshall/bankpanel-backend/internal/domain"
)

// ListClients returns one page of clients with their addresses. Every call is
// recorded in the search history, in memory and in the store.
func (s *Service) ListClients(ctx context.Context, q ClientQuery) ([]domain.Client, error) {
	filter := s.normalize(q)

	s.log.DebugContext(ctx, "list clients",
		slog.String("search", q.Search),
		slog.String("sort", q.Sort),
		slog.Int("page", filter.Page),
		slog.Int("page_size", filter.PageSize),
	)

	entry := domain.SearchParameter{
		Search:   q.Search,
		Sort:     q.Sort,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	s.history.push(entry)
	if err := s.searches.Create(ctx, &entry); err != nil {
		return nil, fmt.Errorf("client.ListClients: record search: %w", err)
	}

	clients, err := s.clients.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("client.ListClients: %w", err)
	}
	return clients, nil
}

func (s *Service) normalize(q ClientQuery) domain.ClientFilter {
	page := q.Page
	if page < 1 {
		page = 1
	}
	// search_parameters.page is a 32-bit column.
	if page > math.MaxInt32 {
		page = math.MaxInt32
	}
	size := q.PageSize
	if size <= 0 {
		size = s.cfg.DefaultPageSize
	}
	if size > s.cfg.MaxPageSize {
		size = s.cfg.MaxPageSize
	}
	return domain.ClientFilter{
		Search:   q.Search,
		Sort:     domain.ParseClientSort(q.Sort),
		Page:     page,
		PageSize: size,
	}
}

// RecentSearches returns the in-memory search history, oldest first.
func (s *Service) RecentSearches() []domain.SearchParameter {
	return s.history.snapshot()
}

// RecentSearchesFromStore returns the most recently stored searches, newest first.
func (s *Service) RecentSearchesFromStore(ctx context.Context) ([]domain.SearchParameter, error) {
	params, err := s.searches.ListRecent(ctx, s.cfg.HistorySize)
	if err != nil {
		return nil, fmt.Errorf("client.RecentSearchesFromStore: %w", err)
	}
	return params, nil
}

// GetClient returns client id with its address and accounts.
func (s *Service) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	c, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("client.GetClient: %w", err)
	}
	return c, nil
}

// DeleteClient removes client id together with its accounts and address.
func (s *Service) DeleteClient(ctx context.Context, id int64) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		addressID, err := s.clients.Delete(txCtx, id)
		if err != nil {
			return fmt.Errorf("delete client: %w", err)
		}
		if err := s.clients.DeleteAddress(txCtx, addressID); err != nil {
			return fmt.Errorf("delete address: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("client.DeleteClient: %w", err)
	}

	s.log.InfoContext(ctx, "client deleted", slog.Int64("client_id", id))
	return nil
}
