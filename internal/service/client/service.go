package client

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/bankpanel-backend/internal/config"
	"github.com/heartmarshall/bankpanel-backend/internal/domain"
)

type clientRepo interface {
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	MobileNumberTaken(ctx context.Context, number string, excludeID int64) (bool, error)
	PersonalIDTaken(ctx context.Context, personalID string, excludeID int64) (bool, error)

	CreateAddress(ctx context.Context, a domain.Address) (int64, error)
	UpdateAddress(ctx context.Context, a domain.Address) error
	DeleteAddress(ctx context.Context, id int64) error

	Create(ctx context.Context, c *domain.Client) (int64, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context, f domain.ClientFilter) ([]domain.Client, error)

	CreateAccount(ctx context.Context, a domain.Account) (int64, error)
	UpdateAccount(ctx context.Context, a domain.Account) error
	DeleteAccounts(ctx context.Context, clientID int64, ids []int64) error
}

type searchRepo interface {
	Create(ctx context.Context, p *domain.SearchParameter) error
	ListRecent(ctx context.Context, limit int) ([]domain.SearchParameter, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages clients together with their address and accounts.
type Service struct {
	log      *slog.Logger
	clients  clientRepo
	searches searchRepo
	tx       txManager
	phones   phoneValidator
	history  *history
	cfg      config.ClientsConfig
}

// NewService creates a new client service.
func NewService(
	logger *slog.Logger,
	clients clientRepo,
	searches searchRepo,
	tx txManager,
	cfg config.ClientsConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "client"),
		clients:  clients,
		searches: searches,
		tx:       tx,
		phones:   newPhoneValidator(cfg.PhoneRegion),
		history:  newHistory(cfg.HistorySize),
		cfg:      cfg,
	}
}
