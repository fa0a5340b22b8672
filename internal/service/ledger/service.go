package ledger

import (
	"crash_backend/internal/repository"
	"crash_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	repo      repository.AccountRepository
	txManager trm.Manager
}

// NewLedgerService Единственный источник правды по балансам игроков
func NewLedgerService(
	repo repository.AccountRepository,
	txManager trm.Manager,
) service.LedgerService {
	return &serv{
		repo:      repo,
		txManager: txManager,
	}
}
