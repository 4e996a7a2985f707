package repositories

import (
	"context"
	"time"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
)

// LedgerRepository defines persistence operations for ledger masters.
type LedgerRepository interface {
	SaveLedger(ctx context.Context, ledger domain.Ledger) error
	FindLedgerByID(ctx context.Context, companyID, ledgerID string) (*domain.Ledger, error)
	FindLedgersByIDs(ctx context.Context, companyID string, ledgerIDs []string) (map[string]domain.Ledger, error)
	// ListLedgers returns a company's ledgers, optionally restricted to the
	// given types. A nil/empty filter returns every ledger.
	ListLedgers(ctx context.Context, companyID string, types []domain.LedgerType) ([]domain.Ledger, error)
	UpdateLedger(ctx context.Context, ledger domain.Ledger) error
	DeactivateLedger(ctx context.Context, companyID, ledgerID, userID string, now time.Time) error
}
