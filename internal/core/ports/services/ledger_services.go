package services

import (
	"context"
	"time"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/dto"
)

// LedgerSvcFacade is the ledger master service surface.
type LedgerSvcFacade interface {
	CreateLedger(ctx context.Context, companyID string, req dto.CreateLedgerRequest, userID string) (*domain.Ledger, error)
	GetLedgerByID(ctx context.Context, companyID, ledgerID, userID string) (*domain.Ledger, error)
	ListLedgers(ctx context.Context, companyID string, typeFilter []domain.LedgerType, userID string) ([]domain.Ledger, error)
	UpdateLedger(ctx context.Context, companyID, ledgerID string, req dto.UpdateLedgerRequest, userID string) (*domain.Ledger, error)
	DeactivateLedger(ctx context.Context, companyID, ledgerID, userID string) error
	// GetLedgerStatement returns a ledger's entries over a period with a
	// running balance evaluated on the ledger's natural side.
	GetLedgerStatement(ctx context.Context, companyID, ledgerID string, from, to time.Time, userID string) (*dto.LedgerStatement, error)
}
