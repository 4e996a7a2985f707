package repositories

import (
	"context"
	"time"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
)

// ReportingRepository is the read-only data source the reporting engine
// pulls from. It returns raw rows; all report arithmetic happens in the
// engine, never in SQL.
type ReportingRepository interface {
	// ListLedgers returns the company's ledgers, optionally filtered by type.
	ListLedgers(ctx context.Context, companyID string, types []domain.LedgerType) ([]domain.Ledger, error)
	// ListEntryLinesAsOf returns entries joined with voucher dates, for
	// vouchers dated on or before asOf.
	ListEntryLinesAsOf(ctx context.Context, companyID string, asOf time.Time) ([]domain.EntryLine, error)
	// ListEntryLinesBetween returns entries for vouchers dated within
	// [from, to] inclusive.
	ListEntryLinesBetween(ctx context.Context, companyID string, from, to time.Time) ([]domain.EntryLine, error)
}
