package services

import (
	"context"
	"time"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
)

// ReportingService generates the standard financial statements. Every call
// recomputes from a fresh snapshot of the store; on any error the whole
// report is aborted rather than returned partially computed.
type ReportingService interface {
	// BalanceSheet computes the grouped balance sheet as of a date,
	// including the balancing figure and the grand total in words.
	BalanceSheet(ctx context.Context, companyID string, asOf time.Time, userID string) (*domain.BalanceSheetReport, error)

	// ProfitAndLoss computes the grouped P&L for a period, including the
	// balancing figure.
	ProfitAndLoss(ctx context.Context, companyID string, from, to time.Time, userID string) (*domain.PAndLReport, error)

	// TrialBalance computes per-ledger period totals with footer sums.
	TrialBalance(ctx context.Context, companyID string, from, to time.Time, userID string) (*domain.TrialBalanceReport, error)
}
