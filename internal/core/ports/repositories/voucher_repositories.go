package repositories

import (
	"context"
	"time"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
)

// VoucherRepository defines persistence operations for vouchers and their
// double-entry lines.
type VoucherRepository interface {
	// SaveVoucher persists the voucher and all its entries atomically.
	SaveVoucher(ctx context.Context, voucher domain.Voucher, entries []domain.VoucherEntry) error
	FindVoucherByID(ctx context.Context, companyID, voucherID string) (*domain.Voucher, error)
	FindEntriesByVoucherID(ctx context.Context, voucherID string) ([]domain.VoucherEntry, error)
	// ListVouchersByCompany pages through a company's vouchers, newest
	// first. nextToken is an opaque cursor; nil means first page.
	ListVouchersByCompany(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.Voucher, *string, error)
	// ListEntryLinesByLedger returns a ledger's entries joined with their
	// voucher dates, oldest first, for statement rendering.
	ListEntryLinesByLedger(ctx context.Context, companyID, ledgerID string, from, to time.Time) ([]domain.EntryLine, error)
}
