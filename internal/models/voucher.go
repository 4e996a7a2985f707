package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Voucher represents a single balanced business document.
type Voucher struct {
	VoucherID   string          `db:"voucher_id"`
	CompanyID   string          `db:"company_id"`
	VoucherDate time.Time       `db:"voucher_date"`
	VoucherType string          `db:"voucher_type"`
	Narration   string          `db:"narration"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	AuditFields
}

// VoucherEntry is one debit-or-credit line of a voucher.
type VoucherEntry struct {
	EntryID   string          `db:"entry_id"`
	VoucherID string          `db:"voucher_id"`
	LedgerID  string          `db:"ledger_id"`
	Debit     decimal.Decimal `db:"debit"`
	Credit    decimal.Decimal `db:"credit"`
	AuditFields
}

// EntryLine is a voucher entry joined with its voucher's date, as the
// reporting queries return it.
type EntryLine struct {
	VoucherEntry
	VoucherDate time.Time `db:"voucher_date"`
}
