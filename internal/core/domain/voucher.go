package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType indicates the kind of business document a voucher records.
type VoucherType string

const (
	VoucherSales    VoucherType = "SALES"
	VoucherPurchase VoucherType = "PURCHASE"
	VoucherPayment  VoucherType = "PAYMENT"
	VoucherReceipt  VoucherType = "RECEIPT"
	VoucherJournal  VoucherType = "JOURNAL"
	VoucherContra   VoucherType = "CONTRA"
)

// Voucher represents a recorded transaction document (invoice, payment,
// journal, ...). The reporting engine only reads CompanyID and VoucherDate;
// everything else is opaque to it.
type Voucher struct {
	VoucherID   string          `json:"voucherID"` // Primary Key (UUID)
	CompanyID   string          `json:"companyID"` // FK -> companies.company_id (NON-NULL)
	VoucherDate time.Time       `json:"voucherDate"`
	VoucherType VoucherType     `json:"voucherType"`
	Narration   string          `json:"narration"`   // Nullable user description
	TotalAmount decimal.Decimal `json:"totalAmount"` // Sum of debit lines at entry time
	AuditFields
}

// VoucherEntry is one debit-or-credit posting against one ledger within one
// voucher. Normally exactly one of Debit/Credit is non-zero, but both may
// be present; the engine treats them as independent additive terms and
// never mutates an entry once created.
type VoucherEntry struct {
	EntryID   string          `json:"entryID"`   // Primary Key (UUID)
	VoucherID string          `json:"voucherID"` // FK -> vouchers.voucher_id (Not Null)
	LedgerID  string          `json:"ledgerID"`  // FK -> ledgers.ledger_id (Not Null)
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	AuditFields
}

// EntryLine is a voucher entry joined with its parent voucher's date, the
// shape the reporting engine consumes when evaluating balances.
type EntryLine struct {
	VoucherEntry
	VoucherDate time.Time `json:"voucherDate"`
}
