package models

import (
	"github.com/shopspring/decimal"
)

// Ledger represents one account head in a company's chart of accounts.
type Ledger struct {
	LedgerID       string          `db:"ledger_id"`
	CompanyID      string          `db:"company_id"`
	Name           string          `db:"name"`
	LedgerType     string          `db:"ledger_type"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}
