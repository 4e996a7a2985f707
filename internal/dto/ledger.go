package dto

import (
	"time"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerRequest defines the expected JSON body for creating a ledger.
// LedgerType must be one of the classification table's types (enforced by
// the registered ledgertype validation).
type CreateLedgerRequest struct {
	Name           string          `json:"name" binding:"required,min=1,max=100"`
	LedgerType     string          `json:"ledgerType" binding:"required,ledgertype"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// UpdateLedgerRequest defines the JSON body for updating a ledger. Only
// provided fields are changed; the ledger type is immutable once created
// because historic reports depend on it.
type UpdateLedgerRequest struct {
	Name           *string          `json:"name" binding:"omitempty,min=1,max=100"`
	OpeningBalance *decimal.Decimal `json:"openingBalance"`
}

// LedgerResponse defines the JSON shape returned for a ledger.
type LedgerResponse struct {
	LedgerID       string          `json:"ledgerID"`
	CompanyID      string          `json:"companyID"`
	Name           string          `json:"name"`
	LedgerType     string          `json:"ledgerType"`
	GroupLabel     string          `json:"groupLabel"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToLedgerResponse converts a domain Ledger to its response DTO.
func ToLedgerResponse(l domain.Ledger) LedgerResponse {
	return LedgerResponse{
		LedgerID:       l.LedgerID,
		CompanyID:      l.CompanyID,
		Name:           l.Name,
		LedgerType:     string(l.LedgerType),
		GroupLabel:     domain.GroupLabelFor(l.LedgerType),
		OpeningBalance: l.OpeningBalance.Round(2),
		IsActive:       l.IsActive,
		CreatedAt:      l.CreatedAt,
	}
}

// ToLedgerResponseSlice converts a slice of ledgers to response DTOs.
func ToLedgerResponseSlice(ls []domain.Ledger) []LedgerResponse {
	out := make([]LedgerResponse, len(ls))
	for i, l := range ls {
		out[i] = ToLedgerResponse(l)
	}
	return out
}

// ListLedgersResponse wraps the ledger list payload.
type ListLedgersResponse struct {
	Ledgers []LedgerResponse `json:"ledgers"`
}

// LedgerStatementLine is one entry on a ledger statement with the balance
// after applying it.
type LedgerStatementLine struct {
	EntryID        string          `json:"entryID"`
	VoucherID      string          `json:"voucherID"`
	VoucherDate    string          `json:"voucherDate"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LedgerStatement is a ledger's activity over a period with running
// balances on the ledger's natural side.
type LedgerStatement struct {
	Ledger         LedgerResponse        `json:"ledger"`
	FromDate       string                `json:"fromDate"`
	ToDate         string                `json:"toDate"`
	OpeningBalance decimal.Decimal       `json:"openingBalance"`
	Lines          []LedgerStatementLine `json:"lines"`
	ClosingBalance decimal.Decimal       `json:"closingBalance"`
}
