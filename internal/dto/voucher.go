package dto

import (
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateVoucherEntryRequest is one debit-or-credit line of a new voucher.
type CreateVoucherEntryRequest struct {
	LedgerID string          `json:"ledgerID" binding:"required"`
	Debit    decimal.Decimal `json:"debit"`
	Credit   decimal.Decimal `json:"credit"`
}

// CreateVoucherRequest defines the expected JSON body for recording a
// voucher with its double-entry lines.
type CreateVoucherRequest struct {
	VoucherDate string                      `json:"voucherDate" binding:"required"` // YYYY-MM-DD
	VoucherType string                      `json:"voucherType" binding:"required,oneof=SALES PURCHASE PAYMENT RECEIPT JOURNAL CONTRA"`
	Narration   string                      `json:"narration" binding:"omitempty,max=500"`
	Entries     []CreateVoucherEntryRequest `json:"entries" binding:"required,min=2,dive"`
}

// VoucherEntryResponse is one persisted voucher line.
type VoucherEntryResponse struct {
	EntryID  string          `json:"entryID"`
	LedgerID string          `json:"ledgerID"`
	Debit    decimal.Decimal `json:"debit"`
	Credit   decimal.Decimal `json:"credit"`
}

// VoucherResponse defines the JSON shape returned for a voucher.
type VoucherResponse struct {
	VoucherID   string                 `json:"voucherID"`
	CompanyID   string                 `json:"companyID"`
	VoucherDate string                 `json:"voucherDate"`
	VoucherType string                 `json:"voucherType"`
	Narration   string                 `json:"narration,omitempty"`
	TotalAmount decimal.Decimal        `json:"totalAmount"`
	Entries     []VoucherEntryResponse `json:"entries,omitempty"`
}

// ToVoucherResponse converts a voucher and (optionally) its entries to the
// response DTO. Amounts are rounded to two decimals at this edge only.
func ToVoucherResponse(v domain.Voucher, entries []domain.VoucherEntry) VoucherResponse {
	resp := VoucherResponse{
		VoucherID:   v.VoucherID,
		CompanyID:   v.CompanyID,
		VoucherDate: v.VoucherDate.Format("2006-01-02"),
		VoucherType: string(v.VoucherType),
		Narration:   v.Narration,
		TotalAmount: v.TotalAmount.Round(2),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, VoucherEntryResponse{
			EntryID:  e.EntryID,
			LedgerID: e.LedgerID,
			Debit:    e.Debit.Round(2),
			Credit:   e.Credit.Round(2),
		})
	}
	return resp
}

// ListVouchersResponse wraps a voucher page with its continuation token.
type ListVouchersResponse struct {
	Vouchers  []VoucherResponse `json:"vouchers"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToListVouchersResponse converts a voucher page to the response DTO.
func ToListVouchersResponse(vs []domain.Voucher, nextToken *string) ListVouchersResponse {
	resp := ListVouchersResponse{
		Vouchers:  make([]VoucherResponse, len(vs)),
		NextToken: nextToken,
	}
	for i, v := range vs {
		resp.Vouchers[i] = ToVoucherResponse(v, nil)
	}
	return resp
}
