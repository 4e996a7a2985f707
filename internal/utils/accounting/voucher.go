package accounting

import (
	"fmt"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/apperrors"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ValidateVoucherEntries checks that a voucher's lines form a balanced
// double entry: at least two lines, no negative amounts, no empty lines,
// and total debits equal to total credits.
func ValidateVoucherEntries(entries []domain.VoucherEntry) error {
	if len(entries) < 2 {
		return fmt.Errorf("%w: voucher must have at least two entries", apperrors.ErrValidation)
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, e := range entries {
		if e.LedgerID == "" {
			return fmt.Errorf("%w: voucher entry is missing a ledger", apperrors.ErrValidation)
		}
		if e.Debit.IsNegative() || e.Credit.IsNegative() {
			return fmt.Errorf("%w: voucher entry amounts must not be negative", apperrors.ErrValidation)
		}
		if e.Debit.IsZero() && e.Credit.IsZero() {
			return fmt.Errorf("%w: voucher entry must carry a debit or a credit", apperrors.ErrValidation)
		}
		totalDebit = totalDebit.Add(e.Debit)
		totalCredit = totalCredit.Add(e.Credit)
	}

	if !totalDebit.Equal(totalCredit) {
		return fmt.Errorf("%w: voucher does not balance: debit %s vs credit %s", apperrors.ErrValidation, totalDebit.String(), totalCredit.String())
	}
	return nil
}
