package accounting

import (
	"fmt"
	"time"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/apperrors"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedDelta returns the contribution of one entry line to a ledger's
// balance given the ledger's natural side. Debit and credit are used as
// independent additive terms; no single-sidedness is enforced.
//
// Credit-normal ledgers (capital, loans, creditors, taxes, income, ...):
// credit - debit. Debit-normal ledgers (assets, cash, purchases, expenses):
// debit - credit.
func SignedDelta(side domain.BalanceSide, debit, credit decimal.Decimal) (decimal.Decimal, error) {
	switch side {
	case domain.CreditNormal:
		return credit.Sub(debit), nil
	case domain.DebitNormal:
		return debit.Sub(credit), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unknown balance side %q", apperrors.ErrInvalidInput, side)
	}
}

// EvaluateBalanceAsOf computes a ledger's balance as of a date:
// opening balance plus every entry dated on or before asOf. A ledger with
// no matching entries returns exactly its opening balance.
func EvaluateBalanceAsOf(ledger domain.Ledger, lines []domain.EntryLine, asOf time.Time) (decimal.Decimal, error) {
	if asOf.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: as-of date is required", apperrors.ErrInvalidInput)
	}
	return evaluate(ledger, lines, func(d time.Time) bool {
		return !d.After(asOf)
	})
}

// EvaluateBalanceBetween computes a ledger's balance over a date range:
// opening balance plus every entry with from <= date <= to.
func EvaluateBalanceBetween(ledger domain.Ledger, lines []domain.EntryLine, from, to time.Time) (decimal.Decimal, error) {
	if from.IsZero() || to.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: from and to dates are required", apperrors.ErrInvalidInput)
	}
	if from.After(to) {
		return decimal.Zero, fmt.Errorf("%w: from date %s is after to date %s", apperrors.ErrInvalidInput, from.Format("2006-01-02"), to.Format("2006-01-02"))
	}
	return evaluate(ledger, lines, func(d time.Time) bool {
		return !d.Before(from) && !d.After(to)
	})
}

func evaluate(ledger domain.Ledger, lines []domain.EntryLine, inRange func(time.Time) bool) (decimal.Decimal, error) {
	if ledger.LedgerID == "" {
		return decimal.Zero, fmt.Errorf("%w: ledger id is required", apperrors.ErrInvalidInput)
	}
	cls, ok := domain.Classify(ledger.LedgerType)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: unknown ledger type %q for ledger %s", apperrors.ErrInvalidInput, ledger.LedgerType, ledger.LedgerID)
	}

	balance := ledger.OpeningBalance
	for _, line := range lines {
		if line.LedgerID != ledger.LedgerID {
			return decimal.Zero, fmt.Errorf("%w: entry %s belongs to ledger %s, not %s", apperrors.ErrInvalidInput, line.EntryID, line.LedgerID, ledger.LedgerID)
		}
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: entry %s has a negative amount", apperrors.ErrInvalidInput, line.EntryID)
		}
		if !inRange(line.VoucherDate) {
			continue
		}
		delta, err := SignedDelta(cls.Side, line.Debit, line.Credit)
		if err != nil {
			return decimal.Zero, err
		}
		balance = balance.Add(delta)
	}
	return balance, nil
}
