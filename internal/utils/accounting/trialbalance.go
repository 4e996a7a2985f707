package accounting

import (
	"fmt"
	"time"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/apperrors"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalance aggregates period debit/credit totals and a closing balance
// per ledger. Unlike the balance sheet evaluation, the closing balance here
// is opening + totalDebit - totalCredit uniformly for every ledger,
// regardless of its natural side. The two computations intentionally
// disagree for credit-normal ledgers with activity.
//
// An entry referencing a ledger absent from ledgers aborts the whole
// report with a data source error; nothing is silently dropped.
func TrialBalance(ledgers []domain.Ledger, lines []domain.EntryLine, from, to time.Time) (domain.TrialBalanceReport, error) {
	if from.IsZero() || to.IsZero() {
		return domain.TrialBalanceReport{}, fmt.Errorf("%w: from and to dates are required", apperrors.ErrInvalidInput)
	}
	if from.After(to) {
		return domain.TrialBalanceReport{}, fmt.Errorf("%w: from date %s is after to date %s", apperrors.ErrInvalidInput, from.Format("2006-01-02"), to.Format("2006-01-02"))
	}

	byLedger := make(map[string]int, len(ledgers))
	rows := make([]domain.TrialBalanceRow, len(ledgers))
	for i, l := range ledgers {
		byLedger[l.LedgerID] = i
		rows[i] = domain.TrialBalanceRow{
			LedgerID:       l.LedgerID,
			LedgerName:     l.Name,
			LedgerType:     l.LedgerType,
			OpeningBalance: l.OpeningBalance,
			TotalDebit:     decimal.Zero,
			TotalCredit:    decimal.Zero,
		}
	}

	for _, line := range lines {
		i, ok := byLedger[line.LedgerID]
		if !ok {
			return domain.TrialBalanceReport{}, fmt.Errorf("%w: entry %s references unknown ledger %s", apperrors.ErrDataSource, line.EntryID, line.LedgerID)
		}
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return domain.TrialBalanceReport{}, fmt.Errorf("%w: entry %s has a negative amount", apperrors.ErrInvalidInput, line.EntryID)
		}
		if line.VoucherDate.Before(from) || line.VoucherDate.After(to) {
			continue
		}
		rows[i].TotalDebit = rows[i].TotalDebit.Add(line.Debit)
		rows[i].TotalCredit = rows[i].TotalCredit.Add(line.Credit)
	}

	totals := domain.TrialBalanceTotals{
		Debit:         decimal.Zero,
		Credit:        decimal.Zero,
		ClosingDebit:  decimal.Zero,
		ClosingCredit: decimal.Zero,
	}
	for i := range rows {
		rows[i].ClosingBalance = rows[i].OpeningBalance.Add(rows[i].TotalDebit).Sub(rows[i].TotalCredit)
		totals.Debit = totals.Debit.Add(rows[i].TotalDebit)
		totals.Credit = totals.Credit.Add(rows[i].TotalCredit)
		if rows[i].ClosingBalance.IsNegative() {
			totals.ClosingCredit = totals.ClosingCredit.Add(rows[i].ClosingBalance.Abs())
		} else {
			totals.ClosingDebit = totals.ClosingDebit.Add(rows[i].ClosingBalance)
		}
	}

	return domain.TrialBalanceReport{Rows: rows, Totals: totals}, nil
}
