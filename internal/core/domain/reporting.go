package domain

import (
	"github.com/shopspring/decimal"
)

// LedgerBalance pairs a ledger with its evaluated balance for one report call.
type LedgerBalance struct {
	Ledger  Ledger          `json:"ledger"`
	Balance decimal.Decimal `json:"balance"`
}

// LedgerGroup combines the ledgers sharing one display group. Groups are
// derived fresh on every report invocation and never persisted or shared.
type LedgerGroup struct {
	Label   string          `json:"label"`
	Section Section         `json:"section"`
	Members []LedgerBalance `json:"members"`
	Total   decimal.Decimal `json:"total"`
}

// StatementSide identifies which side of a statement a balancing figure
// is applied to.
type StatementSide string

const (
	SideLiabilities StatementSide = "LIABILITIES"
	SideAssets      StatementSide = "ASSETS"
	SideIncome      StatementSide = "INCOME"
	SideExpenditure StatementSide = "EXPENDITURE"
)

// BalancingLine is the profit-or-loss figure inserted into a statement so
// both sides total identically. A zero Amount means no line is shown.
type BalancingLine struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	Side   StatementSide   `json:"side"`
}

// BalanceSheetReport is the computed balance sheet for one company as of a
// date. DisplayTotal is the common grand total both sides show after the
// balancing line is applied.
type BalanceSheetReport struct {
	LiabilityGroups  []LedgerGroup   `json:"liabilityGroups"`
	AssetGroups      []LedgerGroup   `json:"assetGroups"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	Balancing        BalancingLine   `json:"balancing"`
	DisplayTotal     decimal.Decimal `json:"displayTotal"`
	AmountInWords    string          `json:"amountInWords"`
}

// PAndLReport is the computed profit and loss statement for a period.
type PAndLReport struct {
	ExpenseGroups []LedgerGroup   `json:"expenseGroups"`
	IncomeGroups  []LedgerGroup   `json:"incomeGroups"`
	TotalExpense  decimal.Decimal `json:"totalExpense"`
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	Balancing     BalancingLine   `json:"balancing"`
	DisplayTotal  decimal.Decimal `json:"displayTotal"`
}

// TrialBalanceRow is one ledger's period activity and closing balance.
// Closing uses the uniform opening + debit - credit rule for every ledger
// type; this intentionally differs from the type-aware evaluation used by
// the balance sheet and P&L.
type TrialBalanceRow struct {
	LedgerID       string          `json:"ledgerID"`
	LedgerName     string          `json:"ledgerName"`
	LedgerType     LedgerType      `json:"ledgerType"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// TrialBalanceTotals are the column footers: period debit/credit totals and
// the closing balances split into aggregate Dr (positive) and Cr (negative,
// as absolute value) sums.
type TrialBalanceTotals struct {
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	ClosingDebit  decimal.Decimal `json:"closingDebit"`
	ClosingCredit decimal.Decimal `json:"closingCredit"`
}

// TrialBalanceReport bundles rows with their footer totals.
type TrialBalanceReport struct {
	Rows   []TrialBalanceRow  `json:"rows"`
	Totals TrialBalanceTotals `json:"totals"`
}
