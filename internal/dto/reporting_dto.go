package dto

import (
	"time"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// LedgerAmountResponse is one ledger line inside a statement group.
type LedgerAmountResponse struct {
	LedgerID string          `json:"ledgerID"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
}

// GroupResponse is one display group of a statement side.
type GroupResponse struct {
	Label   string                 `json:"label"`
	Total   decimal.Decimal        `json:"total"`
	Ledgers []LedgerAmountResponse `json:"ledgers"`
}

// BalancingLineResponse is the profit/loss figure shown on a statement.
type BalancingLineResponse struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	Side   string          `json:"side"`
}

// BalanceSheetResponse is the balance sheet report payload.
type BalanceSheetResponse struct {
	AsOf        string          `json:"asOf"`
	Liabilities []GroupResponse `json:"liabilities"`
	Assets      []GroupResponse `json:"assets"`
	Totals      struct {
		Liabilities        decimal.Decimal `json:"liabilities"`
		Assets             decimal.Decimal `json:"assets"`
		LiabilitiesDisplay decimal.Decimal `json:"liabilitiesDisplay"`
		AssetsDisplay      decimal.Decimal `json:"assetsDisplay"`
	} `json:"totals"`
	Balancing     *BalancingLineResponse `json:"balancing,omitempty"`
	AmountInWords string                 `json:"amountInWords"`
}

// ProfitAndLossResponse is the P&L report payload.
type ProfitAndLossResponse struct {
	FromDate    string          `json:"fromDate"`
	ToDate      string          `json:"toDate"`
	Expenditure []GroupResponse `json:"expenditure"`
	Income      []GroupResponse `json:"income"`
	Totals      struct {
		Expense            decimal.Decimal `json:"expense"`
		Income             decimal.Decimal `json:"income"`
		ExpenditureDisplay decimal.Decimal `json:"expenditureDisplay"`
		IncomeDisplay      decimal.Decimal `json:"incomeDisplay"`
	} `json:"totals"`
	Balancing *BalancingLineResponse `json:"balancing,omitempty"`
}

// TrialBalanceRowResponse is one row of the trial balance report.
type TrialBalanceRowResponse struct {
	LedgerID       string          `json:"ledgerID"`
	LedgerName     string          `json:"ledgerName"`
	LedgerType     string          `json:"ledgerType"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// TrialBalanceResponse is the trial balance report payload.
type TrialBalanceResponse struct {
	FromDate string                    `json:"fromDate"`
	ToDate   string                    `json:"toDate"`
	Rows     []TrialBalanceRowResponse `json:"rows"`
	Totals   struct {
		Debit         decimal.Decimal `json:"debit"`
		Credit        decimal.Decimal `json:"credit"`
		ClosingDebit  decimal.Decimal `json:"closingDebit"`
		ClosingCredit decimal.Decimal `json:"closingCredit"`
	} `json:"totals"`
}

func toGroupResponses(groups []domain.LedgerGroup) []GroupResponse {
	out := make([]GroupResponse, len(groups))
	for i, g := range groups {
		gr := GroupResponse{
			Label:   g.Label,
			Total:   g.Total.Round(2),
			Ledgers: make([]LedgerAmountResponse, len(g.Members)),
		}
		for j, m := range g.Members {
			gr.Ledgers[j] = LedgerAmountResponse{
				LedgerID: m.Ledger.LedgerID,
				Name:     m.Ledger.Name,
				Amount:   m.Balance.Round(2),
			}
		}
		out[i] = gr
	}
	return out
}

func toBalancingLineResponse(line domain.BalancingLine) *BalancingLineResponse {
	if line.Amount.IsZero() {
		return nil
	}
	return &BalancingLineResponse{
		Label:  line.Label,
		Amount: line.Amount.Round(2),
		Side:   string(line.Side),
	}
}

// ToBalanceSheetResponse converts the domain balance sheet to its response
// DTO, rounding to two decimals at this presentation edge.
func ToBalanceSheetResponse(report *domain.BalanceSheetReport, asOf time.Time) BalanceSheetResponse {
	resp := BalanceSheetResponse{
		AsOf:          asOf.Format("2006-01-02"),
		Liabilities:   toGroupResponses(report.LiabilityGroups),
		Assets:        toGroupResponses(report.AssetGroups),
		Balancing:     toBalancingLineResponse(report.Balancing),
		AmountInWords: report.AmountInWords,
	}
	liabDisplay, assetDisplay := accounting.ApplyBalanceSheetFigure(report.TotalLiabilities, report.TotalAssets, report.Balancing)
	resp.Totals.Liabilities = report.TotalLiabilities.Round(2)
	resp.Totals.Assets = report.TotalAssets.Round(2)
	resp.Totals.LiabilitiesDisplay = liabDisplay.Round(2)
	resp.Totals.AssetsDisplay = assetDisplay.Round(2)
	return resp
}

// ToProfitAndLossResponse converts the domain P&L to its response DTO.
func ToProfitAndLossResponse(report *domain.PAndLReport, from, to time.Time) ProfitAndLossResponse {
	resp := ProfitAndLossResponse{
		FromDate:    from.Format("2006-01-02"),
		ToDate:      to.Format("2006-01-02"),
		Expenditure: toGroupResponses(report.ExpenseGroups),
		Income:      toGroupResponses(report.IncomeGroups),
		Balancing:   toBalancingLineResponse(report.Balancing),
	}
	expDisplay, incDisplay := accounting.ApplyProfitAndLossFigure(report.TotalExpense, report.TotalIncome, report.Balancing)
	resp.Totals.Expense = report.TotalExpense.Round(2)
	resp.Totals.Income = report.TotalIncome.Round(2)
	resp.Totals.ExpenditureDisplay = expDisplay.Round(2)
	resp.Totals.IncomeDisplay = incDisplay.Round(2)
	return resp
}

// ToTrialBalanceResponse converts the domain trial balance to its response DTO.
func ToTrialBalanceResponse(report *domain.TrialBalanceReport, from, to time.Time) TrialBalanceResponse {
	resp := TrialBalanceResponse{
		FromDate: from.Format("2006-01-02"),
		ToDate:   to.Format("2006-01-02"),
		Rows:     make([]TrialBalanceRowResponse, len(report.Rows)),
	}
	for i, row := range report.Rows {
		resp.Rows[i] = TrialBalanceRowResponse{
			LedgerID:       row.LedgerID,
			LedgerName:     row.LedgerName,
			LedgerType:     string(row.LedgerType),
			OpeningBalance: row.OpeningBalance.Round(2),
			Debit:          row.TotalDebit.Round(2),
			Credit:         row.TotalCredit.Round(2),
			ClosingBalance: row.ClosingBalance.Round(2),
		}
	}
	resp.Totals.Debit = report.Totals.Debit.Round(2)
	resp.Totals.Credit = report.Totals.Credit.Round(2)
	resp.Totals.ClosingDebit = report.Totals.ClosingDebit.Round(2)
	resp.Totals.ClosingCredit = report.Totals.ClosingCredit.Round(2)
	return resp
}
