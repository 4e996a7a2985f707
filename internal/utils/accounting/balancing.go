package accounting

import (
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Balancing-figure labels as they appear on the printed statements.
const (
	LabelProfitForYear = "Profit for the Year"
	LabelLossForYear   = "Loss for the Year"
	LabelNetProfit     = "Net Profit"
	LabelNetLoss       = "Net Loss"
)

// BalanceSheetFigure computes the balance sheet plug from the two side
// totals. difference = assets - liabilities; a negative difference yields a
// "Profit for the Year" line on the liabilities side, a positive one a
// "Loss for the Year" line on the assets side. This inverts the
// conventional Assets = Liabilities + Capital + Profit expectation but is
// what the legacy reports print; it must not be "corrected" without
// sign-off from the accounts team.
func BalanceSheetFigure(totalLiabilities, totalAssets decimal.Decimal) domain.BalancingLine {
	difference := totalAssets.Sub(totalLiabilities)
	switch {
	case difference.IsNegative():
		return domain.BalancingLine{
			Label:  LabelProfitForYear,
			Amount: difference.Abs(),
			Side:   domain.SideLiabilities,
		}
	case difference.IsPositive():
		return domain.BalancingLine{
			Label:  LabelLossForYear,
			Amount: difference,
			Side:   domain.SideAssets,
		}
	default:
		return domain.BalancingLine{}
	}
}

// ProfitAndLossFigure computes the P&L plug. A positive net profit adds a
// "Net Profit" line to the expenditure side; a negative one adds a
// "Net Loss" line to the income side.
func ProfitAndLossFigure(totalIncome, totalExpense decimal.Decimal) domain.BalancingLine {
	netProfit := totalIncome.Sub(totalExpense)
	switch {
	case netProfit.IsPositive():
		return domain.BalancingLine{
			Label:  LabelNetProfit,
			Amount: netProfit,
			Side:   domain.SideExpenditure,
		}
	case netProfit.IsNegative():
		return domain.BalancingLine{
			Label:  LabelNetLoss,
			Amount: netProfit.Abs(),
			Side:   domain.SideIncome,
		}
	default:
		return domain.BalancingLine{}
	}
}

// ApplyBalanceSheetFigure returns the displayed grand totals for both sides
// after the balancing line is applied. The line's Side names where it is
// printed, which under the legacy convention is the surplus side; the
// amount therefore tops up the opposite, deficient side so both displayed
// totals meet. The two results are always numerically equal; that equality
// is the report's core invariant.
func ApplyBalanceSheetFigure(totalLiabilities, totalAssets decimal.Decimal, line domain.BalancingLine) (liabilitiesDisplay, assetsDisplay decimal.Decimal) {
	liabilitiesDisplay = totalLiabilities
	assetsDisplay = totalAssets
	switch line.Side {
	case domain.SideAssets:
		liabilitiesDisplay = liabilitiesDisplay.Add(line.Amount)
	case domain.SideLiabilities:
		assetsDisplay = assetsDisplay.Add(line.Amount)
	}
	return liabilitiesDisplay, assetsDisplay
}

// ApplyProfitAndLossFigure returns the displayed totals for the expenditure
// and income sides after the balancing line is applied.
func ApplyProfitAndLossFigure(totalExpense, totalIncome decimal.Decimal, line domain.BalancingLine) (expenditureDisplay, incomeDisplay decimal.Decimal) {
	expenditureDisplay = totalExpense
	incomeDisplay = totalIncome
	switch line.Side {
	case domain.SideExpenditure:
		expenditureDisplay = expenditureDisplay.Add(line.Amount)
	case domain.SideIncome:
		incomeDisplay = incomeDisplay.Add(line.Amount)
	}
	return expenditureDisplay, incomeDisplay
}
