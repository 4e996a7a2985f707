package accounting_test

import (
	"testing"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBalanceSheetFigure_AssetsExceedLiabilities(t *testing.T) {
	line := accounting.BalanceSheetFigure(decimal.NewFromInt(15000), decimal.NewFromInt(23000))

	assert.Equal(t, accounting.LabelLossForYear, line.Label)
	assert.Equal(t, domain.SideAssets, line.Side)
	assert.True(t, line.Amount.Equal(decimal.NewFromInt(8000)))
}

func TestBalanceSheetFigure_LiabilitiesExceedAssets(t *testing.T) {
	line := accounting.BalanceSheetFigure(decimal.NewFromInt(30000), decimal.NewFromInt(18000))

	assert.Equal(t, accounting.LabelProfitForYear, line.Label)
	assert.Equal(t, domain.SideLiabilities, line.Side)
	assert.True(t, line.Amount.Equal(decimal.NewFromInt(12000)))
}

func TestBalanceSheetFigure_Balanced(t *testing.T) {
	line := accounting.BalanceSheetFigure(decimal.NewFromInt(500), decimal.NewFromInt(500))

	assert.Empty(t, line.Label)
	assert.True(t, line.Amount.IsZero())
}

func TestApplyBalanceSheetFigure_SidesAgree(t *testing.T) {
	cases := []struct {
		name        string
		liabilities int64
		assets      int64
		display     int64
	}{
		{"loss side", 15000, 23000, 23000},
		{"profit side", 30000, 18000, 30000},
		{"already balanced", 700, 700, 700},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			liabilities := decimal.NewFromInt(tc.liabilities)
			assets := decimal.NewFromInt(tc.assets)
			line := accounting.BalanceSheetFigure(liabilities, assets)
			liabDisplay, assetDisplay := accounting.ApplyBalanceSheetFigure(liabilities, assets, line)
			assert.True(t, liabDisplay.Equal(assetDisplay), "liabilities %s vs assets %s", liabDisplay, assetDisplay)
			// The plug tops up the deficient side, so both columns print
			// the larger of the two raw totals.
			assert.True(t, liabDisplay.Equal(decimal.NewFromInt(tc.display)), "display %s", liabDisplay)
		})
	}
}

func TestProfitAndLossFigure_NetProfit(t *testing.T) {
	line := accounting.ProfitAndLossFigure(decimal.NewFromInt(50000), decimal.NewFromInt(38000))

	assert.Equal(t, accounting.LabelNetProfit, line.Label)
	assert.Equal(t, domain.SideExpenditure, line.Side)
	assert.True(t, line.Amount.Equal(decimal.NewFromInt(12000)))
}

func TestProfitAndLossFigure_NetLoss(t *testing.T) {
	line := accounting.ProfitAndLossFigure(decimal.NewFromInt(10000), decimal.NewFromInt(14000))

	assert.Equal(t, accounting.LabelNetLoss, line.Label)
	assert.Equal(t, domain.SideIncome, line.Side)
	assert.True(t, line.Amount.Equal(decimal.NewFromInt(4000)))
}

func TestProfitAndLossFigure_BreakEven(t *testing.T) {
	line := accounting.ProfitAndLossFigure(decimal.NewFromInt(9000), decimal.NewFromInt(9000))

	assert.Empty(t, line.Label)
	assert.True(t, line.Amount.IsZero())
}

func TestApplyProfitAndLossFigure_SidesAgree(t *testing.T) {
	income := decimal.NewFromInt(50000)
	expense := decimal.NewFromInt(38000)
	line := accounting.ProfitAndLossFigure(income, expense)

	expDisplay, incDisplay := accounting.ApplyProfitAndLossFigure(expense, income, line)
	assert.True(t, expDisplay.Equal(incDisplay))
	assert.True(t, expDisplay.Equal(decimal.NewFromInt(50000)))
}
