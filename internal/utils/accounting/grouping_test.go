package accounting_test

import (
	"testing"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func balanceFor(lt domain.LedgerType, amount int64) domain.LedgerBalance {
	return domain.LedgerBalance{
		Ledger: domain.Ledger{
			LedgerID:   string(lt) + "-id",
			Name:       string(lt),
			LedgerType: lt,
		},
		Balance: decimal.NewFromInt(amount),
	}
}

func TestGroupBalances_BucketsAndSums(t *testing.T) {
	balances := []domain.LedgerBalance{
		balanceFor(domain.CashInHand, 100),
		balanceFor(domain.FixedAssets, 5000),
		{
			Ledger:  domain.Ledger{LedgerID: "cash2", Name: "Petty Cash", LedgerType: domain.CashInHand},
			Balance: decimal.NewFromInt(40),
		},
	}

	groups := accounting.GroupBalances(balances, domain.SectionAsset, domain.AssetGroupOrder)

	require.Len(t, groups, 2)
	// Fixed Assets precedes Cash-in-Hand in the presentation order.
	assert.Equal(t, "Fixed Assets", groups[0].Label)
	assert.Equal(t, "Cash-in-Hand", groups[1].Label)
	assert.True(t, groups[1].Total.Equal(decimal.NewFromInt(140)), "got %s", groups[1].Total)
	assert.Len(t, groups[1].Members, 2)
	for _, g := range groups {
		assert.Equal(t, domain.SectionAsset, g.Section)
	}
}

func TestGroupBalances_OrderIndependentOfInput(t *testing.T) {
	forward := []domain.LedgerBalance{
		balanceFor(domain.CapitalAccount, 100),
		balanceFor(domain.SundryCreditors, 200),
		balanceFor(domain.Provisions, 300),
	}
	shuffled := []domain.LedgerBalance{forward[2], forward[0], forward[1]}

	a := accounting.GroupBalances(forward, domain.SectionLiability, domain.LiabilityGroupOrder)
	b := accounting.GroupBalances(shuffled, domain.SectionLiability, domain.LiabilityGroupOrder)

	require.Len(t, a, 3)
	require.Len(t, b, 3)
	for i := range a {
		assert.Equal(t, a[i].Label, b[i].Label)
	}
	assert.Equal(t, "Capital Account", a[0].Label)
}

func TestGroupBalances_UnlistedGroupsSortLast(t *testing.T) {
	balances := []domain.LedgerBalance{
		{
			Ledger:  domain.Ledger{LedgerID: "x", Name: "Oddball", LedgerType: "custom_thing"},
			Balance: decimal.NewFromInt(10),
		},
		balanceFor(domain.CapitalAccount, 100),
	}

	groups := accounting.GroupBalances(balances, domain.SectionLiability, domain.LiabilityGroupOrder)

	require.Len(t, groups, 2)
	assert.Equal(t, "Capital Account", groups[0].Label)
	// Unmapped types fall back to the raw type string as their label.
	assert.Equal(t, "custom_thing", groups[1].Label)
}

func TestGroupBalances_NegativeTotalsPreserved(t *testing.T) {
	balances := []domain.LedgerBalance{
		balanceFor(domain.BankAccounts, -2500),
	}

	groups := accounting.GroupBalances(balances, domain.SectionAsset, domain.AssetGroupOrder)

	require.Len(t, groups, 1)
	assert.True(t, groups[0].Total.Equal(decimal.NewFromInt(-2500)))
}

func TestSumGroups(t *testing.T) {
	groups := accounting.GroupBalances([]domain.LedgerBalance{
		balanceFor(domain.CashInHand, 100),
		balanceFor(domain.FixedAssets, -30),
	}, domain.SectionAsset, domain.AssetGroupOrder)

	total := accounting.SumGroups(groups)
	assert.True(t, total.Equal(decimal.NewFromInt(70)), "got %s", total)
}
