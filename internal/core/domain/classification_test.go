package domain_test

import (
	"testing"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_EveryKnownTypeMapped(t *testing.T) {
	for _, lt := range domain.AllLedgerTypes() {
		cls, ok := domain.Classify(lt)
		require.True(t, ok, "type %s has no classification", lt)
		assert.NotEmpty(t, cls.GroupLabel, "type %s has no group label", lt)
		switch cls.Section {
		case domain.SectionLiability, domain.SectionAsset, domain.SectionIncome, domain.SectionExpense:
		default:
			t.Errorf("type %s has unexpected section %q", lt, cls.Section)
		}
		switch cls.Side {
		case domain.DebitNormal, domain.CreditNormal:
		default:
			t.Errorf("type %s has unexpected side %q", lt, cls.Side)
		}
	}
}

func TestClassify_SidesMatchSections(t *testing.T) {
	// Income sections are credit normal and expense sections debit normal
	// without exception. Liability and asset sections follow their side as
	// well in the current table.
	for _, lt := range domain.AllLedgerTypes() {
		cls, _ := domain.Classify(lt)
		switch cls.Section {
		case domain.SectionIncome:
			assert.Equal(t, domain.CreditNormal, cls.Side, "income type %s", lt)
		case domain.SectionExpense:
			assert.Equal(t, domain.DebitNormal, cls.Side, "expense type %s", lt)
		case domain.SectionLiability:
			assert.Equal(t, domain.CreditNormal, cls.Side, "liability type %s", lt)
		case domain.SectionAsset:
			assert.Equal(t, domain.DebitNormal, cls.Side, "asset type %s", lt)
		}
	}
}

func TestClassify_UnknownType(t *testing.T) {
	_, ok := domain.Classify("made_up")
	assert.False(t, ok)
}

func TestGroupLabelFor_FallsBackToRawType(t *testing.T) {
	assert.Equal(t, "Capital Account", domain.GroupLabelFor(domain.CapitalAccount))
	assert.Equal(t, "made_up", domain.GroupLabelFor("made_up"))
}

func TestGroupOrderCoversEverySectionLabel(t *testing.T) {
	orders := map[domain.Section][]string{
		domain.SectionLiability: domain.LiabilityGroupOrder,
		domain.SectionAsset:     domain.AssetGroupOrder,
		domain.SectionIncome:    domain.IncomeGroupOrder,
		domain.SectionExpense:   domain.ExpenseGroupOrder,
	}
	for section, order := range orders {
		listed := make(map[string]bool, len(order))
		for _, label := range order {
			listed[label] = true
		}
		for _, lt := range domain.LedgerTypesForSections(section) {
			cls, _ := domain.Classify(lt)
			assert.True(t, listed[cls.GroupLabel], "label %q of type %s missing from %s order", cls.GroupLabel, lt, section)
		}
	}
}

func TestLedgerTypesForSections(t *testing.T) {
	bsTypes := domain.LedgerTypesForSections(domain.SectionLiability, domain.SectionAsset)
	plTypes := domain.LedgerTypesForSections(domain.SectionIncome, domain.SectionExpense)

	assert.Len(t, bsTypes, 22)
	assert.Len(t, plTypes, 6)
	assert.Contains(t, bsTypes, domain.CapitalAccount)
	assert.Contains(t, plTypes, domain.SalesAccounts)
	assert.NotContains(t, bsTypes, domain.SalesAccounts)
}

func TestIsValidLedgerType(t *testing.T) {
	assert.True(t, domain.IsValidLedgerType(domain.SundryDebtors))
	assert.False(t, domain.IsValidLedgerType("nope"))
}
