package accounting

import (
	"sort"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GroupBalances buckets ledger balances by display group label, sums each
// group, and orders groups by the fixed presentation list for the section.
// Groups whose label is missing from the list sort after all listed groups,
// keeping their relative order of first appearance (stable sort with a
// not-found rank).
func GroupBalances(balances []domain.LedgerBalance, section domain.Section, order []string) []domain.LedgerGroup {
	rank := make(map[string]int, len(order))
	for i, label := range order {
		rank[label] = i
	}

	index := make(map[string]int)
	groups := make([]domain.LedgerGroup, 0)
	for _, lb := range balances {
		label := domain.GroupLabelFor(lb.Ledger.LedgerType)
		i, seen := index[label]
		if !seen {
			i = len(groups)
			index[label] = i
			groups = append(groups, domain.LedgerGroup{
				Label:   label,
				Section: section,
				Total:   decimal.Zero,
			})
		}
		groups[i].Members = append(groups[i].Members, lb)
		groups[i].Total = groups[i].Total.Add(lb.Balance)
	}

	notFound := len(order)
	sort.SliceStable(groups, func(a, b int) bool {
		ra, ok := rank[groups[a].Label]
		if !ok {
			ra = notFound
		}
		rb, ok := rank[groups[b].Label]
		if !ok {
			rb = notFound
		}
		return ra < rb
	})
	return groups
}

// SumGroups returns the combined total of a list of groups.
func SumGroups(groups []domain.LedgerGroup) decimal.Decimal {
	total := decimal.Zero
	for _, g := range groups {
		total = total.Add(g.Total)
	}
	return total
}
