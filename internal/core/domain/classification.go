package domain

// Section is the financial-statement section a ledger type reports under.
type Section string

const (
	SectionLiability Section = "LIABILITY"
	SectionAsset     Section = "ASSET"
	SectionIncome    Section = "INCOME"
	SectionExpense   Section = "EXPENSE"
)

// BalanceSide is a ledger's natural balance side: whether its balance
// conventionally increases with debits or with credits.
type BalanceSide string

const (
	DebitNormal  BalanceSide = "DEBIT"
	CreditNormal BalanceSide = "CREDIT"
)

// Classification maps a ledger type to its display group, statement
// section and natural balance side.
type Classification struct {
	GroupLabel string
	Section    Section
	Side       BalanceSide
}

// classifications is the static ledger-type classification table. Adding a
// ledger type is a one-line data change here, not a logic change.
var classifications = map[LedgerType]Classification{
	CapitalAccount:     {GroupLabel: "Capital Account", Section: SectionLiability, Side: CreditNormal},
	ReservesSurplus:    {GroupLabel: "Reserves & Surplus", Section: SectionLiability, Side: CreditNormal},
	LoansLiability:     {GroupLabel: "Loans (Liability)", Section: SectionLiability, Side: CreditNormal},
	SecuredLoans:       {GroupLabel: "Secured Loans", Section: SectionLiability, Side: CreditNormal},
	UnsecuredLoans:     {GroupLabel: "Unsecured Loans", Section: SectionLiability, Side: CreditNormal},
	BankOD:             {GroupLabel: "Bank OD A/c", Section: SectionLiability, Side: CreditNormal},
	CurrentLiabilities: {GroupLabel: "Current Liabilities", Section: SectionLiability, Side: CreditNormal},
	SundryCreditors:    {GroupLabel: "Sundry Creditors", Section: SectionLiability, Side: CreditNormal},
	DutiesTaxes:        {GroupLabel: "Duties & Taxes", Section: SectionLiability, Side: CreditNormal},
	Provisions:         {GroupLabel: "Provisions", Section: SectionLiability, Side: CreditNormal},
	SuspenseAccount:    {GroupLabel: "Suspense A/c", Section: SectionLiability, Side: CreditNormal},

	FixedAssets:        {GroupLabel: "Fixed Assets", Section: SectionAsset, Side: DebitNormal},
	Investments:        {GroupLabel: "Investments", Section: SectionAsset, Side: DebitNormal},
	CurrentAssets:      {GroupLabel: "Current Assets", Section: SectionAsset, Side: DebitNormal},
	SundryDebtors:      {GroupLabel: "Sundry Debtors", Section: SectionAsset, Side: DebitNormal},
	CashInHand:         {GroupLabel: "Cash-in-Hand", Section: SectionAsset, Side: DebitNormal},
	BankAccounts:       {GroupLabel: "Bank Accounts", Section: SectionAsset, Side: DebitNormal},
	StockInHand:        {GroupLabel: "Stock-in-Hand", Section: SectionAsset, Side: DebitNormal},
	DepositsAsset:      {GroupLabel: "Deposits (Asset)", Section: SectionAsset, Side: DebitNormal},
	LoansAdvancesAsset: {GroupLabel: "Loans & Advances (Asset)", Section: SectionAsset, Side: DebitNormal},
	MiscExpensesAsset:  {GroupLabel: "Misc. Expenses (Asset)", Section: SectionAsset, Side: DebitNormal},
	BranchDivisions:    {GroupLabel: "Branch / Divisions", Section: SectionAsset, Side: DebitNormal},

	SalesAccounts:   {GroupLabel: "Sales Accounts", Section: SectionIncome, Side: CreditNormal},
	DirectIncomes:   {GroupLabel: "Direct Incomes", Section: SectionIncome, Side: CreditNormal},
	IndirectIncomes: {GroupLabel: "Indirect Incomes", Section: SectionIncome, Side: CreditNormal},

	PurchaseAccounts: {GroupLabel: "Purchase Accounts", Section: SectionExpense, Side: DebitNormal},
	DirectExpenses:   {GroupLabel: "Direct Expenses", Section: SectionExpense, Side: DebitNormal},
	IndirectExpenses: {GroupLabel: "Indirect Expenses", Section: SectionExpense, Side: DebitNormal},
}

// Presentation order of groups per statement side. Groups reported under a
// section but missing from its list are appended after the listed ones in
// order of first appearance.
var (
	LiabilityGroupOrder = []string{
		"Capital Account",
		"Loans (Liability)",
		"Secured Loans",
		"Unsecured Loans",
		"Current Liabilities",
		"Sundry Creditors",
		"Duties & Taxes",
		"Bank OD A/c",
		"Provisions",
		"Reserves & Surplus",
		"Suspense A/c",
	}

	AssetGroupOrder = []string{
		"Fixed Assets",
		"Investments",
		"Current Assets",
		"Stock-in-Hand",
		"Sundry Debtors",
		"Cash-in-Hand",
		"Bank Accounts",
		"Deposits (Asset)",
		"Loans & Advances (Asset)",
		"Misc. Expenses (Asset)",
		"Branch / Divisions",
	}

	IncomeGroupOrder = []string{
		"Sales Accounts",
		"Direct Incomes",
		"Indirect Incomes",
	}

	ExpenseGroupOrder = []string{
		"Purchase Accounts",
		"Direct Expenses",
		"Indirect Expenses",
	}
)

// Classify looks up the classification for a ledger type. The second return
// value is false for unknown types.
func Classify(t LedgerType) (Classification, bool) {
	c, ok := classifications[t]
	return c, ok
}

// GroupLabelFor returns the display group label for a ledger type, falling
// back to the raw type string for unmapped types so an unknown ledger is
// still visible on a report rather than dropped.
func GroupLabelFor(t LedgerType) string {
	if c, ok := classifications[t]; ok {
		return c.GroupLabel
	}
	return string(t)
}

// LedgerTypesForSections returns every known ledger type belonging to one
// of the given sections, for scoping repository fetches.
func LedgerTypesForSections(sections ...Section) []LedgerType {
	want := make(map[Section]struct{}, len(sections))
	for _, s := range sections {
		want[s] = struct{}{}
	}
	var types []LedgerType
	for t, c := range classifications {
		if _, ok := want[c.Section]; ok {
			types = append(types, t)
		}
	}
	return types
}

// AllLedgerTypes returns every type in the classification table, in no
// particular order.
func AllLedgerTypes() []LedgerType {
	types := make([]LedgerType, 0, len(classifications))
	for t := range classifications {
		types = append(types, t)
	}
	return types
}

// IsValidLedgerType reports whether t appears in the classification table.
func IsValidLedgerType(t LedgerType) bool {
	_, ok := classifications[t]
	return ok
}

// GroupOrderForSection returns the fixed presentation order list for a section.
func GroupOrderForSection(s Section) []string {
	switch s {
	case SectionLiability:
		return LiabilityGroupOrder
	case SectionAsset:
		return AssetGroupOrder
	case SectionIncome:
		return IncomeGroupOrder
	case SectionExpense:
		return ExpenseGroupOrder
	}
	return nil
}
