package domain

import (
	"github.com/shopspring/decimal"
)

// LedgerType is the chart-of-accounts category of a ledger. It determines
// both the display group a ledger reports under and its natural balance
// side (see classification.go).
type LedgerType string

const (
	// Liability-side types (credit-normal).
	CapitalAccount     LedgerType = "capital_account"
	ReservesSurplus    LedgerType = "reserves_surplus"
	LoansLiability     LedgerType = "loans_liability"
	SecuredLoans       LedgerType = "secured_loans"
	UnsecuredLoans     LedgerType = "unsecured_loans"
	BankOD             LedgerType = "bank_od"
	CurrentLiabilities LedgerType = "current_liabilities"
	SundryCreditors    LedgerType = "sundry_creditors"
	DutiesTaxes        LedgerType = "duties_taxes"
	Provisions         LedgerType = "provisions"
	SuspenseAccount    LedgerType = "suspense_account"

	// Asset-side types (debit-normal).
	FixedAssets        LedgerType = "fixed_assets"
	Investments        LedgerType = "investments"
	CurrentAssets      LedgerType = "current_assets"
	SundryDebtors      LedgerType = "sundry_debtors"
	CashInHand         LedgerType = "cash_in_hand"
	BankAccounts       LedgerType = "bank_accounts"
	StockInHand        LedgerType = "stock_in_hand"
	DepositsAsset      LedgerType = "deposits_asset"
	LoansAdvancesAsset LedgerType = "loans_advances_asset"
	MiscExpensesAsset  LedgerType = "misc_expenses_asset"
	BranchDivisions    LedgerType = "branch_divisions"

	// Income types (credit-normal).
	SalesAccounts   LedgerType = "sales_accounts"
	DirectIncomes   LedgerType = "direct_incomes"
	IndirectIncomes LedgerType = "indirect_incomes"

	// Expense types (debit-normal).
	PurchaseAccounts LedgerType = "purchase_accounts"
	DirectExpenses   LedgerType = "direct_expenses"
	IndirectExpenses LedgerType = "indirect_expenses"
)

// Ledger represents one account in a company's chart of accounts
// (a customer, a bank account, an expense head, ...).
type Ledger struct {
	LedgerID       string          `json:"ledgerID"`  // Primary Key (UUID)
	CompanyID      string          `json:"companyID"` // FK -> companies.company_id (NON-NULL)
	Name           string          `json:"name"`
	LedgerType     LedgerType      `json:"ledgerType"`
	OpeningBalance decimal.Decimal `json:"openingBalance"` // Signed; positive on the ledger's natural side
	IsActive       bool            `json:"isActive"`
	AuditFields
}
