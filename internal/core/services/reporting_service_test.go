package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/apperrors"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	portsrepo "github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/ports/repositories"
	portssvc "github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/ports/services"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) ListLedgers(ctx context.Context, companyID string, types []domain.LedgerType) ([]domain.Ledger, error) {
	args := m.Called(ctx, companyID, types)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ledger), args.Error(1)
}

func (m *MockReportingRepository) ListEntryLinesAsOf(ctx context.Context, companyID string, asOf time.Time) ([]domain.EntryLine, error) {
	args := m.Called(ctx, companyID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EntryLine), args.Error(1)
}

func (m *MockReportingRepository) ListEntryLinesBetween(ctx context.Context, companyID string, from, to time.Time) ([]domain.EntryLine, error) {
	args := m.Called(ctx, companyID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EntryLine), args.Error(1)
}

// --- Mock CompanyAuthorizerSvc ---
type MockCompanyAuthorizer struct {
	mock.Mock
}

var _ portssvc.CompanyAuthorizerSvc = (*MockCompanyAuthorizer)(nil)

func (m *MockCompanyAuthorizer) AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.UserCompanyRole) error {
	args := m.Called(ctx, userID, companyID, requiredRole)
	return args.Error(0)
}

// --- Test Suite Setup ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockReportingRepository
	mockAuthorizer *MockCompanyAuthorizer
	service        portssvc.ReportingService
	companyID      string
	userID         string
	asOf           time.Time
	from           time.Time
	to             time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.mockAuthorizer = new(MockCompanyAuthorizer)
	suite.service = services.NewReportingService(suite.mockRepo, services.WithReportingCompanyAuthorizer(suite.mockAuthorizer))

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.asOf = time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	suite.from = time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	suite.to = suite.asOf
}

func (suite *ReportingServiceTestSuite) ledger(name string, lt domain.LedgerType, opening int64) domain.Ledger {
	return domain.Ledger{
		LedgerID:       uuid.NewString(),
		CompanyID:      suite.companyID,
		Name:           name,
		LedgerType:     lt,
		OpeningBalance: decimal.NewFromInt(opening),
		IsActive:       true,
	}
}

func (suite *ReportingServiceTestSuite) line(ledgerID string, debit, credit int64, on time.Time) domain.EntryLine {
	return domain.EntryLine{
		VoucherEntry: domain.VoucherEntry{
			EntryID:  uuid.NewString(),
			LedgerID: ledgerID,
			Debit:    decimal.NewFromInt(debit),
			Credit:   decimal.NewFromInt(credit),
		},
		VoucherDate: on,
	}
}

func (suite *ReportingServiceTestSuite) authorizeReadOnly() {
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.companyID, domain.RoleReadOnly).Return(nil).Once()
}

// --- Balance Sheet ---

func (suite *ReportingServiceTestSuite) TestBalanceSheet_LossOnAssetsSide() {
	ctx := context.Background()
	capital := suite.ledger("Owner Capital", domain.CapitalAccount, 10000)
	machinery := suite.ledger("Machinery", domain.FixedAssets, 20000)
	entryDate := suite.asOf.AddDate(0, -1, 0)
	lines := []domain.EntryLine{
		suite.line(capital.LedgerID, 0, 5000, entryDate),
		suite.line(machinery.LedgerID, 3000, 0, entryDate),
	}

	suite.authorizeReadOnly()
	suite.mockRepo.On("ListLedgers", ctx, suite.companyID, []domain.LedgerType(nil)).Return([]domain.Ledger{capital, machinery}, nil).Once()
	suite.mockRepo.On("ListEntryLinesAsOf", ctx, suite.companyID, suite.asOf).Return(lines, nil).Once()

	report, err := suite.service.BalanceSheet(ctx, suite.companyID, suite.asOf, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)

	// Capital: 10000 opening + 5000 credit = 15000. Machinery: 20000 + 3000 debit = 23000.
	suite.True(report.TotalLiabilities.Equal(decimal.NewFromInt(15000)), "liabilities = %s", report.TotalLiabilities)
	suite.True(report.TotalAssets.Equal(decimal.NewFromInt(23000)), "assets = %s", report.TotalAssets)

	// Assets exceed liabilities, so the gap lands on the assets side as a loss.
	suite.Equal("Loss for the Year", report.Balancing.Label)
	suite.Equal(domain.SideAssets, report.Balancing.Side)
	suite.True(report.Balancing.Amount.Equal(decimal.NewFromInt(8000)), "balancing = %s", report.Balancing.Amount)
	suite.True(report.DisplayTotal.Equal(decimal.NewFromInt(23000)), "display total = %s", report.DisplayTotal)
	suite.Equal("Twenty Three Thousand Rupees Only", report.AmountInWords)

	suite.Require().Len(report.LiabilityGroups, 1)
	suite.Equal("Capital Account", report.LiabilityGroups[0].Label)
	suite.Require().Len(report.AssetGroups, 1)
	suite.Equal("Fixed Assets", report.AssetGroups[0].Label)

	suite.mockAuthorizer.AssertExpectations(suite.T())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_ProfitOnLiabilitiesSide() {
	ctx := context.Background()
	capital := suite.ledger("Owner Capital", domain.CapitalAccount, 30000)
	cash := suite.ledger("Cash", domain.CashInHand, 18000)

	suite.authorizeReadOnly()
	suite.mockRepo.On("ListLedgers", ctx, suite.companyID, []domain.LedgerType(nil)).Return([]domain.Ledger{capital, cash}, nil).Once()
	suite.mockRepo.On("ListEntryLinesAsOf", ctx, suite.companyID, suite.asOf).Return([]domain.EntryLine{}, nil).Once()

	report, err := suite.service.BalanceSheet(ctx, suite.companyID, suite.asOf, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Profit for the Year", report.Balancing.Label)
	suite.Equal(domain.SideLiabilities, report.Balancing.Side)
	suite.True(report.Balancing.Amount.Equal(decimal.NewFromInt(12000)))
	suite.True(report.DisplayTotal.Equal(decimal.NewFromInt(30000)))
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_ExcludesIncomeAndExpenseLedgers() {
	ctx := context.Background()
	capital := suite.ledger("Owner Capital", domain.CapitalAccount, 5000)
	sales := suite.ledger("Sales", domain.SalesAccounts, 0)
	rent := suite.ledger("Rent", domain.IndirectExpenses, 0)
	entryDate := suite.asOf.AddDate(0, -2, 0)
	lines := []domain.EntryLine{
		suite.line(sales.LedgerID, 0, 9000, entryDate),
		suite.line(rent.LedgerID, 9000, 0, entryDate),
	}

	suite.authorizeReadOnly()
	suite.mockRepo.On("ListLedgers", ctx, suite.companyID, []domain.LedgerType(nil)).Return([]domain.Ledger{capital, sales, rent}, nil).Once()
	suite.mockRepo.On("ListEntryLinesAsOf", ctx, suite.companyID, suite.asOf).Return(lines, nil).Once()

	report, err := suite.service.BalanceSheet(ctx, suite.companyID, suite.asOf, suite.userID)

	suite.Require().NoError(err)
	suite.Len(report.LiabilityGroups, 1)
	suite.Empty(report.AssetGroups)
	suite.True(report.TotalLiabilities.Equal(decimal.NewFromInt(5000)))
	suite.True(report.TotalAssets.IsZero())
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_UnknownLedgerInEntries() {
	ctx := context.Background()
	capital := suite.ledger("Owner Capital", domain.CapitalAccount, 5000)
	lines := []domain.EntryLine{
		suite.line(uuid.NewString(), 100, 0, suite.asOf),
	}

	suite.authorizeReadOnly()
	suite.mockRepo.On("ListLedgers", ctx, suite.companyID, []domain.LedgerType(nil)).Return([]domain.Ledger{capital}, nil).Once()
	suite.mockRepo.On("ListEntryLinesAsOf", ctx, suite.companyID, suite.asOf).Return(lines, nil).Once()

	report, err := suite.service.BalanceSheet(ctx, suite.companyID, suite.asOf, suite.userID)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrDataSource)
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_AuthorizationFail() {
	ctx := context.Background()
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.companyID, domain.RoleReadOnly).Return(apperrors.ErrForbidden).Once()

	report, err := suite.service.BalanceSheet(ctx, suite.companyID, suite.asOf, suite.userID)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListLedgers")
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_SupersededSnapshotRecomputed() {
	ctx := context.Background()
	capital := suite.ledger("Owner Capital", domain.CapitalAccount, 0)
	cash := suite.ledger("Cash", domain.CashInHand, 0)
	ledgers := []domain.Ledger{capital, cash}
	entryDate := suite.asOf.AddDate(0, -1, 0)

	staleLines := []domain.EntryLine{
		suite.line(capital.LedgerID, 0, 100, entryDate),
		suite.line(cash.LedgerID, 100, 0, entryDate),
	}
	freshLines := []domain.EntryLine{
		suite.line(capital.LedgerID, 0, 200, entryDate),
		suite.line(cash.LedgerID, 200, 0, entryDate),
	}

	suite.authorizeReadOnly()
	suite.authorizeReadOnly()

	firstFetchStarted := make(chan struct{})
	secondDone := make(chan struct{})

	suite.mockRepo.On("ListLedgers", ctx, suite.companyID, []domain.LedgerType(nil)).Return(ledgers, nil).Times(3)
	// The first fetch parks until a newer request has completed, so its
	// snapshot is outdated by the time its computation finishes.
	suite.mockRepo.On("ListEntryLinesAsOf", ctx, suite.companyID, suite.asOf).
		Run(func(args mock.Arguments) {
			close(firstFetchStarted)
			<-secondDone
		}).
		Return(staleLines, nil).Once()
	suite.mockRepo.On("ListEntryLinesAsOf", ctx, suite.companyID, suite.asOf).Return(freshLines, nil).Twice()

	var wg sync.WaitGroup
	var firstReport *domain.BalanceSheetReport
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		firstReport, firstErr = suite.service.BalanceSheet(ctx, suite.companyID, suite.asOf, suite.userID)
	}()

	<-firstFetchStarted
	secondReport, err := suite.service.BalanceSheet(ctx, suite.companyID, suite.asOf, suite.userID)
	suite.Require().NoError(err)
	close(secondDone)
	wg.Wait()
	suite.Require().NoError(firstErr)

	// The report built from the superseded snapshot is discarded and
	// recomputed; neither caller ever sees the 100-rupee totals.
	suite.True(secondReport.TotalAssets.Equal(decimal.NewFromInt(200)))
	suite.True(firstReport.TotalAssets.Equal(decimal.NewFromInt(200)))
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Profit and Loss ---

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_NetProfit() {
	ctx := context.Background()
	sales := suite.ledger("Sales", domain.SalesAccounts, 0)
	purchases := suite.ledger("Purchases", domain.PurchaseAccounts, 0)
	rent := suite.ledger("Office Rent", domain.IndirectExpenses, 0)
	mid := suite.from.AddDate(0, 3, 0)
	lines := []domain.EntryLine{
		suite.line(sales.LedgerID, 0, 50000, mid),
		suite.line(purchases.LedgerID, 30000, 0, mid),
		suite.line(rent.LedgerID, 8000, 0, mid),
	}

	suite.authorizeReadOnly()
	suite.mockRepo.On("ListLedgers", ctx, suite.companyID, []domain.LedgerType(nil)).Return([]domain.Ledger{sales, purchases, rent}, nil).Once()
	suite.mockRepo.On("ListEntryLinesBetween", ctx, suite.companyID, suite.from, suite.to).Return(lines, nil).Once()

	report, err := suite.service.ProfitAndLoss(ctx, suite.companyID, suite.from, suite.to, suite.userID)

	suite.Require().NoError(err)
	suite.True(report.TotalIncome.Equal(decimal.NewFromInt(50000)))
	suite.True(report.TotalExpense.Equal(decimal.NewFromInt(38000)))

	// Net profit closes the expenditure side.
	suite.Equal("Net Profit", report.Balancing.Label)
	suite.Equal(domain.SideExpenditure, report.Balancing.Side)
	suite.True(report.Balancing.Amount.Equal(decimal.NewFromInt(12000)))
	suite.True(report.DisplayTotal.Equal(decimal.NewFromInt(50000)))

	// Expense groups follow the fixed order: purchases before indirect expenses.
	suite.Require().Len(report.ExpenseGroups, 2)
	suite.Equal("Purchase Accounts", report.ExpenseGroups[0].Label)
	suite.Equal("Indirect Expenses", report.ExpenseGroups[1].Label)
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_NetLoss() {
	ctx := context.Background()
	sales := suite.ledger("Sales", domain.SalesAccounts, 0)
	wages := suite.ledger("Wages", domain.DirectExpenses, 0)
	mid := suite.from.AddDate(0, 1, 0)
	lines := []domain.EntryLine{
		suite.line(sales.LedgerID, 0, 10000, mid),
		suite.line(wages.LedgerID, 14000, 0, mid),
	}

	suite.authorizeReadOnly()
	suite.mockRepo.On("ListLedgers", ctx, suite.companyID, []domain.LedgerType(nil)).Return([]domain.Ledger{sales, wages}, nil).Once()
	suite.mockRepo.On("ListEntryLinesBetween", ctx, suite.companyID, suite.from, suite.to).Return(lines, nil).Once()

	report, err := suite.service.ProfitAndLoss(ctx, suite.companyID, suite.from, suite.to, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Net Loss", report.Balancing.Label)
	suite.Equal(domain.SideIncome, report.Balancing.Side)
	suite.True(report.Balancing.Amount.Equal(decimal.NewFromInt(4000)))
	suite.True(report.DisplayTotal.Equal(decimal.NewFromInt(14000)))
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_InvalidPeriod() {
	ctx := context.Background()
	suite.authorizeReadOnly()

	report, err := suite.service.ProfitAndLoss(ctx, suite.companyID, suite.to, suite.from, suite.userID)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Trial Balance ---

func (suite *ReportingServiceTestSuite) TestTrialBalance_UniformClosingRule() {
	ctx := context.Background()
	// Closing is opening + Dr - Cr for every type, even credit-normal ones.
	capital := suite.ledger("Owner Capital", domain.CapitalAccount, 1000)
	mid := suite.from.AddDate(0, 2, 0)
	lines := []domain.EntryLine{
		suite.line(capital.LedgerID, 500, 0, mid),
	}

	suite.authorizeReadOnly()
	suite.mockRepo.On("ListLedgers", ctx, suite.companyID, []domain.LedgerType(nil)).Return([]domain.Ledger{capital}, nil).Once()
	suite.mockRepo.On("ListEntryLinesBetween", ctx, suite.companyID, suite.from, suite.to).Return(lines, nil).Once()

	report, err := suite.service.TrialBalance(ctx, suite.companyID, suite.from, suite.to, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 1)
	suite.True(report.Rows[0].ClosingBalance.Equal(decimal.NewFromInt(1500)), "closing = %s", report.Rows[0].ClosingBalance)
	suite.True(report.Totals.Debit.Equal(decimal.NewFromInt(500)))
	suite.True(report.Totals.Credit.IsZero())
	suite.True(report.Totals.ClosingDebit.Equal(decimal.NewFromInt(1500)))
	suite.True(report.Totals.ClosingCredit.IsZero())
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_RepoError() {
	ctx := context.Background()
	suite.authorizeReadOnly()
	suite.mockRepo.On("ListLedgers", ctx, suite.companyID, []domain.LedgerType(nil)).Return(nil, apperrors.ErrDataSource).Once()

	report, err := suite.service.TrialBalance(ctx, suite.companyID, suite.from, suite.to, suite.userID)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrDataSource)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
