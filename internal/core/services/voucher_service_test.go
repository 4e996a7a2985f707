package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/apperrors"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	portsrepo "github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/ports/repositories"
	portssvc "github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/ports/services"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/services"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock VoucherRepository ---
type MockVoucherRepository struct {
	mock.Mock
}

var _ portsrepo.VoucherRepository = (*MockVoucherRepository)(nil)

func (m *MockVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher, entries []domain.VoucherEntry) error {
	args := m.Called(ctx, voucher, entries)
	return args.Error(0)
}

func (m *MockVoucherRepository) FindVoucherByID(ctx context.Context, companyID, voucherID string) (*domain.Voucher, error) {
	args := m.Called(ctx, companyID, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) FindEntriesByVoucherID(ctx context.Context, voucherID string) ([]domain.VoucherEntry, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VoucherEntry), args.Error(1)
}

func (m *MockVoucherRepository) ListVouchersByCompany(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.Voucher, *string, error) {
	args := m.Called(ctx, companyID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Voucher), returnedNextToken, args.Error(2)
}

func (m *MockVoucherRepository) ListEntryLinesByLedger(ctx context.Context, companyID, ledgerID string, from, to time.Time) ([]domain.EntryLine, error) {
	args := m.Called(ctx, companyID, ledgerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EntryLine), args.Error(1)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepository = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) SaveLedger(ctx context.Context, ledger domain.Ledger) error {
	args := m.Called(ctx, ledger)
	return args.Error(0)
}

func (m *MockLedgerRepository) FindLedgerByID(ctx context.Context, companyID, ledgerID string) (*domain.Ledger, error) {
	args := m.Called(ctx, companyID, ledgerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) FindLedgersByIDs(ctx context.Context, companyID string, ledgerIDs []string) (map[string]domain.Ledger, error) {
	args := m.Called(ctx, companyID, ledgerIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) ListLedgers(ctx context.Context, companyID string, types []domain.LedgerType) ([]domain.Ledger, error) {
	args := m.Called(ctx, companyID, types)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) UpdateLedger(ctx context.Context, ledger domain.Ledger) error {
	args := m.Called(ctx, ledger)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeactivateLedger(ctx context.Context, companyID, ledgerID, userID string, now time.Time) error {
	args := m.Called(ctx, companyID, ledgerID, userID, now)
	return args.Error(0)
}

// --- Test Suite Setup ---
type VoucherServiceTestSuite struct {
	suite.Suite
	mockVoucherRepo *MockVoucherRepository
	mockLedgerRepo  *MockLedgerRepository
	mockAuthorizer  *MockCompanyAuthorizer
	service         portssvc.VoucherSvcFacade
	companyID       string
	userID          string
	cashLedger      domain.Ledger
	salesLedger     domain.Ledger
}

func (suite *VoucherServiceTestSuite) SetupTest() {
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockAuthorizer = new(MockCompanyAuthorizer)
	suite.service = services.NewVoucherService(suite.mockVoucherRepo, suite.mockLedgerRepo, services.WithVoucherCompanyAuthorizer(suite.mockAuthorizer))

	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.cashLedger = domain.Ledger{
		LedgerID:   uuid.NewString(),
		CompanyID:  suite.companyID,
		Name:       "Cash",
		LedgerType: domain.CashInHand,
		IsActive:   true,
	}
	suite.salesLedger = domain.Ledger{
		LedgerID:   uuid.NewString(),
		CompanyID:  suite.companyID,
		Name:       "Sales",
		LedgerType: domain.SalesAccounts,
		IsActive:   true,
	}
}

func (suite *VoucherServiceTestSuite) authorizeMember() {
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.companyID, domain.RoleMember).Return(nil).Once()
}

// --- Test Cases ---

func (suite *VoucherServiceTestSuite) TestCreateVoucher_Success() {
	ctx := context.Background()
	req := dto.CreateVoucherRequest{
		VoucherDate: "2025-04-15",
		VoucherType: "SALES",
		Narration:   "Cash sale",
		Entries: []dto.CreateVoucherEntryRequest{
			{LedgerID: suite.cashLedger.LedgerID, Debit: decimal.NewFromInt(2500)},
			{LedgerID: suite.salesLedger.LedgerID, Credit: decimal.NewFromInt(2500)},
		},
	}

	suite.authorizeMember()
	ledgerMap := map[string]domain.Ledger{
		suite.cashLedger.LedgerID:  suite.cashLedger,
		suite.salesLedger.LedgerID: suite.salesLedger,
	}
	suite.mockLedgerRepo.On("FindLedgersByIDs", ctx, suite.companyID, []string{suite.cashLedger.LedgerID, suite.salesLedger.LedgerID}).Return(ledgerMap, nil).Once()
	suite.mockVoucherRepo.On("SaveVoucher", ctx, mock.AnythingOfType("domain.Voucher"), mock.AnythingOfType("[]domain.VoucherEntry")).Return(nil).Once()

	voucher, entries, err := suite.service.CreateVoucher(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(voucher)
	suite.NotEmpty(voucher.VoucherID)
	suite.Equal(domain.VoucherSales, voucher.VoucherType)
	suite.True(voucher.TotalAmount.Equal(decimal.NewFromInt(2500)))
	suite.Equal(suite.userID, voucher.CreatedBy)
	suite.Len(entries, 2)
	suite.Equal(voucher.VoucherID, entries[0].VoucherID)

	suite.mockAuthorizer.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_Unbalanced() {
	ctx := context.Background()
	req := dto.CreateVoucherRequest{
		VoucherDate: "2025-04-15",
		VoucherType: "JOURNAL",
		Entries: []dto.CreateVoucherEntryRequest{
			{LedgerID: suite.cashLedger.LedgerID, Debit: decimal.NewFromInt(100)},
			{LedgerID: suite.salesLedger.LedgerID, Credit: decimal.NewFromInt(90)},
		},
	}

	suite.authorizeMember()

	voucher, entries, err := suite.service.CreateVoucher(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(voucher)
	suite.Nil(entries)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "SaveVoucher")
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_BadDate() {
	ctx := context.Background()
	req := dto.CreateVoucherRequest{
		VoucherDate: "15/04/2025",
		VoucherType: "JOURNAL",
		Entries: []dto.CreateVoucherEntryRequest{
			{LedgerID: suite.cashLedger.LedgerID, Debit: decimal.NewFromInt(100)},
			{LedgerID: suite.salesLedger.LedgerID, Credit: decimal.NewFromInt(100)},
		},
	}

	suite.authorizeMember()

	_, _, err := suite.service.CreateVoucher(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_UnknownLedger() {
	ctx := context.Background()
	ghostID := uuid.NewString()
	req := dto.CreateVoucherRequest{
		VoucherDate: "2025-04-15",
		VoucherType: "PAYMENT",
		Entries: []dto.CreateVoucherEntryRequest{
			{LedgerID: suite.cashLedger.LedgerID, Credit: decimal.NewFromInt(100)},
			{LedgerID: ghostID, Debit: decimal.NewFromInt(100)},
		},
	}

	suite.authorizeMember()
	ledgerMap := map[string]domain.Ledger{
		suite.cashLedger.LedgerID: suite.cashLedger,
	}
	suite.mockLedgerRepo.On("FindLedgersByIDs", ctx, suite.companyID, []string{suite.cashLedger.LedgerID, ghostID}).Return(ledgerMap, nil).Once()

	_, _, err := suite.service.CreateVoucher(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "SaveVoucher")
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_DeactivatedLedger() {
	ctx := context.Background()
	inactive := suite.salesLedger
	inactive.IsActive = false
	req := dto.CreateVoucherRequest{
		VoucherDate: "2025-04-15",
		VoucherType: "SALES",
		Entries: []dto.CreateVoucherEntryRequest{
			{LedgerID: suite.cashLedger.LedgerID, Debit: decimal.NewFromInt(100)},
			{LedgerID: inactive.LedgerID, Credit: decimal.NewFromInt(100)},
		},
	}

	suite.authorizeMember()
	ledgerMap := map[string]domain.Ledger{
		suite.cashLedger.LedgerID: suite.cashLedger,
		inactive.LedgerID:         inactive,
	}
	suite.mockLedgerRepo.On("FindLedgersByIDs", ctx, suite.companyID, []string{suite.cashLedger.LedgerID, inactive.LedgerID}).Return(ledgerMap, nil).Once()

	_, _, err := suite.service.CreateVoucher(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *VoucherServiceTestSuite) TestGetVoucherByID_Success() {
	ctx := context.Background()
	voucherID := uuid.NewString()
	voucher := &domain.Voucher{VoucherID: voucherID, CompanyID: suite.companyID, VoucherType: domain.VoucherReceipt}
	entries := []domain.VoucherEntry{{EntryID: uuid.NewString(), VoucherID: voucherID}}

	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.companyID, domain.RoleReadOnly).Return(nil).Once()
	suite.mockVoucherRepo.On("FindVoucherByID", ctx, suite.companyID, voucherID).Return(voucher, nil).Once()
	suite.mockVoucherRepo.On("FindEntriesByVoucherID", ctx, voucherID).Return(entries, nil).Once()

	gotVoucher, gotEntries, err := suite.service.GetVoucherByID(ctx, suite.companyID, voucherID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(voucherID, gotVoucher.VoucherID)
	suite.Len(gotEntries, 1)
}

func (suite *VoucherServiceTestSuite) TestListVouchers_DefaultsLimit() {
	ctx := context.Background()
	vouchers := []domain.Voucher{{VoucherID: uuid.NewString()}}

	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.companyID, domain.RoleReadOnly).Return(nil).Once()
	suite.mockVoucherRepo.On("ListVouchersByCompany", ctx, suite.companyID, 25, (*string)(nil)).Return(vouchers, nil, nil).Once()

	got, next, err := suite.service.ListVouchers(ctx, suite.companyID, 0, nil, suite.userID)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.Nil(next)
}

func TestVoucherServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VoucherServiceTestSuite))
}
