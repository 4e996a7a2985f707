package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/apperrors"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	portsrepo "github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/ports/repositories"
	portssvc "github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/ports/services"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/dto"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/utils/accounting"
	"github.com/google/uuid"
)

// ledgerService handles the ledger master and ledger statements.
type ledgerService struct {
	BaseService
	ledgerRepo  portsrepo.LedgerRepository
	voucherRepo portsrepo.VoucherRepository
}

// LedgerServiceOption is a functional option for configuring the ledger service.
type LedgerServiceOption func(*ledgerService)

// WithLedgerCompanyAuthorizer sets the company authorizer for the ledger service.
func WithLedgerCompanyAuthorizer(authorizer portssvc.CompanyAuthorizerSvc) LedgerServiceOption {
	return func(s *ledgerService) {
		s.CompanyAuthorizer = authorizer
	}
}

// NewLedgerService creates a new ledger service with the provided options.
func NewLedgerService(lr portsrepo.LedgerRepository, vr portsrepo.VoucherRepository, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		ledgerRepo:  lr,
		voucherRepo: vr,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// CreateLedger creates a ledger under a company's chart of accounts.
func (s *ledgerService) CreateLedger(ctx context.Context, companyID string, req dto.CreateLedgerRequest, userID string) (*domain.Ledger, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	ledgerType := domain.LedgerType(req.LedgerType)
	if !domain.IsValidLedgerType(ledgerType) {
		return nil, fmt.Errorf("%w: unknown ledger type %q", apperrors.ErrValidation, req.LedgerType)
	}

	now := time.Now()
	ledger := domain.Ledger{
		LedgerID:       uuid.NewString(),
		CompanyID:      companyID,
		Name:           req.Name,
		LedgerType:     ledgerType,
		OpeningBalance: req.OpeningBalance,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.ledgerRepo.SaveLedger(ctx, ledger); err != nil {
		s.LogError(ctx, err, "Failed to save ledger", slog.String("company_id", companyID), slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create ledger: %w", err)
	}

	s.LogInfo(ctx, "Ledger created", slog.String("ledger_id", ledger.LedgerID), slog.String("ledger_type", string(ledgerType)))
	return &ledger, nil
}

// GetLedgerByID fetches one ledger.
func (s *ledgerService) GetLedgerByID(ctx context.Context, companyID, ledgerID, userID string) (*domain.Ledger, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	ledger, err := s.ledgerRepo.FindLedgerByID(ctx, companyID, ledgerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ledger %s: %w", ledgerID, err)
	}
	return ledger, nil
}

// ListLedgers returns a company's ledgers, optionally filtered by type.
func (s *ledgerService) ListLedgers(ctx context.Context, companyID string, typeFilter []domain.LedgerType, userID string) ([]domain.Ledger, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	for _, t := range typeFilter {
		if !domain.IsValidLedgerType(t) {
			return nil, fmt.Errorf("%w: unknown ledger type %q", apperrors.ErrValidation, t)
		}
	}
	ledgers, err := s.ledgerRepo.ListLedgers(ctx, companyID, typeFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledgers: %w", err)
	}
	return ledgers, nil
}

// UpdateLedger updates a ledger's mutable fields. The ledger type is fixed
// at creation because historic reports depend on it.
func (s *ledgerService) UpdateLedger(ctx context.Context, companyID, ledgerID string, req dto.UpdateLedgerRequest, userID string) (*domain.Ledger, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	ledger, err := s.ledgerRepo.FindLedgerByID(ctx, companyID, ledgerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ledger %s: %w", ledgerID, err)
	}

	if req.Name != nil {
		ledger.Name = *req.Name
	}
	if req.OpeningBalance != nil {
		ledger.OpeningBalance = *req.OpeningBalance
	}
	ledger.LastUpdatedAt = time.Now()
	ledger.LastUpdatedBy = userID

	if err := s.ledgerRepo.UpdateLedger(ctx, *ledger); err != nil {
		s.LogError(ctx, err, "Failed to update ledger", slog.String("ledger_id", ledgerID))
		return nil, fmt.Errorf("failed to update ledger: %w", err)
	}
	return ledger, nil
}

// DeactivateLedger soft-deletes a ledger.
func (s *ledgerService) DeactivateLedger(ctx context.Context, companyID, ledgerID, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return err
	}
	if err := s.ledgerRepo.DeactivateLedger(ctx, companyID, ledgerID, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate ledger", slog.String("ledger_id", ledgerID))
		return fmt.Errorf("failed to deactivate ledger: %w", err)
	}
	return nil
}

// GetLedgerStatement returns a ledger's entries over a period with running
// balances evaluated on the ledger's natural side.
func (s *ledgerService) GetLedgerStatement(ctx context.Context, companyID, ledgerID string, from, to time.Time, userID string) (*dto.LedgerStatement, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	ledger, err := s.ledgerRepo.FindLedgerByID(ctx, companyID, ledgerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ledger %s: %w", ledgerID, err)
	}

	cls, ok := domain.Classify(ledger.LedgerType)
	if !ok {
		return nil, fmt.Errorf("%w: unknown ledger type %q for ledger %s", apperrors.ErrInvalidInput, ledger.LedgerType, ledgerID)
	}

	// Opening for the statement is the balance just before the period start.
	opening := ledger.OpeningBalance
	if !from.IsZero() {
		linesBefore, err := s.voucherRepo.ListEntryLinesByLedger(ctx, companyID, ledgerID, time.Time{}, from.AddDate(0, 0, -1))
		if err != nil {
			return nil, fmt.Errorf("failed to fetch prior entries for ledger %s: %w", ledgerID, err)
		}
		opening, err = accounting.EvaluateBalanceAsOf(*ledger, linesBefore, from.AddDate(0, 0, -1))
		if err != nil {
			return nil, err
		}
	}

	lines, err := s.voucherRepo.ListEntryLinesByLedger(ctx, companyID, ledgerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entries for ledger %s: %w", ledgerID, err)
	}

	statement := &dto.LedgerStatement{
		Ledger:         dto.ToLedgerResponse(*ledger),
		FromDate:       from.Format("2006-01-02"),
		ToDate:         to.Format("2006-01-02"),
		OpeningBalance: opening.Round(2),
		Lines:          make([]dto.LedgerStatementLine, 0, len(lines)),
	}

	running := opening
	for _, line := range lines {
		delta, err := accounting.SignedDelta(cls.Side, line.Debit, line.Credit)
		if err != nil {
			return nil, err
		}
		running = running.Add(delta)
		statement.Lines = append(statement.Lines, dto.LedgerStatementLine{
			EntryID:        line.EntryID,
			VoucherID:      line.VoucherID,
			VoucherDate:    line.VoucherDate.Format("2006-01-02"),
			Debit:          line.Debit.Round(2),
			Credit:         line.Credit.Round(2),
			RunningBalance: running.Round(2),
		})
	}
	statement.ClosingBalance = running.Round(2)

	s.LogInfo(ctx, "Ledger statement generated",
		slog.String("ledger_id", ledgerID),
		slog.Int("line_count", len(statement.Lines)))
	return statement, nil
}
