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

// voucherService records and reads double-entry vouchers.
type voucherService struct {
	BaseService
	voucherRepo portsrepo.VoucherRepository
	ledgerRepo  portsrepo.LedgerRepository
}

// VoucherServiceOption is a functional option for configuring the voucher service.
type VoucherServiceOption func(*voucherService)

// WithVoucherCompanyAuthorizer sets the company authorizer for the voucher service.
func WithVoucherCompanyAuthorizer(authorizer portssvc.CompanyAuthorizerSvc) VoucherServiceOption {
	return func(s *voucherService) {
		s.CompanyAuthorizer = authorizer
	}
}

// NewVoucherService creates a new voucher service with the provided options.
func NewVoucherService(vr portsrepo.VoucherRepository, lr portsrepo.LedgerRepository, options ...VoucherServiceOption) portssvc.VoucherSvcFacade {
	svc := &voucherService{
		voucherRepo: vr,
		ledgerRepo:  lr,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.VoucherSvcFacade = (*voucherService)(nil)

// CreateVoucher validates and records a voucher with its entries. The
// voucher and its lines are persisted in one transaction.
func (s *voucherService) CreateVoucher(ctx context.Context, companyID string, req dto.CreateVoucherRequest, userID string) (*domain.Voucher, []domain.VoucherEntry, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, nil, err
	}

	voucherDate, err := time.Parse("2006-01-02", req.VoucherDate)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid voucher date %q, expected YYYY-MM-DD", apperrors.ErrValidation, req.VoucherDate)
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	voucherID := uuid.NewString()
	entries := make([]domain.VoucherEntry, 0, len(req.Entries))
	for _, line := range req.Entries {
		entries = append(entries, domain.VoucherEntry{
			EntryID:     uuid.NewString(),
			VoucherID:   voucherID,
			LedgerID:    line.LedgerID,
			Debit:       line.Debit,
			Credit:      line.Credit,
			AuditFields: audit,
		})
	}

	if err := accounting.ValidateVoucherEntries(entries); err != nil {
		return nil, nil, err
	}

	// Every referenced ledger must exist in this company and be active.
	ledgerIDs := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if !seen[e.LedgerID] {
			seen[e.LedgerID] = true
			ledgerIDs = append(ledgerIDs, e.LedgerID)
		}
	}
	found, err := s.ledgerRepo.FindLedgersByIDs(ctx, companyID, ledgerIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve voucher ledgers: %w", err)
	}
	for _, id := range ledgerIDs {
		ledger, ok := found[id]
		if !ok {
			return nil, nil, fmt.Errorf("%w: ledger %s not found in company %s", apperrors.ErrValidation, id, companyID)
		}
		if !ledger.IsActive {
			return nil, nil, fmt.Errorf("%w: ledger %s is deactivated", apperrors.ErrValidation, id)
		}
	}

	totalDebit := entries[0].Debit
	for _, e := range entries[1:] {
		totalDebit = totalDebit.Add(e.Debit)
	}

	voucher := domain.Voucher{
		VoucherID:   voucherID,
		CompanyID:   companyID,
		VoucherDate: voucherDate,
		VoucherType: domain.VoucherType(req.VoucherType),
		Narration:   req.Narration,
		TotalAmount: totalDebit,
		AuditFields: audit,
	}

	if err := s.voucherRepo.SaveVoucher(ctx, voucher, entries); err != nil {
		s.LogError(ctx, err, "Failed to save voucher", slog.String("company_id", companyID), slog.String("voucher_type", req.VoucherType))
		return nil, nil, fmt.Errorf("failed to create voucher: %w", err)
	}

	s.LogInfo(ctx, "Voucher recorded",
		slog.String("voucher_id", voucherID),
		slog.String("voucher_type", req.VoucherType),
		slog.Int("entry_count", len(entries)))
	return &voucher, entries, nil
}

// GetVoucherByID fetches a voucher with its entries.
func (s *voucherService) GetVoucherByID(ctx context.Context, companyID, voucherID, userID string) (*domain.Voucher, []domain.VoucherEntry, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, nil, err
	}
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, companyID, voucherID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch voucher %s: %w", voucherID, err)
	}
	entries, err := s.voucherRepo.FindEntriesByVoucherID(ctx, voucher.VoucherID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch entries for voucher %s: %w", voucherID, err)
	}
	return voucher, entries, nil
}

// ListVouchers pages through a company's vouchers, newest first.
func (s *voucherService) ListVouchers(ctx context.Context, companyID string, limit int, nextToken *string, userID string) ([]domain.Voucher, *string, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	vouchers, next, err := s.voucherRepo.ListVouchersByCompany(ctx, companyID, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list vouchers: %w", err)
	}
	return vouchers, next, nil
}
