package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/apperrors"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	portsrepo "github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/ports/repositories"
	portssvc "github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/ports/services"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/dto"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/middleware"
	"github.com/google/uuid"
)

// CompanyService handles business logic related to companies and memberships.
type CompanyService struct {
	companyRepo portsrepo.CompanyRepository
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(cr portsrepo.CompanyRepository) portssvc.CompanySvcFacade {
	return &CompanyService{companyRepo: cr}
}

// Ensure CompanyService implements the facade.
var _ portssvc.CompanySvcFacade = (*CompanyService)(nil)

// CreateCompany creates a new company and makes the creator its initial admin.
func (s *CompanyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	company := domain.Company{
		CompanyID: uuid.NewString(),
		Name:      req.Name,
		GSTIN:     req.GSTIN,
		Address:   req.Address,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		logger.Error("Failed to save company in repository", slog.String("error", err.Error()), slog.String("company_name", req.Name))
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	membership := domain.UserCompany{
		UserID:    creatorUserID,
		CompanyID: company.CompanyID,
		Role:      domain.RoleAdmin,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.companyRepo.AddUserToCompany(ctx, membership); err != nil {
		logger.Error("Failed to add creator as company admin", slog.String("error", err.Error()), slog.String("company_id", company.CompanyID))
		return nil, fmt.Errorf("failed to create company membership: %w", err)
	}

	logger.Info("Company created", slog.String("company_id", company.CompanyID))
	return &company, nil
}

// GetCompanyByID fetches a single company, requiring at least read access.
func (s *CompanyService) GetCompanyByID(ctx context.Context, companyID, userID string) (*domain.Company, error) {
	if err := s.AuthorizeUserAction(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch company %s: %w", companyID, err)
	}
	return company, nil
}

// ListCompanies returns every company the user is a member of.
func (s *CompanyService) ListCompanies(ctx context.Context, userID string) ([]domain.Company, error) {
	companies, err := s.companyRepo.ListCompaniesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies for user %s: %w", userID, err)
	}
	return companies, nil
}

// roleRank orders roles by privilege for the at-least comparison.
var roleRank = map[domain.UserCompanyRole]int{
	domain.RoleReadOnly: 1,
	domain.RoleMember:   2,
	domain.RoleAdmin:    3,
}

// AuthorizeUserAction checks if a user has the required role (or higher)
// within a specific company.
func (s *CompanyService) AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.UserCompanyRole) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	membership, err := s.companyRepo.FindUserCompanyRole(ctx, userID, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("User has no membership in company",
				slog.String("user_id", userID), slog.String("company_id", companyID))
			return apperrors.ErrForbidden
		}
		return fmt.Errorf("failed to check company membership: %w", err)
	}

	if membership.Role == domain.RoleRemoved || roleRank[membership.Role] < roleRank[requiredRole] {
		logger.Warn("User role insufficient for action",
			slog.String("user_id", userID),
			slog.String("company_id", companyID),
			slog.String("role", string(membership.Role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}
	return nil
}
