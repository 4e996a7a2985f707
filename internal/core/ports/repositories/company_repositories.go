package repositories

import (
	"context"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
)

// CompanyRepository defines persistence operations for companies and
// company memberships.
type CompanyRepository interface {
	SaveCompany(ctx context.Context, company domain.Company) error
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	ListCompaniesByUser(ctx context.Context, userID string) ([]domain.Company, error)
	AddUserToCompany(ctx context.Context, membership domain.UserCompany) error
	FindUserCompanyRole(ctx context.Context, userID, companyID string) (*domain.UserCompany, error)
}
