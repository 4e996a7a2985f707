package services

import (
	"context"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/dto"
)

// CompanyAuthorizerSvc checks whether a user may act on a company with at
// least the required role. Identity itself is established by the external
// auth boundary; this only consults the membership table.
type CompanyAuthorizerSvc interface {
	AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.UserCompanyRole) error
}

// CompanyReaderSvc exposes read access to companies.
type CompanyReaderSvc interface {
	GetCompanyByID(ctx context.Context, companyID, userID string) (*domain.Company, error)
	ListCompanies(ctx context.Context, userID string) ([]domain.Company, error)
}

// CompanySvcFacade is the full company service surface.
type CompanySvcFacade interface {
	CompanyAuthorizerSvc
	CompanyReaderSvc
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, creatorUserID string) (*domain.Company, error)
}
