package services

import (
	portsrepo "github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/ports/repositories"
	portssvc "github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Initialize the company service first since every other service
	// depends on it for membership authorization.
	container.Company = NewCompanyService(repos.CompanyRepo)

	authorizer := portssvc.CompanyAuthorizerSvc(container.Company)

	container.Ledger = NewLedgerService(
		repos.LedgerRepo,
		repos.VoucherRepo,
		WithLedgerCompanyAuthorizer(authorizer),
	)
	container.Voucher = NewVoucherService(
		repos.VoucherRepo,
		repos.LedgerRepo,
		WithVoucherCompanyAuthorizer(authorizer),
	)
	container.Reporting = NewReportingService(
		repos.ReportingRepo,
		WithReportingCompanyAuthorizer(authorizer),
	)

	return container
}
