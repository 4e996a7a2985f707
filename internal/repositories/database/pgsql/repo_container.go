package pgsql

import (
	portsrepo "github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	companyRepo := newPgxCompanyRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	voucherRepo := newPgxVoucherRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool, ledgerRepo)

	return portsrepo.RepositoryProvider{
		CompanyRepo:   companyRepo,
		LedgerRepo:    ledgerRepo,
		VoucherRepo:   voucherRepo,
		ReportingRepo: reportingRepo,
	}
}
