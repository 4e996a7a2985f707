package repositories

// RepositoryProvider bundles every repository implementation handed to the
// service container.
type RepositoryProvider struct {
	CompanyRepo   CompanyRepository
	LedgerRepo    LedgerRepository
	VoucherRepo   VoucherRepository
	ReportingRepo ReportingRepository
}
