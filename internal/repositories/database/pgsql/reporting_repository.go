package pgsql

import (
	"context"
	"time"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/apperrors"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	portsrepo "github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/ports/repositories"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/models"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the read-only data source the report
// engine pulls from. It returns raw ledgers and entry lines; all report
// arithmetic stays in the engine.
type reportingRepository struct {
	BaseRepository
	ledgerRepo portsrepo.LedgerRepository
}

// newReportingRepository creates a new reporting repository.
func newReportingRepository(pool *pgxpool.Pool, ledgerRepo portsrepo.LedgerRepository) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
		ledgerRepo:     ledgerRepo,
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// ListLedgers delegates to the ledger repository; same filtering semantics.
func (r *reportingRepository) ListLedgers(ctx context.Context, companyID string, types []domain.LedgerType) ([]domain.Ledger, error) {
	return r.ledgerRepo.ListLedgers(ctx, companyID, types)
}

// ListEntryLinesAsOf returns every entry line of the company for vouchers
// dated on or before asOf.
func (r *reportingRepository) ListEntryLinesAsOf(ctx context.Context, companyID string, asOf time.Time) ([]domain.EntryLine, error) {
	query := `
		SELECT e.entry_id, e.voucher_id, e.ledger_id, e.debit, e.credit,
		       e.created_at, e.created_by, e.last_updated_at, e.last_updated_by,
		       v.voucher_date
		FROM voucher_entries e
		JOIN vouchers v ON v.voucher_id = e.voucher_id
		WHERE v.company_id = $1 AND v.voucher_date <= $2
		ORDER BY v.voucher_date, e.created_at;
	`
	return r.queryEntryLines(ctx, companyID, query, companyID, asOf)
}

// ListEntryLinesBetween returns every entry line of the company for
// vouchers dated within [from, to] inclusive.
func (r *reportingRepository) ListEntryLinesBetween(ctx context.Context, companyID string, from, to time.Time) ([]domain.EntryLine, error) {
	query := `
		SELECT e.entry_id, e.voucher_id, e.ledger_id, e.debit, e.credit,
		       e.created_at, e.created_by, e.last_updated_at, e.last_updated_by,
		       v.voucher_date
		FROM voucher_entries e
		JOIN vouchers v ON v.voucher_id = e.voucher_id
		WHERE v.company_id = $1 AND v.voucher_date >= $2 AND v.voucher_date <= $3
		ORDER BY v.voucher_date, e.created_at;
	`
	return r.queryEntryLines(ctx, companyID, query, companyID, from, to)
}

func (r *reportingRepository) queryEntryLines(ctx context.Context, companyID, query string, args ...interface{}) ([]domain.EntryLine, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entry lines for company "+companyID, err)
	}
	defer rows.Close()

	lines := []models.EntryLine{}
	for rows.Next() {
		var l models.EntryLine
		if err := rows.Scan(
			&l.EntryID,
			&l.VoucherID,
			&l.LedgerID,
			&l.Debit,
			&l.Credit,
			&l.CreatedAt,
			&l.CreatedBy,
			&l.LastUpdatedAt,
			&l.LastUpdatedBy,
			&l.VoucherDate,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entry line row for company "+companyID, err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entry line rows for company "+companyID, err)
	}
	return mapping.ToDomainEntryLineSlice(lines), nil
}
