package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/apperrors"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	portsrepo "github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/ports/repositories"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/models"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/utils/mapping"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVoucherRepository struct {
	BaseRepository
}

// newPgxVoucherRepository creates a new repository for voucher and entry data.
func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepository {
	return &PgxVoucherRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.VoucherRepository = (*PgxVoucherRepository)(nil)

// SaveVoucher saves a voucher and its entries within a DB transaction.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher, entries []domain.VoucherEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored if committed successfully

	modelVoucher := mapping.ToModelVoucher(voucher)
	voucherQuery := `
		INSERT INTO vouchers (
			voucher_id, company_id, voucher_date, voucher_type, narration, total_amount,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, voucherQuery,
		modelVoucher.VoucherID,
		modelVoucher.CompanyID,
		modelVoucher.VoucherDate,
		modelVoucher.VoucherType,
		modelVoucher.Narration,
		modelVoucher.TotalAmount,
		modelVoucher.CreatedAt,
		modelVoucher.CreatedBy,
		modelVoucher.LastUpdatedAt,
		modelVoucher.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert voucher "+modelVoucher.VoucherID, err)
	}

	batch := &pgx.Batch{}
	entryQuery := `
		INSERT INTO voucher_entries (entry_id, voucher_id, ledger_id, debit, credit, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, entry := range mapping.ToModelVoucherEntrySlice(entries) {
		batch.Queue(entryQuery,
			entry.EntryID,
			entry.VoucherID,
			entry.LedgerID,
			entry.Debit,
			entry.Credit,
			entry.CreatedAt,
			entry.CreatedBy,
			entry.LastUpdatedAt,
			entry.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute entry batch for voucher "+modelVoucher.VoucherID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction for voucher "+modelVoucher.VoucherID, err)
	}
	return nil
}

// FindVoucherByID retrieves a voucher scoped to a company.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, companyID, voucherID string) (*domain.Voucher, error) {
	query := `
		SELECT voucher_id, company_id, voucher_date, voucher_type, narration, total_amount,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM vouchers
		WHERE company_id = $1 AND voucher_id = $2;
	`
	var m models.Voucher
	err := r.Pool.QueryRow(ctx, query, companyID, voucherID).Scan(
		&m.VoucherID,
		&m.CompanyID,
		&m.VoucherDate,
		&m.VoucherType,
		&m.Narration,
		&m.TotalAmount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find voucher by ID "+voucherID, err)
	}
	voucher := mapping.ToDomainVoucher(m)
	return &voucher, nil
}

// FindEntriesByVoucherID retrieves all entries of one voucher.
func (r *PgxVoucherRepository) FindEntriesByVoucherID(ctx context.Context, voucherID string) ([]domain.VoucherEntry, error) {
	query := `
		SELECT entry_id, voucher_id, ledger_id, debit, credit, created_at, created_by, last_updated_at, last_updated_by
		FROM voucher_entries
		WHERE voucher_id = $1
		ORDER BY entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, voucherID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entries for voucher "+voucherID, err)
	}
	defer rows.Close()

	entries := []models.VoucherEntry{}
	for rows.Next() {
		var e models.VoucherEntry
		if err := rows.Scan(
			&e.EntryID,
			&e.VoucherID,
			&e.LedgerID,
			&e.Debit,
			&e.Credit,
			&e.CreatedAt,
			&e.CreatedBy,
			&e.LastUpdatedAt,
			&e.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entry row for voucher "+voucherID, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entry rows for voucher "+voucherID, err)
	}
	return mapping.ToDomainVoucherEntrySlice(entries), nil
}

// ListVouchersByCompany retrieves a paginated list of vouchers using
// token-based pagination, newest first.
func (r *PgxVoucherRepository) ListVouchersByCompany(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.Voucher, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to detect whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT voucher_id, company_id, voucher_date, voucher_type, narration, total_amount,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM vouchers
		WHERE company_id = $1
	`
	orderByClause := `ORDER BY voucher_date DESC, created_at DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{companyID}

	if nextToken != nil && *nextToken != "" {
		lastVoucherDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		cursorClause := `AND (voucher_date, created_at) < ($2, $3)`
		args = append(args, lastVoucherDate, lastCreatedAt)
		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query vouchers for company "+companyID, err)
	}
	defer rows.Close()

	vouchers := make([]models.Voucher, 0, fetchLimit)
	for rows.Next() {
		var m models.Voucher
		if err := rows.Scan(
			&m.VoucherID,
			&m.CompanyID,
			&m.VoucherDate,
			&m.VoucherType,
			&m.Narration,
			&m.TotalAmount,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan voucher row for company "+companyID, err)
		}
		vouchers = append(vouchers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating voucher rows for company "+companyID, err)
	}

	var nextTokenVal *string
	if len(vouchers) > limit {
		last := vouchers[limit-1]
		token := pagination.EncodeToken(last.VoucherDate, last.CreatedAt)
		nextTokenVal = &token
		vouchers = vouchers[:limit]
	}
	return mapping.ToDomainVoucherSlice(vouchers), nextTokenVal, nil
}

// ListEntryLinesByLedger retrieves a ledger's entries joined with their
// voucher dates, oldest first. Zero time bounds widen the range.
func (r *PgxVoucherRepository) ListEntryLinesByLedger(ctx context.Context, companyID, ledgerID string, from, to time.Time) ([]domain.EntryLine, error) {
	query := `
		SELECT e.entry_id, e.voucher_id, e.ledger_id, e.debit, e.credit,
		       e.created_at, e.created_by, e.last_updated_at, e.last_updated_by,
		       v.voucher_date
		FROM voucher_entries e
		JOIN vouchers v ON v.voucher_id = e.voucher_id
		WHERE v.company_id = $1 AND e.ledger_id = $2
	`
	args := []interface{}{companyID, ledgerID}
	if !from.IsZero() {
		args = append(args, from)
		query += ` AND v.voucher_date >= $` + strconv.Itoa(len(args))
	}
	if !to.IsZero() {
		args = append(args, to)
		query += ` AND v.voucher_date <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY v.voucher_date, e.created_at;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entries for ledger "+ledgerID, err)
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
			return nil, apperrors.NewAppError(500, "failed to scan entry row for ledger "+ledgerID, err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entry rows for ledger "+ledgerID, err)
	}
	return mapping.ToDomainEntryLineSlice(lines), nil
}
