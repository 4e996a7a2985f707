package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/apperrors"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	portsrepo "github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/ports/repositories"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/models"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger master data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

const ledgerColumns = `ledger_id, company_id, name, ledger_type, opening_balance, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanLedger(row pgx.Row) (models.Ledger, error) {
	var m models.Ledger
	err := row.Scan(
		&m.LedgerID,
		&m.CompanyID,
		&m.Name,
		&m.LedgerType,
		&m.OpeningBalance,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveLedger inserts a new ledger row.
func (r *PgxLedgerRepository) SaveLedger(ctx context.Context, ledger domain.Ledger) error {
	m := mapping.ToModelLedger(ledger)
	query := `
		INSERT INTO ledgers (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LedgerID,
		m.CompanyID,
		m.Name,
		m.LedgerType,
		m.OpeningBalance,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert ledger "+m.LedgerID, err)
	}
	return nil
}

// FindLedgerByID retrieves one ledger scoped to a company.
func (r *PgxLedgerRepository) FindLedgerByID(ctx context.Context, companyID, ledgerID string) (*domain.Ledger, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledgers
		WHERE company_id = $1 AND ledger_id = $2;
	`
	m, err := scanLedger(r.Pool.QueryRow(ctx, query, companyID, ledgerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find ledger by ID "+ledgerID, err)
	}
	ledger := mapping.ToDomainLedger(m)
	return &ledger, nil
}

// FindLedgersByIDs retrieves multiple ledgers keyed by ID. Missing IDs are
// simply absent from the returned map; the caller decides whether that is
// an error.
func (r *PgxLedgerRepository) FindLedgersByIDs(ctx context.Context, companyID string, ledgerIDs []string) (map[string]domain.Ledger, error) {
	if len(ledgerIDs) == 0 {
		return map[string]domain.Ledger{}, nil
	}
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledgers
		WHERE company_id = $1 AND ledger_id = ANY($2);
	`
	rows, err := r.Pool.Query(ctx, query, companyID, ledgerIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledgers by IDs", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Ledger, len(ledgerIDs))
	for rows.Next() {
		m, err := scanLedger(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger row", err)
		}
		result[m.LedgerID] = mapping.ToDomainLedger(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger rows", err)
	}
	return result, nil
}

// ListLedgers retrieves a company's ledgers, optionally restricted by type.
func (r *PgxLedgerRepository) ListLedgers(ctx context.Context, companyID string, types []domain.LedgerType) ([]domain.Ledger, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledgers
		WHERE company_id = $1
	`
	args := []interface{}{companyID}
	if len(types) > 0 {
		typeStrs := make([]string, len(types))
		for i, t := range types {
			typeStrs[i] = string(t)
		}
		query += ` AND ledger_type = ANY($2)`
		args = append(args, typeStrs)
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledgers for company "+companyID, err)
	}
	defer rows.Close()

	ledgers := []models.Ledger{}
	for rows.Next() {
		m, err := scanLedger(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger row for company "+companyID, err)
		}
		ledgers = append(ledgers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger rows for company "+companyID, err)
	}
	return mapping.ToDomainLedgerSlice(ledgers), nil
}

// UpdateLedger updates a ledger's mutable fields.
func (r *PgxLedgerRepository) UpdateLedger(ctx context.Context, ledger domain.Ledger) error {
	m := mapping.ToModelLedger(ledger)
	query := `
		UPDATE ledgers
		SET name = $3, opening_balance = $4, last_updated_at = $5, last_updated_by = $6
		WHERE company_id = $1 AND ledger_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CompanyID,
		m.LedgerID,
		m.Name,
		m.OpeningBalance,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update ledger "+m.LedgerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateLedger marks a ledger inactive. Historic entries keep referencing it.
func (r *PgxLedgerRepository) DeactivateLedger(ctx context.Context, companyID, ledgerID, userID string, now time.Time) error {
	query := `
		UPDATE ledgers
		SET is_active = FALSE, last_updated_at = $3, last_updated_by = $4
		WHERE company_id = $1 AND ledger_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, companyID, ledgerID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate ledger "+ledgerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
