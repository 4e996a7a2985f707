package mapping

import (
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/models"
)

// ToModelLedger converts a domain Ledger to a model Ledger
func ToModelLedger(d domain.Ledger) models.Ledger {
	return models.Ledger{
		LedgerID:       d.LedgerID,
		CompanyID:      d.CompanyID,
		Name:           d.Name,
		LedgerType:     string(d.LedgerType),
		OpeningBalance: d.OpeningBalance,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedger converts a model Ledger to a domain Ledger
func ToDomainLedger(m models.Ledger) domain.Ledger {
	return domain.Ledger{
		LedgerID:       m.LedgerID,
		CompanyID:      m.CompanyID,
		Name:           m.Name,
		LedgerType:     domain.LedgerType(m.LedgerType),
		OpeningBalance: m.OpeningBalance,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLedgerSlice converts a slice of model Ledgers to domain Ledgers
func ToDomainLedgerSlice(ms []models.Ledger) []domain.Ledger {
	out := make([]domain.Ledger, len(ms))
	for i, m := range ms {
		out[i] = ToDomainLedger(m)
	}
	return out
}
