package mapping

import (
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/models"
)

// ToModelVoucher converts a domain Voucher to a model Voucher
func ToModelVoucher(d domain.Voucher) models.Voucher {
	return models.Voucher{
		VoucherID:   d.VoucherID,
		CompanyID:   d.CompanyID,
		VoucherDate: d.VoucherDate,
		VoucherType: string(d.VoucherType),
		Narration:   d.Narration,
		TotalAmount: d.TotalAmount,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVoucher converts a model Voucher to a domain Voucher
func ToDomainVoucher(m models.Voucher) domain.Voucher {
	return domain.Voucher{
		VoucherID:   m.VoucherID,
		CompanyID:   m.CompanyID,
		VoucherDate: m.VoucherDate,
		VoucherType: domain.VoucherType(m.VoucherType),
		Narration:   m.Narration,
		TotalAmount: m.TotalAmount,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVoucherSlice converts a slice of model Vouchers to domain Vouchers
func ToDomainVoucherSlice(ms []models.Voucher) []domain.Voucher {
	out := make([]domain.Voucher, len(ms))
	for i, m := range ms {
		out[i] = ToDomainVoucher(m)
	}
	return out
}

// ToModelVoucherEntry converts a domain VoucherEntry to its model
func ToModelVoucherEntry(d domain.VoucherEntry) models.VoucherEntry {
	return models.VoucherEntry{
		EntryID:     d.EntryID,
		VoucherID:   d.VoucherID,
		LedgerID:    d.LedgerID,
		Debit:       d.Debit,
		Credit:      d.Credit,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToModelVoucherEntrySlice converts a slice of domain VoucherEntries to models
func ToModelVoucherEntrySlice(ds []domain.VoucherEntry) []models.VoucherEntry {
	out := make([]models.VoucherEntry, len(ds))
	for i, d := range ds {
		out[i] = ToModelVoucherEntry(d)
	}
	return out
}

// ToDomainVoucherEntry converts a model VoucherEntry to its domain form
func ToDomainVoucherEntry(m models.VoucherEntry) domain.VoucherEntry {
	return domain.VoucherEntry{
		EntryID:     m.EntryID,
		VoucherID:   m.VoucherID,
		LedgerID:    m.LedgerID,
		Debit:       m.Debit,
		Credit:      m.Credit,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVoucherEntrySlice converts a slice of model VoucherEntries to domain entries
func ToDomainVoucherEntrySlice(ms []models.VoucherEntry) []domain.VoucherEntry {
	out := make([]domain.VoucherEntry, len(ms))
	for i, m := range ms {
		out[i] = ToDomainVoucherEntry(m)
	}
	return out
}

// ToDomainEntryLine converts a model EntryLine to its domain form
func ToDomainEntryLine(m models.EntryLine) domain.EntryLine {
	return domain.EntryLine{
		VoucherEntry: ToDomainVoucherEntry(m.VoucherEntry),
		VoucherDate:  m.VoucherDate,
	}
}

// ToDomainEntryLineSlice converts a slice of model EntryLines to domain lines
func ToDomainEntryLineSlice(ms []models.EntryLine) []domain.EntryLine {
	out := make([]domain.EntryLine, len(ms))
	for i, m := range ms {
		out[i] = ToDomainEntryLine(m)
	}
	return out
}
