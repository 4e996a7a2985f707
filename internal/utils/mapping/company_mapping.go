package mapping

import (
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/models"
)

// ToModelCompany converts a domain Company to a model Company
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		CompanyID:   d.CompanyID,
		Name:        d.Name,
		GSTIN:       d.GSTIN,
		Address:     d.Address,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompany converts a model Company to a domain Company
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:   m.CompanyID,
		Name:        m.Name,
		GSTIN:       m.GSTIN,
		Address:     m.Address,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCompanySlice converts a slice of model Companies to domain Companies
func ToDomainCompanySlice(ms []models.Company) []domain.Company {
	out := make([]domain.Company, len(ms))
	for i, m := range ms {
		out[i] = ToDomainCompany(m)
	}
	return out
}

// ToModelUserCompany converts a domain UserCompany membership to its model
func ToModelUserCompany(d domain.UserCompany) models.UserCompany {
	return models.UserCompany{
		UserID:    d.UserID,
		CompanyID: d.CompanyID,
		Role:      string(d.Role),
		CreatedAt: d.CreatedAt,
		CreatedBy: d.CreatedBy,
	}
}

// ToDomainUserCompany converts a model UserCompany membership to its domain form
func ToDomainUserCompany(m models.UserCompany) domain.UserCompany {
	return domain.UserCompany{
		UserID:    m.UserID,
		CompanyID: m.CompanyID,
		Role:      domain.UserCompanyRole(m.Role),
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			CreatedBy: m.CreatedBy,
		},
	}
}
