package dto

import (
	"time"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
)

// CreateCompanyRequest defines the expected JSON body for creating a company.
type CreateCompanyRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	GSTIN   string `json:"gstin" binding:"omitempty,len=15"`
	Address string `json:"address" binding:"omitempty,max=500"`
}

// CompanyResponse defines the JSON shape returned for a company.
type CompanyResponse struct {
	CompanyID string    `json:"companyID"`
	Name      string    `json:"name"`
	GSTIN     string    `json:"gstin,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToCompanyResponse converts a domain Company to its response DTO.
func ToCompanyResponse(c domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID: c.CompanyID,
		Name:      c.Name,
		GSTIN:     c.GSTIN,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

// ToCompanyResponseSlice converts a slice of companies to response DTOs.
func ToCompanyResponseSlice(cs []domain.Company) []CompanyResponse {
	out := make([]CompanyResponse, len(cs))
	for i, c := range cs {
		out[i] = ToCompanyResponse(c)
	}
	return out
}

// ListCompaniesResponse wraps the company list payload.
type ListCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
}
