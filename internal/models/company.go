package models

import "time"

// Company represents one set of books.
type Company struct {
	CompanyID string `db:"company_id"`
	Name      string `db:"name"`
	GSTIN     string `db:"gstin"` // Nullable in DB, empty string here
	Address   string `db:"address"`
	AuditFields
}

// UserCompany is the membership row linking a user to a company with a role.
type UserCompany struct {
	UserID    string    `db:"user_id"`
	CompanyID string    `db:"company_id"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	CreatedBy string    `db:"created_by"`
}
