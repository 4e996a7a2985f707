package domain

// Company is the tenant boundary: every ledger and voucher belongs to
// exactly one company. Identity is immutable for reporting purposes.
type Company struct {
	CompanyID string `json:"companyID"` // Primary Key (UUID)
	Name      string `json:"name"`
	GSTIN     string `json:"gstin"`   // Nullable tax registration number
	Address   string `json:"address"` // Nullable
	AuditFields
}

// UserCompanyRole defines the possible roles a user can have within a company.
type UserCompanyRole string

const (
	RoleAdmin    UserCompanyRole = "ADMIN"
	RoleMember   UserCompanyRole = "MEMBER"
	RoleReadOnly UserCompanyRole = "READONLY"
	RoleRemoved  UserCompanyRole = "REMOVED"
)

// UserCompany links an externally-authenticated user to a company with a role.
type UserCompany struct {
	UserID    string          `json:"userID"`
	CompanyID string          `json:"companyID"`
	Role      UserCompanyRole `json:"role"`
	AuditFields
}
