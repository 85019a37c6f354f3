package types

import "time"

// VerificationStatus is the outcome of a company's document review.
type VerificationStatus string

// Verification statuses.
const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// ParseVerificationStatus maps unknown or empty values to pending.
func ParseVerificationStatus(s string) VerificationStatus {
	switch VerificationStatus(s) {
	case VerificationApproved, VerificationRejected:
		return VerificationStatus(s)
	default:
		return VerificationPending
	}
}

// Company is the view model of an employer (job provider) account.
type Company struct {
	ID                 string
	Name               string
	Email              string
	Industry           string
	Phone              PhoneNumber
	RegistrationDate   time.Time
	IsActive           bool
	IsVerified         bool
	VerificationStatus VerificationStatus
	IsDocumentVerified bool
}

// EntityID returns the company id.
func (c Company) EntityID() string { return c.ID }

// CompanyWire is the backend representation of a job provider.
type CompanyWire struct {
	ID                 string      `json:"_id"`
	Name               string      `json:"name"`
	Email              string      `json:"email"`
	Industry           string      `json:"industry,omitempty"`
	Mobile             *MobileWire `json:"mobile,omitempty"`
	IsActive           bool        `json:"isActive"`
	IsVerified         *bool       `json:"isVerified,omitempty"`
	VerificationStatus string      `json:"verificationStatus,omitempty"`
	IsDocumentVerified *bool       `json:"isDocumentVerified,omitempty"`
	CreatedAt          string      `json:"createdAt"`
}

// CompanyPage is the data section of the job providers list response.
type CompanyPage struct {
	JobProviders []CompanyWire `json:"jobProviders"`
	Pagination   Pagination    `json:"pagination"`
}

// UpdateCompanyRequest is a partial update; nil fields are left unchanged.
type UpdateCompanyRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Industry *string `json:"industry,omitempty"`
}

// Empty reports whether the update changes nothing.
func (r UpdateCompanyRequest) Empty() bool {
	return r.Name == nil && r.Email == nil && r.Industry == nil
}

// VerificationRequest approves or rejects a company's verification.
type VerificationRequest struct {
	VerificationStatus VerificationStatus `json:"verificationStatus" validate:"required,oneof=approved rejected"`
}
