package dto

import "time"

// CreateCompanyRequest payload.
type CreateCompanyRequest struct {
	Name string `json:"name"`
}

// CompanyResponse represents a client company.
type CompanyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateContractRequest payload. Expires is a calendar date or an RFC 3339 timestamp.
type CreateContractRequest struct {
	ServiceName string `json:"service_name"`
	Details     string `json:"details"`
	Expires     string `json:"expires"`
}

// UpdateContractRequest payload; omitted fields are left untouched.
type UpdateContractRequest struct {
	ServiceName *string `json:"service_name"`
	Details     *string `json:"details"`
	Expires     *string `json:"expires"`
}

// ContractResponse represents a service contract.
type ContractResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	ServiceName string    `json:"service_name"`
	Details     string    `json:"details"`
	Expires     time.Time `json:"expires"`
}

// DocumentResponse represents a document shared with a company.
type DocumentResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	FileName  string `json:"file_name"`
	URL       string `json:"url"`
}

// CompanyAccountResponse groups a company with its clients and contracts.
type CompanyAccountResponse struct {
	Company   CompanyResponse    `json:"company"`
	Clients   []UserResponse     `json:"clients"`
	Contracts []ContractResponse `json:"contracts"`
}
