package domain

import "time"

// Company is a client organisation.
type Company struct {
	ID   string
	Name string
}

// Contract is a service agreement held by a client company.
type Contract struct {
	ID          string
	CompanyID   string
	ServiceName string
	Details     string
	Expires     time.Time
}

// ContractPatch carries the admin-editable contract fields.
type ContractPatch struct {
	ServiceName *string
	Details     *string
	Expires     *time.Time
}

// Document is a file made available to a client company on its dashboard.
type Document struct {
	ID        string
	CompanyID string
	FileName  string
	URL       string
}
