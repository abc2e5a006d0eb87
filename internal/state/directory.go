package state

import (
	"fmt"
	"strings"
	"time"

	"github.com/spec-kit/incubtek-portal/internal/domain"
)

// AddCompany appends a company.
func AddCompany(companies []domain.Company, company domain.Company) []domain.Company {
	next := make([]domain.Company, 0, len(companies)+1)
	next = append(next, companies...)
	return append(next, company)
}

// AddUser appends a user.
func AddUser(users []domain.User, user domain.User) []domain.User {
	next := make([]domain.User, 0, len(users)+1)
	next = append(next, users...)
	return append(next, user)
}

// UpdateUser merges the provided fields into the matching user.
func UpdateUser(users []domain.User, userID string, patch domain.UserPatch) []domain.User {
	next := make([]domain.User, len(users))
	copy(next, users)
	for i := range next {
		if next[i].ID != userID {
			continue
		}
		if patch.Name != nil {
			next[i].Name = *patch.Name
		}
		if patch.Email != nil {
			next[i].Email = *patch.Email
		}
		if patch.PasswordHash != nil {
			next[i].PasswordHash = *patch.PasswordHash
		}
	}
	return next
}

// AddContract appends a contract with its expiry normalized to UTC.
func AddContract(contracts []domain.Contract, contract domain.Contract) []domain.Contract {
	contract.Expires = contract.Expires.UTC()
	next := make([]domain.Contract, 0, len(contracts)+1)
	next = append(next, contracts...)
	return append(next, contract)
}

// UpdateContract merges the provided fields into the matching contract.
func UpdateContract(contracts []domain.Contract, contractID string, patch domain.ContractPatch) []domain.Contract {
	next := make([]domain.Contract, len(contracts))
	copy(next, contracts)
	for i := range next {
		if next[i].ID != contractID {
			continue
		}
		if patch.ServiceName != nil {
			next[i].ServiceName = *patch.ServiceName
		}
		if patch.Details != nil {
			next[i].Details = *patch.Details
		}
		if patch.Expires != nil {
			next[i].Expires = patch.Expires.UTC()
		}
	}
	return next
}

// ParseExpiry accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
// Calendar dates are read as midnight UTC.
func ParseExpiry(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid expiry date %q", value)
}
