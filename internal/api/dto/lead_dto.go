package dto

import (
	"time"

	"github.com/spec-kit/incubtek-portal/internal/domain"
)

// CreateLeadRequest is the public quote form.
type CreateLeadRequest struct {
	Name        string   `json:"name"`
	Company     string   `json:"company"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Needs       []string `json:"needs"`
	Description string   `json:"description"`
}

// UpdateLeadStatusRequest payload.
type UpdateLeadStatusRequest struct {
	Status domain.LeadStatus `json:"status"`
}

// AddLeadNoteRequest payload.
type AddLeadNoteRequest struct {
	Note string `json:"note"`
}

// LeadResponse represents a lead.
type LeadResponse struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Company     string                 `json:"company"`
	Email       string                 `json:"email"`
	Phone       string                 `json:"phone"`
	Needs       []string               `json:"needs"`
	Description string                 `json:"description"`
	CreatedAt   time.Time              `json:"created_at"`
	Status      domain.LeadStatus      `json:"status"`
	Activity    []LeadActivityResponse `json:"activity"`
}

// LeadActivityResponse is one follow-up note.
type LeadActivityResponse struct {
	Author    string    `json:"author"`
	Note      string    `json:"note"`
	Timestamp time.Time `json:"timestamp"`
}
