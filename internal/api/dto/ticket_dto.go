package dto

import (
	"time"

	"github.com/spec-kit/incubtek-portal/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Type        domain.TicketType    `json:"type"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Urgency     domain.TicketUrgency `json:"urgency"`
	ContractID  *string              `json:"contract_id"`
}

// TicketSummary response.
type TicketSummary struct {
	ID          string               `json:"id"`
	Type        domain.TicketType    `json:"type"`
	Title       string               `json:"title"`
	Status      domain.TicketStatus  `json:"status"`
	Urgency     domain.TicketUrgency `json:"urgency"`
	RequesterID string               `json:"requester_id"`
	CompanyID   string               `json:"company_id"`
	ContractID  *string              `json:"contract_id"`
	AssigneeID  *string              `json:"assignee_id"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// TicketDetailResponse provides full ticket info.
type TicketDetailResponse struct {
	TicketSummary
	Description string                  `json:"description"`
	Messages    []TicketMessageResponse `json:"messages"`
}

// TicketMessageResponse represents thread message.
type TicketMessageResponse struct {
	Author     string              `json:"author"`
	Content    string              `json:"content"`
	Timestamp  time.Time           `json:"timestamp"`
	Attachment *AttachmentResponse `json:"attachment,omitempty"`
}

// AttachmentResponse metadata.
type AttachmentResponse struct {
	FileName  string `json:"file_name"`
	Reference string `json:"reference"`
}

// CreateMessageRequest payload.
type CreateMessageRequest struct {
	Content    string             `json:"content"`
	Attachment *AttachmentRequest `json:"attachment,omitempty"`
}

// AttachmentRequest describes attachment input.
type AttachmentRequest struct {
	FileName  string `json:"file_name"`
	Reference string `json:"reference"`
}

// UpdateTicketStatusRequest payload.
type UpdateTicketStatusRequest struct {
	Status domain.TicketStatus `json:"status"`
}

// AssignTicketRequest payload. An empty assignee unassigns the ticket.
type AssignTicketRequest struct {
	AssigneeID string `json:"assignee_id"`
}

// TicketHistoryResponse is one journaled ticket change.
type TicketHistoryResponse struct {
	ID          int64                   `json:"id"`
	ChangedByID string                  `json:"changed_by_id"`
	ChangeType  domain.TicketChangeType `json:"change_type"`
	OldValue    *string                 `json:"old_value,omitempty"`
	NewValue    *string                 `json:"new_value,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
}
