package handlers

import (
	"github.com/spec-kit/incubtek-portal/internal/api/dto"
	"github.com/spec-kit/incubtek-portal/internal/domain"
	"github.com/spec-kit/incubtek-portal/internal/state"
)

func userResponse(u domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		CompanyID:   u.CompanyID,
		HasPassword: u.HasCredential(),
	}
}

func userResponses(users []domain.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse(u))
	}
	return out
}

func companyResponse(c domain.Company) dto.CompanyResponse {
	return dto.CompanyResponse{ID: c.ID, Name: c.Name}
}

func companyResponses(companies []domain.Company) []dto.CompanyResponse {
	out := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, companyResponse(c))
	}
	return out
}

func contractResponse(c domain.Contract) dto.ContractResponse {
	return dto.ContractResponse{
		ID:          c.ID,
		CompanyID:   c.CompanyID,
		ServiceName: c.ServiceName,
		Details:     c.Details,
		Expires:     c.Expires,
	}
}

func contractResponses(contracts []domain.Contract) []dto.ContractResponse {
	out := make([]dto.ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, contractResponse(c))
	}
	return out
}

func documentResponses(documents []domain.Document) []dto.DocumentResponse {
	out := make([]dto.DocumentResponse, 0, len(documents))
	for _, d := range documents {
		out = append(out, dto.DocumentResponse{ID: d.ID, CompanyID: d.CompanyID, FileName: d.FileName, URL: d.URL})
	}
	return out
}

func accountResponses(accounts []state.CompanyAccount) []dto.CompanyAccountResponse {
	out := make([]dto.CompanyAccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, dto.CompanyAccountResponse{
			Company:   companyResponse(a.Company),
			Clients:   userResponses(a.Clients),
			Contracts: contractResponses(a.Contracts),
		})
	}
	return out
}

func leadResponse(l domain.Lead) dto.LeadResponse {
	activity := make([]dto.LeadActivityResponse, 0, len(l.Activity))
	for _, a := range l.Activity {
		activity = append(activity, dto.LeadActivityResponse{Author: a.Author, Note: a.Note, Timestamp: a.Timestamp})
	}
	needs := l.Needs
	if needs == nil {
		needs = []string{}
	}
	return dto.LeadResponse{
		ID:          l.ID,
		Name:        l.Name,
		Company:     l.Company,
		Email:       l.Email,
		Phone:       l.Phone,
		Needs:       needs,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
		Status:      l.Status,
		Activity:    activity,
	}
}

func leadResponses(leads []domain.Lead) []dto.LeadResponse {
	out := make([]dto.LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, leadResponse(l))
	}
	return out
}

func ticketSummary(t domain.Ticket) dto.TicketSummary {
	return dto.TicketSummary{
		ID:          t.ID,
		Type:        t.Type,
		Title:       t.Title,
		Status:      t.Status,
		Urgency:     t.Urgency,
		RequesterID: t.RequesterID,
		CompanyID:   t.CompanyID,
		ContractID:  t.ContractID,
		AssigneeID:  t.AssigneeID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func ticketSummaries(tickets []domain.Ticket) []dto.TicketSummary {
	out := make([]dto.TicketSummary, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ticketSummary(t))
	}
	return out
}

func ticketDetail(t domain.Ticket) dto.TicketDetailResponse {
	msgs := make([]dto.TicketMessageResponse, 0, len(t.Messages))
	for _, m := range t.Messages {
		msgs = append(msgs, ticketMessageResponse(m))
	}
	return dto.TicketDetailResponse{
		TicketSummary: ticketSummary(t),
		Description:   t.Description,
		Messages:      msgs,
	}
}

func ticketMessageResponse(m domain.TicketMessage) dto.TicketMessageResponse {
	resp := dto.TicketMessageResponse{Author: m.Author, Content: m.Content, Timestamp: m.Timestamp}
	if m.Attachment != nil {
		resp.Attachment = &dto.AttachmentResponse{FileName: m.Attachment.FileName, Reference: m.Attachment.Reference}
	}
	return resp
}

func notificationResponses(list []domain.Notification) []dto.NotificationResponse {
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		cc := n.CC
		if cc == nil {
			cc = []string{}
		}
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			To:        n.To,
			CC:        cc,
			Subject:   n.Subject,
			Body:      n.Body,
			Timestamp: n.Timestamp,
		})
	}
	return out
}

func historyResponses(entries []domain.TicketHistory) []dto.TicketHistoryResponse {
	out := make([]dto.TicketHistoryResponse, 0, len(entries))
	for _, h := range entries {
		out = append(out, dto.TicketHistoryResponse{
			ID:          h.ID,
			ChangedByID: h.ChangedByID,
			ChangeType:  h.ChangeType,
			OldValue:    h.OldValue,
			NewValue:    h.NewValue,
			CreatedAt:   h.CreatedAt,
		})
	}
	return out
}
