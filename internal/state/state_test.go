package state

import (
	"testing"
	"time"

	"github.com/spec-kit/incubtek-portal/internal/domain"
)

var fixedNow = time.Date(2024, 7, 22, 9, 0, 0, 0, time.UTC)

func TestNewID(t *testing.T) {
	got := NewID(PrefixTicket, time.UnixMilli(1700000000000))
	if got != "tick-1700000000000" {
		t.Fatalf("NewID=%q", got)
	}
}

func TestUpdateLeadStatusDoesNotMutateInput(t *testing.T) {
	leads := []domain.Lead{{ID: "lead-1", Status: domain.LeadStatusNew}, {ID: "lead-2", Status: domain.LeadStatusNew}}

	next := UpdateLeadStatus(leads, "lead-2", domain.LeadStatusLost)

	if leads[1].Status != domain.LeadStatusNew {
		t.Fatalf("input mutated: %v", leads[1].Status)
	}
	if next[1].Status != domain.LeadStatusLost || next[0].Status != domain.LeadStatusNew {
		t.Fatalf("unexpected statuses: %+v", next)
	}
}

func TestUpdateLeadStatusAnyTransition(t *testing.T) {
	leads := []domain.Lead{{ID: "lead-1", Status: domain.LeadStatusLost}}
	next := UpdateLeadStatus(leads, "lead-1", domain.LeadStatusNew)
	if next[0].Status != domain.LeadStatusNew {
		t.Fatalf("expected Perdu -> Nouveau to be allowed, got %v", next[0].Status)
	}
}

func TestUpdateLeadStatusUnknownIDIsNoop(t *testing.T) {
	leads := []domain.Lead{{ID: "lead-1", Status: domain.LeadStatusNew}}
	next := UpdateLeadStatus(leads, "missing", domain.LeadStatusConverted)
	if len(next) != 1 || next[0].Status != domain.LeadStatusNew {
		t.Fatalf("expected no-op, got %+v", next)
	}
}

func TestAddLeadNoteNewestFirst(t *testing.T) {
	leads := []domain.Lead{{ID: "lead-1"}}

	leads = AddLeadNote(leads, "lead-1", "N1", "Alice", fixedNow)
	before := leads
	leads = AddLeadNote(leads, "lead-1", "N2", "Alice", fixedNow.Add(time.Minute))

	notes := leads[0].Activity
	if len(notes) != 2 || notes[0].Note != "N2" || notes[1].Note != "N1" {
		t.Fatalf("expected [N2 N1], got %+v", notes)
	}
	if len(before[0].Activity) != 1 {
		t.Fatalf("previous version mutated: %+v", before[0].Activity)
	}
	if notes[0].Author != "Alice" || !notes[0].Timestamp.Equal(fixedNow.Add(time.Minute)) {
		t.Fatalf("unexpected note: %+v", notes[0])
	}
}

func TestAddLeadPrepends(t *testing.T) {
	leads := AddLead([]domain.Lead{{ID: "lead-1"}}, domain.Lead{ID: "lead-2"})
	if leads[0].ID != "lead-2" || leads[1].ID != "lead-1" {
		t.Fatalf("unexpected order: %+v", leads)
	}
}

func TestUpdateUserMergesOnlyProvidedFields(t *testing.T) {
	users := []domain.User{{ID: "user-1", Name: "Jean", Email: "jean@x.com", Role: domain.RoleClient, PasswordHash: "h"}}
	name := "Jean Dupont"

	next := UpdateUser(users, "user-1", domain.UserPatch{Name: &name})

	if next[0].Name != "Jean Dupont" || next[0].Email != "jean@x.com" || next[0].PasswordHash != "h" {
		t.Fatalf("unexpected merge: %+v", next[0])
	}
	if users[0].Name != "Jean" {
		t.Fatalf("input mutated")
	}
}

func TestUpdateContract(t *testing.T) {
	contracts := []domain.Contract{{ID: "cont-1", ServiceName: "Support", Details: "8/5", Expires: fixedNow}}
	details := "24/7"
	paris, _ := time.LoadLocation("Europe/Paris")
	expires := time.Date(2026, 1, 1, 1, 0, 0, 0, paris)

	next := UpdateContract(contracts, "cont-1", domain.ContractPatch{Details: &details, Expires: &expires})

	if next[0].Details != "24/7" || next[0].ServiceName != "Support" {
		t.Fatalf("unexpected merge: %+v", next[0])
	}
	if next[0].Expires.Location() != time.UTC || !next[0].Expires.Equal(expires) {
		t.Fatalf("expiry not normalized: %v", next[0].Expires)
	}
}

func TestParseExpiry(t *testing.T) {
	cases := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"2025-12-31", time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), false},
		{"2025-12-31T23:59:59Z", time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), false},
		{"2025-12-31T23:59:59+02:00", time.Date(2025, 12, 31, 21, 59, 59, 0, time.UTC), false},
		{"31/12/2025", time.Time{}, true},
	}
	for _, tc := range cases {
		got, err := ParseExpiry(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseExpiry(%q) err=%v, wantErr=%v", tc.in, err, tc.wantErr)
		}
		if !tc.wantErr && !got.Equal(tc.want) {
			t.Fatalf("ParseExpiry(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAddTicketMessageClientForcesInProgress(t *testing.T) {
	statuses := []domain.TicketStatus{
		domain.TicketStatusNew,
		domain.TicketStatusPending,
		domain.TicketStatusResolved,
		domain.TicketStatusClosed,
	}
	for _, status := range statuses {
		tickets := []domain.Ticket{{ID: "tick-1", Status: status}}
		next := AddTicketMessage(tickets, "tick-1", domain.TicketMessage{Author: "Jean", Content: "up"}, domain.RoleClient, fixedNow)
		if next[0].Status != domain.TicketStatusInProgress {
			t.Fatalf("client reply from %q left status %q", status, next[0].Status)
		}
	}
}

func TestAddTicketMessageStaffKeepsStatus(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleSupport} {
		tickets := []domain.Ticket{{ID: "tick-1", Status: domain.TicketStatusPending}}
		next := AddTicketMessage(tickets, "tick-1", domain.TicketMessage{Author: "Alice", Content: "ok"}, role, fixedNow)
		if next[0].Status != domain.TicketStatusPending {
			t.Fatalf("%s reply changed status to %q", role, next[0].Status)
		}
		if len(next[0].Messages) != 1 || !next[0].UpdatedAt.Equal(fixedNow) {
			t.Fatalf("message not appended: %+v", next[0])
		}
		if len(tickets[0].Messages) != 0 {
			t.Fatalf("input mutated")
		}
	}
}

func TestAssignTicketClearsOnEmpty(t *testing.T) {
	id := "support-1"
	tickets := []domain.Ticket{{ID: "tick-1", AssigneeID: &id}}

	next := AssignTicket(tickets, "tick-1", "", fixedNow)
	if next[0].AssigneeID != nil {
		t.Fatalf("expected assignee cleared, got %v", *next[0].AssigneeID)
	}
	if !next[0].UpdatedAt.Equal(fixedNow) {
		t.Fatalf("UpdatedAt not refreshed")
	}

	next = AssignTicket(next, "tick-1", "support-2", fixedNow)
	if next[0].AssigneeID == nil || *next[0].AssigneeID != "support-2" {
		t.Fatalf("expected support-2, got %v", next[0].AssigneeID)
	}
}

func TestUpdateTicketStatusRefreshesUpdatedAt(t *testing.T) {
	tickets := []domain.Ticket{{ID: "tick-1", Status: domain.TicketStatusClosed, UpdatedAt: fixedNow.Add(-time.Hour)}}
	next := UpdateTicketStatus(tickets, "tick-1", domain.TicketStatusNew, fixedNow)
	if next[0].Status != domain.TicketStatusNew || !next[0].UpdatedAt.Equal(fixedNow) {
		t.Fatalf("unexpected ticket: %+v", next[0])
	}
}

func TestNewTicketPicksAmongSupportUsers(t *testing.T) {
	users := []domain.User{
		{ID: "admin-1", Role: domain.RoleAdmin},
		{ID: "support-1", Role: domain.RoleSupport},
		{ID: "user-1", Name: "Jean Dupont", Role: domain.RoleClient},
		{ID: "support-2", Role: domain.RoleSupport},
	}
	var gotN int
	pick := func(n int) int { gotN = n; return 1 }
	input := domain.TicketInput{Type: domain.TicketTypeIncident, Title: "Imprimante", Description: "HS", Urgency: domain.TicketUrgencyHigh, RequesterID: "user-1", CompanyID: "comp-1"}

	ticket := NewTicket(input, users, pick, "tick-1", fixedNow)

	if gotN != 2 {
		t.Fatalf("picker called with n=%d, want 2", gotN)
	}
	if ticket.AssigneeID == nil || *ticket.AssigneeID != "support-2" {
		t.Fatalf("expected support-2, got %v", ticket.AssigneeID)
	}
	if ticket.Status != domain.TicketStatusNew || !ticket.CreatedAt.Equal(fixedNow) || !ticket.UpdatedAt.Equal(fixedNow) {
		t.Fatalf("unexpected ticket: %+v", ticket)
	}
	if len(ticket.Messages) != 1 || ticket.Messages[0].Author != "Jean Dupont" || ticket.Messages[0].Content != "HS" {
		t.Fatalf("unexpected seed message: %+v", ticket.Messages)
	}
}

func TestNewTicketWithoutSupportUsers(t *testing.T) {
	users := []domain.User{{ID: "admin-1", Role: domain.RoleAdmin}}
	pick := func(int) int { t.Fatalf("picker must not be called"); return 0 }

	ticket := NewTicket(domain.TicketInput{RequesterID: "ghost", Description: "d"}, users, pick, "tick-1", fixedNow)

	if ticket.AssigneeID != nil {
		t.Fatalf("expected no assignee")
	}
	if ticket.Messages[0].Author != UnknownRequesterName {
		t.Fatalf("expected unknown requester name, got %q", ticket.Messages[0].Author)
	}
}

func TestPrependNotificationsNewestFirst(t *testing.T) {
	var list []domain.Notification
	list = PrependNotifications(list, []domain.Notification{{ID: "N1"}})
	list = PrependNotifications(list, []domain.Notification{{ID: "N2a"}, {ID: "N2b"}})

	want := []string{"N2a", "N2b", "N1"}
	if len(list) != len(want) {
		t.Fatalf("len=%d", len(list))
	}
	for i, id := range want {
		if list[i].ID != id {
			t.Fatalf("position %d: got %s want %s", i, list[i].ID, id)
		}
	}
}

func TestFilterTickets(t *testing.T) {
	support := "support-1"
	tickets := []domain.Ticket{
		{ID: "t1", Status: domain.TicketStatusNew, Type: domain.TicketTypeIncident, CompanyID: "comp-1", AssigneeID: &support},
		{ID: "t2", Status: domain.TicketStatusNew, Type: domain.TicketTypeRequest, CompanyID: "comp-2"},
		{ID: "t3", Status: domain.TicketStatusClosed, Type: domain.TicketTypeIncident, CompanyID: "comp-1"},
	}
	status := domain.TicketStatusNew
	company := "comp-1"

	if got := FilterTickets(tickets, TicketFilter{Status: &status}); len(got) != 2 {
		t.Fatalf("status filter: %d", len(got))
	}
	if got := FilterTickets(tickets, TicketFilter{Status: &status, CompanyID: &company}); len(got) != 1 || got[0].ID != "t1" {
		t.Fatalf("status+company filter: %+v", got)
	}
	if got := FilterTickets(tickets, TicketFilter{AssigneeID: &support}); len(got) != 1 || got[0].ID != "t1" {
		t.Fatalf("assignee filter: %+v", got)
	}
	if got := FilterTickets(tickets, TicketFilter{}); len(got) != 3 {
		t.Fatalf("empty filter: %d", len(got))
	}
}

func TestSortSupportQueue(t *testing.T) {
	tickets := []domain.Ticket{
		{ID: "pending", Status: domain.TicketStatusPending, UpdatedAt: fixedNow.Add(3 * time.Hour)},
		{ID: "progress-old", Status: domain.TicketStatusInProgress, UpdatedAt: fixedNow},
		{ID: "new", Status: domain.TicketStatusNew, UpdatedAt: fixedNow.Add(-time.Hour)},
		{ID: "progress-new", Status: domain.TicketStatusInProgress, UpdatedAt: fixedNow.Add(time.Hour)},
	}
	got := SortSupportQueue(tickets)
	want := []string{"new", "progress-new", "progress-old", "pending"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: got %s want %s", i, got[i].ID, id)
		}
	}
	if tickets[0].ID != "pending" {
		t.Fatalf("input reordered")
	}
}

func TestComputeStats(t *testing.T) {
	s := State{
		Companies: []domain.Company{{ID: "comp-1"}, {ID: "comp-2"}},
		Tickets: []domain.Ticket{
			{Status: domain.TicketStatusNew},
			{Status: domain.TicketStatusInProgress},
			{Status: domain.TicketStatusResolved, UpdatedAt: fixedNow.Add(-time.Hour)},
			{Status: domain.TicketStatusResolved, UpdatedAt: fixedNow.Add(-48 * time.Hour)},
		},
		Leads: []domain.Lead{{Status: domain.LeadStatusNew}, {Status: domain.LeadStatusContacted}},
	}

	admin := ComputeAdminStats(s)
	if admin.TotalClients != 2 || admin.OpenTickets != 2 || admin.NewLeads != 1 {
		t.Fatalf("unexpected admin stats: %+v", admin)
	}
	support := ComputeSupportStats(s.Tickets, fixedNow)
	if support.OpenTickets != 2 || support.ResolvedToday != 1 {
		t.Fatalf("unexpected support stats: %+v", support)
	}
}
