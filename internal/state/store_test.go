package state

import (
	"testing"
	"time"

	"github.com/spec-kit/incubtek-portal/internal/domain"
)

func newTestStore(initial State) *Store {
	now := fixedNow
	return NewStore(initial, Options{
		Clock:  func() time.Time { now = now.Add(time.Millisecond); return now },
		Picker: func(int) int { return 0 },
	})
}

func TestStoreAddUserForcesClientRole(t *testing.T) {
	store := newTestStore(State{})

	user := store.AddUser("comp-1", "Marie", "marie@x.com", "hash")

	if user.Role != domain.RoleClient || user.CompanyID != "comp-1" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if got := store.Snapshot().Users; len(got) != 1 || got[0].ID != user.ID {
		t.Fatalf("user not stored: %+v", got)
	}
}

func TestStoreAddCompanyAppends(t *testing.T) {
	store := newTestStore(State{Companies: []domain.Company{{ID: "comp-1", Name: "Innovatech"}}})

	c := store.AddCompany("Nouvelle SAS")

	companies := store.Snapshot().Companies
	if len(companies) != 2 || companies[1].ID != c.ID || companies[1].Name != "Nouvelle SAS" {
		t.Fatalf("unexpected companies: %+v", companies)
	}
}

func TestStoreNotFoundIsSilentNoop(t *testing.T) {
	initial := State{
		Leads:   []domain.Lead{{ID: "lead-1", Status: domain.LeadStatusNew}},
		Tickets: []domain.Ticket{{ID: "tick-1", Status: domain.TicketStatusNew}},
	}
	store := newTestStore(initial)

	if _, ok := store.UpdateLeadStatus("nope", domain.LeadStatusLost); ok {
		t.Fatalf("expected not found")
	}
	if _, ok := store.AddLeadNote("nope", "n", "a"); ok {
		t.Fatalf("expected not found")
	}
	if _, ok := store.UpdateTicketStatus("nope", domain.TicketStatusClosed); ok {
		t.Fatalf("expected not found")
	}
	if _, ok := store.AssignTicket("nope", "support-1"); ok {
		t.Fatalf("expected not found")
	}
	if _, ok := store.AddTicketMessage("nope", domain.TicketMessage{}, domain.RoleClient); ok {
		t.Fatalf("expected not found")
	}
	if _, ok := store.UpdateUser("nope", domain.UserPatch{}); ok {
		t.Fatalf("expected not found")
	}
	if _, ok := store.UpdateContract("nope", domain.ContractPatch{}); ok {
		t.Fatalf("expected not found")
	}

	snap := store.Snapshot()
	if snap.Leads[0].Status != domain.LeadStatusNew || snap.Tickets[0].Status != domain.TicketStatusNew {
		t.Fatalf("state changed: %+v", snap)
	}
}

func TestStoreSnapshotIsStableAcrossUpdates(t *testing.T) {
	store := newTestStore(State{Tickets: []domain.Ticket{{ID: "tick-1", Status: domain.TicketStatusNew}}})

	before := store.Snapshot()
	if _, ok := store.UpdateTicketStatus("tick-1", domain.TicketStatusResolved); !ok {
		t.Fatalf("expected ticket found")
	}

	if before.Tickets[0].Status != domain.TicketStatusNew {
		t.Fatalf("earlier snapshot observed the update")
	}
	if store.Snapshot().Tickets[0].Status != domain.TicketStatusResolved {
		t.Fatalf("update not applied")
	}
}

func TestStoreAddTicketPrependsAndAssigns(t *testing.T) {
	store := newTestStore(State{
		Users:   []domain.User{{ID: "support-1", Role: domain.RoleSupport}, {ID: "user-1", Name: "Jean", Role: domain.RoleClient, CompanyID: "comp-1"}},
		Tickets: []domain.Ticket{{ID: "tick-1"}},
	})

	ticket := store.AddTicket(domain.TicketInput{Title: "VPN", Description: "coupé", RequesterID: "user-1", CompanyID: "comp-1"})

	tickets := store.Snapshot().Tickets
	if tickets[0].ID != ticket.ID || len(tickets) != 2 {
		t.Fatalf("ticket not prepended: %+v", tickets)
	}
	if ticket.AssigneeID == nil || *ticket.AssigneeID != "support-1" {
		t.Fatalf("unexpected assignee: %v", ticket.AssigneeID)
	}
}

func TestStoreNotificationsLifecycle(t *testing.T) {
	store := newTestStore(State{})

	store.PrependNotifications([]domain.Notification{{ID: "N1"}})
	store.PrependNotifications(nil)
	store.PrependNotifications([]domain.Notification{{ID: "N2"}})

	list := store.Snapshot().Notifications
	if len(list) != 2 || list[0].ID != "N2" || list[1].ID != "N1" {
		t.Fatalf("unexpected list: %+v", list)
	}

	store.ClearNotifications()
	if got := store.Snapshot().Notifications; len(got) != 0 {
		t.Fatalf("expected cleared, got %+v", got)
	}
}
