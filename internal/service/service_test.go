package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spec-kit/incubtek-portal/internal/auth"
	"github.com/spec-kit/incubtek-portal/internal/domain"
	"github.com/spec-kit/incubtek-portal/internal/events"
	"github.com/spec-kit/incubtek-portal/internal/fixtures"
	"github.com/spec-kit/incubtek-portal/internal/navigation"
	"github.com/spec-kit/incubtek-portal/internal/notification"
	"github.com/spec-kit/incubtek-portal/internal/state"
	apperrors "github.com/spec-kit/incubtek-portal/pkg/util/errorutil"
)

var testNow = time.Date(2024, 7, 20, 12, 30, 45, 0, time.UTC)

type fakeQueue struct {
	mu    sync.Mutex
	items []domain.Notification
}

func (q *fakeQueue) Enqueue(n domain.Notification) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, n)
	return true
}

// storeCheckingConfirmer records whether the lead was already stored when
// the confirmation text was requested.
type storeCheckingConfirmer struct {
	store    *state.Store
	sawLead  bool
	calledAt int
	text     string
}

func (c *storeCheckingConfirmer) Text(_ context.Context, lead domain.Lead) string {
	_, c.sawLead = state.FindLead(c.store.Snapshot().Leads, lead.ID)
	c.calledAt = len(c.store.Snapshot().Notifications)
	return c.text
}

type harness struct {
	store         *state.Store
	queue         *fakeQueue
	confirmer     *storeCheckingConfirmer
	leads         *LeadService
	tickets       *TicketService
	notifications *NotificationService
}

func newHarness(t *testing.T, hash fixtures.HashFunc) harness {
	t.Helper()
	seed, err := fixtures.Seed(testNow, hash)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	store := state.NewStore(seed, state.Options{
		Clock:  func() time.Time { return testNow },
		Picker: func(int) int { return 0 },
	})
	dispatcher := events.NewInMemoryDispatcher()
	queue := &fakeQueue{}
	confirmer := &storeCheckingConfirmer{store: store, text: "Merci pour votre demande."}
	notifications := NewNotificationService(NotificationDependencies{
		Dispatcher: dispatcher,
		Store:      store,
		Deriver:    notification.NewDeriver(func() time.Time { return testNow }, time.UTC),
		Confirmer:  confirmer,
		Queue:      queue,
	})
	notifications.RegisterHandlers()
	return harness{
		store:         store,
		queue:         queue,
		confirmer:     confirmer,
		leads:         NewLeadService(LeadDependencies{Store: store, Dispatcher: dispatcher}),
		tickets:       NewTicketService(TicketDependencies{Store: store, Dispatcher: dispatcher}),
		notifications: notifications,
	}
}

func mustUser(t *testing.T, store *state.Store, id string) domain.User {
	t.Helper()
	u, ok := store.User(id)
	if !ok {
		t.Fatalf("fixture user %s missing", id)
	}
	return u
}

func TestSubmitLeadStoresBeforeNotifying(t *testing.T) {
	h := newHarness(t, nil)

	lead := h.leads.Submit(context.Background(), LeadInput{
		Name:  " Claire Petit ",
		Email: "claire@example.com",
		Needs: []string{"Création de site web"},
	})

	if lead.Status != domain.LeadStatusNew || lead.Name != "Claire Petit" || len(lead.Activity) != 0 {
		t.Fatalf("unexpected lead: %+v", lead)
	}
	if !strings.HasPrefix(lead.ID, "lead-") {
		t.Fatalf("unexpected id %q", lead.ID)
	}
	if !h.confirmer.sawLead || h.confirmer.calledAt != 0 {
		t.Fatalf("confirmation must run after insertion and before any notification")
	}

	notes := h.notifications.List()
	if len(notes) != 2 {
		t.Fatalf("expected admin alert and client confirmation, got %d", len(notes))
	}
	if notes[1].To != "claire@example.com" || notes[1].Body != "Merci pour votre demande." {
		t.Fatalf("unexpected confirmation record: %+v", notes[1])
	}
	if len(h.queue.items) != 2 {
		t.Fatalf("expected both records queued, got %d", len(h.queue.items))
	}
	if leads := h.leads.List(); leads[0].ID != lead.ID {
		t.Fatalf("expected new lead first, got %s", leads[0].ID)
	}
}

func TestLeadFollowUp(t *testing.T) {
	h := newHarness(t, nil)
	admin := mustUser(t, h.store, "admin-1")
	leadID := h.leads.List()[0].ID

	if _, found := h.leads.UpdateStatus("missing", domain.LeadStatusLost); found {
		t.Fatalf("expected unknown lead to be reported")
	}
	lead, found := h.leads.AddNote(leadID, "Rappel lundi", admin)
	if !found || lead.Activity[0].Author != admin.Name || lead.Activity[0].Note != "Rappel lundi" {
		t.Fatalf("unexpected note result: %+v", lead.Activity)
	}
}

func TestCreateTicketAssignsAndNotifies(t *testing.T) {
	h := newHarness(t, nil)
	client := mustUser(t, h.store, "user-1")

	ticket := h.tickets.CreateTicket(context.Background(), client, TicketCreateInput{
		Type:        domain.TicketTypeIncident,
		Title:       "VPN",
		Description: "Le VPN ne répond plus",
		Urgency:     domain.TicketUrgencyHigh,
	})

	if ticket.CompanyID != client.CompanyID || ticket.RequesterID != client.ID {
		t.Fatalf("ticket not scoped to requester: %+v", ticket)
	}
	if ticket.AssigneeID == nil || *ticket.AssigneeID != "support-1" {
		t.Fatalf("expected picker to choose support-1, got %v", ticket.AssigneeID)
	}
	if len(ticket.Messages) != 1 || ticket.Messages[0].Author != client.Name {
		t.Fatalf("unexpected seed message: %+v", ticket.Messages)
	}

	var toRequester bool
	for _, n := range h.notifications.List() {
		if n.To == client.Email {
			toRequester = true
		}
	}
	if !toRequester {
		t.Fatalf("expected requester acknowledgement")
	}
	if got := h.tickets.ListCompanyTickets(client.CompanyID); got[0].ID != ticket.ID {
		t.Fatalf("expected new ticket first, got %s", got[0].ID)
	}
}

func TestClientReplyReopensWithoutNotification(t *testing.T) {
	h := newHarness(t, nil)
	client := mustUser(t, h.store, "user-2")

	ticket, found := h.tickets.AddMessage(context.Background(), client, "tick-4", MessageInput{Content: "Toujours bloqué"})
	if !found {
		t.Fatalf("expected ticket to be found")
	}
	if ticket.Status != domain.TicketStatusInProgress {
		t.Fatalf("client reply must move ticket to En cours, got %s", ticket.Status)
	}
	if n := len(h.notifications.List()); n != 0 {
		t.Fatalf("client reply must not notify, got %d records", n)
	}
}

func TestStaffReplyNotifiesRequester(t *testing.T) {
	h := newHarness(t, nil)
	agent := mustUser(t, h.store, "support-1")
	requester := mustUser(t, h.store, "user-2")

	ticket, found := h.tickets.AddMessage(context.Background(), agent, "tick-4", MessageInput{
		Content:    "Pouvez-vous redémarrer ?",
		Attachment: &domain.Attachment{FileName: "procedure.pdf", Reference: "ref-1"},
	})
	if !found {
		t.Fatalf("expected ticket to be found")
	}
	if ticket.Status != domain.TicketStatusPending {
		t.Fatalf("staff reply must keep status, got %s", ticket.Status)
	}
	notes := h.notifications.List()
	if len(notes) != 1 || notes[0].To != requester.Email {
		t.Fatalf("expected one notification to requester, got %+v", notes)
	}
	if !strings.Contains(notes[0].Body, "procedure.pdf") || !strings.Contains(notes[0].Body, agent.Name) {
		t.Fatalf("unexpected body: %s", notes[0].Body)
	}
}

func TestClientCannotReachOtherCompanyTicket(t *testing.T) {
	h := newHarness(t, nil)
	client := mustUser(t, h.store, "user-1")

	if _, found := h.tickets.GetTicketForUser(client, "tick-3"); found {
		t.Fatalf("expected foreign ticket to be hidden")
	}
	if _, found := h.tickets.AddMessage(context.Background(), client, "tick-3", MessageInput{Content: "x"}); found {
		t.Fatalf("expected foreign ticket to be untouched")
	}
	ticket, _ := h.store.Ticket("tick-3")
	if len(ticket.Messages) != 1 {
		t.Fatalf("foreign ticket thread changed")
	}
}

func TestStaffStatusAndAssignment(t *testing.T) {
	h := newHarness(t, nil)
	admin := mustUser(t, h.store, "admin-1")

	ticket, found := h.tickets.UpdateStatus(context.Background(), admin, "tick-2", domain.TicketStatusClosed)
	if !found || ticket.Status != domain.TicketStatusClosed {
		t.Fatalf("unexpected status result: %+v", ticket)
	}
	ticket, found = h.tickets.Assign(context.Background(), admin, "tick-2", "admin-1")
	if !found || ticket.AssigneeID == nil || *ticket.AssigneeID != "admin-1" {
		t.Fatalf("unexpected assignment: %+v", ticket.AssigneeID)
	}
	ticket, _ = h.tickets.Assign(context.Background(), admin, "tick-2", "")
	if ticket.AssigneeID != nil {
		t.Fatalf("expected ticket to be unassigned")
	}
	if _, found := h.tickets.UpdateStatus(context.Background(), admin, "missing", domain.TicketStatusClosed); found {
		t.Fatalf("expected unknown ticket to be reported")
	}
	if !h.tickets.IsAssignable("support-2") || h.tickets.IsAssignable("user-1") {
		t.Fatalf("unexpected assignable set")
	}

	closed := domain.TicketStatusClosed
	if got := h.tickets.ListStaffTickets(state.TicketFilter{Status: &closed}); len(got) != 1 || got[0].ID != "tick-2" {
		t.Fatalf("unexpected filtered tickets: %+v", got)
	}
}

func TestClearNotifications(t *testing.T) {
	h := newHarness(t, nil)
	h.leads.Submit(context.Background(), LeadInput{Name: "A", Email: "a@example.com", Needs: []string{"x"}})
	h.notifications.Clear()
	if n := len(h.notifications.List()); n != 0 {
		t.Fatalf("expected empty log, got %d", n)
	}
}

func TestDirectoryService(t *testing.T) {
	h := newHarness(t, nil)
	dir := NewDirectoryService(DirectoryDependencies{Store: h.store, BcryptCost: 4})

	company := dir.AddCompany(" Nouvelle SAS ")
	if company.Name != "Nouvelle SAS" {
		t.Fatalf("unexpected company: %+v", company)
	}
	user, err := dir.AddUser(company.ID, "Paul", "paul@example.com", "secret")
	if err != nil {
		t.Fatalf("add user: %v", err)
	}
	if user.Role != domain.RoleClient || auth.ComparePassword(user.PasswordHash, "secret") != nil {
		t.Fatalf("unexpected user: %+v", user)
	}

	_, err = dir.AddUser(company.ID, "Paul bis", "paul@example.com", "secret")
	var de *apperrors.DomainError
	if !errors.As(err, &de) || de.Code != "CONFLICT" {
		t.Fatalf("expected conflict, got %v", err)
	}
	_, err = dir.AddUser("comp-missing", "X", "x@example.com", "secret")
	if !errors.As(err, &de) || de.Code != "NOT_FOUND" {
		t.Fatalf("expected not found, got %v", err)
	}

	password := "nouveau"
	updated, found, err := dir.UpdateUser(user.ID, UserUpdate{Password: &password})
	if err != nil || !found || auth.ComparePassword(updated.PasswordHash, "nouveau") != nil {
		t.Fatalf("password not updated: found=%v err=%v", found, err)
	}
	if _, found, _ := dir.UpdateUser("missing", UserUpdate{}); found {
		t.Fatalf("expected unknown user to be reported")
	}

	expires := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	contract, err := dir.AddContract(company.ID, "Support", "8/5", expires)
	if err != nil || !contract.Expires.Equal(expires) {
		t.Fatalf("unexpected contract: %+v err=%v", contract, err)
	}

	var account *state.CompanyAccount
	accounts := dir.Accounts()
	for i := range accounts {
		if accounts[i].Company.ID == company.ID {
			account = &accounts[i]
		}
	}
	if account == nil || len(account.Clients) != 1 || len(account.Contracts) != 1 {
		t.Fatalf("unexpected account: %+v", account)
	}
}

func TestLogin(t *testing.T) {
	h := newHarness(t, auth.Hasher(4))
	svc := NewAuthService(AuthDependencies{Store: h.store, Tokens: auth.NewTokenManager("secret", time.Hour)})

	result, err := svc.Login("alice.martin@incubtek.com", fixtures.DefaultPassword)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Landing != navigation.ViewAdminDashboard || result.Session.Token == "" || result.Session.Role != domain.RoleAdmin {
		t.Fatalf("unexpected login result: %+v", result)
	}

	for _, tc := range []struct{ email, password string }{
		{"alice.martin@incubtek.com", "wrong"},
		{"nobody@example.com", fixtures.DefaultPassword},
	} {
		_, err := svc.Login(tc.email, tc.password)
		var de *apperrors.DomainError
		if !errors.As(err, &de) || de.HTTPStatus != 401 || de.Message != InvalidCredentialsMessage {
			t.Fatalf("expected invalid credentials for %s, got %v", tc.email, err)
		}
	}
}

func TestLoginRequiresCredential(t *testing.T) {
	h := newHarness(t, nil)
	svc := NewAuthService(AuthDependencies{Store: h.store, Tokens: auth.NewTokenManager("secret", time.Hour)})
	if _, err := svc.Login("jean.dupont@example.com", ""); err == nil {
		t.Fatalf("expected accounts without password to be rejected")
	}
}
