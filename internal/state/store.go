package state

import (
	"sync"
	"time"

	"github.com/spec-kit/incubtek-portal/internal/domain"
)

// Options configures a Store.
type Options struct {
	Clock  Clock
	Picker Picker
}

// Store owns the application state. Every mutation replaces exactly one
// collection while holding the write lock; lookups that find nothing leave
// the state untouched and report found=false.
type Store struct {
	mu    sync.RWMutex
	state State
	clock Clock
	pick  Picker
}

// NewStore wraps an initial state.
func NewStore(initial State, opts Options) *Store {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Picker == nil {
		opts.Picker = RandomPicker
	}
	return &Store{state: initial, clock: opts.Clock, pick: opts.Picker}
}

// Now returns the store clock's current time.
func (s *Store) Now() time.Time {
	return s.clock()
}

// Snapshot returns the current collections. Callers must treat the slices as read-only.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// UpdateLeadStatus changes a lead's status.
func (s *Store) UpdateLeadStatus(leadID string, status domain.LeadStatus) (domain.Lead, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := FindLead(s.state.Leads, leadID); !ok {
		return domain.Lead{}, false
	}
	s.state.Leads = UpdateLeadStatus(s.state.Leads, leadID, status)
	return FindLead(s.state.Leads, leadID)
}

// AddLeadNote records a follow-up note on a lead.
func (s *Store) AddLeadNote(leadID, note, author string) (domain.Lead, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := FindLead(s.state.Leads, leadID); !ok {
		return domain.Lead{}, false
	}
	s.state.Leads = AddLeadNote(s.state.Leads, leadID, note, author, s.clock())
	return FindLead(s.state.Leads, leadID)
}

// AddLead inserts a fully formed lead at the head of the list.
func (s *Store) AddLead(lead domain.Lead) domain.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Leads = AddLead(s.state.Leads, lead)
	return lead
}

// AddCompany creates a company with a generated id.
func (s *Store) AddCompany(name string) domain.Company {
	s.mu.Lock()
	defer s.mu.Unlock()
	company := domain.Company{ID: NewID(PrefixCompany, s.clock()), Name: name}
	s.state.Companies = AddCompany(s.state.Companies, company)
	return company
}

// AddUser creates a client account for a company.
func (s *Store) AddUser(companyID, name, email, passwordHash string) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := domain.User{
		ID:           NewID(PrefixUser, s.clock()),
		Name:         name,
		Email:        email,
		Role:         domain.RoleClient,
		CompanyID:    companyID,
		PasswordHash: passwordHash,
	}
	s.state.Users = AddUser(s.state.Users, user)
	return user
}

// UpdateUser merges patch into a user.
func (s *Store) UpdateUser(userID string, patch domain.UserPatch) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := FindUser(s.state.Users, userID); !ok {
		return domain.User{}, false
	}
	s.state.Users = UpdateUser(s.state.Users, userID, patch)
	return FindUser(s.state.Users, userID)
}

// AddContract creates a contract for a company.
func (s *Store) AddContract(companyID, serviceName, details string, expires time.Time) domain.Contract {
	s.mu.Lock()
	defer s.mu.Unlock()
	contract := domain.Contract{
		ID:          NewID(PrefixContract, s.clock()),
		CompanyID:   companyID,
		ServiceName: serviceName,
		Details:     details,
		Expires:     expires.UTC(),
	}
	s.state.Contracts = AddContract(s.state.Contracts, contract)
	return contract
}

// UpdateContract merges patch into a contract.
func (s *Store) UpdateContract(contractID string, patch domain.ContractPatch) (domain.Contract, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := FindContract(s.state.Contracts, contractID); !ok {
		return domain.Contract{}, false
	}
	s.state.Contracts = UpdateContract(s.state.Contracts, contractID, patch)
	return FindContract(s.state.Contracts, contractID)
}

// UpdateTicketStatus changes a ticket's status.
func (s *Store) UpdateTicketStatus(ticketID string, status domain.TicketStatus) (domain.Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := FindTicket(s.state.Tickets, ticketID); !ok {
		return domain.Ticket{}, false
	}
	s.state.Tickets = UpdateTicketStatus(s.state.Tickets, ticketID, status, s.clock())
	return FindTicket(s.state.Tickets, ticketID)
}

// AssignTicket sets or clears (empty id) a ticket's assignee.
func (s *Store) AssignTicket(ticketID, assigneeID string) (domain.Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := FindTicket(s.state.Tickets, ticketID); !ok {
		return domain.Ticket{}, false
	}
	s.state.Tickets = AssignTicket(s.state.Tickets, ticketID, assigneeID, s.clock())
	return FindTicket(s.state.Tickets, ticketID)
}

// AddTicketMessage appends a message posted by an actor with the given role.
func (s *Store) AddTicketMessage(ticketID string, msg domain.TicketMessage, actor domain.Role) (domain.Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := FindTicket(s.state.Tickets, ticketID); !ok {
		return domain.Ticket{}, false
	}
	s.state.Tickets = AddTicketMessage(s.state.Tickets, ticketID, msg, actor, s.clock())
	return FindTicket(s.state.Tickets, ticketID)
}

// AddTicket opens a ticket and picks its assignee among support users.
func (s *Store) AddTicket(input domain.TicketInput) domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock()
	ticket := NewTicket(input, s.state.Users, s.pick, NewID(PrefixTicket, now), now)
	s.state.Tickets = AddTicket(s.state.Tickets, ticket)
	return ticket
}

// PrependNotifications records freshly derived notifications ahead of older ones.
func (s *Store) PrependNotifications(fresh []domain.Notification) {
	if len(fresh) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Notifications = PrependNotifications(s.state.Notifications, fresh)
}

// ClearNotifications empties the notification list.
func (s *Store) ClearNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Notifications = nil
}

// User looks a user up by id.
func (s *Store) User(id string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FindUser(s.state.Users, id)
}

// UserByEmail looks a user up by email.
func (s *Store) UserByEmail(email string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FindUserByEmail(s.state.Users, email)
}

// Ticket looks a ticket up by id.
func (s *Store) Ticket(id string) (domain.Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FindTicket(s.state.Tickets, id)
}
