package navigation

import (
	"sync"

	"github.com/spec-kit/incubtek-portal/internal/domain"
)

// Route is a navigation request: a view and an optional payload. The payload
// is a service title for the quote form and a ticket id for detail views.
type Route struct {
	View    View
	Payload string
}

// Location is where a session currently stands.
type Location struct {
	View             View
	User             *domain.User
	SelectedService  string
	SelectedTicketID string
}

// Navigator tracks the location of one session.
type Navigator struct {
	mu  sync.Mutex
	loc Location
}

// NewNavigator starts a session on the home view.
func NewNavigator() *Navigator {
	return &Navigator{loc: Location{View: ViewHome}}
}

// Location returns the current location.
func (n *Navigator) Location() Location {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.loc
}

// Navigate moves to r.View. The payload is kept as selected service only for
// the quote form and as selected ticket only for the ticket detail views;
// other payloads are dropped.
func (n *Navigator) Navigate(r Route) Location {
	n.mu.Lock()
	defer n.mu.Unlock()
	switch r.View {
	case ViewQuoteForm:
		n.loc.SelectedService = r.Payload
	case ViewAdminTicketDetail, ViewClientTicketDetail:
		n.loc.SelectedTicketID = r.Payload
	}
	n.loc.View = r.View
	return n.loc
}

// Resume restores a session that is already signed in, without moving it.
func (n *Navigator) Resume(user domain.User) {
	n.mu.Lock()
	defer n.mu.Unlock()
	u := user
	n.loc.User = &u
}

// Login signs user in and moves to their landing view.
func (n *Navigator) Login(user domain.User) Location {
	n.mu.Lock()
	defer n.mu.Unlock()
	u := user
	n.loc.User = &u
	n.loc.View = Landing(user.Role)
	return n.loc
}

// Logout signs the user out. A gated current view is replaced by home.
func (n *Navigator) Logout() Location {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.loc.User = nil
	if Gated(n.loc.View) {
		n.loc.View = ViewHome
	}
	return n.loc
}
