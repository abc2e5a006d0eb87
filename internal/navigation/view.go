// Package navigation decides which screen a session sees. A Route names a
// view and its payload; the Router maps a session location onto exactly one
// Screen, falling back to the home screen whenever the role gate fails.
package navigation

import "github.com/spec-kit/incubtek-portal/internal/domain"

// View identifies a screen of the portal.
type View string

const (
	ViewHome               View = "Home"
	ViewLogin              View = "Login"
	ViewDashboard          View = "Dashboard"
	ViewAdminDashboard     View = "AdminDashboard"
	ViewSupportDashboard   View = "SupportDashboard"
	ViewServicesDemarrage  View = "ServicesDemarrage"
	ViewServicesGestion    View = "ServicesGestion"
	ViewQuoteForm          View = "QuoteForm"
	ViewNewTicket          View = "NewTicket"
	ViewAdminLeads         View = "AdminLeads"
	ViewAdminHelpdesk      View = "AdminHelpdesk"
	ViewAdminClients       View = "AdminClients"
	ViewAdminTicketDetail  View = "AdminTicketDetail"
	ViewClientTicketDetail View = "ClientTicketDetail"

	// ViewNotFound is never navigated to; it is resolved when a detail view
	// points at a missing ticket.
	ViewNotFound View = "NotFound"
)

// Access is the gate guarding a view.
type Access int

const (
	AccessPublic Access = iota
	// AccessSignedIn needs any user; without one the login screen is shown.
	AccessSignedIn
	AccessAdmin
	AccessSupport
	AccessStaff
	AccessClient
)

var accessTable = map[View]Access{
	ViewHome:               AccessPublic,
	ViewLogin:              AccessPublic,
	ViewServicesDemarrage:  AccessPublic,
	ViewServicesGestion:    AccessPublic,
	ViewQuoteForm:          AccessPublic,
	ViewDashboard:          AccessSignedIn,
	ViewNewTicket:          AccessSignedIn,
	ViewAdminDashboard:     AccessAdmin,
	ViewAdminLeads:         AccessAdmin,
	ViewAdminHelpdesk:      AccessAdmin,
	ViewAdminClients:       AccessAdmin,
	ViewSupportDashboard:   AccessSupport,
	ViewAdminTicketDetail:  AccessStaff,
	ViewClientTicketDetail: AccessClient,
}

// ParseView returns the view named s.
func ParseView(s string) (View, bool) {
	v := View(s)
	_, ok := accessTable[v]
	return v, ok
}

// AccessOf returns the gate of v. Unknown views are treated as public.
func AccessOf(v View) Access {
	return accessTable[v]
}

// Gated reports whether v is hidden from anonymous visitors.
func Gated(v View) bool {
	return AccessOf(v) != AccessPublic
}

// Allows reports whether user passes the gate a.
func (a Access) Allows(user *domain.User) bool {
	switch a {
	case AccessPublic:
		return true
	case AccessSignedIn:
		return user != nil
	case AccessAdmin:
		return user != nil && user.Role == domain.RoleAdmin
	case AccessSupport:
		return user != nil && user.Role == domain.RoleSupport
	case AccessStaff:
		return user != nil && user.Role.IsStaff()
	case AccessClient:
		return user != nil && user.Role == domain.RoleClient
	}
	return false
}

// Landing returns the view a user lands on after signing in.
func Landing(role domain.Role) View {
	switch role {
	case domain.RoleAdmin:
		return ViewAdminDashboard
	case domain.RoleSupport:
		return ViewSupportDashboard
	default:
		return ViewDashboard
	}
}

// TicketDetailBack is the view a staff member returns to from a ticket.
func TicketDetailBack(role domain.Role) View {
	if role == domain.RoleAdmin {
		return ViewAdminHelpdesk
	}
	return ViewSupportDashboard
}
