// Package state holds the portal collections and the pure functions that
// move them from one version to the next. No function in this package
// modifies a slice it receives; updates always return a fresh collection.
package state

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spec-kit/incubtek-portal/internal/domain"
)

// State is the full set of in-memory collections.
type State struct {
	Leads         []domain.Lead
	Tickets       []domain.Ticket
	Companies     []domain.Company
	Users         []domain.User
	Contracts     []domain.Contract
	Documents     []domain.Document
	Notifications []domain.Notification
}

// Clock returns the current time.
type Clock func() time.Time

// Picker returns an index in [0, n). It is only called with n > 0.
type Picker func(n int) int

// RandomPicker picks uniformly at random.
func RandomPicker(n int) int {
	return rand.IntN(n)
}

// ID prefixes used for generated identifiers.
const (
	PrefixLead     = "lead"
	PrefixTicket   = "tick"
	PrefixCompany  = "comp"
	PrefixUser     = "user"
	PrefixContract = "cont"
)

// NewID builds a timestamp based identifier such as "tick-1700000000000".
// Two calls within the same millisecond collide.
func NewID(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%d", prefix, now.UnixMilli())
}
