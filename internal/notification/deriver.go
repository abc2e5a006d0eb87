// Package notification derives the outbound email records produced by lead
// and ticket events. Derivation is pure: it reads the collections it is given
// and returns new records, it never stores or delivers them.
package notification

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/incubtek-portal/internal/domain"
)

// Fixed subjects and fallbacks of the generated emails.
const (
	LeadConfirmationSubject = "Confirmation de votre demande de devis - Incubtek"
	UnknownRequester        = "Inconnu"
	UnknownCompany          = "Inconnue"
	GenericAssignee         = "un membre de notre équipe"

	// DateLayout renders timestamps the way fr-FR locales print them.
	DateLayout = "02/01/2006 15:04:05"
)

// Deriver builds notifications. Its zero value is usable: it falls back to
// time.Now, generated ids and UTC.
type Deriver struct {
	Clock    func() time.Time
	NewID    func() string
	Location *time.Location
}

// NewDeriver returns a Deriver stamping records with clock and formatting
// dates in loc.
func NewDeriver(clock func() time.Time, loc *time.Location) Deriver {
	d := Deriver{Clock: clock, Location: loc}
	d.NewID = func() string { return GenerateID(d.now()) }
	return d
}

// GenerateID returns an identifier of the form notif-<unix ms>-<uuid>.
func GenerateID(now time.Time) string {
	return fmt.Sprintf("notif-%d-%s", now.UnixMilli(), uuid.NewString())
}

// ShortID returns the first six bytes of id, or id itself when shorter.
func ShortID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[:6]
}

// LeadCreated returns the admin alert (when any admin exists) followed by the
// client confirmation carrying confirmationBody.
func (d Deriver) LeadCreated(lead domain.Lead, users []domain.User, confirmationBody string) []domain.Notification {
	out := make([]domain.Notification, 0, 2)
	admins := adminEmails(users)

	if len(admins) > 0 {
		body := fmt.Sprintf(`Un nouveau lead a été soumis par %s (%s).

Email: %s
Téléphone: %s
Besoins: %s
Description:
%s`, lead.Name, lead.Company, lead.Email, lead.Phone, strings.Join(lead.Needs, ", "), lead.Description)

		out = append(out, d.record(admins[0], admins[1:], "Nouveau Lead Commercial: "+lead.Company, body))
	}

	out = append(out, d.record(lead.Email, nil, LeadConfirmationSubject, confirmationBody))
	return out
}

// TicketCreated returns the assignee alert (when the ticket is assigned to a
// known user) followed by the requester acknowledgement (when the requester
// is known).
func (d Deriver) TicketCreated(ticket domain.Ticket, users []domain.User, companies []domain.Company) []domain.Notification {
	out := make([]domain.Notification, 0, 2)
	short := ShortID(ticket.ID)
	requester, hasRequester := findUser(users, ticket.RequesterID)

	var assignee domain.User
	var hasAssignee bool
	if ticket.AssigneeID != nil {
		assignee, hasAssignee = findUser(users, *ticket.AssigneeID)
	}

	if hasAssignee {
		requesterName, requesterEmail := UnknownRequester, UnknownRequester
		if hasRequester {
			requesterName, requesterEmail = requester.Name, requester.Email
		}
		companyName := UnknownCompany
		for _, c := range companies {
			if c.ID == ticket.CompanyID {
				companyName = c.Name
				break
			}
		}

		body := fmt.Sprintf(`Bonjour %s,

Un nouveau ticket vous a été assigné et requiert votre attention.

**Détails du Ticket :**
- **ID du Ticket :** #%s
- **Sujet :** %s
- **Type :** %s
- **Urgence :** %s
- **Créé le :** %s

**Informations du Client :**
- **Nom :** %s
- **Société :** %s
- **Email :** %s

**Description initiale :**
---
%s
---

Vous pouvez consulter et répondre à ce ticket directement depuis votre tableau de bord de support.`,
			assignee.Name, short, ticket.Title, ticket.Type, ticket.Urgency, d.formatDate(ticket.CreatedAt),
			requesterName, companyName, requesterEmail, ticket.Description)

		subject := fmt.Sprintf("[Ticket #%s] Nouveau Ticket Assigné: %s", short, ticket.Title)
		out = append(out, d.record(assignee.Email, adminEmails(users), subject, body))
	}

	if hasRequester {
		assigneeName := GenericAssignee
		if hasAssignee {
			assigneeName = assignee.Name
		}
		body := fmt.Sprintf(`Bonjour %s,

Nous avons bien reçu votre demande et l'avons enregistrée sous le numéro de ticket #%s.

Sujet: %s

Un technicien (%s) a été assigné et reviendra vers vous dès que possible.

Cordialement,
L'équipe Incubtek`, requester.Name, short, ticket.Title, assigneeName)

		subject := fmt.Sprintf("[Ticket #%s] Votre demande a été reçue", short)
		out = append(out, d.record(requester.Email, nil, subject, body))
	}

	return out
}

// TicketReply returns the requester notification for a staff reply, or nothing
// when the requester cannot be resolved.
func (d Deriver) TicketReply(ticket domain.Ticket, msg domain.TicketMessage, users []domain.User) []domain.Notification {
	requester, ok := findUser(users, ticket.RequesterID)
	if !ok {
		return nil
	}

	attachment := ""
	if msg.Attachment != nil {
		attachment = "\nPièce jointe: " + msg.Attachment.FileName
	}

	body := fmt.Sprintf(`Bonjour %s,

%s a répondu à votre ticket :

---
%s
%s
---

Vous pouvez répondre à ce mail pour ajouter un commentaire.

Cordialement,
L'équipe Incubtek`, requester.Name, msg.Author, msg.Content, attachment)

	subject := fmt.Sprintf("Re: [Ticket #%s] %s", ShortID(ticket.ID), ticket.Title)
	return []domain.Notification{d.record(requester.Email, nil, subject, body)}
}

func (d Deriver) record(to string, cc []string, subject, body string) domain.Notification {
	if cc == nil {
		cc = []string{}
	}
	id := ""
	if d.NewID != nil {
		id = d.NewID()
	} else {
		id = GenerateID(d.now())
	}
	return domain.Notification{
		ID:        id,
		To:        to,
		CC:        cc,
		Subject:   subject,
		Body:      body,
		Timestamp: d.now(),
	}
}

func (d Deriver) now() time.Time {
	if d.Clock != nil {
		return d.Clock()
	}
	return time.Now()
}

func (d Deriver) formatDate(t time.Time) string {
	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateLayout)
}

func adminEmails(users []domain.User) []string {
	var out []string
	for _, u := range users {
		if u.Role == domain.RoleAdmin {
			out = append(out, u.Email)
		}
	}
	return out
}

func findUser(users []domain.User, id string) (domain.User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}
