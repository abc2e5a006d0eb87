// Package fixtures provides the demo data the portal starts with.
package fixtures

import (
	"fmt"
	"time"

	"github.com/spec-kit/incubtek-portal/internal/domain"
	"github.com/spec-kit/incubtek-portal/internal/state"
)

// DefaultPassword is the credential of every seeded account.
const DefaultPassword = "password"

// StaffCompanyID is the company id carried by Incubtek staff accounts.
const StaffCompanyID = "incubtek"

// HashFunc turns a plain password into a stored hash.
type HashFunc func(plain string) (string, error)

// Seed builds the initial state. Lead dates are relative to now; password
// hashes come from hash.
func Seed(now time.Time, hash HashFunc) (state.State, error) {
	users, err := seedUsers(hash)
	if err != nil {
		return state.State{}, err
	}
	return state.State{
		Leads:     seedLeads(now),
		Tickets:   seedTickets(),
		Companies: Companies(),
		Users:     users,
		Contracts: seedContracts(),
		Documents: seedDocuments(),
	}, nil
}

// Companies returns the seeded client companies.
func Companies() []domain.Company {
	return []domain.Company{
		{ID: "comp-1", Name: "Innovatech SARL"},
		{ID: "comp-2", Name: "Solutions Avancées Inc."},
	}
}

func seedUsers(hash HashFunc) ([]domain.User, error) {
	users := []domain.User{
		{ID: "user-1", Name: "Jean Dupont", Email: "jean.dupont@example.com", Role: domain.RoleClient, CompanyID: "comp-1"},
		{ID: "user-2", Name: "Marie Curie", Email: "marie.curie@example.com", Role: domain.RoleClient, CompanyID: "comp-2"},
		{ID: "admin-1", Name: "Alice Martin", Email: "alice.martin@incubtek.com", Role: domain.RoleAdmin, CompanyID: StaffCompanyID},
		{ID: "support-1", Name: "David Legrand", Email: "david.legrand@incubtek.com", Role: domain.RoleSupport, CompanyID: StaffCompanyID},
		{ID: "support-2", Name: "Sophie Boyer", Email: "sophie.boyer@incubtek.com", Role: domain.RoleSupport, CompanyID: StaffCompanyID},
	}
	if hash == nil {
		return users, nil
	}
	for i := range users {
		h, err := hash(DefaultPassword)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", users[i].ID, err)
		}
		users[i].PasswordHash = h
	}
	return users, nil
}

func seedContracts() []domain.Contract {
	return []domain.Contract{
		{ID: "cont-1", CompanyID: "comp-1", ServiceName: "Support IT Essentiel", Details: "Support 8/5, 10 tickets/mois", Expires: utc(2025, 12, 31, 23, 59, 59)},
		{ID: "cont-2", CompanyID: "comp-1", ServiceName: "Gestion de Serveur Cloud", Details: "Serveur AWS t3.medium", Expires: utc(2025, 8, 15, 23, 59, 59)},
		{ID: "cont-3", CompanyID: "comp-1", ServiceName: "Microsoft 365 Business Standard", Details: "15 licences", Expires: utc(2025, 10, 1, 23, 59, 59)},
		{ID: "cont-4", CompanyID: "comp-2", ServiceName: "Infogérance Complète", Details: "Support 24/7, tickets illimités", Expires: utc(2026, 6, 30, 23, 59, 59)},
	}
}

func seedTickets() []domain.Ticket {
	support1 := "support-1"
	return []domain.Ticket{
		{
			ID:          "tick-1",
			Type:        domain.TicketTypeIncident,
			Title:       "Problème d'accès à l'imprimante",
			Description: "Personne au bureau marketing ne peut se connecter à l'imprimante HP LaserJet.",
			Status:      domain.TicketStatusInProgress,
			Urgency:     domain.TicketUrgencyMedium,
			CreatedAt:   utc(2024, 7, 20, 10, 0, 0),
			UpdatedAt:   utc(2024, 7, 20, 10, 10, 0),
			RequesterID: "user-1",
			CompanyID:   "comp-1",
			AssigneeID:  &support1,
			Messages: []domain.TicketMessage{
				{Author: "Jean Dupont", Content: "Personne au bureau marketing ne peut se connecter à l'imprimante HP LaserJet.", Timestamp: utc(2024, 7, 20, 10, 0, 0)},
				{Author: "Alice Martin", Content: "Bonjour Jean, pouvez-vous m'envoyer une capture d'écran du message d'erreur s'il vous plaît ?", Timestamp: utc(2024, 7, 20, 10, 5, 0)},
				{Author: "Jean Dupont", Content: "Voici la capture.", Timestamp: utc(2024, 7, 20, 10, 10, 0), Attachment: &domain.Attachment{FileName: "error-screenshot.png", Reference: "#"}},
			},
		},
		{
			ID:          "tick-2",
			Type:        domain.TicketTypeRequest,
			Title:       "Demande de création d'un nouvel email",
			Description: "Merci de créer un compte email pour notre nouvelle recrue, Sophie Durand (s.durand@innovatech.com).",
			Status:      domain.TicketStatusNew,
			Urgency:     domain.TicketUrgencyLow,
			CreatedAt:   utc(2024, 7, 21, 14, 30, 0),
			UpdatedAt:   utc(2024, 7, 21, 14, 30, 0),
			RequesterID: "user-1",
			CompanyID:   "comp-1",
			Messages: []domain.TicketMessage{
				{Author: "Jean Dupont", Content: "Merci de créer un compte email pour notre nouvelle recrue, Sophie Durand (s.durand@innovatech.com).", Timestamp: utc(2024, 7, 21, 14, 30, 0)},
			},
		},
		{
			ID:          "tick-3",
			Type:        domain.TicketTypeIncident,
			Title:       "Serveur de fichiers inaccessible",
			Description: `Notre serveur de fichiers partagés (\SHARE) ne répond plus depuis ce matin.`,
			Status:      domain.TicketStatusNew,
			Urgency:     domain.TicketUrgencyHigh,
			CreatedAt:   utc(2024, 7, 22, 9, 0, 0),
			UpdatedAt:   utc(2024, 7, 22, 9, 0, 0),
			RequesterID: "user-2",
			CompanyID:   "comp-2",
			Messages: []domain.TicketMessage{
				{Author: "Marie Curie", Content: `Notre serveur de fichiers partagés (\SHARE) ne répond plus depuis ce matin.`, Timestamp: utc(2024, 7, 22, 9, 0, 0)},
			},
		},
		{
			ID:          "tick-4",
			Type:        domain.TicketTypeRequest,
			Title:       "Devis pour 5 nouveaux ordinateurs portables",
			Description: "Nous souhaiterions recevoir un devis pour 5 ordinateurs portables Dell Latitude pour notre équipe de développeurs.",
			Status:      domain.TicketStatusPending,
			Urgency:     domain.TicketUrgencyLow,
			CreatedAt:   utc(2024, 7, 19, 16, 0, 0),
			UpdatedAt:   utc(2024, 7, 19, 16, 0, 0),
			RequesterID: "user-2",
			CompanyID:   "comp-2",
			Messages: []domain.TicketMessage{
				{Author: "Marie Curie", Content: "Nous souhaiterions recevoir un devis pour 5 ordinateurs portables Dell Latitude pour notre équipe de développeurs.", Timestamp: utc(2024, 7, 19, 16, 0, 0)},
			},
		},
	}
}

func seedDocuments() []domain.Document {
	return []domain.Document{
		{ID: "doc-1", CompanyID: "comp-1", FileName: "Facture_Juillet_2024.pdf", URL: "#"},
		{ID: "doc-2", CompanyID: "comp-1", FileName: "Rapport_Sécurité_T2_2024.pdf", URL: "#"},
	}
}

func seedLeads(now time.Time) []domain.Lead {
	const day = 24 * time.Hour
	const created = "Lead créé depuis le formulaire de devis."
	return []domain.Lead{
		{
			ID:          "lead-1",
			Name:        "Paul Bernard",
			Company:     "Startup Express",
			Email:       "paul.b@startup.com",
			Phone:       "0612345678",
			Needs:       []string{"Création d'entreprise (Domaine, M365)"},
			Description: "Nous lançons notre activité et avons besoin de tout mettre en place.",
			CreatedAt:   now,
			Status:      domain.LeadStatusNew,
			Activity: []domain.LeadActivity{
				{Author: "Système", Note: created, Timestamp: now},
			},
		},
		{
			ID:          "lead-2",
			Name:        "Carole Petit",
			Company:     "Design & Co",
			Email:       "carole@design.co",
			Phone:       "0687654321",
			Needs:       []string{"Gestion de mon parc informatique"},
			Description: "Notre parc de 15 Mac a besoin d'être géré de manière proactive.",
			CreatedAt:   now.Add(-2 * day),
			Status:      domain.LeadStatusContacted,
			Activity: []domain.LeadActivity{
				{Author: "Alice Martin", Note: "Appel laissé sur messagerie. A recontacter demain.", Timestamp: now.Add(-day)},
				{Author: "Système", Note: created, Timestamp: now.Add(-2 * day)},
			},
		},
	}
}

func utc(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.UTC)
}
