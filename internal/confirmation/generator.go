// Package confirmation produces the personalised text sent to a prospect
// after a quote request. Text comes from an external generator; the Confirmer
// guarantees a usable answer even when that generator fails.
package confirmation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/incubtek-portal/internal/domain"
)

// Fallback is returned whenever no generated text is available.
const Fallback = "Nous avons bien reçu votre demande et nous vous contacterons sous peu. Merci de votre confiance."

// ErrNotConfigured is returned by StaticGenerator.
var ErrNotConfigured = errors.New("confirmation generator not configured")

// Generator writes a confirmation email body for a lead.
type Generator interface {
	Generate(ctx context.Context, lead domain.Lead) (string, error)
}

// StaticGenerator stands in when no external generator is configured. It
// always fails, leaving the Confirmer to answer with Fallback.
type StaticGenerator struct{}

func (StaticGenerator) Generate(context.Context, domain.Lead) (string, error) {
	return "", ErrNotConfigured
}

// Confirmer wraps a Generator and never fails.
type Confirmer struct {
	generator Generator
	logger    *zap.Logger
}

func NewConfirmer(generator Generator, logger *zap.Logger) *Confirmer {
	if generator == nil {
		generator = StaticGenerator{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Confirmer{generator: generator, logger: logger}
}

// Text returns the generated confirmation for lead, or Fallback when
// generation fails or yields blank text.
func (c *Confirmer) Text(ctx context.Context, lead domain.Lead) string {
	text, err := c.generator.Generate(ctx, lead)
	if err != nil {
		c.logger.Warn("confirmation text generation failed",
			zap.String("lead_id", lead.ID),
			zap.Error(err),
		)
		return Fallback
	}
	if strings.TrimSpace(text) == "" {
		c.logger.Warn("confirmation text generation returned empty text", zap.String("lead_id", lead.ID))
		return Fallback
	}
	return text
}

// BuildPrompt renders the French instruction sent to the text model.
func BuildPrompt(lead domain.Lead) string {
	return fmt.Sprintf(`Vous êtes un assistant virtuel pour Incubtek, une société de services informatiques.
Un nouveau prospect vient de remplir un formulaire de demande de devis.

Voici ses informations :
- Nom : %s
- Société : %s
- Besoins exprimés : %s
- Description complémentaire : "%s"

Rédigez un email de confirmation amical et professionnel en FRANÇAIS à destination de %s.
Le ton doit être rassurant et efficace.
Confirmez la bonne réception de sa demande.
Mentionnez que l'équipe d'Incubtek va étudier sa demande et le recontactera très prochainement.
Terminez par une formule de politesse chaleureuse.
Ne mettez pas de sujet d'email (pas de "Objet:").
Commencez directement par "Bonjour %s,"`,
		lead.Name, lead.Company, strings.Join(lead.Needs, ", "), lead.Description, lead.Name, lead.Name)
}
