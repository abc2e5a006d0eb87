// Package catalog holds the fixed service offer and quote-form options.
package catalog

// Category groups services on the public pages.
type Category string

const (
	CategoryStartup    Category = "Démarrage"
	CategoryManagement Category = "Gestion"
)

// Service is one entry of the public catalogue.
type Service struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
}

var startupServices = []Service{
	{
		Title:       "Nom de Domaine & Hébergement",
		Description: "Enregistrez votre identité en ligne et hébergez votre site web sur une infrastructure fiable et performante.",
		Category:    CategoryStartup,
	},
	{
		Title:       "Microsoft 365 Business",
		Description: "Équipez vos collaborateurs avec les outils de productivité essentiels : email, stockage cloud et suite Office.",
		Category:    CategoryStartup,
	},
	{
		Title:       "Sécurité Initiale",
		Description: "Protégez votre nouvelle entreprise contre les menaces de base avec nos solutions de sécurité managées.",
		Category:    CategoryStartup,
	},
	{
		Title:       "Installation de Réseau et Wi-Fi",
		Description: "Nous concevons et déployons une infrastructure réseau filaire et Wi-Fi performante et sécurisée pour vos nouveaux locaux.",
		Category:    CategoryStartup,
	},
	{
		Title:       "Fourniture de PC et Serveurs",
		Description: "Acquérez du matériel informatique professionnel, pré-configuré et prêt à l'emploi pour vos équipes.",
		Category:    CategoryStartup,
	},
	{
		Title:       "Sécurité (Vidéosurveillance, Contrôle d'Accès)",
		Description: "Protégez vos locaux avec nos systèmes de caméras de surveillance et de contrôle d'accès modernes.",
		Category:    CategoryStartup,
	},
}

var managementServices = []Service{
	{
		Title:       "Infogérance & Support IT",
		Description: "Déléguez la gestion de votre parc informatique à nos experts et bénéficiez d'un support réactif.",
		Category:    CategoryManagement,
	},
	{
		Title:       "Gestion de Serveurs & Cloud",
		Description: "Nous assurons la maintenance, la surveillance et l'optimisation de vos serveurs, qu'ils soient sur site ou dans le cloud.",
		Category:    CategoryManagement,
	},
	{
		Title:       "Réseau & Connectivité",
		Description: "Optimisez vos connexions internet, Wi-Fi et la sécurité de votre réseau pour une productivité sans faille.",
		Category:    CategoryManagement,
	},
}

var needOptions = []string{
	"Création d'entreprise (Domaine, M365)",
	"Gestion de mon parc informatique",
	"Support pour mes utilisateurs",
	"Projet de migration Cloud",
	"Audit de sécurité",
	"Solution de sauvegarde",
	"Autre (à préciser)",
}

// Services returns the services of a category. Unknown categories yield nil.
func Services(category Category) []Service {
	switch category {
	case CategoryStartup:
		return append([]Service(nil), startupServices...)
	case CategoryManagement:
		return append([]Service(nil), managementServices...)
	}
	return nil
}

// All returns every service, startup offers first.
func All() []Service {
	out := make([]Service, 0, len(startupServices)+len(managementServices))
	out = append(out, startupServices...)
	return append(out, managementServices...)
}

// FindService looks a service up by title.
func FindService(title string) (Service, bool) {
	for _, s := range All() {
		if s.Title == title {
			return s, true
		}
	}
	return Service{}, false
}

// NeedOptions returns the choices offered on the quote form.
func NeedOptions() []string {
	return append([]string(nil), needOptions...)
}
