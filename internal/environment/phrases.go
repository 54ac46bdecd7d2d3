package environment

import "github.com/mindtrackhq/mindtrack/pkg/models"

// Phrases holds the phrase tables driving description classification.
// All entries are stored post-normalization (lowercase, accent-stripped)
// and matched by substring against the normalized description.
type Phrases struct {
	// Negative and Positive are the generic signal lists counted in the
	// first pass. Negative signal always takes precedence.
	Negative []string
	Positive []string

	// Markers for picking the specific negative category, checked in the
	// fixed order Disorganized, Stressful, Inadequate.
	Disorganized []string
	Stressful    []string
	Inadequate   []string

	// Categories maps each category to its own phrase list, consulted in
	// CategoryOrder when only positive signal is present.
	Categories map[models.EnvironmentCategory][]string
}

// CategoryOrder is the fixed ordering used to resolve positive-signal
// ties deterministically.
var CategoryOrder = []models.EnvironmentCategory{
	models.EnvOrganized,
	models.EnvDisorganized,
	models.EnvComfortable,
	models.EnvStressful,
	models.EnvErgonomic,
	models.EnvInadequate,
}

// DefaultPhrases returns the built-in Portuguese phrase tables.
func DefaultPhrases() Phrases {
	return Phrases{
		Negative: []string{
			"desorganizado", "desorganizada", "desorganizacao", "baguncado", "baguncada",
			"bagunca", "desordenado", "desordenada", "caotico", "caotica", "caos",
			"sujo", "suja", "sujeira", "confuso", "confusa", "confusao",
			"estressante", "estresse", "tenso", "tensa", "sobrecarga", "pressao",
			"inadequado", "inadequada", "improvisado", "improvisada", "precario", "precaria",
		},
		Positive: []string{
			"organizado", "organizada", "organizacao", "limpo", "limpa", "limpeza",
			"arrumado", "arrumada", "ordenado", "ordenada", "estruturado", "estruturada",
			"confortavel", "confort", "acolhedor", "acolhedora", "agradavel", "relaxante",
			"ergonomico", "ergonomica", "adequado", "adequada", "bem configurado", "bem configurada",
		},
		Disorganized: []string{"desorganizad", "baguncad", "desordenad", "caotic"},
		Stressful:    []string{"estressant", "estresse", "tenso", "tensa", "pressao"},
		Inadequate:   []string{"inadequad", "improvisad", "precari"},
		Categories: map[models.EnvironmentCategory][]string{
			models.EnvOrganized:    {"organizado", "limpo", "arrumado", "ordenado", "estruturado"},
			models.EnvDisorganized: {"desorganizado", "baguncado", "desordenado", "caotico"},
			models.EnvComfortable:  {"confortavel", "acolhedor", "agradavel", "relaxante", "confort"},
			models.EnvStressful:    {"estressante", "tenso", "pressao", "sobrecarga", "estresse"},
			models.EnvErgonomic:    {"ergonomico", "adequado", "bem configurado", "postura"},
			models.EnvInadequate:   {"inadequado", "improvisado", "precario", "inconfortavel"},
		},
	}
}
