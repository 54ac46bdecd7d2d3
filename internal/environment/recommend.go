package environment

import "github.com/mindtrackhq/mindtrack/pkg/models"

// analysisText returns the per-category well-being summary.
func analysisText(category models.EnvironmentCategory) string {
	switch category {
	case models.EnvOrganized:
		return "Seu ambiente de trabalho está bem organizado, o que contribui positivamente para sua produtividade e bem-estar."
	case models.EnvComfortable:
		return "O ambiente parece confortável e adequado para o trabalho. Isso é ótimo para manter seu bem-estar."
	case models.EnvErgonomic:
		return "Excelente! Seu ambiente está configurado de forma ergonômica, o que ajuda a prevenir problemas de saúde."
	case models.EnvDisorganized:
		return "O ambiente parece um pouco desorganizado. Organizar o espaço pode melhorar sua produtividade e reduzir o estresse."
	case models.EnvStressful:
		return "O ambiente parece estar causando estresse. Considere fazer ajustes para torná-lo mais agradável e produtivo."
	case models.EnvInadequate:
		return "O ambiente de trabalho pode estar inadequado. Recomendamos melhorias para garantir seu bem-estar e produtividade."
	default:
		return "Análise do ambiente de trabalho concluída. Continue monitorando para manter um espaço saudável."
	}
}

// recommendations builds the per-category recommendation list, with an
// urgent extra line when the well-being level is in the worst tier.
func (c *Classifier) recommendations(category models.EnvironmentCategory, level int) []string {
	var recs []string

	switch category {
	case models.EnvOrganized:
		recs = append(recs,
			"Continue mantendo a organização do seu espaço!",
			"Revise periodicamente para manter a ordem.",
		)
	case models.EnvComfortable:
		recs = append(recs,
			"Ótimo ambiente! Continue mantendo o conforto.",
			"Considere adicionar plantas para melhorar ainda mais o ambiente.",
		)
	case models.EnvErgonomic:
		recs = append(recs,
			"Excelente configuração ergonômica!",
			"Lembre-se de fazer pausas regulares mesmo com boa ergonomia.",
		)
	case models.EnvDisorganized:
		recs = append(recs,
			"Organize seu espaço de trabalho para melhorar a produtividade.",
			"Use organizadores e mantenha apenas o essencial à vista.",
			"Reserve 10 minutos diários para organização.",
		)
	case models.EnvStressful:
		recs = append(recs,
			"Considere reorganizar o ambiente para reduzir o estresse.",
			"Adicione elementos que tragam calma, como plantas e iluminação adequada.",
			"Use música ambiente suave se possível.",
			"Converse com seu gestor sobre melhorias no ambiente.",
		)
	case models.EnvInadequate:
		recs = append(recs,
			"Melhore a configuração do seu ambiente de trabalho.",
			"Verifique se sua cadeira e mesa estão adequadas.",
			"Ajuste a iluminação para reduzir cansaço visual.",
			"Mantenha temperatura e ventilação adequadas.",
		)
	}

	if level <= 2 {
		recs = append(recs, "Ambiente com baixo nível de bem-estar detectado. Ações imediatas recomendadas.")
	}

	return dedupe(recs)
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}
