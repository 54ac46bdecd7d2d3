package sentiment

import "github.com/mindtrackhq/mindtrack/pkg/models"

// recommendations builds the ordered, de-duplicated recommendation list
// for a classification: a fixed block keyed on risk level and category,
// plus conditional lines triggered by specific stems in the text. The
// result is never empty.
func (a *Analyzer) recommendations(text string, category models.SentimentCategory, risk int) []string {
	var recs []string

	switch {
	case risk >= 4:
		recs = append(recs,
			"Risco elevado detectado. Considere fazer uma pausa imediata.",
			"Recomendamos conversar com seu gestor ou equipe de RH sobre seu bem-estar.",
			"Pratique técnicas de relaxamento e respiração.",
			"Revise sua carga de trabalho e priorize tarefas essenciais.",
		)
	case risk == 3:
		recs = append(recs,
			"Monitore seu bem-estar regularmente.",
			"Mantenha-se hidratado e faça pausas regulares.",
			"Pratique atividades físicas leves para reduzir o estresse.",
		)
	case category == models.SentimentPositive:
		recs = append(recs,
			"Continue mantendo esse equilíbrio!",
			"Registre o que está funcionando bem para você.",
			"Compartilhe suas práticas saudáveis com a equipe.",
		)
	default:
		recs = append(recs,
			"Mantenha o monitoramento regular do seu bem-estar.",
			"Foque em manter um equilíbrio entre trabalho e descanso.",
		)
	}

	stems := a.pipe.ProcessTokens(text)

	if anyMatch(stems, a.keywords.Fatigue) {
		recs = append(recs, "Priorize uma boa noite de sono (7-9 horas).")
	}
	if anyMatch(stems, a.keywords.Stress) {
		recs = append(recs, "Experimente meditação ou mindfulness por 10 minutos diários.")
	}
	if anyMatch(stems, a.keywords.Overload) {
		recs = append(recs,
			"Use técnicas de priorização (Matriz de Eisenhower).",
			"Comunique-se com seu gestor sobre a carga de trabalho.",
		)
	}

	return dedupe(recs)
}

// message picks the user-facing summary line for a classification.
func message(category models.SentimentCategory, risk int) string {
	switch category {
	case models.SentimentPositive:
		if risk == 1 {
			return "Ótimo! Você está se sentindo bem e equilibrado. Continue assim!"
		}
		return "Você está se sentindo bem. Mantenha esse ritmo positivo!"
	case models.SentimentNegative:
		switch {
		case risk >= 4:
			return "Detectamos sinais de preocupação no seu bem-estar. Considere fazer uma pausa e buscar apoio."
		case risk == 3:
			return "Notamos alguns sinais de desconforto. Fique atento ao seu bem-estar e não hesite em buscar ajuda."
		default:
			return "Você mencionou alguns desafios. Lembre-se de cuidar de si mesmo e manter o equilíbrio."
		}
	default:
		return "Seu estado emocional parece neutro. Continue monitorando seu bem-estar regularmente."
	}
}
