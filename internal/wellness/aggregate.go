// Package wellness combines mood history, sprint history and sentiment
// classifications into productivity summaries, a 0-100 well-being score
// and prioritized alerts.
//
// Histories are passed most-recent-first, the order repositories return
// them in. Sprints recorded without a productivity or task value are
// excluded from that metric's average but still occupy a slot in the
// recency window.
package wellness

import (
	"math"
	"sort"

	"github.com/mindtrackhq/mindtrack/pkg/models"
)

func avgMood(moods []models.MoodEntry) float64 {
	if len(moods) == 0 {
		return 0
	}
	total := 0
	for _, m := range moods {
		total += m.MoodLevel
	}
	return float64(total) / float64(len(moods))
}

func avgEnergy(moods []models.MoodEntry) float64 {
	if len(moods) == 0 {
		return 0
	}
	total := 0
	for _, m := range moods {
		total += m.EnergyLevel
	}
	return float64(total) / float64(len(moods))
}

// avgProductivity averages the recorded productivity percentages. The
// second return value is false when no sprint carries one.
func avgProductivity(sprints []models.SprintEntry) (float64, bool) {
	var total float64
	n := 0
	for _, s := range sprints {
		if s.Productivity != nil {
			total += *s.Productivity
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return total / float64(n), true
}

func avgCompletedTasks(sprints []models.SprintEntry) (float64, bool) {
	total := 0
	n := 0
	for _, s := range sprints {
		if s.CompletedTasks != nil {
			total += *s.CompletedTasks
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(total) / float64(n), true
}

// productivityTrend compares the first and last recorded productivity
// values in chronological order. Movements within 5 points count as
// stable, as do histories with fewer than two recorded values.
func productivityTrend(sprints []models.SprintEntry) models.Trend {
	ordered := make([]models.SprintEntry, 0, len(sprints))
	for _, s := range sprints {
		if s.Productivity != nil {
			ordered = append(ordered, s)
		}
	}
	if len(ordered) < 2 {
		return models.TrendStable
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartedAt.Before(ordered[j].StartedAt)
	})

	first := *ordered[0].Productivity
	last := *ordered[len(ordered)-1].Productivity
	switch {
	case last > first+5:
		return models.TrendIncreasing
	case last < first-5:
		return models.TrendDecreasing
	default:
		return models.TrendStable
	}
}

// moodTrend compares the first and last mood levels in chronological
// order. Any strict movement counts.
func moodTrend(moods []models.MoodEntry) models.Trend {
	if len(moods) < 2 {
		return models.TrendStable
	}
	ordered := make([]models.MoodEntry, len(moods))
	copy(ordered, moods)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].RecordedAt.Before(ordered[j].RecordedAt)
	})

	first := ordered[0].MoodLevel
	last := ordered[len(ordered)-1].MoodLevel
	switch {
	case last > first:
		return models.TrendIncreasing
	case last < first:
		return models.TrendDecreasing
	default:
		return models.TrendStable
	}
}

// pattern picks the productivity-pattern narrative from the combination
// of average productivity and average mood.
func pattern(sprints []models.SprintEntry, moods []models.MoodEntry) string {
	prod, _ := avgProductivity(sprints)
	mood := 3.0
	if len(moods) > 0 {
		mood = avgMood(moods)
	}

	switch {
	case prod > 85 && mood >= 4:
		return "Alta produtividade com bom bem-estar. Padrão saudável mantido."
	case prod > 85 && mood < 3:
		return "Alta produtividade, mas bem-estar comprometido. Risco de burnout."
	case prod < 60 && mood >= 4:
		return "Produtividade baixa, mas bem-estar preservado. Pode indicar necessidade de desafios ou ajustes."
	default:
		return "Produtividade e bem-estar em níveis moderados. Continue monitorando."
	}
}

// wellbeingScore computes the aggregate 0-100 score. All applicable
// terms are added first and the result is clamped exactly once.
func wellbeingScore(moods []models.MoodEntry, sprints []models.SprintEntry, sentiment *models.SentimentResult) int {
	score := 50

	if len(moods) > 0 {
		score += int(math.Round((avgMood(moods) + avgEnergy(moods)) * 5))
	}

	if prod, ok := avgProductivity(sprints); ok {
		score += int(math.Round(prod * 0.2))
	}

	if sentiment != nil {
		switch sentiment.Category {
		case models.SentimentPositive:
			score += 10
		case models.SentimentNegative:
			score -= 15
		}
		score -= sentiment.RiskLevel * 3
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// generalRecommendations builds the tiered recommendation list for a
// report: a score-bracket block, up to three sentiment-specific lines,
// and a warning when productivity is declining.
func generalRecommendations(score int, sentiment *models.SentimentResult, productivity *models.ProductivitySummary) []string {
	var recs []string

	switch {
	case score >= 80:
		recs = append(recs,
			"Excelente! Você está mantendo um ótimo equilíbrio entre trabalho e bem-estar.",
			"Continue registrando seus dados para manter esse padrão saudável.",
		)
	case score >= 60:
		recs = append(recs,
			"Você está em um bom caminho. Continue monitorando seu bem-estar.",
			"Mantenha hábitos saudáveis e pausas regulares.",
		)
	case score >= 40:
		recs = append(recs,
			"Seu bem-estar precisa de atenção. Considere fazer ajustes na rotina.",
			"Pratique técnicas de relaxamento e gerencie melhor o estresse.",
		)
	default:
		recs = append(recs,
			"Seu bem-estar está comprometido. É importante buscar apoio e fazer mudanças.",
			"Converse com seu gestor ou equipe de RH sobre seu bem-estar.",
		)
	}

	if sentiment != nil {
		n := len(sentiment.Recommendations)
		if n > 3 {
			n = 3
		}
		recs = append(recs, sentiment.Recommendations[:n]...)
	}

	if productivity != nil && productivity.Trend == models.TrendDecreasing && productivity.AverageProductivity > 0 {
		recs = append(recs, "Produtividade em declínio detectada. Revise sua carga de trabalho e prioridades.")
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
