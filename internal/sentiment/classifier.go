// Package sentiment classifies the sentiment of free-text mood comments.
//
// Classification normally runs a deterministic keyword heuristic over
// stemmed tokens. A trained binary model can be plugged in through the
// Model interface; when it is available its prediction replaces the
// keyword path entirely, and any model error falls back to the keyword
// path. Exactly one of the two paths produces the final category and
// score.
package sentiment

import (
	"fmt"
	"math"
	"strings"

	"github.com/mindtrackhq/mindtrack/internal/nlp"
	"github.com/mindtrackhq/mindtrack/pkg/models"
)

// Model is an optional trained binary sentiment classifier. Predict
// returns whether the text is positive and the associated probability.
// Implementations should be fast and synchronous; callers that wrap slow
// backends must apply their own timeout.
type Model interface {
	Predict(text string) (positive bool, probability float64, err error)
}

// Analyzer performs sentiment analysis. It holds only read-only tables
// and is safe for concurrent use.
type Analyzer struct {
	pipe     *nlp.Pipeline
	keywords Keywords
	model    Model
}

// Config holds Analyzer construction options. Zero-value fields fall
// back to the built-in Portuguese defaults; Model may be nil.
type Config struct {
	Pipeline *nlp.Pipeline
	Keywords *Keywords
	Model    Model
}

// New creates an Analyzer.
func New(cfg Config) *Analyzer {
	pipe := cfg.Pipeline
	if pipe == nil {
		pipe = nlp.New()
	}
	keywords := DefaultKeywords()
	if cfg.Keywords != nil {
		keywords = *cfg.Keywords
	}
	return &Analyzer{pipe: pipe, keywords: keywords, model: cfg.Model}
}

// Analyze classifies a single text. Empty or whitespace-only input
// short-circuits to a neutral result instead of failing.
func (a *Analyzer) Analyze(text string) *models.SentimentResult {
	if strings.TrimSpace(text) == "" {
		return &models.SentimentResult{
			Category:        models.SentimentNeutral,
			Score:           0.5,
			RiskLevel:       3,
			Message:         "Texto vazio ou inválido",
			Recommendations: []string{"Forneça mais informações para uma análise precisa"},
		}
	}

	category, score := a.classify(text)
	risk := riskLevel(category, score)

	return &models.SentimentResult{
		Category:        category,
		Score:           score,
		RiskLevel:       risk,
		Message:         message(category, risk),
		Recommendations: a.recommendations(text, category, risk),
	}
}

// AnalyzeAll classifies each text independently and aggregates the
// results: majority category, mean score, worst risk level, and the
// union of recommendations in first-seen order.
func (a *Analyzer) AnalyzeAll(texts []string) *models.SentimentResult {
	valid := make([]string, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t) != "" {
			valid = append(valid, t)
		}
	}

	if len(valid) == 0 {
		return &models.SentimentResult{
			Category:        models.SentimentNeutral,
			Score:           0.5,
			RiskLevel:       3,
			Message:         "Nenhum texto válido fornecido",
			Recommendations: []string{},
		}
	}

	results := make([]*models.SentimentResult, len(valid))
	for i, t := range valid {
		results[i] = a.Analyze(t)
	}

	var scoreSum float64
	maxRisk := 0
	var recs []string
	counts := map[models.SentimentCategory]int{}
	for _, r := range results {
		counts[r.Category]++
		scoreSum += r.Score
		if r.RiskLevel > maxRisk {
			maxRisk = r.RiskLevel
		}
		recs = append(recs, r.Recommendations...)
	}

	category := majority(counts)

	return &models.SentimentResult{
		Category:        category,
		Score:           scoreSum / float64(len(results)),
		RiskLevel:       maxRisk,
		Message:         fmt.Sprintf("Análise agregada de %d textos. Sentimento geral: %s", len(valid), category),
		Recommendations: dedupe(recs),
	}
}

// classify produces the category and calibrated score for a non-empty
// text, consulting the trained model first when one is configured.
func (a *Analyzer) classify(text string) (models.SentimentCategory, float64) {
	if a.model != nil {
		if positive, prob, err := a.model.Predict(text); err == nil {
			if positive {
				return models.SentimentPositive, clamp01(prob)
			}
			return models.SentimentNegative, clamp01(prob)
		}
		// Model unavailable: fall through to the keyword path.
	}

	stems := a.pipe.ProcessTokens(text)
	positives := countMatches(stems, a.keywords.Positive)
	negatives := countMatches(stems, a.keywords.Negative)

	var category models.SentimentCategory
	switch {
	case positives > negatives && positives > 0:
		category = models.SentimentPositive
	case negatives > positives && negatives > 0:
		category = models.SentimentNegative
	default:
		category = models.SentimentNeutral
	}

	score := 0.5
	if total := positives + negatives; total > 0 {
		score = float64(positives) / float64(total)
	}

	return category, a.calibrate(text, stems, category, score)
}

// calibrate applies the heuristic confidence adjustment: positive texts
// get a raised floor, negative texts a lowered one, both scaled by text
// length and intensity keywords. Neutral keeps the base score.
func (a *Analyzer) calibrate(text string, stems []string, category models.SentimentCategory, base float64) float64 {
	long := len([]rune(text)) > 50

	score := base
	switch category {
	case models.SentimentPositive:
		score = 0.6 + 0.1
		if long {
			score = 0.6 + 0.2
		}
		if anyMatch(stems, a.keywords.Superlative) {
			score = math.Min(0.95, score+0.15)
		}
	case models.SentimentNegative:
		score = 0.4 - 0.1
		if long {
			score = 0.4 - 0.2
		}
		if anyMatch(stems, a.keywords.Severe) {
			score = math.Max(0.05, score-0.15)
		}
	}

	return clamp01(score)
}

// riskLevel derives the 1-5 risk level from category and score.
func riskLevel(category models.SentimentCategory, score float64) int {
	switch {
	case category == models.SentimentNegative && score < 0.3:
		return 5
	case category == models.SentimentNegative && score < 0.4:
		return 4
	case category == models.SentimentNegative:
		return 3
	case category == models.SentimentNeutral:
		return 2
	default:
		return 1
	}
}

func majority(counts map[models.SentimentCategory]int) models.SentimentCategory {
	positives := counts[models.SentimentPositive]
	negatives := counts[models.SentimentNegative]
	neutrals := counts[models.SentimentNeutral]

	switch {
	case positives > negatives && positives > neutrals:
		return models.SentimentPositive
	case negatives > positives && negatives > neutrals:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// countMatches counts stems containing at least one of the keywords.
func countMatches(stems, keywords []string) int {
	n := 0
	for _, stem := range stems {
		for _, kw := range keywords {
			if strings.Contains(stem, kw) {
				n++
				break
			}
		}
	}
	return n
}

func anyMatch(stems, keywords []string) bool {
	return countMatches(stems, keywords) > 0
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
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
