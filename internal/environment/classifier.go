// Package environment classifies workplace environments from a photo
// and an optional free-text description.
//
// The description, when present, is the authoritative signal: negative
// phrases take precedence over positive ones, and the specific negative
// category is resolved in a fixed priority order. Without a usable
// description the classifier falls back to a deliberately weak
// byte-size heuristic over the raw image and reports low confidence.
package environment

import (
	"math"
	"strings"

	"github.com/mindtrackhq/mindtrack/internal/nlp"
	"github.com/mindtrackhq/mindtrack/pkg/models"
)

// Classifier classifies workplace environments. It holds only read-only
// tables and is safe for concurrent use.
type Classifier struct {
	pipe    *nlp.Pipeline
	phrases Phrases
}

// Config holds Classifier construction options. Zero-value fields fall
// back to the built-in Portuguese defaults.
type Config struct {
	Pipeline *nlp.Pipeline
	Phrases  *Phrases
}

// New creates a Classifier.
func New(cfg Config) *Classifier {
	pipe := cfg.Pipeline
	if pipe == nil {
		pipe = nlp.New()
	}
	phrases := DefaultPhrases()
	if cfg.Phrases != nil {
		phrases = *cfg.Phrases
	}
	return &Classifier{pipe: pipe, phrases: phrases}
}

// Classify validates the image and produces an environment
// classification from the description, falling back to the image
// byte-size heuristic when the description yields no signal.
func (c *Classifier) Classify(image []byte, description string) (*models.EnvironmentResult, error) {
	if err := ValidateImage(image); err != nil {
		return nil, err
	}

	category := c.categorize(image, description)
	level := wellnessLevel(category)

	return &models.EnvironmentResult{
		Category:        category,
		Score:           c.score(category, description),
		WellnessLevel:   level,
		Analysis:        analysisText(category),
		Recommendations: c.recommendations(category, level),
	}, nil
}

// categorize implements the decision table: negative description signal
// first (specific category in priority order), then positive signal
// (first matching category in the fixed ordering), then the generic
// negative majority, and finally the image-size fallback.
func (c *Classifier) categorize(image []byte, description string) models.EnvironmentCategory {
	norm := c.pipe.Normalize(description)

	if norm != "" {
		negatives := countPhrases(norm, c.phrases.Negative)
		positives := countPhrases(norm, c.phrases.Positive)

		if negatives > 0 {
			switch {
			case containsAny(norm, c.phrases.Disorganized):
				return models.EnvDisorganized
			case containsAny(norm, c.phrases.Stressful):
				return models.EnvStressful
			case containsAny(norm, c.phrases.Inadequate):
				return models.EnvInadequate
			}
		}

		if positives > 0 && negatives == 0 {
			for _, category := range CategoryOrder {
				if containsAny(norm, c.phrases.Categories[category]) {
					return category
				}
			}
		}

		if negatives > positives {
			return models.EnvDisorganized
		}
	}

	// No usable description signal: weak byte-size heuristic.
	switch {
	case len(image) > 500_000:
		return models.EnvOrganized
	case len(image) > 200_000:
		return models.EnvComfortable
	default:
		return models.EnvComfortable
	}
}

// score derives the category-specific confidence, boosted when the
// description corroborates the category.
func (c *Classifier) score(category models.EnvironmentCategory, description string) float64 {
	norm := c.pipe.Normalize(description)

	score := 0.7
	switch category {
	case models.EnvOrganized, models.EnvComfortable, models.EnvErgonomic:
		score = 0.75
		if len([]rune(description)) > 50 {
			score += 0.1
		}
		if corroborates(category, norm) {
			score += 0.1
		}
	case models.EnvDisorganized:
		// Lower score means higher confidence in the negative call.
		score = 0.4
		if containsAny(norm, []string{"desorganizad", "baguncad"}) {
			score = 0.35
		}
	case models.EnvStressful:
		score = 0.3
	case models.EnvInadequate:
		score = 0.25
	}

	return math.Max(0, math.Min(1, score))
}

func corroborates(category models.EnvironmentCategory, norm string) bool {
	switch category {
	case models.EnvOrganized:
		return containsAny(norm, []string{"organizado", "limpo"})
	case models.EnvComfortable:
		return containsAny(norm, []string{"confortavel", "agradavel"})
	case models.EnvErgonomic:
		return strings.Contains(norm, "ergonomico")
	default:
		return false
	}
}

// wellnessLevel maps a category to its 1-5 well-being level.
func wellnessLevel(category models.EnvironmentCategory) int {
	switch category {
	case models.EnvOrganized, models.EnvComfortable, models.EnvErgonomic:
		return 5
	case models.EnvInadequate:
		return 2
	case models.EnvStressful:
		return 1
	default:
		return 3
	}
}

func countPhrases(norm string, phrases []string) int {
	n := 0
	for _, p := range phrases {
		if strings.Contains(norm, p) {
			n++
		}
	}
	return n
}

func containsAny(norm string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(norm, p) {
			return true
		}
	}
	return false
}
