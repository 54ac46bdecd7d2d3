package wellness

import (
	"time"

	"github.com/google/uuid"
	"github.com/mindtrackhq/mindtrack/internal/sentiment"
	"github.com/mindtrackhq/mindtrack/pkg/models"
)

// Windows over the supplied histories used by the alert rule engine.
// The full histories feed the aggregate score and productivity summary.
const (
	alertMoodWindow   = 7
	alertSprintWindow = 3
)

// Engine runs the complete well-being analysis. All operations are pure
// computations over the supplied in-memory histories; fetching records
// and persisting results are the caller's concern.
type Engine struct {
	analyzer *sentiment.Analyzer
}

// NewEngine creates an Engine using the given sentiment analyzer.
func NewEngine(analyzer *sentiment.Analyzer) *Engine {
	return &Engine{analyzer: analyzer}
}

// AnalyzeWellness produces the composite well-being report for a user
// from their recent mood and sprint history (most-recent-first,
// typically the last 10 moods and 5 sprints).
func (e *Engine) AnalyzeWellness(userID uuid.UUID, moods []models.MoodEntry, sprints []models.SprintEntry) *models.WellnessReport {
	var sentimentResult *models.SentimentResult
	if comments := moodComments(moods); len(comments) > 0 {
		sentimentResult = e.analyzer.AnalyzeAll(comments)
	}

	var productivity *models.ProductivitySummary
	if len(sprints) > 0 {
		avg, _ := avgProductivity(sprints)
		productivity = &models.ProductivitySummary{
			AverageProductivity: avg,
			Trend:               productivityTrend(sprints),
			Pattern:             pattern(sprints, moods),
		}
	}

	alerts := e.GenerateAlerts(head(moods, alertMoodWindow), headSprints(sprints, alertSprintWindow))
	score := wellbeingScore(moods, sprints, sentimentResult)

	return &models.WellnessReport{
		UserID:                 userID,
		Sentiment:              sentimentResult,
		Productivity:           productivity,
		Alerts:                 alerts,
		Score:                  score,
		GeneralRecommendations: generalRecommendations(score, sentimentResult, productivity),
		GeneratedAt:            time.Now().UTC(),
	}
}

func head(moods []models.MoodEntry, n int) []models.MoodEntry {
	if len(moods) <= n {
		return moods
	}
	return moods[:n]
}

func headSprints(sprints []models.SprintEntry, n int) []models.SprintEntry {
	if len(sprints) <= n {
		return sprints
	}
	return sprints[:n]
}
