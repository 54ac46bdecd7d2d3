package wellness

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindtrackhq/mindtrack/pkg/models"
)

func TestAnalyzeWellnessEmptyHistories(t *testing.T) {
	e := newTestEngine()
	userID := uuid.New()

	report := e.AnalyzeWellness(userID, nil, nil)

	require.NotNil(t, report)
	assert.Equal(t, userID, report.UserID)
	assert.Nil(t, report.Sentiment)
	assert.Nil(t, report.Productivity)
	assert.Equal(t, 50, report.Score)
	require.Len(t, report.Alerts, 1)
	assert.Equal(t, models.AlertInfo, report.Alerts[0].Kind)
	assert.NotEmpty(t, report.GeneralRecommendations)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestAnalyzeWellnessFullReport(t *testing.T) {
	e := newTestEngine()

	moods := []models.MoodEntry{
		{MoodLevel: 4, EnergyLevel: 4, Comment: "Semana ótima, estou feliz", RecordedAt: time.Now()},
		{MoodLevel: 4, EnergyLevel: 3, RecordedAt: time.Now().AddDate(0, 0, -3)},
		{MoodLevel: 3, EnergyLevel: 3, RecordedAt: time.Now().AddDate(0, 0, -7)},
	}
	sprints := []models.SprintEntry{
		sprintAt(f64(85), 0),
		sprintAt(f64(75), 14),
	}

	report := e.AnalyzeWellness(uuid.New(), moods, sprints)

	require.NotNil(t, report.Sentiment)
	assert.Equal(t, models.SentimentPositive, report.Sentiment.Category)

	require.NotNil(t, report.Productivity)
	assert.Equal(t, 80.0, report.Productivity.AverageProductivity)
	assert.Equal(t, models.TrendIncreasing, report.Productivity.Trend)
	assert.NotEmpty(t, report.Productivity.Pattern)

	assert.GreaterOrEqual(t, report.Score, 0)
	assert.LessOrEqual(t, report.Score, 100)
	assert.NotEmpty(t, report.GeneralRecommendations)
}

func TestAnalyzeWellnessSentimentOnlyFromComments(t *testing.T) {
	e := newTestEngine()

	moods := []models.MoodEntry{moodAt(3, 3, 0)}
	report := e.AnalyzeWellness(uuid.New(), moods, nil)
	assert.Nil(t, report.Sentiment)
}

func TestAlertWindowLimitsHistory(t *testing.T) {
	e := newTestEngine()

	// Seven recent good moods hide an older bad streak from the alert
	// rules, while the full history still feeds the score.
	var moods []models.MoodEntry
	for d := 0; d < 7; d++ {
		moods = append(moods, moodAt(5, 5, d))
	}
	for d := 7; d < 14; d++ {
		moods = append(moods, moodAt(1, 1, d))
	}
	sprints := []models.SprintEntry{sprintAt(f64(95), 0)}

	report := e.AnalyzeWellness(uuid.New(), moods, sprints)

	for _, a := range report.Alerts {
		assert.NotEqual(t, models.AlertBurnout, a.Kind)
	}
}

func TestHead(t *testing.T) {
	moods := []models.MoodEntry{moodAt(1, 1, 0), moodAt(2, 2, 1), moodAt(3, 3, 2)}

	assert.Len(t, head(moods, 2), 2)
	assert.Equal(t, 1, head(moods, 2)[0].MoodLevel)
	assert.Len(t, head(moods, 5), 3)

	sprints := []models.SprintEntry{sprintAt(f64(1), 0), sprintAt(f64(2), 1)}
	assert.Len(t, headSprints(sprints, 1), 1)
	assert.Len(t, headSprints(sprints, 9), 2)
}
