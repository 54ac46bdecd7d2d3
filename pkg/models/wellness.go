package models

import (
	"time"

	"github.com/google/uuid"
)

// Trend describes the direction of a metric over time
type Trend string

const (
	TrendIncreasing Trend = "Increasing"
	TrendDecreasing Trend = "Decreasing"
	TrendStable     Trend = "Stable"
)

// AlertPriority labels an alert for downstream triage
type AlertPriority string

const (
	PriorityLow    AlertPriority = "Low"
	PriorityMedium AlertPriority = "Medium"
	PriorityHigh   AlertPriority = "High"
)

// Alert kinds emitted by the rule engine
const (
	AlertBurnout           = "Burnout"
	AlertOverload          = "Overload"
	AlertNegativeTrend     = "NegativeTrend"
	AlertNegativeSentiment = "NegativeSentiment"
	AlertBalance           = "Balance"
	AlertInfo              = "Info"
)

// Alert is a single prioritized alert produced by the rule engine.
// Alerts are value objects and are never mutated after creation.
type Alert struct {
	Kind      string        `json:"kind"`
	Message   string        `json:"message"`
	RiskLevel int           `json:"risk_level"`
	Priority  AlertPriority `json:"priority"`
}

// ProductivitySummary summarizes recent sprint performance
type ProductivitySummary struct {
	AverageProductivity float64 `json:"average_productivity"`
	Trend               Trend   `json:"trend"`
	Pattern             string  `json:"pattern"`
}

// WellnessReport is the composite result of a full well-being analysis.
// Score is an aggregate 0-100 metric combining mood, productivity and
// sentiment signals.
type WellnessReport struct {
	UserID                 uuid.UUID            `json:"user_id"`
	Sentiment              *SentimentResult     `json:"sentiment,omitempty"`
	Productivity           *ProductivitySummary `json:"productivity,omitempty"`
	Alerts                 []Alert              `json:"alerts"`
	Score                  int                  `json:"score"`
	GeneralRecommendations []string             `json:"general_recommendations"`
	GeneratedAt            time.Time            `json:"generated_at"`
}

// MoodEntry is a single mood record consumed by the analysis engine.
// MoodLevel and EnergyLevel range from 1 to 5.
type MoodEntry struct {
	MoodLevel   int       `json:"mood_level"`
	EnergyLevel int       `json:"energy_level"`
	Comment     string    `json:"comment,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// SprintEntry is a single work-sprint record consumed by the analysis
// engine. Productivity is a percentage in [0,100]. Optional metrics are
// nil when the sprint was recorded without them.
type SprintEntry struct {
	Name           string     `json:"name,omitempty"`
	Productivity   *float64   `json:"productivity,omitempty"`
	CompletedTasks *int       `json:"completed_tasks,omitempty"`
	Commits        *int       `json:"commits,omitempty"`
	StartedAt      time.Time  `json:"started_at"`
	EndedAt        *time.Time `json:"ended_at,omitempty"`
}
