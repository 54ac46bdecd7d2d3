package models

// EnvironmentCategory classifies a workplace environment
type EnvironmentCategory string

const (
	EnvOrganized    EnvironmentCategory = "Organized"
	EnvDisorganized EnvironmentCategory = "Disorganized"
	EnvComfortable  EnvironmentCategory = "Comfortable"
	EnvStressful    EnvironmentCategory = "Stressful"
	EnvErgonomic    EnvironmentCategory = "Ergonomic"
	EnvInadequate   EnvironmentCategory = "Inadequate"
)

// EnvironmentResult represents the outcome of classifying a workplace
// environment from a photo and optional description. WellnessLevel goes
// from 1 (worst) to 5 (best).
type EnvironmentResult struct {
	Category        EnvironmentCategory `json:"category"`
	Score           float64             `json:"score"`
	WellnessLevel   int                 `json:"wellness_level"`
	Analysis        string              `json:"analysis"`
	Recommendations []string            `json:"recommendations"`
}
