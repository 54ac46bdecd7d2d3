package wellness

import (
	"fmt"
	"strings"

	"github.com/mindtrackhq/mindtrack/pkg/models"
)

// Alert rule thresholds.
const (
	burnoutMoodCeiling     = 2.0
	burnoutEnergyCeiling   = 2.0
	burnoutProductivityBar = 80.0
	overloadTasksBar       = 15.0
	lowMoodCeiling         = 3.0
	balanceMoodFloor       = 4.0
	balanceEnergyFloor     = 4.0
)

// GenerateAlerts evaluates the fixed rule set over recent mood and
// sprint history and returns the alerts in rule order. Rules are not
// mutually exclusive; any subset may fire. An empty mood history
// produces a single informational alert and stops evaluation.
func (e *Engine) GenerateAlerts(moods []models.MoodEntry, sprints []models.SprintEntry) []models.Alert {
	if len(moods) == 0 {
		return []models.Alert{{
			Kind:      models.AlertInfo,
			Message:   "Comece a registrar seu humor regularmente para receber análises personalizadas.",
			RiskLevel: 1,
			Priority:  models.PriorityLow,
		}}
	}

	var alerts []models.Alert

	mood := avgMood(moods)
	energy := avgEnergy(moods)
	trend := moodTrend(moods)
	productivity, _ := avgProductivity(sprints)
	tasks, _ := avgCompletedTasks(sprints)

	// Burnout: depleted mood and energy while output stays high.
	if mood <= burnoutMoodCeiling && energy <= burnoutEnergyCeiling && productivity > burnoutProductivityBar {
		alerts = append(alerts, models.Alert{
			Kind:      models.AlertBurnout,
			Message:   "Sinais de possível burnout detectados: baixo humor e energia com alta produtividade. Considere fazer uma pausa e buscar apoio.",
			RiskLevel: 5,
			Priority:  models.PriorityHigh,
		})
	}

	// Overload: high task throughput with a flagging mood.
	if tasks > overloadTasksBar && mood <= lowMoodCeiling {
		alerts = append(alerts, models.Alert{
			Kind:      models.AlertOverload,
			Message:   "Muitas tarefas concluídas com humor baixo. Considere revisar sua carga de trabalho.",
			RiskLevel: 4,
			Priority:  models.PriorityMedium,
		})
	}

	if trend == models.TrendDecreasing && mood <= lowMoodCeiling {
		alerts = append(alerts, models.Alert{
			Kind:      models.AlertNegativeTrend,
			Message:   "Tendência de declínio no bem-estar detectada. Fique atento e cuide de si mesmo.",
			RiskLevel: 3,
			Priority:  models.PriorityMedium,
		})
	}

	if comments := moodComments(moods); len(comments) > 0 {
		result := e.analyzer.AnalyzeAll(comments)
		if result.RiskLevel >= 4 {
			priority := models.PriorityMedium
			if result.RiskLevel >= 5 {
				priority = models.PriorityHigh
			}
			alerts = append(alerts, models.Alert{
				Kind:      models.AlertNegativeSentiment,
				Message:   fmt.Sprintf("Análise de sentimento: %s", result.Message),
				RiskLevel: result.RiskLevel,
				Priority:  priority,
			})
		}
	}

	// Positive reinforcement when everything points the right way.
	if mood >= balanceMoodFloor && energy >= balanceEnergyFloor && trend == models.TrendIncreasing {
		alerts = append(alerts, models.Alert{
			Kind:      models.AlertBalance,
			Message:   "Excelente! Você está mantendo um bom equilíbrio entre trabalho e bem-estar. Continue assim!",
			RiskLevel: 1,
			Priority:  models.PriorityLow,
		})
	}

	return alerts
}

func moodComments(moods []models.MoodEntry) []string {
	var comments []string
	for _, m := range moods {
		if strings.TrimSpace(m.Comment) != "" {
			comments = append(comments, m.Comment)
		}
	}
	return comments
}
