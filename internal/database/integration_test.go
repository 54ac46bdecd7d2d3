//go:build database

package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/mindtrackhq/mindtrack/pkg/models"
)

// TestPostgresContainer runs migrations and a full cross-table flow
// against a throwaway Postgres container. Run with -tags database.
func TestPostgresContainer(t *testing.T) {
	ctx := context.Background()

	pgc, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("mindtrack"),
		postgres.WithUsername("mindtrack"),
		postgres.WithPassword("mindtrack"),
		postgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	defer func() {
		if err := testcontainers.TerminateContainer(pgc); err != nil {
			t.Logf("terminate container: %v", err)
		}
	}()

	dbURL, err := pgc.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, Migrate(dbURL))
	// Running twice must be a no-op
	require.NoError(t, Migrate(dbURL))

	db, err := New(ctx, dbURL)
	require.NoError(t, err)
	defer db.Close()

	user, err := db.CreateUser(ctx, "Ana Souza", "ana@example.com", "hash", RoleProfessional, nil)
	require.NoError(t, err)

	comment := "Semana exaustiva, muita pressão"
	_, err = db.CreateMood(ctx, user.ID, 2, 2, &comment)
	require.NoError(t, err)

	prod := 92.0
	started := time.Now().UTC().AddDate(0, 0, -14)
	_, err = db.CreateSprint(ctx, CreateSprintParams{
		UserID:       user.ID,
		Name:         "Sprint 12",
		StartedAt:    started,
		Productivity: &prod,
	})
	require.NoError(t, err)

	moods, err := db.ListMoodsByUser(ctx, user.ID, 10)
	require.NoError(t, err)
	require.Len(t, moods, 1)

	sprints, err := db.ListSprintsByUser(ctx, user.ID, 10)
	require.NoError(t, err)
	require.Len(t, sprints, 1)

	stored, err := db.CreateAlert(ctx, user.ID, models.Alert{
		Kind:      models.AlertBurnout,
		Message:   "Sinais de possível burnout detectados.",
		RiskLevel: 5,
		Priority:  models.PriorityHigh,
	})
	require.NoError(t, err)

	alerts, err := db.ListAlertsByUser(ctx, user.ID, 10)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, stored.ID, alerts[0].ID)
	assert.Equal(t, models.AlertBurnout, alerts[0].Kind)

	// Deleting the user cascades through their records
	require.NoError(t, db.DeleteUser(ctx, user.ID))
	moods, err = db.ListMoodsByUser(ctx, user.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, moods)
}
