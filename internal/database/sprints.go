package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mindtrackhq/mindtrack/pkg/models"
)

// Sprint represents a stored work-sprint record.
type Sprint struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	StartedAt      time.Time
	EndedAt        *time.Time
	Productivity   *float64
	CompletedTasks *int
	Commits        *int
}

// Entry converts the stored record to the shape the analysis engine
// consumes.
func (s *Sprint) Entry() models.SprintEntry {
	return models.SprintEntry{
		Name:           s.Name,
		Productivity:   s.Productivity,
		CompletedTasks: s.CompletedTasks,
		Commits:        s.Commits,
		StartedAt:      s.StartedAt,
		EndedAt:        s.EndedAt,
	}
}

// SprintEntries converts a slice of stored sprints, preserving order.
func SprintEntries(sprints []Sprint) []models.SprintEntry {
	entries := make([]models.SprintEntry, len(sprints))
	for i := range sprints {
		entries[i] = sprints[i].Entry()
	}
	return entries
}

// CreateSprintParams contains parameters for creating a sprint.
type CreateSprintParams struct {
	UserID         uuid.UUID
	Name           string
	StartedAt      time.Time
	EndedAt        *time.Time
	Productivity   *float64
	CompletedTasks *int
	Commits        *int
}

// CreateSprint stores a new sprint record.
func (db *DB) CreateSprint(ctx context.Context, params CreateSprintParams) (*Sprint, error) {
	var sprint Sprint
	err := db.pool.QueryRow(ctx,
		`INSERT INTO sprints (user_id, name, started_at, ended_at, productivity, completed_tasks, commits)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, user_id, name, started_at, ended_at, productivity, completed_tasks, commits`,
		params.UserID, params.Name, params.StartedAt, params.EndedAt,
		params.Productivity, params.CompletedTasks, params.Commits,
	).Scan(&sprint.ID, &sprint.UserID, &sprint.Name, &sprint.StartedAt, &sprint.EndedAt,
		&sprint.Productivity, &sprint.CompletedTasks, &sprint.Commits)
	if err != nil {
		return nil, err
	}
	return &sprint, nil
}

// GetSprint retrieves a sprint by ID, or nil if none exists.
func (db *DB) GetSprint(ctx context.Context, id uuid.UUID) (*Sprint, error) {
	var sprint Sprint
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, name, started_at, ended_at, productivity, completed_tasks, commits
		 FROM sprints WHERE id = $1`,
		id,
	).Scan(&sprint.ID, &sprint.UserID, &sprint.Name, &sprint.StartedAt, &sprint.EndedAt,
		&sprint.Productivity, &sprint.CompletedTasks, &sprint.Commits)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sprint, nil
}

// ListSprintsByUser returns a user's sprints, most recently started
// first.
func (db *DB) ListSprintsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Sprint, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, name, started_at, ended_at, productivity, completed_tasks, commits
		 FROM sprints WHERE user_id = $1 ORDER BY started_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSprints(rows)
}

// ListSprints returns all sprints, most recently started first.
func (db *DB) ListSprints(ctx context.Context, limit, offset int) ([]Sprint, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, name, started_at, ended_at, productivity, completed_tasks, commits
		 FROM sprints ORDER BY started_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSprints(rows)
}

// DeleteSprint deletes a sprint by ID.
func (db *DB) DeleteSprint(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM sprints WHERE id = $1`, id)
	return err
}

func scanSprints(rows pgx.Rows) ([]Sprint, error) {
	var sprints []Sprint
	for rows.Next() {
		var sprint Sprint
		if err := rows.Scan(&sprint.ID, &sprint.UserID, &sprint.Name, &sprint.StartedAt, &sprint.EndedAt,
			&sprint.Productivity, &sprint.CompletedTasks, &sprint.Commits); err != nil {
			return nil, err
		}
		sprints = append(sprints, sprint)
	}
	return sprints, rows.Err()
}
