package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Habit represents a stored healthy-habit record (hydration, active
// break, meditation and similar), each worth a number of points toward
// badges.
type Habit struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Kind       string
	Points     int
	RecordedAt time.Time
}

// CreateHabit stores a new habit record.
func (db *DB) CreateHabit(ctx context.Context, userID uuid.UUID, kind string, points int) (*Habit, error) {
	var habit Habit
	err := db.pool.QueryRow(ctx,
		`INSERT INTO habits (user_id, kind, points)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, kind, points, recorded_at`,
		userID, kind, points,
	).Scan(&habit.ID, &habit.UserID, &habit.Kind, &habit.Points, &habit.RecordedAt)
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

// GetHabit retrieves a habit by ID, or nil if none exists.
func (db *DB) GetHabit(ctx context.Context, id uuid.UUID) (*Habit, error) {
	var habit Habit
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, kind, points, recorded_at FROM habits WHERE id = $1`,
		id,
	).Scan(&habit.ID, &habit.UserID, &habit.Kind, &habit.Points, &habit.RecordedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

// ListHabitsByUser returns a user's habits, most recent first.
func (db *DB) ListHabitsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Habit, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, kind, points, recorded_at
		 FROM habits WHERE user_id = $1 ORDER BY recorded_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []Habit
	for rows.Next() {
		var habit Habit
		if err := rows.Scan(&habit.ID, &habit.UserID, &habit.Kind, &habit.Points, &habit.RecordedAt); err != nil {
			return nil, err
		}
		habits = append(habits, habit)
	}
	return habits, rows.Err()
}

// TotalHabitPoints returns the sum of a user's habit points.
func (db *DB) TotalHabitPoints(ctx context.Context, userID uuid.UUID) (int, error) {
	var total int
	err := db.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(points), 0) FROM habits WHERE user_id = $1`,
		userID,
	).Scan(&total)
	return total, err
}

// DeleteHabit deletes a habit by ID.
func (db *DB) DeleteHabit(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM habits WHERE id = $1`, id)
	return err
}
