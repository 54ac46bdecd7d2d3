package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mindtrackhq/mindtrack/pkg/models"
)

// Mood represents a stored mood record.
type Mood struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	MoodLevel   int
	EnergyLevel int
	Comment     *string
	RecordedAt  time.Time
}

// Entry converts the stored record to the shape the analysis engine
// consumes.
func (m *Mood) Entry() models.MoodEntry {
	comment := ""
	if m.Comment != nil {
		comment = *m.Comment
	}
	return models.MoodEntry{
		MoodLevel:   m.MoodLevel,
		EnergyLevel: m.EnergyLevel,
		Comment:     comment,
		RecordedAt:  m.RecordedAt,
	}
}

// MoodEntries converts a slice of stored moods, preserving order.
func MoodEntries(moods []Mood) []models.MoodEntry {
	entries := make([]models.MoodEntry, len(moods))
	for i := range moods {
		entries[i] = moods[i].Entry()
	}
	return entries
}

// CreateMood stores a new mood record.
func (db *DB) CreateMood(ctx context.Context, userID uuid.UUID, moodLevel, energyLevel int, comment *string) (*Mood, error) {
	var mood Mood
	err := db.pool.QueryRow(ctx,
		`INSERT INTO moods (user_id, mood_level, energy_level, comment)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, mood_level, energy_level, comment, recorded_at`,
		userID, moodLevel, energyLevel, comment,
	).Scan(&mood.ID, &mood.UserID, &mood.MoodLevel, &mood.EnergyLevel, &mood.Comment, &mood.RecordedAt)
	if err != nil {
		return nil, err
	}
	return &mood, nil
}

// GetMood retrieves a mood record by ID, or nil if none exists.
func (db *DB) GetMood(ctx context.Context, id uuid.UUID) (*Mood, error) {
	var mood Mood
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, mood_level, energy_level, comment, recorded_at
		 FROM moods WHERE id = $1`,
		id,
	).Scan(&mood.ID, &mood.UserID, &mood.MoodLevel, &mood.EnergyLevel, &mood.Comment, &mood.RecordedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mood, nil
}

// ListMoodsByUser returns a user's moods, most recent first.
func (db *DB) ListMoodsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Mood, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, mood_level, energy_level, comment, recorded_at
		 FROM moods WHERE user_id = $1 ORDER BY recorded_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMoods(rows)
}

// ListMoods returns all mood records, most recent first.
func (db *DB) ListMoods(ctx context.Context, limit, offset int) ([]Mood, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, mood_level, energy_level, comment, recorded_at
		 FROM moods ORDER BY recorded_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMoods(rows)
}

// DeleteMood deletes a mood record by ID.
func (db *DB) DeleteMood(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM moods WHERE id = $1`, id)
	return err
}

func scanMoods(rows pgx.Rows) ([]Mood, error) {
	var moods []Mood
	for rows.Next() {
		var mood Mood
		if err := rows.Scan(&mood.ID, &mood.UserID, &mood.MoodLevel, &mood.EnergyLevel, &mood.Comment, &mood.RecordedAt); err != nil {
			return nil, err
		}
		moods = append(moods, mood)
	}
	return moods, rows.Err()
}
