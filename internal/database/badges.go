package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Badge represents an achievement users can earn with habit points.
type Badge struct {
	ID             uuid.UUID
	Name           string
	Description    *string
	RequiredPoints int
}

// UserBadge represents an awarded badge.
type UserBadge struct {
	UserID    uuid.UUID
	BadgeID   uuid.UUID
	Name      string
	AwardedAt time.Time
}

// CreateBadge creates a new badge definition.
func (db *DB) CreateBadge(ctx context.Context, name string, description *string, requiredPoints int) (*Badge, error) {
	var badge Badge
	err := db.pool.QueryRow(ctx,
		`INSERT INTO badges (name, description, required_points)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, description, required_points`,
		name, description, requiredPoints,
	).Scan(&badge.ID, &badge.Name, &badge.Description, &badge.RequiredPoints)
	if err != nil {
		return nil, err
	}
	return &badge, nil
}

// GetBadge retrieves a badge by ID, or nil if none exists.
func (db *DB) GetBadge(ctx context.Context, id uuid.UUID) (*Badge, error) {
	var badge Badge
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, description, required_points FROM badges WHERE id = $1`,
		id,
	).Scan(&badge.ID, &badge.Name, &badge.Description, &badge.RequiredPoints)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &badge, nil
}

// ListBadges returns all badge definitions ordered by required points.
func (db *DB) ListBadges(ctx context.Context) ([]Badge, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, description, required_points FROM badges ORDER BY required_points`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var badges []Badge
	for rows.Next() {
		var badge Badge
		if err := rows.Scan(&badge.ID, &badge.Name, &badge.Description, &badge.RequiredPoints); err != nil {
			return nil, err
		}
		badges = append(badges, badge)
	}
	return badges, rows.Err()
}

// AwardBadge records a badge award. Awarding the same badge twice is a
// no-op.
func (db *DB) AwardBadge(ctx context.Context, userID, badgeID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO user_badges (user_id, badge_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, badge_id) DO NOTHING`,
		userID, badgeID,
	)
	return err
}

// ListUserBadges returns the badges awarded to a user, newest first.
func (db *DB) ListUserBadges(ctx context.Context, userID uuid.UUID) ([]UserBadge, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT ub.user_id, ub.badge_id, b.name, ub.awarded_at
		 FROM user_badges ub JOIN badges b ON b.id = ub.badge_id
		 WHERE ub.user_id = $1 ORDER BY ub.awarded_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var awarded []UserBadge
	for rows.Next() {
		var ub UserBadge
		if err := rows.Scan(&ub.UserID, &ub.BadgeID, &ub.Name, &ub.AwardedAt); err != nil {
			return nil, err
		}
		awarded = append(awarded, ub)
	}
	return awarded, rows.Err()
}

// DeleteBadge deletes a badge definition by ID.
func (db *DB) DeleteBadge(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM badges WHERE id = $1`, id)
	return err
}
