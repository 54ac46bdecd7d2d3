package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mindtrackhq/mindtrack/pkg/models"
)

// StoredAlert represents an alert row persisted after a wellness
// analysis.
type StoredAlert struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Kind      string
	Message   *string
	RiskLevel int
	Priority  string
	CreatedAt time.Time
}

// CreateAlert persists one generated alert for a user.
func (db *DB) CreateAlert(ctx context.Context, userID uuid.UUID, alert models.Alert) (*StoredAlert, error) {
	var stored StoredAlert
	err := db.pool.QueryRow(ctx,
		`INSERT INTO alerts (user_id, kind, message, risk_level, priority)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, user_id, kind, message, risk_level, priority, created_at`,
		userID, alert.Kind, alert.Message, alert.RiskLevel, string(alert.Priority),
	).Scan(&stored.ID, &stored.UserID, &stored.Kind, &stored.Message, &stored.RiskLevel, &stored.Priority, &stored.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// GetAlert retrieves a stored alert by ID, or nil if none exists.
func (db *DB) GetAlert(ctx context.Context, id uuid.UUID) (*StoredAlert, error) {
	var stored StoredAlert
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, kind, message, risk_level, priority, created_at
		 FROM alerts WHERE id = $1`,
		id,
	).Scan(&stored.ID, &stored.UserID, &stored.Kind, &stored.Message, &stored.RiskLevel, &stored.Priority, &stored.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// ListAlertsByUser returns a user's stored alerts, newest first.
func (db *DB) ListAlertsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]StoredAlert, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, kind, message, risk_level, priority, created_at
		 FROM alerts WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []StoredAlert
	for rows.Next() {
		var stored StoredAlert
		if err := rows.Scan(&stored.ID, &stored.UserID, &stored.Kind, &stored.Message, &stored.RiskLevel, &stored.Priority, &stored.CreatedAt); err != nil {
			return nil, err
		}
		alerts = append(alerts, stored)
	}
	return alerts, rows.Err()
}

// DeleteAlert deletes a stored alert by ID.
func (db *DB) DeleteAlert(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM alerts WHERE id = $1`, id)
	return err
}
