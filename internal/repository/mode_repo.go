package repository

import (
	"context"
	"database/sql"

	"motor_seeder/internal/models"
)

type ModeSQLite struct {
	db *sql.DB
}

func NewModeSQLite(db *sql.DB) *ModeSQLite { return &ModeSQLite{db: db} }

var _ ModeRepo = (*ModeSQLite)(nil)

const (
	insertModeSQL = `
		INSERT INTO operation_modes (
			instance_id, name, description, trigger_tag_id, trigger_min, trigger_max,
			min_duration_ms, max_duration_ms, priority
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	listModesSQL = `
		SELECT name, description, trigger_tag_id, trigger_min, trigger_max,
			min_duration_ms, max_duration_ms, priority
		FROM operation_modes WHERE instance_id = ? ORDER BY priority, name
	`
)

// Create stores a mode. Mode names are unique per instance.
func (r *ModeSQLite) Create(ctx context.Context, instanceID string, mode models.OperationMode) error {
	_, err := r.db.ExecContext(ctx, insertModeSQL,
		instanceID,
		mode.Name,
		mode.Description,
		mode.TriggerTagID,
		mode.TriggerMinValue,
		mode.TriggerMaxValue,
		mode.MinDurationMs,
		mode.MaxDurationMs,
		mode.Priority,
	)
	return wrap(err, "insert mode %q for instance %q", mode.Name, instanceID)
}

// List returns the instance's modes by ascending priority.
func (r *ModeSQLite) List(ctx context.Context, instanceID string) ([]models.OperationMode, error) {
	rows, err := r.db.QueryContext(ctx, listModesSQL, instanceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.OperationMode, 0, 4)
	for rows.Next() {
		var m models.OperationMode
		if err := rows.Scan(
			&m.Name,
			&m.Description,
			&m.TriggerTagID,
			&m.TriggerMinValue,
			&m.TriggerMaxValue,
			&m.MinDurationMs,
			&m.MaxDurationMs,
			&m.Priority,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
