package repository

import (
	"context"
	"database/sql"
	"fmt"

	"motor_seeder/internal/models"

	"github.com/google/uuid"
)

type InstanceSQLite struct {
	db *sql.DB
}

func NewInstanceSQLite(db *sql.DB) *InstanceSQLite { return &InstanceSQLite{db: db} }

var _ InstanceRepo = (*InstanceSQLite)(nil)

const (
	instanceColumns = `id, model_id, device_id, name, location, install_date, asset_number`

	insertInstanceSQL = `
		INSERT INTO motor_instances (id, model_id, device_id, name, location, install_date, asset_number, created_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	selectInstanceSQL = `SELECT ` + instanceColumns + ` FROM motor_instances WHERE id = ?`
	listInstancesSQL  = `SELECT ` + instanceColumns + ` FROM motor_instances ORDER BY created_ms, id LIMIT ? OFFSET ?`
	countInstancesSQL = `SELECT COUNT(*) FROM motor_instances`
)

// Create stores an instance under a fresh id. (deviceId, name) is unique.
func (r *InstanceSQLite) Create(ctx context.Context, inst models.MotorInstance) (models.MotorInstance, error) {
	inst.InstanceID = uuid.NewString()
	_, err := r.db.ExecContext(ctx, insertInstanceSQL,
		inst.InstanceID,
		inst.ModelID,
		inst.DeviceID,
		inst.Name,
		inst.Location,
		inst.InstallDate,
		inst.AssetNumber,
		nowMillis(),
	)
	if err != nil {
		return models.MotorInstance{}, wrap(err, "insert motor instance %q", inst.Name)
	}
	return inst, nil
}

func (r *InstanceSQLite) Get(ctx context.Context, id string) (models.MotorInstance, error) {
	var inst models.MotorInstance
	err := r.db.QueryRowContext(ctx, selectInstanceSQL, id).Scan(
		&inst.InstanceID,
		&inst.ModelID,
		&inst.DeviceID,
		&inst.Name,
		&inst.Location,
		&inst.InstallDate,
		&inst.AssetNumber,
	)
	if err != nil {
		return models.MotorInstance{}, wrap(err, "select motor instance %q", id)
	}
	return inst, nil
}

// List returns one page of instances in creation order and the total count.
func (r *InstanceSQLite) List(ctx context.Context, p Page) ([]models.MotorInstance, int, error) {
	p = p.Normalize()

	var total int
	if err := r.db.QueryRowContext(ctx, countInstancesSQL).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count motor instances: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, listInstancesSQL, p.Size, p.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list motor instances: %w", err)
	}
	defer rows.Close()

	out := make([]models.MotorInstance, 0, p.Size)
	for rows.Next() {
		var inst models.MotorInstance
		if err := rows.Scan(
			&inst.InstanceID,
			&inst.ModelID,
			&inst.DeviceID,
			&inst.Name,
			&inst.Location,
			&inst.InstallDate,
			&inst.AssetNumber,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
