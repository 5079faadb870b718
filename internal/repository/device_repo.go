package repository

import (
	"context"
	"database/sql"

	"motor_seeder/internal/models"
)

type DeviceSQLite struct {
	db *sql.DB
}

func NewDeviceSQLite(db *sql.DB) *DeviceSQLite {
	return &DeviceSQLite{db: db}
}

var _ DeviceRepo = (*DeviceSQLite)(nil)

const (
	upsertDeviceSQL = `
		INSERT INTO devices (device_id, name)
		VALUES (?, ?)
		ON CONFLICT(device_id) DO UPDATE SET
			name=excluded.name
	`

	listDevicesSQL = `SELECT device_id, name FROM devices ORDER BY device_id`
)

// Upsert inserts a device or renames an existing one.
func (r *DeviceSQLite) Upsert(ctx context.Context, d models.Device) error {
	_, err := r.db.ExecContext(ctx, upsertDeviceSQL, d.DeviceID, d.Name)
	return wrap(err, "upsert device %q", d.DeviceID)
}

func (r *DeviceSQLite) List(ctx context.Context) ([]models.Device, error) {
	rows, err := r.db.QueryContext(ctx, listDevicesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Device, 0, 8)
	for rows.Next() {
		var d models.Device
		if err := rows.Scan(&d.DeviceID, &d.Name); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
