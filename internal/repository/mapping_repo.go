package repository

import (
	"context"
	"database/sql"
	"fmt"

	"motor_seeder/internal/models"
)

type MappingSQLite struct {
	db *sql.DB
}

func NewMappingSQLite(db *sql.DB) *MappingSQLite { return &MappingSQLite{db: db} }

var _ MappingRepo = (*MappingSQLite)(nil)

const (
	insertMappingSQL = `
		INSERT INTO parameter_mappings (instance_id, parameter, tag_id, scale_factor, value_offset, used_for_diagnosis)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(instance_id, parameter) DO NOTHING
	`
	listMappingsSQL = `
		SELECT parameter, tag_id, scale_factor, value_offset, used_for_diagnosis
		FROM parameter_mappings WHERE instance_id = ? ORDER BY parameter
	`
)

// InsertBatch stores the mappings in one transaction and returns how many
// were new. A parameter already mapped on the instance is left untouched.
func (r *MappingSQLite) InsertBatch(ctx context.Context, instanceID string, mappings []models.ParameterMapping) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin mapping batch: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	created := 0
	for _, m := range mappings {
		res, err := tx.ExecContext(ctx, insertMappingSQL,
			instanceID,
			m.Parameter,
			m.TagID,
			m.ScaleFactor,
			m.Offset,
			m.UsedForDiagnosis,
		)
		if err != nil {
			return 0, wrap(err, "insert mapping %d for instance %q", m.Parameter, instanceID)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("rows affected for mapping %d: %w", m.Parameter, err)
		}
		created += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit mapping batch: %w", err)
	}
	return created, nil
}

func (r *MappingSQLite) List(ctx context.Context, instanceID string) ([]models.ParameterMapping, error) {
	rows, err := r.db.QueryContext(ctx, listMappingsSQL, instanceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.ParameterMapping, 0, 8)
	for rows.Next() {
		var m models.ParameterMapping
		if err := rows.Scan(&m.Parameter, &m.TagID, &m.ScaleFactor, &m.Offset, &m.UsedForDiagnosis); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
