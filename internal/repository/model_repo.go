package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"motor_seeder/internal/models"

	"github.com/google/uuid"
)

type ModelSQLite struct {
	db *sql.DB
}

func NewModelSQLite(db *sql.DB) *ModelSQLite { return &ModelSQLite{db: db} }

var _ ModelRepo = (*ModelSQLite)(nil)

const (
	insertModelSQL = `INSERT INTO motor_models (id, name, payload, created_ms) VALUES (?, ?, ?, ?)`
	selectModelSQL = `SELECT id, payload FROM motor_models WHERE id = ?`
	listModelsSQL  = `SELECT id, payload FROM motor_models ORDER BY created_ms, id LIMIT ? OFFSET ?`
	countModelsSQL = `SELECT COUNT(*) FROM motor_models`
)

// Create stores a model under a fresh id. Names are unique.
func (r *ModelSQLite) Create(ctx context.Context, m models.MotorModel) (models.MotorModel, error) {
	m.ModelID = uuid.NewString()
	payload, err := json.Marshal(m)
	if err != nil {
		return models.MotorModel{}, fmt.Errorf("marshal motor model %q: %w", m.Name, err)
	}
	if _, err := r.db.ExecContext(ctx, insertModelSQL, m.ModelID, m.Name, string(payload), nowMillis()); err != nil {
		return models.MotorModel{}, wrap(err, "insert motor model %q", m.Name)
	}
	return m, nil
}

func (r *ModelSQLite) Get(ctx context.Context, id string) (models.MotorModel, error) {
	var (
		gotID   string
		payload string
	)
	if err := r.db.QueryRowContext(ctx, selectModelSQL, id).Scan(&gotID, &payload); err != nil {
		return models.MotorModel{}, wrap(err, "select motor model %q", id)
	}
	return decodeModel(gotID, payload)
}

// List returns one page of models in creation order and the total count.
func (r *ModelSQLite) List(ctx context.Context, p Page) ([]models.MotorModel, int, error) {
	p = p.Normalize()

	var total int
	if err := r.db.QueryRowContext(ctx, countModelsSQL).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count motor models: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, listModelsSQL, p.Size, p.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list motor models: %w", err)
	}
	defer rows.Close()

	out := make([]models.MotorModel, 0, p.Size)
	for rows.Next() {
		var id, payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, 0, err
		}
		m, err := decodeModel(id, payload)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func decodeModel(id, payload string) (models.MotorModel, error) {
	var m models.MotorModel
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		return models.MotorModel{}, fmt.Errorf("decode motor model %q: %w", id, err)
	}
	m.ModelID = id
	return m, nil
}
