package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"motor_seeder/internal/models"

	"github.com/google/uuid"
)

// Baseline rows move from pending to ready when the learner completes them.
const (
	baselinePending = "pending"
	baselineReady   = "ready"
)

type BaselineSQLite struct {
	db *sql.DB
}

func NewBaselineSQLite(db *sql.DB) *BaselineSQLite { return &BaselineSQLite{db: db} }

var _ BaselineRepo = (*BaselineSQLite)(nil)

const (
	requestBaselineSQL = `
		INSERT INTO baselines (id, instance_id, mode, start_ts, end_ts, status, requested_ms, learned_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, NULL)
		ON CONFLICT(instance_id, mode) DO UPDATE SET
			start_ts=excluded.start_ts,
			end_ts=excluded.end_ts,
			status=excluded.status,
			requested_ms=excluded.requested_ms,
			learned_ms=NULL
	`
	completeBaselinesSQL = `UPDATE baselines SET status = ?, learned_ms = ? WHERE status = ? AND requested_ms <= ?`
	countReadySQL        = `SELECT COUNT(*) FROM baselines WHERE instance_id = ? AND status = ?`
)

// Request (re)queues one pending baseline per mode over the window and
// returns the number queued.
func (r *BaselineSQLite) Request(ctx context.Context, instanceID string, modes []string, w models.LearningWindow, at time.Time) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin baseline request: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, mode := range modes {
		if _, err := tx.ExecContext(ctx, requestBaselineSQL,
			uuid.NewString(),
			instanceID,
			mode,
			w.StartTs,
			w.EndTs,
			baselinePending,
			at.UTC().UnixMilli(),
		); err != nil {
			return 0, wrap(err, "request baseline %q for instance %q", mode, instanceID)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit baseline request: %w", err)
	}
	return len(modes), nil
}

// CompleteDue marks every baseline requested at or before requestedBefore as ready.
func (r *BaselineSQLite) CompleteDue(ctx context.Context, requestedBefore, at time.Time) (int, error) {
	res, err := r.db.ExecContext(ctx, completeBaselinesSQL,
		baselineReady,
		at.UTC().UnixMilli(),
		baselinePending,
		requestedBefore.UTC().UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("complete baselines: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for completed baselines: %w", err)
	}
	return int(n), nil
}

func (r *BaselineSQLite) CountReady(ctx context.Context, instanceID string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countReadySQL, instanceID, baselineReady).Scan(&n); err != nil {
		return 0, fmt.Errorf("count baselines for instance %q: %w", instanceID, err)
	}
	return n, nil
}
