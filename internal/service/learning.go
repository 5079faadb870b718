package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"motor_seeder/internal/logger"
	"motor_seeder/internal/metrics"
	"motor_seeder/internal/models"
)

// BaselineLookback is the learning window length ending at "now".
const BaselineLookback = time.Hour

// LearningService starts baseline learning and polls for its completion.
type LearningService struct {
	api          MotorAPI
	log          *logger.Logger
	metrics      *metrics.Recorder
	now          func() time.Time
	pollInterval time.Duration
	timeout      time.Duration
}

func NewLearningService(api MotorAPI, opts Options) *LearningService {
	opts = opts.withDefaults()
	return &LearningService{
		api:          api,
		log:          opts.Logger.Stage("learning"),
		metrics:      opts.Metrics,
		now:          opts.Now,
		pollInterval: opts.PollInterval,
		timeout:      opts.BaselineTimeout,
	}
}

// StartLearning submits one window [now-1h, now] to every instance and
// returns the instances whose learning was accepted.
func (s *LearningService) StartLearning(ctx context.Context, instances []models.MotorInstance) ([]models.MotorInstance, Outcome, error) {
	var (
		out     Outcome
		started []models.MotorInstance
	)
	defer func() { out.record(s.metrics, entityLearning) }()

	window := models.NewLearningWindow(s.now(), BaselineLookback)
	for _, inst := range instances {
		res, err := s.api.StartLearning(ctx, inst.InstanceID, window)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return started, out, ctxErr
			}
			out.Failed++
			s.log.Errorw("learning_start_failed", "instance", inst.Name, "err", err)
			continue
		}
		if res.Status != http.StatusOK {
			out.Failed++
			s.log.Errorw("learning_start_rejected", "instance", inst.Name, "status", res.Status, "body", res.String())
			continue
		}
		out.Created++
		started = append(started, inst)
		s.log.Infow("learning_started",
			"instance", inst.Name,
			"start_ts", window.StartTs,
			"end_ts", window.EndTs,
			"response", res.String(),
		)
	}
	return started, out, nil
}

// AwaitBaselines polls each instance's detail until baselineCount > 0.
// It returns an error wrapping ErrBaselineTimeout naming the instances still
// pending when the timeout elapses.
func (s *LearningService) AwaitBaselines(ctx context.Context, instances []models.MotorInstance) error {
	pending := make(map[string]models.MotorInstance, len(instances))
	for _, inst := range instances {
		pending[inst.InstanceID] = inst
	}
	if len(pending) == 0 {
		return nil
	}

	deadline := time.NewTimer(s.timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		s.pollOnce(ctx, pending)
		if len(pending) == 0 {
			s.log.Infow("baselines_ready", "instances", len(instances))
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			names := make([]string, 0, len(pending))
			for _, inst := range instances {
				if _, ok := pending[inst.InstanceID]; ok {
					names = append(names, inst.Name)
				}
			}
			return fmt.Errorf("%w after %s: pending %s", ErrBaselineTimeout, s.timeout, strings.Join(names, ", "))
		case <-ticker.C:
		}
	}
}

// pollOnce removes instances with at least one baseline from pending.
func (s *LearningService) pollOnce(ctx context.Context, pending map[string]models.MotorInstance) {
	for id, inst := range pending {
		res, err := s.api.Detail(ctx, id)
		if err != nil || !res.OK() {
			s.log.Debugw("baseline_poll_failed", "instance", inst.Name, "status", res.Status, "err", err)
			continue
		}
		var detail models.InstanceDetail
		if err := res.Decode(&detail); err != nil {
			continue
		}
		if detail.BaselineCount > 0 {
			s.log.Infow("baseline_ready", "instance", inst.Name, "baselines", detail.BaselineCount)
			delete(pending, id)
		}
	}
}
