package mockapi

import (
	"context"
	"time"

	"motor_seeder/internal/logger"
	"motor_seeder/internal/models"
	"motor_seeder/internal/repository"
)

// wholeInstanceMode names the single baseline of an instance without modes.
const wholeInstanceMode = "all"

// Learner queues baseline learning per operation mode and completes queued
// baselines once they are LearnDelay old.
type Learner struct {
	repos *repository.Repository
	delay time.Duration
	log   *logger.Logger
	now   func() time.Time
}

func NewLearner(repos *repository.Repository, opts Options) *Learner {
	opts = opts.withDefaults()
	return &Learner{repos: repos, delay: opts.LearnDelay, log: opts.Logger, now: opts.Now}
}

// StartLearning queues one baseline per mode of the instance and returns
// how many were queued.
func (l *Learner) StartLearning(ctx context.Context, instanceID string, w models.LearningWindow) (int, error) {
	if w.StartTs <= 0 || w.EndTs <= w.StartTs {
		return 0, invalid("endTs must be after startTs")
	}
	if _, err := l.repos.Instances.Get(ctx, instanceID); err != nil {
		return 0, err
	}
	modes, err := l.repos.Modes.List(ctx, instanceID)
	if err != nil {
		return 0, err
	}

	names := make([]string, 0, len(modes))
	for _, m := range modes {
		names = append(names, m.Name)
	}
	if len(names) == 0 {
		names = append(names, wholeInstanceMode)
	}
	return l.repos.Baselines.Request(ctx, instanceID, names, w, l.now())
}

// Run ticks at the given interval until ctx is canceled.
func (l *Learner) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if _, err := l.completeDue(ctx); err != nil && ctx.Err() == nil {
				l.log.Errorw("baseline_learning_failed", "err", err)
			}
		}
	}
}

func (l *Learner) completeDue(ctx context.Context) (int, error) {
	now := l.now()
	n, err := l.repos.Baselines.CompleteDue(ctx, now.Add(-l.delay), now)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		l.log.Infow("baselines_learned", "count", n)
	}
	return n, nil
}
