package mockapi

import (
	"context"
	"hash/fnv"
	"math"
	"time"

	"motor_seeder/internal/logger"
	"motor_seeder/internal/repository"
)

// DiagnosisReport is the body of POST .../diagnose.
type DiagnosisReport struct {
	InstanceID  string    `json:"instanceId"`
	HealthScore float64   `json:"healthScore"`
	Status      string    `json:"status"`
	Baselines   int       `json:"baselines"`
	DiagnosedAt time.Time `json:"diagnosedAt"`
}

// Health thresholds on the 0..100 score.
const (
	healthyScore = 85.0
	warningScore = 70.0
)

type DiagnosisService struct {
	repos *repository.Repository
	log   *logger.Logger
	now   func() time.Time
}

func NewDiagnosisService(repos *repository.Repository, opts Options) *DiagnosisService {
	opts = opts.withDefaults()
	return &DiagnosisService{repos: repos, log: opts.Logger, now: opts.Now}
}

// Diagnose scores an instance. The score is stable per instance and
// requires at least one learned baseline.
func (s *DiagnosisService) Diagnose(ctx context.Context, instanceID string) (DiagnosisReport, error) {
	if _, err := s.repos.Instances.Get(ctx, instanceID); err != nil {
		return DiagnosisReport{}, err
	}
	baselines, err := s.repos.Baselines.CountReady(ctx, instanceID)
	if err != nil {
		return DiagnosisReport{}, err
	}
	if baselines == 0 {
		return DiagnosisReport{}, ErrNoBaseline
	}

	score := healthScore(instanceID)
	s.log.Infow("instance_diagnosed", "instance_id", instanceID, "health_score", score)
	return DiagnosisReport{
		InstanceID:  instanceID,
		HealthScore: score,
		Status:      healthStatus(score),
		Baselines:   baselines,
		DiagnosedAt: s.now().UTC(),
	}, nil
}

// healthScore maps the instance id onto [80.0, 99.9].
func healthScore(instanceID string) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(instanceID))
	return math.Round((80+float64(h.Sum32()%200)/10)*10) / 10
}

func healthStatus(score float64) string {
	switch {
	case score >= healthyScore:
		return "healthy"
	case score >= warningScore:
		return "warning"
	default:
		return "critical"
	}
}
