package service

import (
	"context"
	"fmt"
	"net/http"

	"motor_seeder/internal/logger"
	"motor_seeder/internal/models"
	"motor_seeder/internal/transport"
)

// VerificationRow is the detail view of one instance after provisioning.
type VerificationRow struct {
	Instance  string
	ModelName string
	Mappings  int
	Modes     int
	Baselines int
	Error     string
}

// DiagnosisRow is the diagnosis outcome of one instance.
type DiagnosisRow struct {
	Instance    string
	HealthScore *float64
	Error       string
}

// Score renders the health score, or N/A.
func (r DiagnosisRow) Score() string {
	if r.HealthScore == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", *r.HealthScore)
}

// VerificationService reads back the seeded state.
type VerificationService struct {
	api MotorAPI
	log *logger.Logger
}

func NewVerificationService(api MotorAPI, opts Options) *VerificationService {
	opts = opts.withDefaults()
	return &VerificationService{api: api, log: opts.Logger.Stage("verification")}
}

// Verify re-fetches the instance collection and each instance's detail.
func (s *VerificationService) Verify(ctx context.Context) ([]models.MotorInstance, []VerificationRow, error) {
	res, err := s.api.ListInstances(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, nil, ctxErr
		}
		s.log.Errorw("instances_request_failed", "err", err)
	}
	instances, skipped := transport.DecodeList[models.MotorInstance](res)
	if skipped > 0 {
		s.log.Warnw("instances_skipped_malformed", "count", skipped)
	}
	s.log.Infow("total_motor_instances", "count", len(instances))

	rows := make([]VerificationRow, 0, len(instances))
	for _, inst := range instances {
		row := VerificationRow{Instance: inst.Name, ModelName: "N/A"}

		res, err := s.api.Detail(ctx, inst.InstanceID)
		switch {
		case err != nil:
			if ctxErr := ctx.Err(); ctxErr != nil {
				return instances, rows, ctxErr
			}
			row.Error = err.Error()
		case !res.OK():
			row.Error = res.String()
		default:
			var detail models.InstanceDetail
			if err := res.Decode(&detail); err != nil {
				row.Error = err.Error()
				break
			}
			if detail.Model != nil && detail.Model.Name != "" {
				row.ModelName = detail.Model.Name
			}
			row.Mappings = len(detail.Mappings)
			row.Modes = len(detail.Modes)
			row.Baselines = detail.BaselineCount
		}

		if row.Error != "" {
			s.log.Errorw("instance_detail_failed", "instance", inst.Name, "body", row.Error)
		} else {
			s.log.Infow("instance_verified",
				"instance", inst.Name,
				"model", row.ModelName,
				"mappings", row.Mappings,
				"modes", row.Modes,
				"baselines", row.Baselines,
			)
		}
		rows = append(rows, row)
	}
	return instances, rows, nil
}

// Diagnose requests a diagnosis per instance, keeping the raw body on failure.
func (s *VerificationService) Diagnose(ctx context.Context, instances []models.MotorInstance) ([]DiagnosisRow, error) {
	rows := make([]DiagnosisRow, 0, len(instances))
	for _, inst := range instances {
		row := DiagnosisRow{Instance: inst.Name}

		res, err := s.api.Diagnose(ctx, inst.InstanceID)
		switch {
		case err != nil:
			if ctxErr := ctx.Err(); ctxErr != nil {
				return rows, ctxErr
			}
			row.Error = err.Error()
		case res.Status != http.StatusOK:
			row.Error = res.String()
		default:
			var result models.DiagnosisResult
			if err := res.Decode(&result); err != nil {
				row.Error = res.String()
				break
			}
			row.HealthScore = result.HealthScore
		}

		if row.Error != "" {
			s.log.Warnw("diagnosis_failed", "instance", inst.Name, "body", row.Error)
		} else {
			s.log.Infow("diagnosis", "instance", inst.Name, "health_score", row.Score())
		}
		rows = append(rows, row)
	}
	return rows, nil
}
