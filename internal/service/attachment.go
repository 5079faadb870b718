package service

import (
	"context"
	"net/http"

	"motor_seeder/internal/catalog"
	"motor_seeder/internal/logger"
	"motor_seeder/internal/metrics"
	"motor_seeder/internal/models"
)

// AttachmentService attaches parameter mappings and operation modes.
// Instances whose deviceId has no mapping table entry are skipped silently.
type AttachmentService struct {
	api     MotorAPI
	catalog *catalog.Catalog
	log     *logger.Logger
	metrics *metrics.Recorder
}

func NewAttachmentService(api MotorAPI, cat *catalog.Catalog, opts Options) *AttachmentService {
	opts = opts.withDefaults()
	return &AttachmentService{api: api, catalog: cat, log: opts.Logger.Stage("attachment"), metrics: opts.Metrics}
}

// AttachMappings submits each instance's mapping table entry as one batch.
func (s *AttachmentService) AttachMappings(ctx context.Context, instances []models.MotorInstance) (Outcome, error) {
	var out Outcome
	defer func() { out.record(s.metrics, entityMapping) }()

	for _, inst := range instances {
		mappings, ok := s.catalog.MappingsFor(inst.DeviceID)
		if !ok {
			out.Skipped++
			s.log.Debugw("mapping_table_miss", "instance", inst.Name, "device_id", inst.DeviceID)
			continue
		}

		res, err := s.api.AttachMappings(ctx, inst.InstanceID, mappings)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return out, ctxErr
			}
			out.Failed++
			s.log.Errorw("mapping_batch_failed", "instance", inst.Name, "err", err)
			continue
		}
		if res.Status != http.StatusOK {
			out.Failed++
			s.log.Errorw("mapping_batch_rejected", "instance", inst.Name, "status", res.Status, "body", res.String())
			continue
		}

		var batch models.BatchResult
		if err := res.Decode(&batch); err != nil {
			s.log.Warnw("mapping_batch_undecodable", "instance", inst.Name, "body", res.String())
		}
		out.Created += batch.Created
		s.log.Infow("mappings_created", "instance", inst.Name, "created", batch.Created)
	}
	return out, nil
}

// AttachModes posts the catalog modes, in ascending priority, to each instance.
func (s *AttachmentService) AttachModes(ctx context.Context, instances []models.MotorInstance) (Outcome, error) {
	var out Outcome
	defer func() { out.record(s.metrics, entityMode) }()

	for _, inst := range instances {
		if _, ok := s.catalog.MappingsFor(inst.DeviceID); !ok {
			out.Skipped++
			s.log.Debugw("mode_table_miss", "instance", inst.Name, "device_id", inst.DeviceID)
			continue
		}

		for _, mode := range s.catalog.Modes {
			res, err := s.api.CreateMode(ctx, inst.InstanceID, mode)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return out, ctxErr
				}
				out.Failed++
				s.log.Errorw("mode_create_failed", "instance", inst.Name, "mode", mode.Name, "err", err)
				continue
			}
			switch {
			case res.Status == http.StatusCreated:
				out.Created++
				s.log.Infow("mode_created", "instance", inst.Name, "mode", mode.Name, "priority", mode.Priority)
			case IsDuplicate(res):
				out.Duplicates++
				s.log.Infow("mode_already_exists", "instance", inst.Name, "mode", mode.Name)
			default:
				out.Failed++
				s.log.Errorw("mode_create_rejected", "instance", inst.Name, "mode", mode.Name, "status", res.Status, "body", res.String())
			}
		}
	}
	return out, nil
}
