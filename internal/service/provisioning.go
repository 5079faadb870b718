package service

import (
	"context"
	"fmt"

	"motor_seeder/internal/catalog"
	"motor_seeder/internal/logger"
	"motor_seeder/internal/metrics"
	"motor_seeder/internal/models"
	"motor_seeder/internal/transport"
)

// Metric and log labels of the provisioned entities.
const (
	entityModel    = "motor_model"
	entityInstance = "motor_instance"
	entityMapping  = "parameter_mapping"
	entityMode     = "operation_mode"
	entityLearning = "baseline_learning"
)

// ProvisioningService creates models and instances with the create-or-discover policy.
type ProvisioningService struct {
	api     MotorAPI
	catalog *catalog.Catalog
	log     *logger.Logger
	metrics *metrics.Recorder
}

func NewProvisioningService(api MotorAPI, cat *catalog.Catalog, opts Options) *ProvisioningService {
	opts = opts.withDefaults()
	return &ProvisioningService{api: api, catalog: cat, log: opts.Logger.Stage("provisioning"), metrics: opts.Metrics}
}

func modelLabel(m models.MotorModel) string {
	if m.ModelID == "" {
		return m.Name
	}
	return fmt.Sprintf("%s [%s]", m.Name, m.ModelID)
}

func instanceLabel(i models.MotorInstance) string {
	if i.InstanceID == "" {
		return i.Name
	}
	return fmt.Sprintf("%s [%s]", i.Name, i.InstanceID)
}

// CreateModels returns the model working set. An empty set is ErrNoModels.
func (s *ProvisioningService) CreateModels(ctx context.Context) ([]models.MotorModel, Outcome, error) {
	working, out, err := CreateOrDiscover(ctx, s.log, Discovery[models.MotorModel]{
		Entity: entityModel,
		Create: s.api.CreateModel,
		List:   s.api.ListModels,
		Label:  modelLabel,
	}, s.catalog.Models)
	out.record(s.metrics, entityModel)
	if err != nil {
		return nil, out, err
	}
	if len(working) == 0 {
		return nil, out, ErrNoModels
	}
	return working, out, nil
}

// ListDevices logs the devices known to the remote system. Error strings
// and unexpected shapes are treated as an empty list.
func (s *ProvisioningService) ListDevices(ctx context.Context) []models.Device {
	res, err := s.api.ListDevices(ctx)
	if err != nil {
		s.log.Warnw("devices_request_failed", "err", err)
		return []models.Device{}
	}
	if !res.OK() {
		s.log.Warnw("devices_raw_response", "status", res.Status, "body", truncate(res.String(), 200))
	}
	devices, skipped := transport.DecodeList[models.Device](res)
	if skipped > 0 {
		s.log.Warnw("devices_skipped_malformed", "count", skipped)
	}
	s.log.Infow("devices_found", "count", len(devices))
	for _, d := range devices {
		s.log.Infow("device", "device_id", orNA(d.DeviceID), "name", orNA(d.Name))
	}
	return devices
}

// CreateInstances builds instance payloads against the model working set and
// applies the create-or-discover policy.
func (s *ProvisioningService) CreateInstances(ctx context.Context, working []models.MotorModel) ([]models.MotorInstance, Outcome, error) {
	if len(working) == 0 {
		return nil, Outcome{}, ErrNoModels
	}
	payloads := make([]models.MotorInstance, 0, len(s.catalog.Instances))
	for _, tpl := range s.catalog.Instances {
		modelID, _ := tpl.ResolveModel(working)
		payloads = append(payloads, tpl.Instance(modelID))
	}

	instances, out, err := CreateOrDiscover(ctx, s.log, Discovery[models.MotorInstance]{
		Entity: entityInstance,
		Create: s.api.CreateInstance,
		List:   s.api.ListInstances,
		Label:  instanceLabel,
	}, payloads)
	out.record(s.metrics, entityInstance)
	if err != nil {
		return nil, out, err
	}
	if len(instances) == 0 {
		s.log.Warnw("no_instances_available")
	}
	return instances, out, nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
