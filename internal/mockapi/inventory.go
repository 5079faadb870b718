package mockapi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"motor_seeder/internal/models"
	"motor_seeder/internal/repository"
)

// InstanceDetail is the aggregated view served by GET .../detail.
type InstanceDetail struct {
	Instance      models.MotorInstance      `json:"instance"`
	Model         *models.MotorModel        `json:"model"`
	Mappings      []models.ParameterMapping `json:"mappings"`
	Modes         []models.OperationMode    `json:"modes"`
	BaselineCount int                       `json:"baselineCount"`
}

type InventoryService struct {
	repos *repository.Repository
}

func NewInventoryService(repos *repository.Repository) *InventoryService {
	return &InventoryService{repos: repos}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func (s *InventoryService) CreateModel(ctx context.Context, m models.MotorModel) (models.MotorModel, error) {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return models.MotorModel{}, invalid("name is required")
	}
	if m.RatedPower < 0 || m.RatedVoltage < 0 || m.RatedCurrent < 0 || m.RatedSpeed < 0 {
		return models.MotorModel{}, invalid("rated values must not be negative")
	}
	return s.repos.Models.Create(ctx, m)
}

func (s *InventoryService) ListModels(ctx context.Context, p repository.Page) ([]models.MotorModel, int, error) {
	return s.repos.Models.List(ctx, p)
}

func (s *InventoryService) ListDevices(ctx context.Context) ([]models.Device, error) {
	return s.repos.Devices.List(ctx)
}

// RegisterDevices upserts the devices the mock exposes.
func (s *InventoryService) RegisterDevices(ctx context.Context, devices []models.Device) error {
	for _, d := range devices {
		if err := s.repos.Devices.Upsert(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

func (s *InventoryService) CreateInstance(ctx context.Context, inst models.MotorInstance) (models.MotorInstance, error) {
	if inst.ModelID == "" || inst.DeviceID == "" || strings.TrimSpace(inst.Name) == "" {
		return models.MotorInstance{}, invalid("modelId, deviceId and name are required")
	}
	if _, err := s.repos.Models.Get(ctx, inst.ModelID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.MotorInstance{}, invalid("motor model %q does not exist", inst.ModelID)
		}
		return models.MotorInstance{}, err
	}
	return s.repos.Instances.Create(ctx, inst)
}

func (s *InventoryService) ListInstances(ctx context.Context, p repository.Page) ([]models.MotorInstance, int, error) {
	return s.repos.Instances.List(ctx, p)
}

// AttachMappings stores a mapping batch and returns how many were new.
func (s *InventoryService) AttachMappings(ctx context.Context, instanceID string, mappings []models.ParameterMapping) (int, error) {
	if len(mappings) == 0 {
		return 0, invalid("at least one mapping is required")
	}
	for _, m := range mappings {
		if m.TagID == "" {
			return 0, invalid("mapping for parameter %d has no tagId", m.Parameter)
		}
	}
	if _, err := s.repos.Instances.Get(ctx, instanceID); err != nil {
		return 0, err
	}
	return s.repos.Mappings.InsertBatch(ctx, instanceID, mappings)
}

func (s *InventoryService) CreateMode(ctx context.Context, instanceID string, mode models.OperationMode) (models.OperationMode, error) {
	if strings.TrimSpace(mode.Name) == "" || mode.TriggerTagID == "" {
		return models.OperationMode{}, invalid("name and triggerTagId are required")
	}
	if mode.TriggerMaxValue <= mode.TriggerMinValue {
		return models.OperationMode{}, invalid("triggerMaxValue must exceed triggerMinValue")
	}
	if mode.MaxDurationMs != 0 && mode.MaxDurationMs < mode.MinDurationMs {
		return models.OperationMode{}, invalid("maxDurationMs must be 0 or at least minDurationMs")
	}
	if _, err := s.repos.Instances.Get(ctx, instanceID); err != nil {
		return models.OperationMode{}, err
	}
	if err := s.repos.Modes.Create(ctx, instanceID, mode); err != nil {
		return models.OperationMode{}, err
	}
	return mode, nil
}

// Detail gathers an instance with its model, mappings, modes and ready baselines.
func (s *InventoryService) Detail(ctx context.Context, instanceID string) (InstanceDetail, error) {
	inst, err := s.repos.Instances.Get(ctx, instanceID)
	if err != nil {
		return InstanceDetail{}, err
	}
	d := InstanceDetail{Instance: inst}

	switch m, err := s.repos.Models.Get(ctx, inst.ModelID); {
	case err == nil:
		d.Model = &m
	case !errors.Is(err, repository.ErrNotFound):
		return InstanceDetail{}, err
	}

	if d.Mappings, err = s.repos.Mappings.List(ctx, instanceID); err != nil {
		return InstanceDetail{}, fmt.Errorf("list mappings: %w", err)
	}
	if d.Modes, err = s.repos.Modes.List(ctx, instanceID); err != nil {
		return InstanceDetail{}, fmt.Errorf("list modes: %w", err)
	}
	if d.BaselineCount, err = s.repos.Baselines.CountReady(ctx, instanceID); err != nil {
		return InstanceDetail{}, err
	}
	return d, nil
}
