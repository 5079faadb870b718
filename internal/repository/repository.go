package repository

import (
	"context"
	"database/sql"
	"time"

	"motor_seeder/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type ModelRepo interface {
	Create(ctx context.Context, m models.MotorModel) (models.MotorModel, error)
	Get(ctx context.Context, id string) (models.MotorModel, error)
	List(ctx context.Context, p Page) ([]models.MotorModel, int, error)
}

type DeviceRepo interface {
	Upsert(ctx context.Context, d models.Device) error
	List(ctx context.Context) ([]models.Device, error)
}

type InstanceRepo interface {
	Create(ctx context.Context, inst models.MotorInstance) (models.MotorInstance, error)
	Get(ctx context.Context, id string) (models.MotorInstance, error)
	List(ctx context.Context, p Page) ([]models.MotorInstance, int, error)
}

type MappingRepo interface {
	InsertBatch(ctx context.Context, instanceID string, mappings []models.ParameterMapping) (int, error)
	List(ctx context.Context, instanceID string) ([]models.ParameterMapping, error)
}

type ModeRepo interface {
	Create(ctx context.Context, instanceID string, mode models.OperationMode) error
	List(ctx context.Context, instanceID string) ([]models.OperationMode, error)
}

type BaselineRepo interface {
	Request(ctx context.Context, instanceID string, modes []string, w models.LearningWindow, at time.Time) (int, error)
	CompleteDue(ctx context.Context, requestedBefore, at time.Time) (int, error)
	CountReady(ctx context.Context, instanceID string) (int, error)
}

type Repository struct {
	Auth      Authorization
	Models    ModelRepo
	Devices   DeviceRepo
	Instances InstanceRepo
	Mappings  MappingRepo
	Modes     ModeRepo
	Baselines BaselineRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:      NewUserRepository(db),
		Models:    NewModelSQLite(db),
		Devices:   NewDeviceSQLite(db),
		Instances: NewInstanceSQLite(db),
		Mappings:  NewMappingSQLite(db),
		Modes:     NewModeSQLite(db),
		Baselines: NewBaselineSQLite(db),
	}
}
