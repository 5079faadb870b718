package mockapi

import (
	"context"
	"time"

	"motor_seeder/internal/logger"
	"motor_seeder/internal/models"
	"motor_seeder/internal/repository"
)

// Authorization issues and checks bearer tokens.
type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	EnsureUser(ctx context.Context, username, password string) error
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Inventory stores models, devices, instances and their configuration.
type Inventory interface {
	CreateModel(ctx context.Context, m models.MotorModel) (models.MotorModel, error)
	ListModels(ctx context.Context, p repository.Page) ([]models.MotorModel, int, error)
	ListDevices(ctx context.Context) ([]models.Device, error)
	RegisterDevices(ctx context.Context, devices []models.Device) error
	CreateInstance(ctx context.Context, inst models.MotorInstance) (models.MotorInstance, error)
	ListInstances(ctx context.Context, p repository.Page) ([]models.MotorInstance, int, error)
	AttachMappings(ctx context.Context, instanceID string, mappings []models.ParameterMapping) (int, error)
	CreateMode(ctx context.Context, instanceID string, mode models.OperationMode) (models.OperationMode, error)
	Detail(ctx context.Context, instanceID string) (InstanceDetail, error)
}

// Learning queues baseline learning and completes it in the background.
type Learning interface {
	StartLearning(ctx context.Context, instanceID string, w models.LearningWindow) (int, error)
	Run(ctx context.Context, tick time.Duration)
}

// Diagnosis scores an instance against its learned baselines.
type Diagnosis interface {
	Diagnose(ctx context.Context, instanceID string) (DiagnosisReport, error)
}

type Service struct {
	Authorization
	Inventory
	Learning
	Diagnosis
}

// Options configures the mock backend.
type Options struct {
	SigningKey string
	TokenTTL   time.Duration
	LearnDelay time.Duration
	Logger     *logger.Logger
	Now        func() time.Time
}

func (o Options) withDefaults() Options {
	if o.SigningKey == "" {
		o.SigningKey = "motor-mock-signing-key"
	}
	if o.TokenTTL <= 0 {
		o.TokenTTL = time.Hour
	}
	if o.LearnDelay < 0 {
		o.LearnDelay = 0
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

func NewService(repos *repository.Repository, opts Options) *Service {
	opts = opts.withDefaults()
	return &Service{
		Authorization: NewAuthService(repos.Auth, opts),
		Inventory:     NewInventoryService(repos),
		Learning:      NewLearner(repos, opts),
		Diagnosis:     NewDiagnosisService(repos, opts),
	}
}
