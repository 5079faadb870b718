package service

import (
	"context"
	"time"

	"motor_seeder/internal/catalog"
	"motor_seeder/internal/logger"
	"motor_seeder/internal/metrics"
	"motor_seeder/internal/models"
	"motor_seeder/internal/motorapi"
	"motor_seeder/internal/transport"
)

// MotorAPI is the remote contract the stages drive. *motorapi.API implements it.
type MotorAPI interface {
	Login(ctx context.Context, creds models.Credentials) (motorapi.Session, error)
	CreateModel(ctx context.Context, m models.MotorModel) (transport.Result, error)
	ListModels(ctx context.Context) (transport.Result, error)
	ListDevices(ctx context.Context) (transport.Result, error)
	CreateInstance(ctx context.Context, inst models.MotorInstance) (transport.Result, error)
	ListInstances(ctx context.Context) (transport.Result, error)
	AttachMappings(ctx context.Context, instanceID string, mappings []models.ParameterMapping) (transport.Result, error)
	CreateMode(ctx context.Context, instanceID string, mode models.OperationMode) (transport.Result, error)
	StartLearning(ctx context.Context, instanceID string, w models.LearningWindow) (transport.Result, error)
	Detail(ctx context.Context, instanceID string) (transport.Result, error)
	Diagnose(ctx context.Context, instanceID string) (transport.Result, error)
}

var _ MotorAPI = (*motorapi.API)(nil)

// Authorization obtains the session credential.
type Authorization interface {
	Login(ctx context.Context) (motorapi.Session, error)
}

// Provisioning creates (or discovers) reference data and assets.
type Provisioning interface {
	CreateModels(ctx context.Context) ([]models.MotorModel, Outcome, error)
	ListDevices(ctx context.Context) []models.Device
	CreateInstances(ctx context.Context, working []models.MotorModel) ([]models.MotorInstance, Outcome, error)
}

// Attachment attaches mappings and modes to instances with a mapping table entry.
type Attachment interface {
	AttachMappings(ctx context.Context, instances []models.MotorInstance) (Outcome, error)
	AttachModes(ctx context.Context, instances []models.MotorInstance) (Outcome, error)
}

// Learning starts baseline learning and waits for it to land.
type Learning interface {
	StartLearning(ctx context.Context, instances []models.MotorInstance) ([]models.MotorInstance, Outcome, error)
	AwaitBaselines(ctx context.Context, instances []models.MotorInstance) error
}

// Verification is read-only and produces no entities.
type Verification interface {
	Verify(ctx context.Context) ([]models.MotorInstance, []VerificationRow, error)
	Diagnose(ctx context.Context, instances []models.MotorInstance) ([]DiagnosisRow, error)
}

// Service aggregates the pipeline stages.
type Service struct {
	Authorization
	Provisioning
	Attachment
	Learning
	Verification
}

// Options carries the run configuration of the stages.
type Options struct {
	Credentials     models.Credentials
	PollInterval    time.Duration
	BaselineTimeout time.Duration
	Logger          *logger.Logger
	Metrics         *metrics.Recorder
	Now             func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.PollInterval <= 0 {
		o.PollInterval = time.Second
	}
	if o.BaselineTimeout <= 0 {
		o.BaselineTimeout = 30 * time.Second
	}
	return o
}

// NewService wires the stages over one API session and one catalog.
func NewService(api MotorAPI, cat *catalog.Catalog, opts Options) *Service {
	opts = opts.withDefaults()
	return &Service{
		Authorization: NewAuthService(api, opts),
		Provisioning:  NewProvisioningService(api, cat, opts),
		Attachment:    NewAttachmentService(api, cat, opts),
		Learning:      NewLearningService(api, opts),
		Verification:  NewVerificationService(api, opts),
	}
}
