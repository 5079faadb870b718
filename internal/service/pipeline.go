package service

import (
	"context"
	"errors"
	"fmt"

	"motor_seeder/internal/logger"
	"motor_seeder/internal/metrics"
	"motor_seeder/internal/models"
)

// Pipeline runs the provisioning stages strictly in order.
// A failed run leaves the remote system partially provisioned; re-running
// is the recovery path.
type Pipeline struct {
	svc     *Service
	log     *logger.Logger
	metrics *metrics.Recorder

	state  State
	report *Report
}

// NewPipeline constructs a pipeline over the aggregated stages.
func NewPipeline(svc *Service, log *logger.Logger, rec *metrics.Recorder) *Pipeline {
	if log == nil {
		log = logger.Nop()
	}
	return &Pipeline{svc: svc, log: log, metrics: rec, state: StateLoggedOut}
}

// State returns the last state reached.
func (p *Pipeline) State() State {
	return p.state
}

func (p *Pipeline) advance(next State) error {
	want, ok := p.state.Next()
	if !ok || next != want {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.state, next)
	}
	p.state = next
	if p.report != nil {
		p.report.Reached = next
	}
	p.metrics.SetStage(int(next))
	p.log.Debugw("pipeline_state", "state", next.String())
	return nil
}

func (p *Pipeline) header(step int, title string) {
	p.log.Infof("=== %d. %s ===", step, title)
}

func (p *Pipeline) warn(msg string) {
	p.report.Warnings = append(p.report.Warnings, msg)
	p.log.Warnw("pipeline_warning", "warning", msg)
}

// Run executes one full pass. The returned error is non-nil for fatal
// conditions only; the report is returned in every case.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	p.state = StateLoggedOut
	p.report = &Report{StartedAt: nowUTC(), Reached: StateLoggedOut}
	defer func() { p.report.FinishedAt = nowUTC() }()

	p.header(1, "Login")
	if _, err := p.svc.Login(ctx); err != nil {
		return p.report, err
	}
	if err := p.advance(StateAuthenticated); err != nil {
		return p.report, err
	}

	p.header(2, "Create Motor Models")
	modelSet, out, err := p.svc.CreateModels(ctx)
	p.report.Models = out
	if err != nil {
		return p.report, fmt.Errorf("create models: %w", err)
	}
	if err := p.advance(StateModelsReady); err != nil {
		return p.report, err
	}

	p.header(3, "Get Devices")
	p.report.Devices = len(p.svc.ListDevices(ctx))

	p.header(4, "Create Motor Instances")
	instances, out, err := p.svc.CreateInstances(ctx, modelSet)
	p.report.Instances = out
	if err != nil {
		return p.report, fmt.Errorf("create instances: %w", err)
	}
	if len(instances) == 0 {
		p.warn("no motor instances created or discovered")
	}
	if err := p.advance(StateInstancesReady); err != nil {
		return p.report, err
	}

	p.header(5, "Create Parameter Mappings")
	if p.report.Mappings, err = p.svc.AttachMappings(ctx, instances); err != nil {
		return p.report, fmt.Errorf("attach mappings: %w", err)
	}
	if err := p.advance(StateMappingsAttached); err != nil {
		return p.report, err
	}

	p.header(6, "Create Operation Modes")
	if p.report.Modes, err = p.svc.AttachModes(ctx, instances); err != nil {
		return p.report, fmt.Errorf("attach modes: %w", err)
	}
	if err := p.advance(StateModesAttached); err != nil {
		return p.report, err
	}

	p.header(7, "Start Baseline Learning")
	var learning []models.MotorInstance
	learning, p.report.Learning, err = p.svc.StartLearning(ctx, instances)
	if err != nil {
		return p.report, fmt.Errorf("start learning: %w", err)
	}
	if err := p.advance(StateLearningStarted); err != nil {
		return p.report, err
	}

	p.header(8, "Verifying Results")
	if err := p.svc.AwaitBaselines(ctx, learning); err != nil {
		if !errors.Is(err, ErrBaselineTimeout) {
			return p.report, fmt.Errorf("await baselines: %w", err)
		}
		p.warn(err.Error())
	}
	verified, rows, err := p.svc.Verify(ctx)
	p.report.Verification = rows
	if err != nil {
		return p.report, fmt.Errorf("verify: %w", err)
	}
	if err := p.advance(StateVerified); err != nil {
		return p.report, err
	}

	p.header(9, "Test Diagnosis")
	p.report.Diagnosis, err = p.svc.Diagnose(ctx, verified)
	if err != nil {
		return p.report, fmt.Errorf("diagnose: %w", err)
	}
	if err := p.advance(StateDiagnosed); err != nil {
		return p.report, err
	}

	p.log.Infow("=== Initialization Complete ===",
		"models", len(modelSet),
		"instances", len(instances),
		"warnings", len(p.report.Warnings),
	)
	return p.report, nil
}
